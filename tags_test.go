package statsd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func suffix(call, defaults []Tag) string {
	return string(appendTags(nil, call, defaults))
}

func TestTagSuffixEmpty(t *testing.T) {
	assert.Equal(t, "", suffix(nil, nil))
}

func TestTagSuffixSimpleBeforeKV(t *testing.T) {
	s := suffix([]Tag{StringTag("dc", "ams"), SimpleTag("canary")}, nil)
	assert.Equal(t, "|#canary,dc:ams", s)
}

func TestTagMergeDefaultsFillGaps(t *testing.T) {
	defaults := []Tag{StringTag("dc", "ams"), StringTag("env", "prod"), SimpleTag("canary")}
	call := []Tag{StringTag("dc", "fra"), SimpleTag("hot")}
	// call-site dc wins, env comes from defaults, simple tags union up
	assert.Equal(t, "|#hot,canary,dc:fra,env:prod", suffix(call, defaults))
}

func TestTagMergeCallSiteNeverOverridden(t *testing.T) {
	defaults := []Tag{StringTag("k", "default")}
	call := []Tag{StringTag("k", "call")}
	// merging twice with the same inputs stays call-site
	for i := 0; i < 2; i++ {
		assert.Equal(t, "|#k:call", suffix(call, defaults))
	}
}

func TestTagDedup(t *testing.T) {
	call := []Tag{SimpleTag("a"), SimpleTag("a"), StringTag("k", "1"), StringTag("k", "2")}
	// first occurrence wins within a call
	assert.Equal(t, "|#a,k:1", suffix(call, nil))
}

func TestTagKindsDedupIndependently(t *testing.T) {
	call := []Tag{SimpleTag("region"), StringTag("region", "west")}
	assert.Equal(t, "|#region,region:west", suffix(call, nil))
}

func TestInt64Tag(t *testing.T) {
	assert.Equal(t, "|#shard:42", suffix([]Tag{Int64Tag("shard", 42)}, nil))
}
