package statsd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeOrder(t *testing.T) {
	cfg := &config{
		prefix: "app.",
		tags:   []Tag{SimpleTag("canary")},
		random: func() float64 { return 0.1 },
	}
	line, ok := cfg.encode("hits", "1|c", 0.5, []Tag{StringTag("dc", "ams")})
	assert.True(t, ok)
	// prefix, then value, then rate suffix, then tags - in that fixed order
	assert.Equal(t, "app.hits:1|c|@0.5|#canary,dc:ams", line)
}

func TestEncodeNoRateSuffixAtFullRate(t *testing.T) {
	cfg := &config{random: func() float64 { return 0.999 }}
	line, ok := cfg.encode("hits", "1|c", 1, nil)
	assert.True(t, ok)
	assert.Equal(t, "hits:1|c", line)
}

func TestEncodeRateRenderedAsGiven(t *testing.T) {
	cfg := &config{random: func() float64 { return 0 }}
	line, ok := cfg.encode("hits", "1|c", 0.25, nil)
	assert.True(t, ok)
	assert.Equal(t, "hits:1|c|@0.25", line)
}

func TestEncodeSamplingReject(t *testing.T) {
	cfg := &config{random: func() float64 { return 0.9 }}
	_, ok := cfg.encode("hits", "1|c", 0.5, nil)
	assert.False(t, ok)
}

func TestEncodeSamplingBoundary(t *testing.T) {
	// a draw equal to the rate still passes
	cfg := &config{random: func() float64 { return 0.5 }}
	_, ok := cfg.encode("hits", "1|c", 0.5, nil)
	assert.True(t, ok)
}

func TestSampleZeroRate(t *testing.T) {
	cfg := &config{random: func() float64 { return 0.0001 }}
	assert.False(t, cfg.sample(0))
}

func TestSampleFullRateDrawsNothing(t *testing.T) {
	cfg := &config{random: func() float64 {
		t.Fatal("sampler must not draw for rate >= 1")
		return 0
	}}
	assert.True(t, cfg.sample(1))
	assert.True(t, cfg.sample(2))
}
