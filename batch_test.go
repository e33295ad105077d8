package statsd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(lines []string, max int) []string {
	var chunks []string
	packLines(lines, max, func(payload string) {
		chunks = append(chunks, payload)
	})
	return chunks
}

func TestPackSplitsAtLimit(t *testing.T) {
	chunks := collect([]string{"a:1|c", "b:2|c", "c:3|c"}, 10)
	// 5+1+5 = 11 >= 10, so every line gets its own payload
	assert.Equal(t, []string{"a:1|c", "b:2|c", "c:3|c"}, chunks)
}

func TestPackCoalesces(t *testing.T) {
	chunks := collect([]string{"a:1|c", "b:2|c", "c:3|c"}, 512)
	assert.Equal(t, []string{"a:1|c\nb:2|c\nc:3|c"}, chunks)
}

func TestPackEmptyInput(t *testing.T) {
	called := false
	packLines(nil, 512, func(string) { called = true })
	assert.False(t, called, "no input must produce no payloads")
}

func TestPackOversizedLinePassesThrough(t *testing.T) {
	long := strings.Repeat("x", 600) + ":1|c"
	chunks := collect([]string{"a:1|c", long, "b:2|c"}, 512)
	require.Len(t, chunks, 3)
	assert.Equal(t, long, chunks[1], "an oversized line is its own payload, never split")
}

func TestPackRoundTrip(t *testing.T) {
	cases := []struct {
		lines []string
		max   int
	}{
		{[]string{"a:1|c"}, 10},
		{[]string{"a:1|c", "b:2|c", "c:3|c", "d:4|c"}, 12},
		{[]string{"gauge:100|g", "t:10.5|ms", "s:7|s", "hits:1|c|@0.5"}, 20},
		{[]string{"x:1|c", strings.Repeat("y", 100), "z:1|c"}, 16},
	}
	for _, tc := range cases {
		chunks := collect(tc.lines, tc.max)
		// Concatenating all payloads reproduces the input order exactly.
		joined := strings.Join(chunks, "\n")
		assert.Equal(t, tc.lines, strings.Split(joined, "\n"))
		for _, chunk := range chunks {
			if !strings.Contains(chunk, "\n") {
				continue // a single line may exceed the limit on its own
			}
			assert.Less(t, len(chunk), tc.max, "payload %q over limit %d", chunk, tc.max)
		}
	}
}
