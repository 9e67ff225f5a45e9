package chunker

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunk(t *testing.T) {
	tests := []struct {
		name string
		text string
		size int
		want []string
	}{
		{"empty input", "", 10, nil},
		{"each line reaches threshold", "a\nb\nc", 1, []string{"a", "b", "c"}},
		{"threshold never reached", "ab\ncd", 10, []string{"ab\ncd"}},
		{"separators not counted", "ab\ncd\nef", 4, []string{"ab\ncd", "ef"}},
		{"long line kept whole", "x\nthis line is long\ny", 5, []string{"x\nthis line is long", "y"}},
		{"long single line", "abcdefghij", 3, []string{"abcdefghij"}},
		{"trailing newline", "ab\n", 2, []string{"ab", ""}},
		{"blank lines carried", "ab\n\n\ncd", 3, []string{"ab\n\n\ncd"}},
		{"multibyte counted as characters", "éé\nüü", 2, []string{"éé", "üü"}},
		{"carriage return preserved", "ab\r\ncd", 3, []string{"ab\r", "cd"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Chunk(tt.text, tt.size)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChunkInvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		_, err := Chunk("abc", size)
		assert.ErrorIs(t, err, ErrInvalidTargetSize)
	}
}

func TestChunkRoundTrip(t *testing.T) {
	texts := []string{
		"a",
		"\n",
		"one\ntwo\nthree\nfour\nfive\n",
		strings.Repeat("lorem ipsum dolor sit amet\n", 200),
		"línea uno\nlínea dos\n\n\nfin",
	}

	for _, text := range texts {
		for _, size := range []int{1, 3, 10, 64, 2000} {
			segs, err := Chunk(text, size)
			require.NoError(t, err)
			assert.Equal(t, text, strings.Join(segs, "\n"), "size=%d", size)
		}
	}
}

func TestChunkBoundaries(t *testing.T) {
	text := strings.Repeat("0123456789abc\nxy\n", 50)
	size := 20

	segs, err := Chunk(text, size)
	require.NoError(t, err)

	for i, seg := range segs {
		lines := strings.Split(seg, "\n")
		before := 0
		for _, l := range lines[:len(lines)-1] {
			before += utf8.RuneCountInString(l)
		}
		// Everything before the last line stayed under the threshold.
		assert.Less(t, before, size, "segment %d", i)
	}
}

func TestChunkDeterministic(t *testing.T) {
	text := strings.Repeat("alpha beta\ngamma\n", 100)

	first, err := Chunk(text, 37)
	require.NoError(t, err)
	second, err := Chunk(text, 37)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
