// Package chunker splits text into ordered, line-aligned segments bounded by a target size.
package chunker

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// DefaultTargetSize is the segment size used when the configuration leaves it unset.
const DefaultTargetSize = 2000

const separator = "\n"

// ErrInvalidTargetSize is returned for a non-positive target size.
var ErrInvalidTargetSize = errors.New("chunker: target size must be positive")

// Chunk partitions text into segments on line boundaries.
//
// Lines are accumulated until the sum of their lengths (in characters, separators
// not counted) reaches targetSize; the buffer is then closed as one segment. A
// non-empty remainder becomes the final segment. Lines are never split, so a
// segment may exceed targetSize by up to the length of its last line.
//
// strings.Join(segments, "\n") reproduces text exactly.
func Chunk(text string, targetSize int) ([]string, error) {
	if targetSize <= 0 {
		return nil, ErrInvalidTargetSize
	}
	if text == "" {
		return nil, nil
	}

	var (
		segments []string
		buf      []string
		length   int
	)
	for _, line := range strings.Split(text, separator) {
		buf = append(buf, line)
		length += utf8.RuneCountInString(line)

		if length >= targetSize {
			segments = append(segments, strings.Join(buf, separator))
			buf = buf[:0]
			length = 0
		}
	}

	if len(buf) > 0 {
		segments = append(segments, strings.Join(buf, separator))
	}

	return segments, nil
}
