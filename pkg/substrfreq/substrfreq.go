// Package substrfreq counts how often a pattern occurs in a rune stream, overlapping occurrences included.
package substrfreq

import (
	"context"
	"slices"

	"github.com/Ne9or/lazyseq/pkg/lazyseq"
	"github.com/Ne9or/lazyseq/pkg/seqstream"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"
)

type Counter struct {
	pattern []rune
}

func New(pattern string) (*Counter, error) {
	if pattern == "" {
		return nil, lazyseq.ErrInvalidConstruction.F("empty pattern")
	}
	return &Counter{pattern: []rune(pattern)}, nil
}

func (c *Counter) Pattern() string {
	return string(c.pattern)
}

// Count opens stream, reads it to the end and closes it.
// Matches may overlap, so "aa" occurs twice in "aaa".
func (c *Counter) Count(stream *seqstream.Stream[rune]) (count int, returnErr error) {
	if err := stream.Open(); err != nil {
		return 0, err
	}
	defer func() { returnErr = errorkit.Merge(returnErr, stream.Close()) }()

	window := make([]rune, 0, len(c.pattern))
	for {
		end, err := stream.IsEndOfStream()
		if err != nil {
			return count, err
		}
		if end {
			break
		}
		char, err := stream.Read()
		if err != nil {
			return count, err
		}
		if len(window) == len(c.pattern) {
			window = append(window[:0], window[1:]...)
		}
		window = append(window, char)
		if slices.Equal(window, c.pattern) {
			count++
		}
	}

	logger.Debug(context.Background(), "substring frequency counted", logging.Fields{
		"pattern": string(c.pattern),
		"read":    stream.Position(),
		"count":   count,
	})
	return count, nil
}
