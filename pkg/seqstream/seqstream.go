// Package seqstream adapts a lazy sequence to sequential, read-only reads with an open/close lifecycle.
package seqstream

import (
	"github.com/Ne9or/lazyseq/pkg/lazyseq"
)

// Stream reads a lazy sequence from the start, one element at a time.
// It keeps its own position, so several streams can read the same sequence independently.
type Stream[T any] struct {
	source   *lazyseq.Seq[T]
	position int
	opened   bool
}

func New[T any](source *lazyseq.Seq[T]) *Stream[T] {
	return &Stream[T]{source: source}
}

// FromText returns a stream over the runes of text.
func FromText(text string) *Stream[rune] {
	return New(lazyseq.Text(text))
}

func (s *Stream[T]) Open() error {
	if s.source == nil {
		return lazyseq.ErrInvalidConstruction.F("stream has no source")
	}
	s.opened = true
	return nil
}

// Close ends reading. The position is kept, so a reopened stream continues where it stopped.
func (s *Stream[T]) Close() error {
	s.opened = false
	return nil
}

func (s *Stream[T]) IsEndOfStream() (bool, error) {
	if !s.opened {
		return false, lazyseq.ErrStreamNotOpened
	}
	return !(s.position < s.source.MaterializedCount() || s.source.HasNext()), nil
}

func (s *Stream[T]) Read() (T, error) {
	var zero T
	end, err := s.IsEndOfStream()
	if err != nil {
		return zero, err
	}
	if end {
		return zero, lazyseq.ErrExhausted.F("end of stream at position %d", s.position)
	}
	v, err := s.source.Get(s.position)
	if err != nil {
		return zero, err
	}
	s.position++
	return v, nil
}

// Position is the number of elements read so far.
func (s *Stream[T]) Position() int {
	return s.position
}
