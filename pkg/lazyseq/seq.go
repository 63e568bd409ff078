// Package lazyseq provides lazily materialized, memoizing sequences.
//
// A Seq computes its elements on first demand, strictly in increasing index order,
// and caches every element it has produced, so asking for the same index again never re-runs generation.
// Sequences compose through combinators (Append, Prepend, InsertAt, Subrange, Where and Map)
// that build new sequences without evaluating their sources eagerly.
// A Seq may be infinite, for example a Recurrence where each element is derived from the previous ones.
//
// A Seq is not safe for concurrent use.
package lazyseq

import (
	"context"
	"slices"

	"github.com/benbjohnson/immutable"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"
)

// Generator is the pull based producer behind a Seq.
type Generator[T any] interface {
	// HasNext reports whether Next can produce another element.
	// It is allowed to advance internal lookahead state to answer truthfully,
	// but repeated calls without Next in between must give the same answer.
	HasNext() bool
	// Next produces the next element.
	// When HasNext is false, Next must fail with ErrExhausted.
	Next() (T, error)
}

// Seq is a lazy, memoizing sequence.
// The zero value is not usable, use one of the constructors.
type Seq[T any] struct {
	gen   Generator[T]
	cache *Store[T]
}

// Empty returns a terminated sequence that has no elements.
func Empty[T any]() *Seq[T] {
	return &Seq[T]{cache: NewStore[T]()}
}

// Of returns a finite sequence over the given values.
func Of[T any](vs ...T) *Seq[T] {
	return FromSlice(vs)
}

// FromSlice returns a finite sequence over a copy of the slice.
// Nothing is cached up front, elements move into the cache as they are requested.
func FromSlice[T any](vs []T) *Seq[T] {
	return FromGenerator[T](&sliceGen[T]{values: slices.Clone(vs)})
}

// FromGenerator wraps an externally supplied Generator.
func FromGenerator[T any](gen Generator[T]) *Seq[T] {
	return &Seq[T]{gen: gen, cache: NewStore[T]()}
}

// Get returns the element at index, materializing every element before it that is not yet cached.
//
// Elements materialized before a failure stay cached.
func (s *Seq[T]) Get(index int) (T, error) {
	var zero T
	if index < 0 {
		return zero, ErrOutOfRange.F("negative index %d", index)
	}
	from := s.cache.Len()
	for s.cache.Len() <= index && s.HasNext() {
		v, err := s.gen.Next()
		if err != nil {
			logger.Debug(context.Background(), "lazy sequence generation failed",
				logging.Field("index", s.cache.Len()),
				logging.ErrField(err))
			return zero, err
		}
		s.cache.Append(v)
	}
	if to := s.cache.Len(); from < to {
		logger.Debug(context.Background(), "lazy sequence materialized", logging.Fields{
			"from": from,
			"to":   to,
		})
	}
	if s.cache.Len() <= index {
		return zero, ErrExhausted.F("index %d requested, %d elements available", index, s.cache.Len())
	}
	return s.cache.Get(index)
}

// GetNext returns the element right after the last materialized one.
func (s *Seq[T]) GetNext() (T, error) {
	return s.Get(s.cache.Len())
}

// HasNext reports whether the generator can produce more elements.
// Elements that are already cached are not taken into account.
func (s *Seq[T]) HasNext() bool {
	return s.gen != nil && s.gen.HasNext()
}

func (s *Seq[T]) MaterializedCount() int {
	return s.cache.Len()
}

func (s *Seq[T]) FirstMaterialized() (T, error) {
	return s.cache.First()
}

func (s *Seq[T]) LastMaterialized() (T, error) {
	return s.cache.Last()
}

// Snapshot returns the materialized prefix as an immutable list.
func (s *Seq[T]) Snapshot() *immutable.List[T] {
	return s.cache.Snapshot()
}

// Append returns a sequence of s followed by other.
func (s *Seq[T]) Append(other *Seq[T]) *Seq[T] {
	return FromGenerator[T](&concat[T]{first: s, second: other})
}

// Prepend returns a sequence of other followed by s.
func (s *Seq[T]) Prepend(other *Seq[T]) *Seq[T] {
	return FromGenerator[T](&concat[T]{first: other, second: s})
}

// InsertAt returns a sequence where the next element of other takes the position index,
// and the elements of s fill every other position.
// Whatever other still has once s is consumed follows at the end,
// so an index past the end of s appends other.
func (s *Seq[T]) InsertAt(index int, other *Seq[T]) *Seq[T] {
	return FromGenerator[T](&insertion[T]{primary: s, secondary: other, at: index})
}

// Subrange returns the elements of s between from and to, both inclusive.
func (s *Seq[T]) Subrange(from, to int) *Seq[T] {
	return FromGenerator[T](newSubrange(s, from, to))
}

// Where returns the elements of s that satisfy the predicate, in their original order.
func (s *Seq[T]) Where(predicate func(T) bool) *Seq[T] {
	return FromGenerator[T](&filter[T]{source: s, predicate: predicate})
}

// usable reports whether the element at cursor is cached or still producible.
func (s *Seq[T]) usable(cursor int) bool {
	return cursor < s.cache.Len() || s.HasNext()
}
