package lazyseq

import (
	"weak"
)

// View is read-only indexed access to the trailing elements a recurrence rule works from.
// *immutable.List satisfies it.
type View[T any] interface {
	Len() int
	Get(index int) T
}

// Recurrence returns an infinite sequence that starts with seed,
// and then derives every next element with rule from the last arity elements.
//
// The View given to rule holds exactly arity elements, the oldest at index 0.
// A seed shorter than arity is accepted, but generation fails with ErrInsufficientHistory.
func Recurrence[T any](seed []T, arity int, rule func(View[T]) T) (*Seq[T], error) {
	if arity < 1 {
		return nil, ErrInvalidConstruction.F("recurrence arity must be positive, got %d", arity)
	}
	if rule == nil {
		return nil, ErrInvalidConstruction.F("recurrence rule is missing")
	}
	s := &Seq[T]{cache: NewStore(seed...)}
	s.gen = &recurrence[T]{owner: weak.Make(s), arity: arity, rule: rule}
	return s, nil
}

// recurrence only observes its owner, so the generator alone never keeps the owning Seq alive.
type recurrence[T any] struct {
	owner weak.Pointer[Seq[T]]
	arity int
	rule  func(View[T]) T
}

func (g *recurrence[T]) HasNext() bool { return true }

func (g *recurrence[T]) Next() (T, error) {
	var zero T
	owner := g.owner.Value()
	if owner == nil {
		return zero, ErrOwnerExpired
	}
	size := owner.cache.Len()
	if size < g.arity {
		return zero, ErrInsufficientHistory.F("arity is %d, but only %d elements are cached", g.arity, size)
	}
	window := owner.cache.Snapshot().Slice(size-g.arity, size)
	return g.rule(window), nil
}
