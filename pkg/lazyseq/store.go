package lazyseq

import "github.com/benbjohnson/immutable"

// Store is the append-only cache of a Seq.
// Elements are kept in a persistent list, so a Snapshot stays valid while the store keeps growing.
type Store[T any] struct {
	list *immutable.List[T]
}

func NewStore[T any](vs ...T) *Store[T] {
	return &Store[T]{list: immutable.NewList[T](vs...)}
}

func (s *Store[T]) Append(v T) {
	s.init()
	s.list = s.list.Append(v)
}

func (s *Store[T]) Get(index int) (T, error) {
	if index < 0 || s.Len() <= index {
		var zero T
		return zero, ErrOutOfRange.F("index %d, size %d", index, s.Len())
	}
	return s.list.Get(index), nil
}

func (s *Store[T]) Len() int {
	if s == nil || s.list == nil {
		return 0
	}
	return s.list.Len()
}

func (s *Store[T]) First() (T, error) {
	if s.Len() == 0 {
		var zero T
		return zero, ErrOutOfRange.F("first element of an empty store")
	}
	return s.list.Get(0), nil
}

func (s *Store[T]) Last() (T, error) {
	if s.Len() == 0 {
		var zero T
		return zero, ErrOutOfRange.F("last element of an empty store")
	}
	return s.list.Get(s.Len() - 1), nil
}

// Snapshot returns the elements stored so far.
// Later appends are not visible through the returned list.
func (s *Store[T]) Snapshot() *immutable.List[T] {
	s.init()
	return s.list
}

func (s *Store[T]) init() {
	if s.list == nil {
		s.list = immutable.NewList[T]()
	}
}
