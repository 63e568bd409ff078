package lazyseq

import "iter"

// Iter iterates over s from its first element, going through Get.
// The iteration ends when s runs out of elements.
// Any other error, a failed source read included, is yielded once, and then the iteration stops.
func (s *Seq[T]) Iter() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for index := 0; s.usable(index); index++ {
			v, err := s.Get(index)
			if endOfData(err) {
				return
			}
			if !yield(v, err) || err != nil {
				return
			}
		}
	}
}

// Collect materializes every element of s.
// It never returns on an infinite sequence, use Take for those.
func Collect[T any](s *Seq[T]) ([]T, error) {
	var vs []T
	for v, err := range s.Iter() {
		if err != nil {
			return vs, err
		}
		vs = append(vs, v)
	}
	return vs, nil
}

// Take returns up to n elements from the start of s.
func Take[T any](s *Seq[T], n int) ([]T, error) {
	var vs []T
	if n <= 0 {
		return vs, nil
	}
	for v, err := range s.Iter() {
		if err != nil {
			return vs, err
		}
		vs = append(vs, v)
		if len(vs) == n {
			break
		}
	}
	return vs, nil
}
