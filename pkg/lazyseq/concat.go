package lazyseq

// concat keeps its own cursors, so first and second can be shared with other combinators.
type concat[T any] struct {
	first    *Seq[T]
	second   *Seq[T]
	firstAt  int
	secondAt int
}

func (g *concat[T]) HasNext() bool {
	return g.first.usable(g.firstAt) || g.second.usable(g.secondAt)
}

func (g *concat[T]) Next() (T, error) {
	if g.first.usable(g.firstAt) {
		return pull(g.first, &g.firstAt)
	}
	if g.second.usable(g.secondAt) {
		return pull(g.second, &g.secondAt)
	}
	var zero T
	return zero, ErrExhausted.F("both sides of the concatenation are consumed")
}

// pull reads the element at cursor, and only moves the cursor if the read succeeded.
func pull[T any](s *Seq[T], cursor *int) (T, error) {
	v, err := s.Get(*cursor)
	if err != nil {
		return v, err
	}
	*cursor++
	return v, nil
}
