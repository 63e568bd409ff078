package lazyseq

type sliceGen[T any] struct {
	values []T
	index  int
}

func (g *sliceGen[T]) HasNext() bool {
	return g.index < len(g.values)
}

func (g *sliceGen[T]) Next() (T, error) {
	if !g.HasNext() {
		var zero T
		return zero, ErrExhausted.F("end of the %d element sequence", len(g.values))
	}
	v := g.values[g.index]
	g.index++
	return v, nil
}
