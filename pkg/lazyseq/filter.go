package lazyseq

// filter looks ahead by a single element.
// HasNext does the actual filtering: it reads the source until an element passes the predicate,
// and keeps that element in the lookahead slot until Next takes it.
type filter[T any] struct {
	source    *Seq[T]
	predicate func(T) bool
	cursor    int

	lookahead T
	ok        bool
	err       error
}

func (g *filter[T]) HasNext() bool {
	if g.ok || g.err != nil {
		return true
	}
	for g.source.usable(g.cursor) {
		v, err := pull(g.source, &g.cursor)
		if err != nil {
			g.err = err
			return true
		}
		if g.predicate(v) {
			g.lookahead, g.ok = v, true
			return true
		}
	}
	return false
}

func (g *filter[T]) Next() (T, error) {
	var zero T
	if !g.HasNext() {
		return zero, ErrExhausted.F("no more elements pass the filter")
	}
	if err := g.err; err != nil {
		g.err = nil
		return zero, err
	}
	v := g.lookahead
	g.lookahead, g.ok = zero, false
	return v, nil
}
