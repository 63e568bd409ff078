package lazyseq

// Map returns a sequence where every element of source is transformed with fn.
// This is the only combinator that can change the element type.
//
// fn is expected to be free of side effects, a panic in fn is not recovered.
func Map[To, From any](source *Seq[From], fn func(From) To) *Seq[To] {
	return FromGenerator[To](&mapper[From, To]{source: source, transform: fn})
}

type mapper[From, To any] struct {
	source    *Seq[From]
	transform func(From) To
	cursor    int
}

func (g *mapper[From, To]) HasNext() bool {
	return g.source.usable(g.cursor)
}

func (g *mapper[From, To]) Next() (To, error) {
	if !g.HasNext() {
		var zero To
		return zero, ErrExhausted.F("map source is consumed at index %d", g.cursor)
	}
	v, err := pull(g.source, &g.cursor)
	if err != nil {
		var zero To
		return zero, err
	}
	return g.transform(v), nil
}
