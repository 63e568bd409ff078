package lazyseq

type subrange[T any] struct {
	source *Seq[T]
	cursor int
	to     int
	done   bool
	err    error
}

func newSubrange[T any](source *Seq[T], from, to int) *subrange[T] {
	return &subrange[T]{
		source: source,
		cursor: from,
		to:     to,
		done:   from < 0 || to < from,
	}
}

// HasNext probes the source up to the cursor.
// This materializes source elements no further than the one Next would read.
func (g *subrange[T]) HasNext() bool {
	if g.done {
		return false
	}
	if g.err != nil || g.cursor < g.source.MaterializedCount() {
		return true
	}
	_, err := g.source.Get(g.cursor)
	if err != nil && !endOfData(err) {
		// held for Next, the source may not report it again
		g.err = err
	}
	return err == nil || g.err != nil
}

func (g *subrange[T]) Next() (T, error) {
	var zero T
	if !g.HasNext() {
		return zero, ErrExhausted.F("subrange ended at index %d", g.cursor)
	}
	if err := g.err; err != nil {
		g.err = nil
		return zero, err
	}
	v, err := g.source.Get(g.cursor)
	if err != nil {
		return v, err
	}
	if g.cursor == g.to {
		g.done = true
	} else {
		g.cursor++
	}
	return v, nil
}
