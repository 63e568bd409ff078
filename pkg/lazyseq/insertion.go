package lazyseq

// insertion emits the next element of secondary when the position reaches at, and primary otherwise.
// Whichever side runs dry hands over to the other one:
// an index past the end of primary appends secondary,
// and a secondary that is already consumed at the splice point yields that turn to primary.
type insertion[T any] struct {
	primary   *Seq[T]
	secondary *Seq[T]
	at        int

	primaryAt   int
	secondaryAt int
	position    int
}

func (g *insertion[T]) HasNext() bool {
	return g.primary.usable(g.primaryAt) || g.secondary.usable(g.secondaryAt)
}

func (g *insertion[T]) Next() (T, error) {
	var (
		v   T
		err error
	)
	switch {
	case g.position == g.at && g.secondary.usable(g.secondaryAt):
		v, err = pull(g.secondary, &g.secondaryAt)
	case g.primary.usable(g.primaryAt):
		v, err = pull(g.primary, &g.primaryAt)
	case g.secondary.usable(g.secondaryAt):
		v, err = pull(g.secondary, &g.secondaryAt)
	default:
		return v, ErrExhausted.F("insertion consumed both sequences at position %d", g.position)
	}
	if err != nil {
		return v, err
	}
	g.position++
	return v, nil
}
