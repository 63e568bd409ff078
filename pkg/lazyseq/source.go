package lazyseq

import (
	"bufio"
	"errors"
	"io"
)

//go:generate mockgen -source source.go -destination mock_source_test.go -package lazyseq_test

// Source is a sequential, read-once producer such as a file or the standard input.
type Source[T any] interface {
	// Peek reports whether another unit can be read, without consuming it.
	Peek() bool
	// ReadOne consumes the next unit.
	// io.EOF signals the end of the data.
	ReadOne() (T, error)
}

// FromSource returns a sequence fed by src.
// Once src reports the end of data or fails a read, the sequence is exhausted for good,
// even if src could produce more later.
func FromSource[T any](src Source[T]) *Seq[T] {
	return FromGenerator[T](&feed[T]{source: src})
}

type feed[T any] struct {
	source Source[T]
	peeked bool
	done   bool
}

func (g *feed[T]) HasNext() bool {
	if g.done {
		return false
	}
	if g.peeked {
		return true
	}
	if g.source.Peek() {
		g.peeked = true
	} else {
		g.done = true
	}
	return g.peeked
}

func (g *feed[T]) Next() (T, error) {
	var zero T
	if !g.HasNext() {
		return zero, ErrExhausted.F("source reached the end of data")
	}
	g.peeked = false
	v, err := g.source.ReadOne()
	if err != nil {
		g.done = true
		if errors.Is(err, io.EOF) {
			return zero, ErrExhausted.F("source reached the end of data")
		}
		return zero, ErrExhausted.Wrap(readFailure{cause: err})
	}
	return v, nil
}

// readFailure marks an exhaustion caused by a failed read rather than the end of data.
type readFailure struct{ cause error }

func (e readFailure) Error() string { return "source read failed: " + e.cause.Error() }

func (e readFailure) Unwrap() error { return e.cause }

// endOfData reports whether err means the data simply ran out.
func endOfData(err error) bool {
	var rf readFailure
	return errors.Is(err, ErrExhausted) && !errors.As(err, &rf)
}

// ByteSource reads r byte by byte.
// A read failure other than io.EOF is reported by the next ReadOne.
func ByteSource(r io.Reader) Source[byte] {
	return &byteSource{r: bufio.NewReader(r)}
}

type byteSource struct {
	r   *bufio.Reader
	err error
}

func (s *byteSource) Peek() bool {
	if s.err != nil {
		return true
	}
	if _, err := s.r.Peek(1); err != nil {
		if errors.Is(err, io.EOF) {
			return false
		}
		s.err = err
	}
	return true
}

func (s *byteSource) ReadOne() (byte, error) {
	if err := s.err; err != nil {
		s.err = nil
		return 0, err
	}
	return s.r.ReadByte()
}

// RuneSource reads r as UTF-8 text, rune by rune.
// A read failure other than io.EOF is reported by the next ReadOne.
func RuneSource(r io.Reader) Source[rune] {
	return &runeSource{r: bufio.NewReader(r)}
}

type runeSource struct {
	r   *bufio.Reader
	err error
}

func (s *runeSource) Peek() bool {
	if s.err != nil {
		return true
	}
	if _, _, err := s.r.ReadRune(); err != nil {
		if errors.Is(err, io.EOF) {
			return false
		}
		s.err = err
		return true
	}
	if err := s.r.UnreadRune(); err != nil {
		s.err = err
	}
	return true
}

func (s *runeSource) ReadOne() (rune, error) {
	if err := s.err; err != nil {
		s.err = nil
		return 0, err
	}
	char, _, err := s.r.ReadRune()
	return char, err
}

// Text returns a finite sequence over the runes of text.
func Text(text string) *Seq[rune] {
	return FromSlice([]rune(text))
}
