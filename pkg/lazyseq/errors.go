package lazyseq

import "go.llib.dev/frameless/pkg/errorkit"

const (
	// ErrOutOfRange is returned on indexed access beyond the materialized size,
	// or when First/Last is called on an empty store.
	ErrOutOfRange errorkit.Error = "lazyseq: index out of range"
	// ErrExhausted is returned when an element is requested that the generator can no longer produce.
	ErrExhausted errorkit.Error = "lazyseq: sequence exhausted"
	// ErrInsufficientHistory is returned when a recurrence rule has fewer cached elements than its arity.
	ErrInsufficientHistory errorkit.Error = "lazyseq: insufficient history"
	// ErrOwnerExpired is returned when a recurrence generator outlived the sequence it reads from.
	ErrOwnerExpired errorkit.Error = "lazyseq: owner sequence expired"
	// ErrStreamNotOpened is returned when a read-only stream is used before Open.
	ErrStreamNotOpened errorkit.Error = "lazyseq: stream is not opened"
	// ErrInvalidConstruction is returned for empty patterns, zero arity and similar degenerate inputs.
	ErrInvalidConstruction errorkit.Error = "lazyseq: invalid construction"
)
