package mulang

import "errors"

var (
	// ErrArity reports a call-convention fault: an application with an
	// argument count the node cannot serve. Never swallowed; every
	// operator propagates it unmodified.
	ErrArity = errors.New("arity mismatch")

	// ErrSearchLimit reports that a MuWithin search passed its ceiling
	// without finding a witness.
	ErrSearchLimit = errors.New("search limit reached")
)
