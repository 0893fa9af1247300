// Package curve provides the generic group/scalar/hasher abstraction
// that the schnorr, bulletproof, and incognito packages are built on,
// plus a concrete secp256k1 implementation.
package curve

import "fmt"

// ErrorKind classifies why an operation in this module failed.
type ErrorKind string

const (
	// BadArguments indicates a caller contract violation: a malformed
	// point encoding, a ring length outside the configured bounds, a
	// mismatched vector length. The caller can fix the input and retry.
	BadArguments = ErrorKind("BadArguments")

	// InvalidSignature indicates a signature or proof failed to verify.
	// Its messages carry no secret values. incognito's Params.Verify
	// uses one message for every failed check; schnorr.Verify and
	// bulletproof.Verify say whether the input was malformed or which
	// of their checks failed.
	InvalidSignature = ErrorKind("InvalidSignature")

	// Internal indicates a condition that should be unreachable given
	// correct calling code: a precomputed table sized wrong, a
	// supposedly-reduced scalar out of range.
	Internal = ErrorKind("Internal")
)

// Error is the concrete error type returned by every package in this
// module that can fail. It carries a Kind for programmatic dispatch via
// errors.Is, plus a human-readable message.
type Error struct {
	Kind ErrorKind
	msg  string
}

// NewError builds an *Error of the given kind with a formatted message.
func NewError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return string(e.Kind) + ": " + e.msg
}

// Is reports whether target is an ErrorKind equal to e.Kind, so that
// errors.Is(err, curve.BadArguments) works without the caller needing
// to unwrap e by hand.
func (e *Error) Is(target error) bool {
	kind, ok := target.(interface{ errorKind() ErrorKind })
	if !ok {
		return false
	}
	return e.Kind == kind.errorKind()
}

func (k ErrorKind) errorKind() ErrorKind { return k }

// Error implements the error interface directly on ErrorKind so that
// curve.BadArguments etc. can themselves be used as errors.Is targets.
func (k ErrorKind) Error() string { return string(k) }
