package bn254

import (
	"fmt"

	"github.com/holiman/uint256"
)

// ErrorKind distinguishes the ways a verification call can fail with an
// error rather than a cryptographic rejection, so a caller can branch on
// "why" rather than just "it failed". All kinds but ErrBackendFailure are
// raised before any pairing check runs. See VerifyError.
type ErrorKind int

const (
	// ErrLengthMismatch means |IC| != |inputs| + 1.
	ErrLengthMismatch ErrorKind = iota
	// ErrFieldOverflow means a supplied u256 coordinate is >= p.
	ErrFieldOverflow
	// ErrNotOnCurve means an (x, y) tuple other than (0, 0) does not
	// satisfy the curve equation.
	ErrNotOnCurve
	// ErrNotInSubgroup means a point is on the curve but not in the
	// prime-order subgroup.
	ErrNotInSubgroup
	// ErrBackendFailure means the pairing or big-integer backend reported
	// an internal error that this package cannot attribute to a specific
	// malformed input.
	ErrBackendFailure
)

func (k ErrorKind) String() string {
	switch k {
	case ErrLengthMismatch:
		return "length mismatch"
	case ErrFieldOverflow:
		return "field overflow"
	case ErrNotOnCurve:
		return "not on curve"
	case ErrNotInSubgroup:
		return "not in subgroup"
	case ErrBackendFailure:
		return "backend failure"
	default:
		return "unknown"
	}
}

// VerifyError is the single error type returned for every precondition
// failure in this package and in package groth16. A cryptographic
// rejection (well-formed inputs, pairing product != identity) is never
// reported as a VerifyError: it is a plain `false` return.
type VerifyError struct {
	Kind ErrorKind
	msg  string
}

func (e *VerifyError) Error() string {
	return e.msg
}

// Is reports whether target names the same error kind, so callers can use
// errors.Is(err, &bn254.VerifyError{Kind: bn254.ErrNotOnCurve}) without
// type-asserting VerifyError themselves.
func (e *VerifyError) Is(target error) bool {
	t, ok := target.(*VerifyError)
	return ok && t.Kind == e.Kind
}

func newFieldOverflow(u *uint256.Int) *VerifyError {
	return &VerifyError{
		Kind: ErrFieldOverflow,
		msg:  fmt.Sprintf("bn254: coordinate %s is >= field modulus", u.Dec()),
	}
}

func newNotOnCurve() *VerifyError {
	return &VerifyError{Kind: ErrNotOnCurve, msg: "bn254: point is not on the curve"}
}

func newNotInSubgroup() *VerifyError {
	return &VerifyError{Kind: ErrNotInSubgroup, msg: "bn254: point is not in the prime-order subgroup"}
}

func newBackendFailure(err error) *VerifyError {
	return &VerifyError{Kind: ErrBackendFailure, msg: fmt.Sprintf("bn254: pairing backend failure: %v", err)}
}

// NewLengthMismatch reports an IC/public-input length mismatch. Exported so
// package groth16 can raise the same error kind without re-implementing
// VerifyError's shape.
func NewLengthMismatch(icLen, inputsLen int) *VerifyError {
	return &VerifyError{
		Kind: ErrLengthMismatch,
		msg:  fmt.Sprintf("bn254: |IC|=%d does not match |inputs|+1=%d", icLen, inputsLen+1),
	}
}
