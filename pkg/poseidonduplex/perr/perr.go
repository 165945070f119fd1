// Package perr defines the structural errors the Poseidon duplex sponge
// core can raise. All of them indicate a programmer mistake (malformed
// parameters, an incompatible snapshot, an oversized truncation request),
// never a runtime condition — there is nothing to retry.
package perr

import "fmt"

// Code identifies the kind of structural failure.
type Code int

const (
	// CodeInvalidParameters means parameter construction failed: an odd
	// or negative round count, a rate or capacity below 1, or ark or mds
	// not matching the declared round counts / rate+capacity shape.
	CodeInvalidParameters Code = iota
	// CodeSnapshotWidthMismatch means a State's element count did not
	// equal rate+capacity for the parameters it was rehydrated against.
	CodeSnapshotWidthMismatch
	// CodeTruncatedSizeTooLarge means a FieldElementSize.Truncated(k)
	// requested more bits than the target field's capacity allows.
	CodeTruncatedSizeTooLarge
)

func (c Code) String() string {
	switch c {
	case CodeInvalidParameters:
		return "invalid parameters"
	case CodeSnapshotWidthMismatch:
		return "snapshot width mismatch"
	case CodeTruncatedSizeTooLarge:
		return "truncated size too large"
	default:
		return "unknown"
	}
}

// Error is a structural error raised by the core.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("poseidon-duplex: %s: %s (%v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("poseidon-duplex: %s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is makes errors.Is(err, perr.New(code, "")) match on Code alone.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == other.Code
}

// New builds an Error with the given code and message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}
