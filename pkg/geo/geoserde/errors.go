package geoserde

import (
	"github.com/cockroachdb/errors"
)

// ErrorKind classifies a decode failure into the taxonomy spec.md §7
// describes: format errors the caller can recover from, adapter errors
// surfaced from the underlying geometry library, and internal invariant
// violations that should never happen.
type ErrorKind int

const (
	// KindUnknownTag: the first byte was not one of the eight valid codes.
	KindUnknownTag ErrorKind = iota
	// KindUnexpectedEOF: a read ran past the end of the input, including
	// a collection entry's length prefix overflowing its outer budget.
	KindUnexpectedEOF
	// KindWkbParseFailed: the WKB bridge (Strategy B) rejected a body.
	KindWkbParseFailed
	// KindInternal: a codec invariant was violated — should not happen
	// for any input produced by this package's own Serialize.
	KindInternal
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnknownTag:
		return "UnknownTag"
	case KindUnexpectedEOF:
		return "UnexpectedEof"
	case KindWkbParseFailed:
		return "WkbParseFailed"
	case KindInternal:
		return "Internal"
	default:
		return "Unknown"
	}
}

// DecodeError is the single tagged error value every decode entry point
// reports through, per spec.md §6.3: no other error channel exists.
type DecodeError struct {
	Kind ErrorKind
	msg  string
	// cause is kept so errors.Is/errors.As can unwrap to the underlying
	// geobytes or adapter failure without leaking that package's error
	// type into the public signature.
	cause error
}

func (e *DecodeError) Error() string {
	if e.cause != nil {
		return e.Kind.String() + ": " + e.msg + ": " + e.cause.Error()
	}
	return e.Kind.String() + ": " + e.msg
}

// Unwrap exposes the underlying cause, if any, for errors.Is/errors.As.
func (e *DecodeError) Unwrap() error {
	return e.cause
}

func newDecodeError(kind ErrorKind, cause error, format string, args ...interface{}) *DecodeError {
	return &DecodeError{Kind: kind, cause: cause, msg: errors.Newf(format, args...).Error()}
}
