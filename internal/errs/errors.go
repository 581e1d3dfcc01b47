// Package errs classifies pipeline failures into the categories the CLI
// and HTTP surfaces report on.
package errs

import (
	"errors"
	"fmt"
)

// Kind identifies the failure category of a pipeline error.
type Kind int

const (
	// KindUnknown covers errors that were never classified.
	KindUnknown Kind = iota
	// KindConfig marks configuration problems such as a missing credential.
	KindConfig
	// KindTransport marks network or HTTP failures reaching the completion endpoint.
	KindTransport
	// KindProtocol marks responses that arrived but do not have the expected shape.
	KindProtocol
	// KindFilesystem marks failures writing generated output to disk.
	KindFilesystem
)

// String returns the short kind name used in logs.
func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindTransport:
		return "transport"
	case KindProtocol:
		return "protocol"
	case KindFilesystem:
		return "filesystem"
	default:
		return "unknown"
	}
}

// Error couples an underlying error with its failure kind.
type Error struct {
	Kind Kind
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error { return e.Err }

// New wraps err with the given kind. A nil err returns nil.
func New(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: err}
}

// Newf wraps a formatted error with the given kind. The format string
// supports %w.
func Newf(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// KindOf reports the kind of err, looking through wrapping. Unclassified
// errors report KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
