// Package errors provides structured error reporting for the glaze library.
//
// Toast operations are fire-and-forget, so nothing in the public toast API
// returns an error. Failures that do occur (a host refusing to create the
// overlay layer, a custom view panicking during layout, a malformed config
// file) are reported through the global handler instead of interrupting the
// caller.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindHost indicates a host platform failure, such as layer creation.
	KindHost
	// KindView indicates a failure inside a custom toast view callback.
	KindView
	// KindConfig indicates a configuration load or parse failure.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindHost:
		return "host"
	case KindView:
		return "view"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// GlazeError represents a structured error in the glaze library.
type GlazeError struct {
	// Op is the operation that failed (e.g., "toast.Show").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *GlazeError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *GlazeError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "toast.layoutView").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the glaze library.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *GlazeError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
