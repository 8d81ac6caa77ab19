// Package errors provides structured error handling for the Aspen binding.
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
	// KindNative indicates a failure reported by the native toolkit.
	KindNative
	// KindCast indicates a handle conversion failure.
	KindCast
	// KindCallback indicates an error raised inside a registered callback.
	KindCallback
	// KindParse indicates a UI document parsing failure.
	KindParse
	// KindInit indicates an initialization error.
	KindInit
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindNative:
		return "native"
	case KindCast:
		return "cast"
	case KindCallback:
		return "callback"
	case KindParse:
		return "parse"
	case KindInit:
		return "init"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// AspenError represents a structured error in the Aspen binding.
type AspenError struct {
	// Op is the operation that failed (e.g., "element.Map").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Class is the native class name involved, if applicable.
	Class string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *AspenError) Error() string {
	if e.Class != "" {
		return fmt.Sprintf("%s [%s] class=%s: %v", e.Op, e.Kind, e.Class, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *AspenError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "element.DispatchCallback").
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

// ParseError represents a failure to interpret a UI document.
type ParseError struct {
	// File is the document path, if known.
	File string
	// Class is the widget class involved, if any.
	Class string
	// Err is the underlying error.
	Err error
}

func (e *ParseError) Error() string {
	switch {
	case e.File != "" && e.Class != "":
		return fmt.Sprintf("%s: class %q: %v", e.File, e.Class, e.Err)
	case e.File != "":
		return fmt.Sprintf("%s: %v", e.File, e.Err)
	case e.Class != "":
		return fmt.Sprintf("class %q: %v", e.Class, e.Err)
	default:
		return fmt.Sprintf("%v", e.Err)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives errors reported by the Aspen binding.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *AspenError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
