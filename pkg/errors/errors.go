// Package errors provides structured error handling for the dock toolkit.
package errors

import (
	"fmt"
	"time"
)

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindConfig indicates a configuration or scene file error.
	KindConfig
	// KindLayout indicates a layout diagnostic, such as panels declared
	// out of order.
	KindLayout
	// KindRender indicates a rasterization or encoding error.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindLayout:
		return "layout"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Error represents a structured error in the dock toolkit.
type Error struct {
	// Op is the operation that failed (e.g., "style.Load").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "dockview.renderFrame").
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

// Handler receives errors reported by the dock toolkit.
type Handler interface {
	// HandleError is called when an error occurs.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
