// Package errors provides structured error handling for cardview.
//
// Geometry inputs never fail: they are clamped or ignored. The types here
// cover the places that can: platform detection, configuration files, and
// panics recovered while rasterizing.
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
	// KindPlatform indicates the host platform capability could not be determined.
	KindPlatform
	// KindConfig indicates an invalid or unreadable card configuration.
	KindConfig
	// KindRender indicates a rendering error.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindPlatform:
		return "platform"
	case KindConfig:
		return "config"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// CardError represents a structured error in cardview.
type CardError struct {
	// Op is the operation that failed (e.g., "card.TierFor").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Path is the configuration file involved, if any.
	Path string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *CardError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s [%s] path=%s: %v", e.Op, e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *CardError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "graphics.RasterCanvas.DrawPath").
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

// ErrorHandler receives errors reported by cardview.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *CardError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
