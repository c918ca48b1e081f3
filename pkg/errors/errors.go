// Package errors provides structured error handling for the motion engine.
//
// Factories that coerce external input (easing tags, transition initializers,
// theme values) return typed errors such as [TypeError] and [CoercionError].
// State-machine methods never return errors; when they hit bad input they
// send a [MotionError] to the global [ErrorHandler] and carry on in a
// well-defined state.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindType indicates malformed input that matched no recognized shape.
	KindType
	// KindCoercion indicates a value that could not be converted to the
	// type an animator or solver needed.
	KindCoercion
	// KindInvariant indicates a broken engine invariant (a programmer error).
	KindInvariant
	// KindGraph indicates invalid fastener graph wiring.
	KindGraph
	// KindConfig indicates an invalid configuration or theme file.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindType:
		return "type"
	case KindCoercion:
		return "coercion"
	case KindInvariant:
		return "invariant"
	case KindGraph:
		return "graph"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Sentinel errors returned by fastener graph wiring.
var (
	// ErrNotRegistered is returned when linking an animator that belongs to no graph.
	ErrNotRegistered = stderrors.New("fastener is not registered with a graph")
	// ErrGraphMismatch is returned when linking animators from different graphs.
	ErrGraphMismatch = stderrors.New("fasteners belong to different graphs")
	// ErrCycle is returned when a link would make a fastener its own ancestor.
	ErrCycle = stderrors.New("fastener link would create a cycle")
)

// MotionError represents a structured error reported by the engine.
type MotionError struct {
	// Op is the operation that failed (e.g., "animation.Animator.SetState").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Fastener names the animator involved, if any.
	Fastener string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *MotionError) Error() string {
	if e.Fastener != "" {
		return fmt.Sprintf("%s [%s] fastener=%s: %v", e.Op, e.Kind, e.Fastener, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *MotionError) Unwrap() error {
	return e.Err
}

// TypeError reports input that matched none of the shapes an operation accepts.
type TypeError struct {
	// Op is the operation that rejected the input (e.g., "animation.ParseEasing").
	Op string
	// Expected describes the accepted shapes.
	Expected string
	// Got is the rejected input.
	Got any
}

func (e *TypeError) Error() string {
	if s, ok := e.Got.(string); ok {
		return fmt.Sprintf("%s: expected %s, got %q", e.Op, e.Expected, s)
	}
	return fmt.Sprintf("%s: expected %s, got %T", e.Op, e.Expected, e.Got)
}

// CoercionError reports a value that could not be converted to a target type.
type CoercionError struct {
	// Target is the destination type name (e.g., "float64", "graphics.Color").
	Target string
	// Value is the value that failed to convert.
	Value any
	// Err is the underlying parse error, if any.
	Err error
}

func (e *CoercionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot coerce %T to %s: %v", e.Value, e.Target, e.Err)
	}
	return fmt.Sprintf("cannot coerce %T to %s", e.Value, e.Target)
}

func (e *CoercionError) Unwrap() error {
	return e.Err
}

// InvariantError describes a broken engine invariant.
type InvariantError struct {
	// Op is the operation that detected the violation.
	Op string
	// Fastener names the animator involved.
	Fastener string
	// Message describes what went wrong.
	Message string
}

func (e *InvariantError) Error() string {
	if e.Fastener != "" {
		return fmt.Sprintf("invariant violated in %s (fastener=%s): %s", e.Op, e.Fastener, e.Message)
	}
	return fmt.Sprintf("invariant violated in %s: %s", e.Op, e.Message)
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "animation.Graph.Step").
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

// ErrorHandler receives errors reported by the engine.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *MotionError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return stderrors.Is(err, target) }

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool { return stderrors.As(err, target) }
