// Package result provides the success/failure carrier returned by every
// catalog layer instead of a Go error. A failure carries exactly one
// human-readable message and never a usable value.
package result

import (
	"errors"
	"fmt"
)

// Unit is the payload of a Result that carries no value.
type Unit struct{}

// Result is either Success(value) or Failure(message). The zero value is a
// successful Result holding the zero value of T.
type Result[T any] struct {
	value   T
	message string
	failed  bool
}

// Success returns a successful Result holding v.
func Success[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Ok returns a successful Result without payload.
func Ok() Result[Unit] {
	return Result[Unit]{}
}

// Failure returns a failed Result carrying message.
func Failure[T any](message string) Result[T] {
	return Result[T]{message: message, failed: true}
}

// Failuref is Failure with fmt.Sprintf formatting.
func Failuref[T any](format string, args ...any) Result[T] {
	return Failure[T](fmt.Sprintf(format, args...))
}

// FromOptional treats a nil pointer as a failure with message and
// dereferences it otherwise.
func FromOptional[T any](v *T, message string) Result[T] {
	if v == nil {
		return Failure[T](message)
	}
	return Success(*v)
}

// FromError adapts a (value, error) pair returned by error-based code into a
// Result. The error text becomes the failure message.
func FromError[T any](v T, err error) Result[T] {
	if err != nil {
		return Failure[T](err.Error())
	}
	return Success(v)
}

// Propagate converts a failed Result[T] into a Result[U] carrying the same
// message. Calling it on a successful Result is a programming error.
func Propagate[U, T any](r Result[T]) Result[U] {
	if !r.failed {
		panic("result: Propagate called on a successful result")
	}
	return Failure[U](r.message)
}

// Map applies fn to the value of a successful Result. Failures pass through.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.failed {
		return Failure[U](r.message)
	}
	return Success(fn(r.value))
}

// IsSuccess reports whether r holds a value.
func (r Result[T]) IsSuccess() bool { return !r.failed }

// IsFailure reports whether r holds an error message.
func (r Result[T]) IsFailure() bool { return r.failed }

// Value returns the success value. It panics on a failed Result: callers
// must check IsFailure first.
func (r Result[T]) Value() T {
	if r.failed {
		panic(fmt.Sprintf("result: value accessed on failed result: %s", r.message))
	}
	return r.value
}

// Message returns the failure message, or "" for a successful Result.
func (r Result[T]) Message() string {
	return r.message
}

// Err returns the failure as an error value, or nil on success.
// Use it only at boundaries that speak Go errors.
func (r Result[T]) Err() error {
	if !r.failed {
		return nil
	}
	return errors.New(r.message)
}
