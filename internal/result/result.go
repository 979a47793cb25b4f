// Package result provides a two-armed outcome type: a success value or an
// application failure. Chains built with Map, Bind, Alt and Tap stop at the
// first failure; the remaining steps are skipped.
package result

import (
	"errors"

	"github.com/dmitrijs2005/catalog/internal/common"
)

// Result holds either a value of type T or a *common.Error.
type Result[T any] struct {
	value T
	err   *common.Error
}

// Ok wraps a success value.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Err wraps a failure. A nil failure is treated as an unclassified server error.
func Err[T any](e *common.Error) Result[T] {
	if e == nil {
		e = common.ErrServerError
	}
	return Result[T]{err: e}
}

// From converts a Go (value, error) pair into a Result. Errors that are
// already *common.Error pass through; anything else goes through classify.
func From[T any](v T, err error, classify func(error) *common.Error) Result[T] {
	if err == nil {
		return Ok(v)
	}
	var appErr *common.Error
	if errors.As(err, &appErr) {
		return Err[T](appErr)
	}
	if classify == nil {
		return Err[T](common.Internal(err))
	}
	return Err[T](classify(err))
}

func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// Value returns the success value, or the zero value on failure.
func (r Result[T]) Value() T {
	return r.value
}

// Failure returns the failure, or nil on success.
func (r Result[T]) Failure() *common.Error {
	return r.err
}

// Unwrap returns the value and the failure as a Go pair.
func (r Result[T]) Unwrap() (T, error) {
	if r.err != nil {
		var zero T
		return zero, r.err
	}
	return r.value, nil
}

// Map applies f to a success value.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}
	return Ok(f(r.value))
}

// Bind applies an operation that may itself fail.
func Bind[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}
	return f(r.value)
}

// Alt transforms a failure; success passes through.
func Alt[T any](r Result[T], f func(*common.Error) *common.Error) Result[T] {
	if r.err == nil {
		return r
	}
	return Err[T](f(r.err))
}

// Tap runs f for its side effect on success and returns r unchanged.
func Tap[T any](r Result[T], f func(T)) Result[T] {
	if r.err == nil {
		f(r.value)
	}
	return r
}
