// Package future provides the asynchronous counterpart of result.Result: a
// deferred computation that yields a Result when awaited. Composition builds
// new futures without running anything; the chain executes on Await and stops
// at the first failure.
package future

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/catalog/internal/common"
	"github.com/dmitrijs2005/catalog/internal/result"
)

// Future is a deferred result.Result. The computation runs at most once;
// later calls to Await return the memoized outcome.
type Future[T any] struct {
	run  func(ctx context.Context) result.Result[T]
	once sync.Once
	res  result.Result[T]
}

// New wraps fn as a Future.
func New[T any](fn func(ctx context.Context) result.Result[T]) *Future[T] {
	return &Future[T]{run: fn}
}

// FromResult lifts an already computed Result.
func FromResult[T any](r result.Result[T]) *Future[T] {
	return New(func(context.Context) result.Result[T] { return r })
}

// Ok is a future that succeeds with v.
func Ok[T any](v T) *Future[T] {
	return FromResult(result.Ok(v))
}

// Err is a future that fails with e.
func Err[T any](e *common.Error) *Future[T] {
	return FromResult(result.Err[T](e))
}

// Await runs the computation (once) and returns its outcome.
func (f *Future[T]) Await(ctx context.Context) result.Result[T] {
	f.once.Do(func() {
		f.res = f.run(ctx)
	})
	return f.res
}

func Map[T, U any](f *Future[T], fn func(T) U) *Future[U] {
	return New(func(ctx context.Context) result.Result[U] {
		return result.Map(f.Await(ctx), fn)
	})
}

// Bind chains an asynchronous operation.
func Bind[T, U any](f *Future[T], fn func(T) *Future[U]) *Future[U] {
	return New(func(ctx context.Context) result.Result[U] {
		r := f.Await(ctx)
		if !r.IsOk() {
			return result.Err[U](r.Failure())
		}
		return fn(r.Value()).Await(ctx)
	})
}

// BindResult chains a synchronous operation that may fail.
func BindResult[T, U any](f *Future[T], fn func(T) result.Result[U]) *Future[U] {
	return New(func(ctx context.Context) result.Result[U] {
		return result.Bind(f.Await(ctx), fn)
	})
}

func Alt[T any](f *Future[T], fn func(*common.Error) *common.Error) *Future[T] {
	return New(func(ctx context.Context) result.Result[T] {
		return result.Alt(f.Await(ctx), fn)
	})
}

func Tap[T any](f *Future[T], fn func(T)) *Future[T] {
	return New(func(ctx context.Context) result.Result[T] {
		return result.Tap(f.Await(ctx), fn)
	})
}

// Safe runs a blocking Go call on Await and classifies its error.
func Safe[T any](fn func(ctx context.Context) (T, error), classify func(error) *common.Error) *Future[T] {
	return New(func(ctx context.Context) result.Result[T] {
		v, err := fn(ctx)
		return result.From(v, err, classify)
	})
}
