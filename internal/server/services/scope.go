// Package services contains the request handlers of the catalog API. Each
// handler is a pipeline over the future channel: decode the body, resolve the
// caller when required, run the statements and project the response record.
package services

import (
	"context"
	"strconv"

	"github.com/dmitrijs2005/catalog/internal/codec"
	"github.com/dmitrijs2005/catalog/internal/common"
	"github.com/dmitrijs2005/catalog/internal/dbx"
	"github.com/dmitrijs2005/catalog/internal/future"
	"github.com/dmitrijs2005/catalog/internal/result"
	"github.com/dmitrijs2005/catalog/internal/server/config"
	"github.com/dmitrijs2005/catalog/internal/server/models"
	"github.com/dmitrijs2005/catalog/internal/server/repositories/repomanager"
)

// Request is the inbound side of a call as handlers see it.
type Request interface {
	ReadBody(ctx context.Context) ([]byte, error)
	PathParam(name string) string
}

// Session carries the auth token between calls.
type Session interface {
	Token() (string, bool)
	SetToken(token string)
	Clear()
}

// Scope is everything an anonymous handler may use. It is built once per
// request; Conn is that request's transaction.
type Scope struct {
	Conn    dbx.DBTX
	Repos   repomanager.RepositoryManager
	Config  *config.Config
	Request Request
	Session Session
}

// AuthorizedScope is a Scope with the resolved caller.
type AuthorizedScope struct {
	*Scope
	User models.User
}

// Handler runs an anonymous endpoint.
type Handler[T any] func(sc *Scope) *future.Future[T]

// AuthorizedHandler runs an endpoint that requires a signed-in user.
type AuthorizedHandler[T any] func(sc *AuthorizedScope) *future.Future[T]

// Body reads the request body and decodes it as T. A failed read is
// reported as RequestTimedOut.
func Body[T any](sc *Scope) *future.Future[T] {
	return future.New(func(ctx context.Context) result.Result[T] {
		data, err := sc.Request.ReadBody(ctx)
		if err != nil {
			return result.Err[T](common.ErrRequestTimedOut.WithCause(err))
		}
		return codec.Decode[T](data)
	})
}

// PathID parses a numeric path parameter. Anything else is NotFound.
func PathID(sc *Scope, name string) result.Result[int64] {
	raw := sc.Request.PathParam(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return result.Err[int64](common.ErrNotFound)
	}
	return result.Ok(id)
}

// WithUser resolves the caller and then runs h.
func WithUser[T any](h AuthorizedHandler[T]) Handler[T] {
	return func(sc *Scope) *future.Future[T] {
		return future.Bind(Authorize(sc), h)
	}
}
