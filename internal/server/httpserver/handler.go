package httpserver

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/catalog/internal/codec"
	"github.com/dmitrijs2005/catalog/internal/common"
	"github.com/dmitrijs2005/catalog/internal/dbx"
	"github.com/dmitrijs2005/catalog/internal/result"
	"github.com/dmitrijs2005/catalog/internal/server/auth"
	"github.com/dmitrijs2005/catalog/internal/server/query"
	"github.com/dmitrijs2005/catalog/internal/server/services"
)

// httpRequest exposes an *http.Request to the services layer.
type httpRequest struct {
	r *http.Request
}

func (h httpRequest) ReadBody(ctx context.Context) ([]byte, error) {
	type read struct {
		data []byte
		err  error
	}
	done := make(chan read, 1)
	go func() {
		data, err := io.ReadAll(h.r.Body)
		done <- read{data, err}
	}()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-done:
		return res.data, res.err
	}
}

func (h httpRequest) PathParam(name string) string {
	return chi.URLParam(h.r, name)
}

// handle adapts a services handler to net/http. Every call runs in its own
// transaction which is committed on success and rolled back on failure.
func handle[T any](d Deps, h services.Handler[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		session := auth.NewCookieSession(w, r, d.Config.CookieSecure)

		var out result.Result[T]
		err := dbx.WithTx(ctx, d.DB, nil, func(ctx context.Context, tx dbx.DBTX) error {
			sc := &services.Scope{
				Conn:    tx,
				Repos:   d.Repos,
				Config:  d.Config,
				Request: httpRequest{r: r},
				Session: session,
			}
			out = h(sc).Await(ctx)
			_, err := out.Unwrap()
			return err
		})
		if err != nil && out.IsOk() {
			out = result.Err[T](query.Classify(err))
		}

		if failure := out.Failure(); failure != nil {
			renderError(ctx, d, w, failure)
			return
		}
		writeJSON(w, http.StatusOK, codec.Encode(out.Value()))
	}
}

func renderError(ctx context.Context, d Deps, w http.ResponseWriter, failure *common.Error) {
	if errors.Is(failure, common.ErrServerError) {
		d.Logger.Warn(ctx, "request failed", "code", failure.Code, "error", failure.Error())
	}
	writeJSON(w, failure.Status, codec.Encode(failure.Response()))
}

func writeJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
