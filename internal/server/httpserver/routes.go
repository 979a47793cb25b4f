package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/catalog/internal/codec"
	"github.com/dmitrijs2005/catalog/internal/common"
	"github.com/dmitrijs2005/catalog/internal/server/httpserver/handlers"
	"github.com/dmitrijs2005/catalog/internal/server/services"
)

// registerRoutes mounts the catalog API and the probes on r.
func registerRoutes(r chi.Router, d Deps) {
	r.Get("/healthz", handlers.Healthz(d.StartTime))
	r.Get("/readyz", handlers.Readyz(d.DB))

	r.Post("/sign_up/", handle(d, services.SignUp))
	r.Post("/sign_in/", handle(d, services.SignIn))
	r.Post("/sign_out/", handle(d, services.SignOut))

	r.Route("/categories", func(r chi.Router) {
		r.Get("/", handle(d, services.WithUser(services.ListCategories)))
		r.Post("/", handle(d, services.WithUser(services.CreateCategory)))
		r.Put("/{category_id:[0-9]+}/", handle(d, services.WithUser(services.UpdateCategory)))
		r.Get("/{category_id:[0-9]+}/entries/", handle(d, services.WithUser(services.ListCategoryEntries)))
		r.Post("/{category_id:[0-9]+}/entries/", handle(d, services.WithUser(services.CreateEntry)))
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, codec.Encode(common.ErrNotFound.Response()))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, codec.Encode(common.ErrMethodNotAllowed.Response()))
	})
}
