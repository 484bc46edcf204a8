package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ppopeskul/telegram-dashboard/internal/api"
)

// setupRouter installs the middleware chain inside chi so access logs can see
// the matched route pattern.
func setupRouter(handler api.ServerInterface, chain func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(chain)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		api.WriteError(w, req, http.StatusNotFound, "ROUTE_NOT_FOUND", "No route for "+req.Method+" "+req.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		api.WriteError(w, req, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method "+req.Method+" is not allowed on "+req.URL.Path)
	})

	return api.HandlerFromMux(handler, r)
}
