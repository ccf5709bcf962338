package api

import (
	"net/http"

	"github.com/givihq/deliverytime/internal/models"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter wires the handler routes behind a permissive CORS layer so the
// dashboard frontend can call the API from another origin.
func NewRouter(handler *Handler) http.Handler {
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return cors.Default().Handler(r)
}

func NewServer(cfg models.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
}
