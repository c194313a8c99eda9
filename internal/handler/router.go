package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/dummygen/dummygen-go/internal/middleware"
)

const generatePath = "/generate"

// NewRouter wires the routes: POST /generate produces data, GET /health
// reports liveness and every other path or method serves the preview page.
// generateMiddleware is applied to /generate only.
func NewRouter(gen *GeneratorHandler, page *PageHandler, generateMiddleware ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// Recoverer sits inside Logger so a recovered panic is logged with its 500.
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(generateMiddleware...)
		r.Post(generatePath, gen.HandleGenerate)
	})

	r.NotFound(page.ServeHTTP)
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == generatePath {
			w.Header().Set("Allow", http.MethodPost)
			writeJSON(w, http.StatusMethodNotAllowed, errorResponse("method not allowed"))
			return
		}
		page.ServeHTTP(w, r)
	})

	return r
}
