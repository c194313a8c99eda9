package handler

import (
	_ "embed"
	"net/http"
)

//go:embed static/index.html
var indexHTML []byte

// PageHandler serves the interactive preview form.
type PageHandler struct {
	body []byte
}

// NewPageHandler creates a PageHandler serving the embedded form.
func NewPageHandler() *PageHandler {
	return &PageHandler{body: indexHTML}
}

// ServeHTTP writes the form for any method and path.
func (h *PageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(h.body)
}
