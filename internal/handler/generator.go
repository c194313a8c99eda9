package handler

import (
	"errors"
	"log/slog"
	"mime"
	"net/http"

	"github.com/dummygen/dummygen-go/internal/service"
)

// multipartMemory is how much of a multipart form is held in memory; the
// request body limit applies on top of it.
const multipartMemory = 1 << 20 // 1MB

// GeneratorHandler handles HTTP requests for dummy data generation.
type GeneratorHandler struct {
	service      *service.GeneratorService
	maxBodyBytes int64
}

// NewGeneratorHandler creates a new GeneratorHandler. Request bodies larger
// than maxBodyBytes are rejected.
func NewGeneratorHandler(svc *service.GeneratorService, maxBodyBytes int64) *GeneratorHandler {
	return &GeneratorHandler{service: svc, maxBodyBytes: maxBodyBytes}
}

// HandleGenerate handles POST /generate requests. The body is a url-encoded
// or multipart form; every field is optional and every value is accepted.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	defer r.Body.Close()

	if err := parseForm(r); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid form body"))
		return
	}

	req := service.ParseRequest(r.PostForm)
	resp, err := h.service.Generate(req)
	if err != nil {
		slog.Error("generation failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	w.Header().Set("Content-Type", resp.ContentType)
	w.WriteHeader(http.StatusOK)
	w.Write(resp.Body)
}

// parseForm fills r.PostForm from either form encoding.
func parseForm(r *http.Request) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		return r.ParseMultipartForm(multipartMemory)
	}
	return r.ParseForm()
}
