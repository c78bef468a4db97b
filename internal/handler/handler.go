package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/msomdec/blogly/internal/domain"
	"github.com/msomdec/blogly/internal/view"
)

// flashKey is the session key for the one-shot message shown after a redirect.
const flashKey = "flash"

// parseID reads the {id} path parameter. Malformed and non-positive values
// map to ErrNotFound so bad ids surface as 404, never as a fault.
func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, domain.ErrNotFound
	}
	return id, nil
}

// writeHTML renders the named template with the given status. The template
// is executed before any bytes are written, so a render failure still
// produces a clean 500.
func writeHTML(w http.ResponseWriter, renderer *view.Renderer, status int, name string, data any) {
	html, err := renderer.Fragment(name, data)
	if err != nil {
		slog.Error("render page", "template", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	io.WriteString(w, html)
}

// serverError logs the error and sends a plain 500.
func serverError(w http.ResponseWriter, msg string, err error) {
	slog.Error(msg, "error", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

// notFoundOr500 maps ErrNotFound to a 404 and anything else to a logged 500.
func notFoundOr500(w http.ResponseWriter, r *http.Request, msg string, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	serverError(w, msg, err)
}
