package ui

import (
	"fmt"
	"log/slog"
	"net/http"

	g "maragu.dev/gomponents"
)

// Render writes a component as the full HTML response.
func Render(w http.ResponseWriter, r *http.Request, node g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	err := node.Render(w)
	if err != nil {
		slog.Error("render failed", "error", err, "path", r.URL.Path)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// RenderStatus writes a component with an explicit status code. Headers and
// cookies must already be set on w; WriteHeader flushes them.
func RenderStatus(w http.ResponseWriter, r *http.Request, status int, node g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	err := node.Render(w)
	if err != nil {
		slog.Error("render failed", "error", err, "path", r.URL.Path, "status", status)
	}
}

// RenderOOB writes a component wrapped for an htmx out-of-band swap.
func RenderOOB(w http.ResponseWriter, r *http.Request, node g.Node, target string) {
	_, err := fmt.Fprintf(w, `<div hx-swap-oob="%s">`, target)
	if err != nil {
		slog.Error("render oob write wrapper start failed", "error", err)
		return
	}

	err = node.Render(w)
	if err != nil {
		slog.Error("render oob component render failed", "error", err, "path", r.URL.Path)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	_, err = w.Write([]byte(`</div>`))
	if err != nil {
		slog.Error("render oob write wrapper end failed", "error", err)
	}
}
