package handler

import (
	"net/http"

	"github.com/medtrack/medtrack/internal/ui"
)

type homeHandler struct{}

func NewHomeHandler() *homeHandler {
	return &homeHandler{}
}

func (h *homeHandler) HomePage(w http.ResponseWriter, r *http.Request) {
	pc := ui.NewPageContext(w, r, "")
	ui.Render(w, r, ui.HomePage(pc))
}

func (h *homeHandler) NotFoundPage(w http.ResponseWriter, r *http.Request) {
	// PageContext first: popping the flash sets a cookie, which has to
	// happen before the status line is written
	pc := ui.NewPageContext(w, r, "Page not found")
	ui.RenderStatus(w, r, http.StatusNotFound, ui.NotFoundPage(pc))
}
