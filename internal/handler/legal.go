package handler

import (
	"net/http"

	"github.com/medtrack/medtrack/internal/service"
	"github.com/medtrack/medtrack/internal/ui"
)

type legalHandler struct {
	legalService *service.LegalService
}

func NewLegalHandler(legalService *service.LegalService) *legalHandler {
	return &legalHandler{legalService: legalService}
}

func (h *legalHandler) ShowPage(w http.ResponseWriter, r *http.Request) {
	doc, err := h.legalService.Page(r.PathValue("page"))
	if err != nil {
		pc := ui.NewPageContext(w, r, "Page not found")
		ui.RenderStatus(w, r, http.StatusNotFound, ui.NotFoundPage(pc))
		return
	}

	pc := ui.NewPageContext(w, r, doc.Meta.Title)
	ui.Render(w, r, ui.LegalPage(pc, doc))
}
