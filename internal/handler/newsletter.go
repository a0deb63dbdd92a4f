package handler

import (
	"net/http"
	"strings"

	"github.com/medtrack/medtrack/internal/flash"
	"github.com/medtrack/medtrack/internal/service"
	"github.com/medtrack/medtrack/internal/urls"
	"github.com/medtrack/medtrack/internal/validation"
)

type newsletterHandler struct {
	emailService *service.EmailService
}

func NewNewsletterHandler(emailService *service.EmailService) *newsletterHandler {
	return &newsletterHandler{emailService: emailService}
}

func (h *newsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.FormValue("email"))

	err := validation.ValidateEmail(email)
	if err != nil {
		flash.Danger(w, "Please provide a valid email address.")
		http.Redirect(w, r, urls.Home, http.StatusSeeOther)
		return
	}

	err = h.emailService.SubscribeNewsletter(email)
	if err != nil {
		flash.Danger(w, "Could not subscribe right now. Please try again later.")
		http.Redirect(w, r, urls.Home, http.StatusSeeOther)
		return
	}

	flash.Success(w, "You are subscribed to health tips and product updates.")
	http.Redirect(w, r, urls.Home, http.StatusSeeOther)
}
