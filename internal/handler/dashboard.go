package handler

import (
	"log/slog"
	"net/http"

	"github.com/medtrack/medtrack/internal/ctxkeys"
	"github.com/medtrack/medtrack/internal/service"
	"github.com/medtrack/medtrack/internal/ui"
)

type dashboardHandler struct {
	appointmentService *service.AppointmentService
}

func NewDashboardHandler(appointmentService *service.AppointmentService) *dashboardHandler {
	return &dashboardHandler{appointmentService: appointmentService}
}

func (h *dashboardHandler) PatientDashboard(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	stats, err := h.appointmentService.StatsForUser(user)
	if err != nil {
		slog.Error("failed to load appointment stats", "error", err, "user_id", user.ID)
	}

	rows, err := h.appointmentService.ListForUser(user)
	if err != nil {
		slog.Error("failed to load appointments", "error", err, "user_id", user.ID)
	}

	pc := ui.NewPageContext(w, r, "Patient Dashboard")
	ui.Render(w, r, ui.PatientDashboardPage(pc, stats, rows))
}

func (h *dashboardHandler) DoctorDashboard(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	stats, err := h.appointmentService.StatsForUser(user)
	if err != nil {
		slog.Error("failed to load appointment stats", "error", err, "user_id", user.ID)
	}

	rows, err := h.appointmentService.ListForUser(user)
	if err != nil {
		slog.Error("failed to load appointments", "error", err, "user_id", user.ID)
	}

	pc := ui.NewPageContext(w, r, "Doctor Dashboard")
	ui.Render(w, r, ui.DoctorDashboardPage(pc, stats, rows))
}
