package service

import (
	"fmt"
	"log/slog"

	"github.com/medtrack/medtrack/internal/config"
	"github.com/resend/resend-go/v2"
)

// EmailService sends transactional email through Resend. Without an API key,
// or with EMAIL_LOG_ONLY set (the development default), every send is logged
// instead of delivered, so the full signup and booking flows work offline.
type EmailService struct {
	client  *resend.Client
	cfg     *config.Config
	devMode bool
}

func NewEmailService(cfg *config.Config) *EmailService {
	devMode := cfg.ResendAPIKey == "" || cfg.EmailLogOnly

	if devMode {
		slog.Info("email service in dev mode, emails will be logged not sent")
	}

	return &EmailService{
		client:  resend.NewClient(cfg.ResendAPIKey),
		cfg:     cfg,
		devMode: devMode,
	}
}

func (s *EmailService) send(to, subject, html string) error {
	if s.devMode {
		slog.Info("email (dev mode)",
			"to", to,
			"subject", subject,
			"body", html,
		)
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.cfg.AppName, s.cfg.EmailFrom),
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}

	_, err := s.client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}

	return nil
}

// SendWelcome greets a newly registered user.
func (s *EmailService) SendWelcome(to, name, role string) error {
	subject := fmt.Sprintf("Welcome to %s", s.cfg.AppName)
	return s.send(to, subject, welcomeEmailHTML(s.cfg.AppName, s.cfg.AppURL, name, role))
}

// SendAppointmentRequest notifies a doctor that a patient booked an appointment.
func (s *EmailService) SendAppointmentRequest(to string, n AppointmentNotification) error {
	subject := fmt.Sprintf("New appointment request from %s", n.PatientName)
	return s.send(to, subject, appointmentRequestHTML(s.cfg.AppName, s.cfg.AppURL, n))
}

// SendDiagnosisReady notifies a patient that their appointment was completed.
func (s *EmailService) SendDiagnosisReady(to string, n AppointmentNotification) error {
	subject := "Your diagnosis is ready"
	return s.send(to, subject, diagnosisReadyHTML(s.cfg.AppName, s.cfg.AppURL, n))
}

// SendPasswordReset emails a one-time reset link.
func (s *EmailService) SendPasswordReset(to, resetURL string) error {
	subject := fmt.Sprintf("Reset your %s password", s.cfg.AppName)
	return s.send(to, subject, passwordResetHTML(s.cfg.AppName, resetURL))
}

// SubscribeNewsletter adds an email to the Resend audience. No-op when the
// audience is not configured.
func (s *EmailService) SubscribeNewsletter(email string) error {
	if s.cfg.ResendAudienceID == "" {
		slog.Info("newsletter subscribe skipped, no audience configured", "email", email)
		return nil
	}

	if s.devMode {
		slog.Info("newsletter subscribe (dev mode)", "email", email)
		return nil
	}

	params := &resend.CreateContactRequest{
		Email:      email,
		AudienceId: s.cfg.ResendAudienceID,
	}

	_, err := s.client.Contacts.Create(params)
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", email, err)
	}

	return nil
}
