package service

import (
	"fmt"
	"html"
)

// AppointmentNotification carries the fields shown in appointment emails.
type AppointmentNotification struct {
	PatientName string
	DoctorName  string
	Date        string
	Time        string
	Symptoms    string
	DetailURL   string
}

// Shared wrapper so all emails render consistently in clients.
func emailLayout(appName, body string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: -apple-system, Helvetica, Arial, sans-serif; color: #1f2937; margin: 0; padding: 24px; background-color: #f3f4f6;">
  <div style="max-width: 560px; margin: 0 auto; background: #ffffff; border-radius: 8px; padding: 32px;">
    %s
    <hr style="border: none; border-top: 1px solid #e5e7eb; margin: 24px 0;">
    <p style="font-size: 12px; color: #6b7280;">%s</p>
  </div>
</body>
</html>`, body, html.EscapeString(appName))
}

func welcomeEmailHTML(appName, appURL, name, role string) string {
	body := fmt.Sprintf(`
    <h2 style="margin-top: 0;">Welcome, %s!</h2>
    <p>Your %s account was created as a <strong>%s</strong>.</p>
    <p>Sign in to manage your appointments:</p>
    <p><a href="%s/login" style="display: inline-block; background: #2563eb; color: #ffffff; padding: 10px 20px; border-radius: 6px; text-decoration: none;">Go to %s</a></p>`,
		html.EscapeString(name),
		html.EscapeString(appName),
		html.EscapeString(role),
		appURL,
		html.EscapeString(appName),
	)
	return emailLayout(appName, body)
}

func appointmentRequestHTML(appName, appURL string, n AppointmentNotification) string {
	body := fmt.Sprintf(`
    <h2 style="margin-top: 0;">New appointment request</h2>
    <p>Dr. %s, patient <strong>%s</strong> has requested an appointment.</p>
    <table style="border-collapse: collapse; width: 100%%;">
      <tr><td style="padding: 4px 12px 4px 0; color: #6b7280;">Date</td><td>%s</td></tr>
      <tr><td style="padding: 4px 12px 4px 0; color: #6b7280;">Time</td><td>%s</td></tr>
      <tr><td style="padding: 4px 12px 4px 0; color: #6b7280;">Symptoms</td><td>%s</td></tr>
    </table>
    <p><a href="%s%s" style="display: inline-block; background: #2563eb; color: #ffffff; padding: 10px 20px; border-radius: 6px; text-decoration: none;">Review appointment</a></p>`,
		html.EscapeString(n.DoctorName),
		html.EscapeString(n.PatientName),
		html.EscapeString(n.Date),
		html.EscapeString(n.Time),
		html.EscapeString(n.Symptoms),
		appURL,
		n.DetailURL,
	)
	return emailLayout(appName, body)
}

func diagnosisReadyHTML(appName, appURL string, n AppointmentNotification) string {
	body := fmt.Sprintf(`
    <h2 style="margin-top: 0;">Your diagnosis is ready</h2>
    <p>%s, Dr. %s has completed your appointment from %s.</p>
    <p><a href="%s%s" style="display: inline-block; background: #2563eb; color: #ffffff; padding: 10px 20px; border-radius: 6px; text-decoration: none;">View diagnosis</a></p>`,
		html.EscapeString(n.PatientName),
		html.EscapeString(n.DoctorName),
		html.EscapeString(n.Date),
		appURL,
		n.DetailURL,
	)
	return emailLayout(appName, body)
}

func passwordResetHTML(appName, resetURL string) string {
	body := fmt.Sprintf(`
    <h2 style="margin-top: 0;">Reset your password</h2>
    <p>We received a request to reset your %s password. This link expires in one hour and can be used once.</p>
    <p><a href="%s" style="display: inline-block; background: #2563eb; color: #ffffff; padding: 10px 20px; border-radius: 6px; text-decoration: none;">Choose a new password</a></p>
    <p style="color: #6b7280;">If you did not request this, you can safely ignore this email.</p>`,
		html.EscapeString(appName),
		resetURL,
	)
	return emailLayout(appName, body)
}
