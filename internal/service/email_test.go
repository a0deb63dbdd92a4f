package service

import (
	"testing"

	"github.com/medtrack/medtrack/internal/config"
	"github.com/medtrack/medtrack/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestEmailDevModeWithoutAPIKey(t *testing.T) {
	svc := NewEmailService(&config.Config{AppName: "MedTrack"})

	assert.True(t, svc.devMode)
	assert.NoError(t, svc.SendWelcome("jane@example.com", "Jane", model.RolePatient))
}

func TestEmailLogOnlyOverridesAPIKey(t *testing.T) {
	svc := NewEmailService(&config.Config{
		AppName:      "MedTrack",
		ResendAPIKey: "re_test_key",
		EmailLogOnly: true,
	})

	// Logged, never delivered, even though a key is configured
	assert.True(t, svc.devMode)
	assert.NoError(t, svc.SendWelcome("jane@example.com", "Jane", model.RolePatient))
}

func TestEmailSendModeWithAPIKey(t *testing.T) {
	svc := NewEmailService(&config.Config{
		AppName:      "MedTrack",
		ResendAPIKey: "re_test_key",
	})

	assert.False(t, svc.devMode)
}
