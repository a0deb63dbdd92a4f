package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/medtrack/medtrack/internal/flash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundPageConsumesPendingFlash(t *testing.T) {
	seed := httptest.NewRecorder()
	flash.Success(seed, "Logged out successfully.")

	req := httptest.NewRequest(http.MethodGet, "/no-such-page", nil)
	for _, cookie := range seed.Result().Cookies() {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	NewHomeHandler().NotFoundPage(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	// The message shows on the 404 page itself
	assert.Contains(t, rec.Body.String(), "Logged out successfully.")

	// The clearing cookie must make it out before the status line, or the
	// flash reappears on the next page
	var cleared *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "medtrack_flash" {
			cleared = cookie
		}
	}
	require.NotNil(t, cleared)
	assert.Negative(t, cleared.MaxAge)
}

func TestNotFoundPageWithoutFlash(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHomeHandler().NotFoundPage(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page not found")
}
