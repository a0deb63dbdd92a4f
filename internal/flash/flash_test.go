package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// carry copies the flash cookie from a response into a new request, like a
// browser following the redirect.
func carry(t *testing.T, rec *httptest.ResponseRecorder) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range rec.Result().Cookies() {
		if cookie.MaxAge >= 0 {
			req.AddCookie(cookie)
		}
	}
	return req
}

func TestPopReturnsQueuedMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, "Appointment booked successfully!")

	next := httptest.NewRecorder()
	messages := Pop(next, carry(t, rec))

	require.Len(t, messages, 1)
	assert.Equal(t, VariantSuccess, messages[0].Variant)
	assert.Equal(t, "Appointment booked successfully!", messages[0].Text)
}

func TestPopClearsCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	Danger(rec, "Access denied.")

	next := httptest.NewRecorder()
	Pop(next, carry(t, rec))

	var cleared *http.Cookie
	for _, cookie := range next.Result().Cookies() {
		if cookie.Name == cookieName {
			cleared = cookie
		}
	}
	require.NotNil(t, cleared)
	assert.Negative(t, cleared.MaxAge)
	assert.Empty(t, cleared.Value)
}

func TestPopWithoutCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	assert.Nil(t, Pop(rec, req))
}

func TestPopWithGarbageCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: "not base64 json!!"})

	assert.Nil(t, Pop(rec, req))
}

func TestVariants(t *testing.T) {
	rec := httptest.NewRecorder()
	Info(rec, "heads up")

	messages := Pop(httptest.NewRecorder(), carry(t, rec))
	require.Len(t, messages, 1)
	assert.Equal(t, VariantInfo, messages[0].Variant)
}
