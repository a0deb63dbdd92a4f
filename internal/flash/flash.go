package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

// Cookie-based flash messages: set before a redirect, read and cleared on
// the next render. The cookie holds a base64-encoded JSON list so several
// messages survive a single redirect.
const cookieName = "medtrack_flash"

const (
	VariantSuccess = "success"
	VariantDanger  = "danger"
	VariantInfo    = "info"
)

type Message struct {
	Variant string `json:"variant"`
	Text    string `json:"text"`
}

// Success queues a success flash message.
func Success(w http.ResponseWriter, text string) {
	set(w, Message{Variant: VariantSuccess, Text: text})
}

// Danger queues an error flash message.
func Danger(w http.ResponseWriter, text string) {
	set(w, Message{Variant: VariantDanger, Text: text})
}

// Info queues an informational flash message.
func Info(w http.ResponseWriter, text string) {
	set(w, Message{Variant: VariantInfo, Text: text})
}

func set(w http.ResponseWriter, messages ...Message) {
	data, err := json.Marshal(messages)
	if err != nil {
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    base64.RawURLEncoding.EncodeToString(data),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   300, // flashes are short-lived by definition
	})
}

// Pop retrieves queued flash messages and clears the cookie.
// Returns nil when no messages are queued.
func Pop(w http.ResponseWriter, r *http.Request) []Message {
	cookie, err := r.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	// Clear regardless of whether the payload decodes
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	data, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}

	var messages []Message
	err = json.Unmarshal(data, &messages)
	if err != nil {
		return nil
	}

	return messages
}
