package handler

import (
	"errors"
	"strings"
	"unicode"
)

// userMessage picks a flash message for an error. Plain sentinel and
// validation errors carry user-facing text; wrapped infrastructure errors
// fall back to the generic message so internals never leak into the page.
func userMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}

	if errors.Unwrap(err) != nil {
		return fallback
	}

	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		return fallback
	}

	runes := []rune(msg)
	runes[0] = unicode.ToUpper(runes[0])
	msg = string(runes)

	if !strings.HasSuffix(msg, ".") {
		msg += "."
	}

	return msg
}
