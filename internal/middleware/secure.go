package middleware

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/medtrack/medtrack/internal/ctxkeys"
)

// NonceMiddleware generates a cryptographically secure random nonce for each
// request and stores it in the context. Layouts attach it to inline script
// tags; SecurityHeaders injects it into the Content-Security-Policy header so
// only those scripts may run.
func NonceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nonce, err := generateNonce()
		if err != nil {
			// Continue without nonce (degraded security but app still works)
			next.ServeHTTP(w, r)
			return
		}

		ctx := ctxkeys.WithNonce(r.Context(), nonce)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// generateNonce creates a base64-encoded string of 16 random bytes
func generateNonce() (string, error) {
	b := make([]byte, 16)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// SecurityHeaders sets the standard security headers on all responses.
// Must run after NonceMiddleware so the CSP can reference the nonce.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cfg := ctxkeys.Config(r.Context())

		// unpkg serves the htmx script referenced by the layout
		scriptSrc := "'self' https://unpkg.com"
		nonce := ctxkeys.Nonce(r.Context())
		if nonce != "" {
			scriptSrc = fmt.Sprintf("%s 'nonce-%s'", scriptSrc, nonce)
		}

		// Presigned avatar URLs come from the S3 endpoint
		imgSrc := "'self' data:"
		if cfg != nil && cfg.S3Endpoint != "" {
			imgSrc += " " + cfg.S3Endpoint
		} else {
			imgSrc += " https:"
		}

		csp := fmt.Sprintf("default-src 'self'; script-src %s; style-src 'self' 'unsafe-inline'; img-src %s; frame-ancestors 'none'", scriptSrc, imgSrc)

		w.Header().Set("Content-Security-Policy", csp)
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		if cfg != nil && cfg.IsProduction() {
			w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		next.ServeHTTP(w, r)
	})
}
