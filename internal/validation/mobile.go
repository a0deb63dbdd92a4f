package validation

import (
	"errors"
	"strings"
)

// ValidateMobile validates a mobile number. Accepts digits, spaces and the
// separators commonly pasted from contact lists. The number is stored as
// entered; only gross garbage is rejected.
func ValidateMobile(mobile string) error {
	trimmed := strings.TrimSpace(mobile)

	if trimmed == "" {
		return errors.New("mobile number is required")
	}

	digits := 0
	for _, r := range trimmed {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ' ' || r == '-' || r == '+' || r == '(' || r == ')' || r == '.':
			// allowed separators
		default:
			return errors.New("mobile number contains invalid characters")
		}
	}

	if digits < 7 || digits > 15 {
		return errors.New("mobile number must have between 7 and 15 digits")
	}

	return nil
}
