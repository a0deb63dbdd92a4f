package validation

import (
	"errors"
	"strconv"
)

// ParseAge parses and validates an age form value.
func ParseAge(value string) (int, error) {
	if value == "" {
		return 0, errors.New("age is required")
	}

	age, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.New("age must be a number")
	}

	if age < 0 || age > 150 {
		return 0, errors.New("age must be between 0 and 150")
	}

	return age, nil
}
