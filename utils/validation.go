package utils

import (
	"time"
	"unicode"
)

// IsAllDigits reports whether s is non-empty and contains digits only.
// Zip codes are stored as text but must be numeric when present.
func IsAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// IsValidDate reports whether s is a YYYY-MM-DD calendar date.
func IsValidDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
