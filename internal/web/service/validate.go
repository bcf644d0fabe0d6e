package service

import (
	"regexp"
	"unicode"
)

const (
	// PasswordMinLen and PasswordMaxLen bound accepted password lengths.
	// The upper bound keeps input well inside bcrypt's 72 byte limit.
	PasswordMinLen = 6
	PasswordMaxLen = 128
)

// Intentionally permissive: one @ with non-whitespace on either side and a
// dotted domain. Tighter RFC patterns reject real addresses.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail reports whether email has a plausible address shape. It does
// not normalise; callers trim and lowercase before calling.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidatePassword checks password against the local policy. The second
// return value is a user-facing reason, empty when the password is accepted.
// Checks run in a fixed order so callers always see the first failure.
func ValidatePassword(password string) (bool, string) {
	if len(password) < PasswordMinLen {
		return false, "password must be at least 6 characters"
	}
	if len(password) > PasswordMaxLen {
		return false, "password must be at most 128 characters"
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return false, "password must contain an uppercase letter, a lowercase letter and a digit"
	}
	return true, ""
}
