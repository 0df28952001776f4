package validation

import (
	"regexp"
	"unicode"

	"github.com/albertopena123/evaluacion-enla/internal/shared"
)

// Stricter schema intended for the registration flow. Not wired into the
// login handshake: kept as a documented policy option.

const StrictMinPasswordLength = 8

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9._-]{3,20}$`)

// Username accepts 3-20 characters of letters, digits, dots, hyphens or
// underscores.
func Username(s string) error {
	if !usernameRe.MatchString(s) {
		return shared.ErrorValidation
	}
	return nil
}

// StrictPassword requires at least 8 characters including an uppercase
// letter, a lowercase letter and a digit.
func StrictPassword(s string) error {
	if len(s) < StrictMinPasswordLength {
		return shared.ErrorValidation
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range s {
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
		return shared.ErrorValidation
	}
	return nil
}
