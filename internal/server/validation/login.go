// Package validation holds the input schemas for the authentication
// endpoints. Only the login schema is wired into the live path; the stricter
// composition rules exist for a richer registration flow that is not enabled.
package validation

import (
	"net/mail"

	"github.com/albertopena123/evaluacion-enla/internal/shared"
)

// MinPasswordLength is the minimum accepted password length on the login
// path.
const MinPasswordLength = 6

// LoginInput checks the candidate credentials before anything touches the
// credential store. Validation failures short-circuit the handshake, so no
// lookup happens for malformed input.
func LoginInput(email, password string) error {
	if !ValidEmail(email) {
		return shared.ErrorValidation
	}
	if len(password) < MinPasswordLength {
		return shared.ErrorValidation
	}
	return nil
}

// ValidEmail reports whether s is a syntactically valid bare email address.
// Display names ("Name <a@b.com>") are rejected: the store key is the plain
// address.
func ValidEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Address == s
}
