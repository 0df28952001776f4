// Package shared defines sentinel errors used across the service layers.
// Callers should use errors.Is to match these values.
package shared

import "errors"

var (

	// repository specific errors
	ErrorNotFound = errors.New("not found")

	// handshake outcome errors (service level)
	ErrorValidation         = errors.New("validation error")
	ErrorInvalidCredentials = errors.New("invalid credentials")
	ErrorTimeout            = errors.New("timeout")
	ErrorInternal           = errors.New("internal error")

	// auth-specific errors
	ErrorInvalidToken = errors.New("invalid token")
	ErrorTokenExpired = errors.New("token expired")

	ErrorAlreadyExists = errors.New("already exists")
)
