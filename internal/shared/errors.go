// Package shared contains sentinel errors and small utilities used by both
// the client and server components. Callers should match these values with
// errors.Is.
package shared

import "errors"

var (

	// common errors
	ErrorNotFound = errors.New("not found")
	ErrorInternal = errors.New("internal error")

	// registration-specific errors
	ErrorEmailTaken = errors.New("email already taken")
	ErrorValidation = errors.New("validation error")

	// verification-specific errors.
	// ErrorInvalidCredentials covers empty input, unknown email and password
	// mismatch alike so a caller cannot tell the cases apart.
	ErrorInvalidCredentials = errors.New("invalid credentials")
	ErrorTooManyAttempts    = errors.New("too many attempts")

	// token errors
	ErrorInvalidToken = errors.New("invalid token")

	// transport errors. ErrorUnavailable is retryable, everything above is not.
	ErrorUnavailable = errors.New("service unavailable")
)
