// Package client contains the client-side building blocks for the accountd
// CLI.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) to talk
//     to the accountd backend: Register, Login, UpdateName, ChangePassword
//     and Ping.
//  2. A concrete HTTP implementation (see HTTPClient) that encodes requests
//     as JSON, maps response status codes to sentinel errors, and retries
//     transient failures with exponential backoff.
//  3. A local persistence bootstrap (InitDatabase) for the CLI, wiring an
//     SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match
// with errors.Is: shared.ErrorInvalidCredentials, shared.ErrorEmailTaken,
// shared.ErrorValidation, shared.ErrorTooManyAttempts and
// shared.ErrorUnavailable.
package client

import "context"

// LoginResult carries what the server hands back on a successful login.
type LoginResult struct {
	UserID string
	Token  string
}

type Client interface {
	Close() error
	Register(ctx context.Context, email string, name string, password []byte) (string, error)
	Login(ctx context.Context, email string, password []byte) (*LoginResult, error)
	UpdateName(ctx context.Context, email string, name string) error
	ChangePassword(ctx context.Context, email string, current []byte, next []byte) error
	Ping(ctx context.Context) error
}
