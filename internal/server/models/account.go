// Package models contains the server-side persistence models.
package models

import "time"

// Account is one registered user. Email is the unique natural key.
// PasswordHash and PseudonymizedName are bcrypt outputs; the plaintext
// password and the display name are never stored.
type Account struct {
	ID                string
	Email             string
	PasswordHash      string
	PseudonymizedName string
	CreatedAt         time.Time
}
