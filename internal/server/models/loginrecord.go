package models

import "time"

// LoginRecord is an insert-only audit row written on every successful login.
type LoginRecord struct {
	ID        int64
	AccountID string
	At        time.Time
	IPAddress string
}
