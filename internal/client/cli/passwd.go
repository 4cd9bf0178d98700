package cli

import (
	"context"
	"errors"
	"os"

	"github.com/pillyapp/accountd/internal/shared"
)

// Passwd prompts for the current and a new password and changes the
// logged-in account's password. Both password buffers are wiped before
// returning.
func (a *App) Passwd(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("You need to log in first.")
		return shared.ErrorInvalidCredentials
	}

	current, err := getPassword("Enter current password", os.Stdout)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(current)

	next, err := getPassword("Enter new password", os.Stdout)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(next)

	email, _ := a.identity()
	if err := a.apiClient.ChangePassword(ctx, email, current, next); err != nil {
		switch {
		case errors.Is(err, shared.ErrorInvalidCredentials):
			printlnFn("Current password is incorrect.")
		case errors.Is(err, shared.ErrorValidation):
			printlnFn("New password must be at least 8 characters with an uppercase letter and a special character.")
		case errors.Is(err, shared.ErrorUnavailable):
			printlnFn("Server unavailable, please try again later.")
		default:
			printlnFn("Password change failed:", err.Error())
		}
		return err
	}

	printlnFn("Password changed.")
	return nil
}
