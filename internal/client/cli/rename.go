package cli

import (
	"context"
	"errors"
	"os"

	"github.com/pillyapp/accountd/internal/shared"
)

// Rename prompts for a new display name and updates the logged-in account.
func (a *App) Rename(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("You need to log in first.")
		return shared.ErrorInvalidCredentials
	}

	name, err := getSimpleText(a.reader, "Enter new name", os.Stdout)
	if err != nil {
		return err
	}

	email, _ := a.identity()
	if err := a.apiClient.UpdateName(ctx, email, name); err != nil {
		switch {
		case errors.Is(err, shared.ErrorNotFound):
			printlnFn("Account not found.")
		case errors.Is(err, shared.ErrorValidation):
			printlnFn("Name must not be empty.")
		case errors.Is(err, shared.ErrorUnavailable):
			printlnFn("Server unavailable, please try again later.")
		default:
			printlnFn("Update failed:", err.Error())
		}
		return err
	}

	printlnFn("Name updated.")
	return nil
}
