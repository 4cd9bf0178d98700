package cli

import (
	"context"
	"errors"
	"os"

	"github.com/pillyapp/accountd/internal/shared"
)

// Register prompts the user for an email, display name and password and
// attempts to create a new account.
//
// On success it prints the new account id and returns nil. The password
// byte slice is securely wiped before returning.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	userID, err := a.apiClient.Register(ctx, email, name, password)
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrorEmailTaken):
			printlnFn("This email is already registered.")
		case errors.Is(err, shared.ErrorValidation):
			printlnFn("Email, name and password are all required.")
		case errors.Is(err, shared.ErrorUnavailable):
			printlnFn("Server unavailable, please try again later.")
		default:
			printlnFn("Registration failed:", err.Error())
		}
		return err
	}

	printlnFn("Account created, id:", userID)
	return nil
}
