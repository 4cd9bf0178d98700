package cli

import (
	"context"
	"errors"
	"os"

	"github.com/pillyapp/accountd/internal/client/repositories/metadata"
	"github.com/pillyapp/accountd/internal/client/session"
	"github.com/pillyapp/accountd/internal/shared"
)

// Login prompts for credentials and authenticates against the server.
//
// On success it caches the session token and identity in the local metadata
// store and starts a fresh countdown session; when the countdown reaches
// zero the user is logged out automatically. The password is securely wiped
// before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	res, err := a.apiClient.Login(ctx, email, password)
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrorInvalidCredentials):
			printlnFn("Invalid email or password.")
		case errors.Is(err, shared.ErrorTooManyAttempts):
			printlnFn("Too many failed attempts, try again later.")
		case errors.Is(err, shared.ErrorUnavailable):
			printlnFn("Server unavailable, please try again later.")
		default:
			printlnFn("Login failed:", err.Error())
		}
		return err
	}

	if err := a.cacheSession(ctx, email, res.UserID, res.Token); err != nil {
		printlnFn("warning: could not cache session:", err.Error())
	}

	a.setIdentity(email, res.UserID)

	// Halt any live countdown first. An abandoned ticker would keep
	// running and its expiry callback would tear down the session we are
	// about to start.
	if a.sess != nil {
		a.sess.Logout()
	}
	a.sess = session.New(a.config.SessionDuration, a.onSessionExpire)
	a.sess.Start()

	printlnFn("Login successful.")
	return nil
}

func (a *App) cacheSession(ctx context.Context, email string, userID string, token string) error {
	if err := a.metadata.Set(ctx, metadata.KeyEmail, []byte(email)); err != nil {
		return err
	}
	if err := a.metadata.Set(ctx, metadata.KeyUserID, []byte(userID)); err != nil {
		return err
	}
	return a.metadata.Set(ctx, metadata.KeySessionToken, []byte(token))
}
