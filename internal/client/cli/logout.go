package cli

import "context"

// Logout ends the current session without waiting for the countdown and
// clears the cached identity. The expiry callback does not fire on an
// explicit logout.
func (a *App) Logout(ctx context.Context) error {
	if a.sess != nil {
		a.sess.Logout()
	}
	a.clearIdentity(ctx)
	printlnFn("Logged out.")
	return nil
}
