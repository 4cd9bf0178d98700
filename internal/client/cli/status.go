package cli

import (
	"context"
	"fmt"
)

// Status reports server reachability plus the state of the current session.
func (a *App) Status(ctx context.Context) error {
	if err := a.apiClient.Ping(ctx); err != nil {
		printlnFn("Server: unreachable")
	} else {
		printlnFn("Server: ok")
	}

	if a.sess == nil {
		printlnFn("Session: not logged in")
		return nil
	}

	printlnFn(fmt.Sprintf("Session: %s, %ds remaining", a.sess.State(), a.sess.Remaining()))
	if email, _ := a.identity(); email != "" {
		printlnFn("Logged in as:", email)
	}
	return nil
}
