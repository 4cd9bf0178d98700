package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync"

	"github.com/pillyapp/accountd/internal/client/client"
	"github.com/pillyapp/accountd/internal/client/config"
	"github.com/pillyapp/accountd/internal/client/repositories/metadata"
	"github.com/pillyapp/accountd/internal/client/session"

	_ "modernc.org/sqlite"
)

// App wires the interactive CLI together: the API client, the local
// metadata cache and the countdown session for the logged-in user.
//
// The identity fields are touched from two goroutines: the REPL loop and
// the session ticker's expiry callback, so they are guarded by mu.
type App struct {
	config    *config.Config
	apiClient client.Client
	metadata  metadata.Repository
	db        *sql.DB
	sess      *session.Session
	reader    *bufio.Reader

	mu     sync.Mutex
	userID string
	email  string
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	db, err := client.InitDatabase(ctx, c.MetadataDBPath)
	if err != nil {
		return nil, fmt.Errorf("error initializing local cache: %w", err)
	}

	apiClient := client.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout)

	return &App{
		config:    c,
		apiClient: apiClient,
		metadata:  metadata.NewSQLiteRepository(db),
		db:        db,
		reader:    bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()
	defer a.apiClient.Close()

	printlnFn("accountd CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.sess != nil && a.sess.State() == session.Active
}

// getStatus renders the prompt suffix: the user's email plus the seconds
// left before the session expires.
func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return ""
	}
	email, _ := a.identity()
	return fmt.Sprintf("(%s %ds)", email, a.sess.Remaining())
}

// onSessionExpire runs from the session's ticker goroutine when the
// countdown hits zero. The cached identity is dropped so the next command
// starts from a clean logged-out state.
func (a *App) onSessionExpire() {
	a.clearIdentity(context.Background())
	printlnFn("Session expired, you have been logged out.")
}

func (a *App) setIdentity(email string, userID string) {
	a.mu.Lock()
	a.email = email
	a.userID = userID
	a.mu.Unlock()
}

func (a *App) identity() (email string, userID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.email, a.userID
}

func (a *App) clearIdentity(ctx context.Context) {
	if err := a.metadata.Clear(ctx); err != nil {
		printlnFn("warning: could not clear cached session:", err.Error())
	}
	a.setIdentity("", "")
}
