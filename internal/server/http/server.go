// Package http exposes the credential service over HTTP JSON. Routing is
// chi; handlers translate service errors to status codes and never reveal
// whether an email is registered.
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pillyapp/accountd/internal/logging"
	"github.com/pillyapp/accountd/internal/server/models"
)

// accountService is the slice of the credential service the transport needs.
type accountService interface {
	Register(ctx context.Context, email, password, name string) (*models.Account, error)
	Verify(ctx context.Context, email, password, ipAddress string) (*models.Account, string, error)
	UpdateName(ctx context.Context, email, name string) error
	ChangePassword(ctx context.Context, email, currentPassword, newPassword string) error
}

type Server struct {
	address         string
	logger          logging.Logger
	accounts        accountService
	shutdownTimeout time.Duration
}

func NewServer(address string, l logging.Logger, accounts accountService, shutdownTimeout time.Duration) *Server {
	return &Server{
		address:         address,
		logger:          l.With("module", "http_server"),
		accounts:        accounts,
		shutdownTimeout: shutdownTimeout,
	}
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(30 * time.Second))

	r.Get("/healthz", s.handleHealth)
	r.Post("/register", s.handleRegister)
	r.Post("/login", s.handleLogin)
	r.Put("/update", s.handleUpdate)
	r.Put("/change-password", s.handleChangePassword)

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully within the
// configured timeout.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.routes(),
	}

	errCh := make(chan error, 1)

	go func() {
		s.logger.Info(ctx, "Starting HTTP server", "address", s.address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "Stopping HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	return <-errCh
}
