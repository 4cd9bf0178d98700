// Package services contains the credential service: registration,
// verification, profile-name update and password change. Transport and
// storage concerns live elsewhere; this package owns hashing and the
// error taxonomy.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/pillyapp/accountd/internal/dbx"
	"github.com/pillyapp/accountd/internal/server/auth"
	"github.com/pillyapp/accountd/internal/server/config"
	"github.com/pillyapp/accountd/internal/server/models"
	"github.com/pillyapp/accountd/internal/server/repositories/repomanager"
	"github.com/pillyapp/accountd/internal/shared"
)

var (
	upperCaseRe   = regexp.MustCompile(`[A-Z]`)
	specialCharRe = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)

type AccountService struct {
	db              *sql.DB
	repomanager     repomanager.RepositoryManager
	jwtSecret       []byte
	sessionDuration time.Duration
	bcryptCost      int
	throttle        *loginThrottle

	// dummyHash is compared against when the email is unknown, so a failed
	// lookup costs one bcrypt comparison just like a password mismatch.
	dummyHash []byte
}

func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) (*AccountService, error) {

	dummy, err := bcrypt.GenerateFromPassword([]byte("unknown-account-placeholder"), cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("error preparing dummy hash: %w", err)
	}

	return &AccountService{
		db:              db,
		repomanager:     m,
		jwtSecret:       []byte(cfg.SecretKey),
		sessionDuration: cfg.SessionDuration,
		bcryptCost:      cfg.BcryptCost,
		throttle:        newLoginThrottle(cfg.LoginAttemptLimit, cfg.LoginAttemptWindow),
		dummyHash:       dummy,
	}, nil
}

// Register creates a new account. The password and the display name are
// hashed independently, each with a fresh salt embedded in the bcrypt
// output. Field format validation is the caller's job; only emptiness and
// email uniqueness are enforced here. A duplicate email surfaces as
// shared.ErrorEmailTaken, raised by the unique constraint on insert rather
// than a lookup, so concurrent registrations cannot race past a pre-check.
func (s *AccountService) Register(ctx context.Context, email, password, name string) (*models.Account, error) {

	if email == "" || password == "" || name == "" {
		return nil, shared.ErrorValidation
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	pseudonymizedName, err := bcrypt.GenerateFromPassword([]byte(name), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing name: %w", err)
	}

	account := &models.Account{
		ID:                uuid.NewString(),
		Email:             email,
		PasswordHash:      string(passwordHash),
		PseudonymizedName: string(pseudonymizedName),
	}

	repo := s.repomanager.Accounts(s.db)

	account, err = repo.Create(ctx, account)
	if err != nil {
		if errors.Is(err, shared.ErrorEmailTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating account: %w", err)
	}

	return account, nil
}

// Verify checks an email/password pair and, on success, records the login
// and issues a session token whose lifetime equals the configured session
// duration.
//
// Empty input, an unknown email and a wrong password all return the same
// shared.ErrorInvalidCredentials. The unknown-email branch still performs
// one bcrypt comparison against a dummy hash so its cost profile matches
// the mismatch branch.
func (s *AccountService) Verify(ctx context.Context, email, password, ipAddress string) (*models.Account, string, error) {

	if s.throttle.Blocked(email) {
		return nil, "", shared.ErrorTooManyAttempts
	}

	if email == "" || password == "" {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
		s.throttle.Fail(email)
		return nil, "", shared.ErrorInvalidCredentials
	}

	repo := s.repomanager.Accounts(s.db)

	account, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrorNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
			s.throttle.Fail(email)
			return nil, "", shared.ErrorInvalidCredentials
		}
		return nil, "", shared.ErrorInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		s.throttle.Fail(email)
		return nil, "", shared.ErrorInvalidCredentials
	}

	s.throttle.Reset(email)

	if err := s.repomanager.LoginRecords(s.db).Create(ctx, account.ID, ipAddress); err != nil {
		return nil, "", shared.ErrorInternal
	}

	token, err := auth.GenerateToken(account.ID, s.jwtSecret, s.sessionDuration)
	if err != nil {
		return nil, "", shared.ErrorInternal
	}

	return account, token, nil
}

// UpdateName replaces the stored pseudonymized name with the hash of the
// new display name. The previous value cannot be recovered or compared, so
// this is a plain overwrite.
func (s *AccountService) UpdateName(ctx context.Context, email, name string) error {

	if email == "" || name == "" {
		return shared.ErrorValidation
	}

	repo := s.repomanager.Accounts(s.db)

	account, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrorNotFound) {
			return err
		}
		return shared.ErrorInternal
	}

	pseudonymizedName, err := bcrypt.GenerateFromPassword([]byte(name), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("error hashing name: %w", err)
	}

	if err := repo.UpdateName(ctx, account.ID, string(pseudonymizedName)); err != nil {
		return shared.ErrorInternal
	}

	return nil
}

// ChangePassword verifies the current password and stores the hash of the
// new one. The new password must be at least 8 characters long and contain
// an uppercase letter and a special character. The read and the update run
// in one transaction so a concurrent change cannot interleave.
func (s *AccountService) ChangePassword(ctx context.Context, email, currentPassword, newPassword string) error {

	if email == "" || currentPassword == "" || newPassword == "" {
		return shared.ErrorValidation
	}

	if !validPassword(newPassword) {
		return shared.ErrorValidation
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Accounts(tx)

		account, err := repo.GetByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, shared.ErrorNotFound) {
				return err
			}
			return shared.ErrorInternal
		}

		if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(currentPassword)); err != nil {
			return shared.ErrorInvalidCredentials
		}

		passwordHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.bcryptCost)
		if err != nil {
			return fmt.Errorf("error hashing password: %w", err)
		}

		if err := repo.UpdatePasswordHash(ctx, account.ID, string(passwordHash)); err != nil {
			return shared.ErrorInternal
		}

		return nil
	})
}

// validPassword enforces the password strength rule: minimum 8 characters,
// at least one uppercase letter, at least one special character.
func validPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	if !upperCaseRe.MatchString(password) {
		return false
	}
	if !specialCharRe.MatchString(password) {
		return false
	}
	return true
}
