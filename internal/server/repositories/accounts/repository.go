package accounts

import (
	"context"

	"github.com/pillyapp/accountd/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, account *models.Account) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	UpdateName(ctx context.Context, id string, pseudonymizedName string) error
	UpdatePasswordHash(ctx context.Context, id string, passwordHash string) error
}
