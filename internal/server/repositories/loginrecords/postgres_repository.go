package loginrecords

import (
	"context"
	"fmt"

	"github.com/pillyapp/accountd/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, accountID string, ipAddress string) error {

	query :=
		`INSERT INTO login_records (account_id, ip_address)
         VALUES ($1, $2)
		 `

	_, err := r.db.ExecContext(ctx, query, accountID, ipAddress)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
