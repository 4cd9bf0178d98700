package repomanager

import (
	"github.com/pillyapp/accountd/internal/dbx"
	"github.com/pillyapp/accountd/internal/server/repositories/accounts"
	"github.com/pillyapp/accountd/internal/server/repositories/loginrecords"
)

type PostgresRepositoryManager struct {
}

func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}

func (m *PostgresRepositoryManager) Accounts(db dbx.DBTX) accounts.Repository {
	return accounts.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) LoginRecords(db dbx.DBTX) loginrecords.Repository {
	return loginrecords.NewPostgresRepository(db)
}
