// Package repomanager hands out repositories bound to a database handle.
// Passing a dbx.DBTX lets the same repository code run against the shared
// pool or inside a transaction.
package repomanager

import (
	"github.com/pillyapp/accountd/internal/dbx"
	"github.com/pillyapp/accountd/internal/server/repositories/accounts"
	"github.com/pillyapp/accountd/internal/server/repositories/loginrecords"
)

type RepositoryManager interface {
	Accounts(db dbx.DBTX) accounts.Repository
	LoginRecords(db dbx.DBTX) loginrecords.Repository
}
