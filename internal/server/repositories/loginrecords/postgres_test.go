package loginrecords

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

const insertQ = `(?s)^INSERT\s+INTO\s+login_records\s*\(account_id,\s*ip_address\)\s*VALUES\s*\(\$1,\s*\$2\)\s*$`

func TestCreate_Success(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(insertQ).
		WithArgs("id-1", "10.0.0.1").
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := NewPostgresRepository(db)
	if err := repo.Create(context.Background(), "id-1", "10.0.0.1"); err != nil {
		t.Fatalf("Create error: %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(insertQ).
		WithArgs("id-1", "10.0.0.1").
		WillReturnError(errors.New("db down"))

	repo := NewPostgresRepository(db)
	err = repo.Create(context.Background(), "id-1", "10.0.0.1")
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
