package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gophspend/internal/common"
	"github.com/dmitrijs2005/gophspend/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*SQLiteRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewSQLiteRepository(db), mock, db
}

const insertQ = `(?s)^INSERT\s+INTO\s+users\s*\(username,\s*email,\s*wa_number,\s*password_hash\)\s*VALUES\s*\(\?,\s*\?,\s*\?,\s*\?\)$`

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(insertQ).
		WithArgs("alice", "a@b.co", "0123456789", []byte("hash")).
		WillReturnResult(sqlmock.NewResult(42, 1))

	u := &models.User{Username: "alice", Email: "a@b.co", Phone: "0123456789", PasswordHash: []byte("hash")}
	got, err := repo.Create(context.Background(), u)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 42 || got.Username != "alice" {
		t.Fatalf("unexpected user: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(insertQ).
		WithArgs("alice", "a@b.co", "", []byte("hash")).
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.User{Username: "alice", Email: "a@b.co", PasswordHash: []byte("hash")})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetUserByLogin_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*username,\s*email,\s*wa_number,\s*password_hash,\s*created_at\s+FROM\s+users\s+WHERE\s+email\s*=\s*\?$`

	rows := sqlmock.NewRows([]string{"id", "username", "email", "wa_number", "password_hash", "created_at"}).
		AddRow(int64(7), "alice", "a@b.co", "", []byte("hash"), time.Now())
	mock.ExpectQuery(q).WithArgs("a@b.co").WillReturnRows(rows)

	got, err := repo.GetUserByLogin(context.Background(), ByEmail, "a@b.co")
	if err != nil {
		t.Fatalf("GetUserByLogin error: %v", err)
	}
	if got.ID != 7 || got.Username != "alice" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestGetUserByLogin_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)WHERE\s+username\s*=\s*\?$`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetUserByLogin(context.Background(), ByUsername, "ghost")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected common.ErrNotFound, got %v", err)
	}
}

func TestGetUserByLogin_RejectsUnknownField(t *testing.T) {
	repo, _, db := newRepoWithMock(t)
	defer db.Close()

	if _, err := repo.GetUserByLogin(context.Background(), LoginField("password_hash"), "x"); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestGetUserByID_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)WHERE\s+id\s*=\s*\?$`).
		WithArgs(int64(1)).
		WillReturnError(errors.New("boom"))

	_, err := repo.GetUserByID(context.Background(), 1)
	if err == nil || errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected db error, got %v", err)
	}
}
