package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophspend/internal/common"
	"github.com/dmitrijs2005/gophspend/internal/dbx"
	"github.com/dmitrijs2005/gophspend/internal/server/models"
	"github.com/dmitrijs2005/gophspend/internal/server/repositories/sqlitex"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (username, email, wa_number, password_hash)
		 VALUES (?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query, user.Username, user.Email, user.Phone, user.PasswordHash)
	if err != nil {
		if sqlitex.IsUniqueViolation(err) {
			return nil, common.ErrAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	user.ID = id

	return user, nil
}

func (r *SQLiteRepository) GetUserByLogin(ctx context.Context, field LoginField, login string) (*models.User, error) {
	switch field {
	case ByUsername, ByEmail, ByPhone:
	default:
		return nil, fmt.Errorf("unsupported login field %q", field)
	}

	query := `SELECT id, username, email, wa_number, password_hash, created_at FROM users
		 WHERE ` + string(field) + ` = ?`

	return r.scanOne(r.db.QueryRowContext(ctx, query, login))
}

func (r *SQLiteRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	query :=
		`SELECT id, username, email, wa_number, password_hash, created_at FROM users
		 WHERE id = ?`

	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteRepository) scanOne(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.Phone, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}
