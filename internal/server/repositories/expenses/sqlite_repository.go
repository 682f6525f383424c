package expenses

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophspend/internal/common"
	"github.com/dmitrijs2005/gophspend/internal/dbx"
	"github.com/dmitrijs2005/gophspend/internal/server/models"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, e *models.Expense) (*models.Expense, error) {

	query :=
		`INSERT INTO expenses (user_id, amount, description, date, category_name)
		 VALUES (?, ?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query, e.UserID, e.Amount, e.Description, e.Date, e.CategoryName)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	e.ID = id
	return e, nil
}

func (r *SQLiteRepository) Get(ctx context.Context, userID, id int64) (*models.Expense, error) {
	query :=
		`SELECT id, user_id, amount, description, date, category_name FROM expenses
		 WHERE user_id = ? AND id = ?`

	e := &models.Expense{}
	err := r.db.QueryRowContext(ctx, query, userID, id).
		Scan(&e.ID, &e.UserID, &e.Amount, &e.Description, &e.Date, &e.CategoryName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return e, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, e *models.Expense) error {
	query :=
		`UPDATE expenses SET amount = ?, description = ?, date = ?, category_name = ?
		 WHERE user_id = ? AND id = ?`

	res, err := r.db.ExecContext(ctx, query, e.Amount, e.Description, e.Date, e.CategoryName, e.UserID, e.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOneRow(res)
}

func (r *SQLiteRepository) Delete(ctx context.Context, userID, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE user_id = ? AND id = ?`, userID, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOneRow(res)
}

func (r *SQLiteRepository) ListBetween(ctx context.Context, userID int64, from, to string) ([]models.Expense, error) {
	query :=
		`SELECT id, user_id, amount, description, date, category_name FROM expenses
		 WHERE user_id = ? AND (? = '' OR date >= ?) AND (? = '' OR date <= ?)
		 ORDER BY date DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, userID, from, from, to, to)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	list := make([]models.Expense, 0)
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.UserID, &e.Amount, &e.Description, &e.Date, &e.CategoryName); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return list, nil
}

func (r *SQLiteRepository) RenameCategory(ctx context.Context, userID int64, name, newName string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE expenses SET category_name = ? WHERE user_id = ? AND category_name = ?`, newName, userID, name)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}
