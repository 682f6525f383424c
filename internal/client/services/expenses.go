package services

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophspend/internal/client/client"
	"github.com/dmitrijs2005/gophspend/internal/client/models"
	"github.com/dmitrijs2005/gophspend/internal/logging"
)

// ExpenseInput is the raw add-expense form.
type ExpenseInput struct {
	Amount      string
	Description string
	Date        string
	Category    string
}

// ExpenseEdit is the raw edit form. Blank fields are left unchanged.
type ExpenseEdit struct {
	Amount      string
	Description string
	Date        string
	Category    string
}

type ExpenseService struct {
	api     client.ExpenseAPI
	session Expirer
	logger  logging.Logger
	now     func() time.Time
}

func NewExpenseService(api client.ExpenseAPI, session Expirer, logger logging.Logger) *ExpenseService {
	if logger == nil {
		logger = logging.NewDiscard()
	}
	return &ExpenseService{api: api, session: session, logger: logger, now: time.Now}
}

func (s *ExpenseService) check(ctx context.Context, err error) error {
	return expireOnUnauthorized(ctx, s.session, s.logger, err)
}

// BuildExpense validates the form and converts it to a create request.
func BuildExpense(in ExpenseInput, now time.Time) (models.ExpenseCreate, error) {
	amount, err := ParseAmount(in.Amount)
	if err != nil {
		return models.ExpenseCreate{}, err
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		return models.ExpenseCreate{}, ErrCategoryRequired
	}
	date, err := NormalizeDate(in.Date, now)
	if err != nil {
		return models.ExpenseCreate{}, err
	}
	return models.ExpenseCreate{
		Amount:       amount,
		Description:  strings.TrimSpace(in.Description),
		Date:         date,
		CategoryName: category,
	}, nil
}

// BuildUpdate validates the non-blank fields of the edit form.
func BuildUpdate(id int64, in ExpenseEdit) (models.ExpenseUpdate, error) {
	u := models.ExpenseUpdate{ID: id}

	if s := strings.TrimSpace(in.Amount); s != "" {
		amount, err := ParseAmount(s)
		if err != nil {
			return u, err
		}
		u.Amount = &amount
	}
	if s := strings.TrimSpace(in.Description); s != "" {
		u.Description = &s
	}
	if s := strings.TrimSpace(in.Date); s != "" {
		date, err := NormalizeDate(s, time.Time{})
		if err != nil {
			return u, err
		}
		u.Date = &date
	}
	if s := strings.TrimSpace(in.Category); s != "" {
		u.CategoryName = &s
	}
	return u, nil
}

func (s *ExpenseService) List(ctx context.Context, q client.ExpenseQuery) (*models.ExpensesResponse, error) {
	resp, err := s.api.ListExpenses(ctx, q)
	if err != nil {
		return nil, s.check(ctx, err)
	}
	return resp, nil
}

func (s *ExpenseService) Create(ctx context.Context, in ExpenseInput) (*models.Expense, error) {
	req, err := BuildExpense(in, s.now())
	if err != nil {
		return nil, err
	}
	e, err := s.api.CreateExpense(ctx, req)
	if err != nil {
		return nil, s.check(ctx, err)
	}
	s.logger.Debug(ctx, "expense created", "id", e.ID, "category", e.CategoryName)
	return e, nil
}

func (s *ExpenseService) Update(ctx context.Context, id int64, in ExpenseEdit) (*models.Expense, error) {
	req, err := BuildUpdate(id, in)
	if err != nil {
		return nil, err
	}
	e, err := s.api.UpdateExpense(ctx, req)
	if err != nil {
		return nil, s.check(ctx, err)
	}
	return e, nil
}

func (s *ExpenseService) Delete(ctx context.Context, id int64) error {
	return s.check(ctx, s.api.DeleteExpense(ctx, id))
}
