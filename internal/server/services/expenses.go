package services

import (
	"context"
	"database/sql"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophspend/internal/dbx"
	"github.com/dmitrijs2005/gophspend/internal/server/models"
	"github.com/dmitrijs2005/gophspend/internal/server/repositories/repomanager"
)

// DateLayout is the calendar date format stored and exchanged.
const DateLayout = "2006-01-02"

// Periods understood by ListPeriod.
const (
	PeriodDay   = "day"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
	PeriodAll   = "all"
)

// ExpenseInput is a new expense. An empty Date means today.
type ExpenseInput struct {
	Amount       float64
	Description  string
	Date         string
	CategoryName string
}

// ExpensePatch changes the non-nil fields of expense ID.
type ExpensePatch struct {
	ID           int64
	Amount       *float64
	Description  *string
	Date         *string
	CategoryName *string
}

type CategoryTotal struct {
	CategoryName string
	Amount       float64
}

type DayTotal struct {
	Date   string
	Amount float64
}

// Report is a list of expenses together with its aggregates. Categories
// are ordered by amount descending, days ascending.
type Report struct {
	StartDate   string
	EndDate     string
	Expenses    []models.Expense
	PerCategory []CategoryTotal
	PerDay      []DayTotal
	Total       float64
}

type ExpenseService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewExpenseService(db *sql.DB, m repomanager.RepositoryManager) *ExpenseService {
	return &ExpenseService{db: db, repomanager: m, now: time.Now}
}

// PeriodRange maps a period keyword to an inclusive date range around now.
// Week is the seven days ending today; month and year are calendar ones.
// The all period has open bounds.
func PeriodRange(period string, now time.Time) (from, to string, err error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch period {
	case PeriodDay:
		return today.Format(DateLayout), today.Format(DateLayout), nil
	case PeriodWeek:
		return today.AddDate(0, 0, -6).Format(DateLayout), today.Format(DateLayout), nil
	case PeriodMonth:
		first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return first.Format(DateLayout), first.AddDate(0, 1, -1).Format(DateLayout), nil
	case PeriodYear:
		first := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location())
		return first.Format(DateLayout), first.AddDate(1, 0, -1).Format(DateLayout), nil
	case PeriodAll:
		return "", "", nil
	}
	return "", "", invalid("Unknown period: " + period)
}

func (s *ExpenseService) ListPeriod(ctx context.Context, userID int64, period string) (*Report, error) {
	from, to, err := PeriodRange(period, s.now())
	if err != nil {
		return nil, err
	}
	return s.report(ctx, userID, from, to)
}

func (s *ExpenseService) ListRange(ctx context.Context, userID int64, from, to string) (*Report, error) {
	start, err := time.Parse(DateLayout, from)
	if err != nil {
		return nil, invalid("start_date must be YYYY-MM-DD")
	}
	end, err := time.Parse(DateLayout, to)
	if err != nil {
		return nil, invalid("end_date must be YYYY-MM-DD")
	}
	if end.Before(start) {
		return nil, invalid("end_date must not be before start_date")
	}
	return s.report(ctx, userID, from, to)
}

func (s *ExpenseService) report(ctx context.Context, userID int64, from, to string) (*Report, error) {
	list, err := s.repomanager.Expenses(s.db).ListBetween(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	r := Aggregate(list)
	if from != "" {
		r.StartDate, r.EndDate = from, to
	}
	return r, nil
}

// Aggregate totals list per category and per day. Open bounds are filled
// with the earliest and latest dates in list.
func Aggregate(list []models.Expense) *Report {
	r := &Report{Expenses: list}
	if r.Expenses == nil {
		r.Expenses = []models.Expense{}
	}

	byCat := map[string]float64{}
	byDay := map[string]float64{}
	for _, e := range list {
		r.Total += e.Amount
		byCat[e.CategoryName] += e.Amount
		byDay[e.Date] += e.Amount
		if r.StartDate == "" || e.Date < r.StartDate {
			r.StartDate = e.Date
		}
		if e.Date > r.EndDate {
			r.EndDate = e.Date
		}
	}

	r.PerCategory = make([]CategoryTotal, 0, len(byCat))
	for name, amount := range byCat {
		r.PerCategory = append(r.PerCategory, CategoryTotal{CategoryName: name, Amount: round2(amount)})
	}
	sort.Slice(r.PerCategory, func(i, j int) bool {
		a, b := r.PerCategory[i], r.PerCategory[j]
		if a.Amount != b.Amount {
			return a.Amount > b.Amount
		}
		return a.CategoryName < b.CategoryName
	})

	r.PerDay = make([]DayTotal, 0, len(byDay))
	for date, amount := range byDay {
		r.PerDay = append(r.PerDay, DayTotal{Date: date, Amount: round2(amount)})
	}
	sort.Slice(r.PerDay, func(i, j int) bool { return r.PerDay[i].Date < r.PerDay[j].Date })

	r.Total = round2(r.Total)
	return r
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func (s *ExpenseService) Create(ctx context.Context, userID int64, in ExpenseInput) (*models.Expense, error) {
	e := &models.Expense{
		UserID:       userID,
		Amount:       in.Amount,
		Description:  strings.TrimSpace(in.Description),
		Date:         in.Date,
		CategoryName: strings.TrimSpace(in.CategoryName),
	}
	if e.Date == "" {
		e.Date = s.now().Format(DateLayout)
	}

	var created *models.Expense
	err := dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.check(ctx, tx, e); err != nil {
			return err
		}
		var err error
		created, err = s.repomanager.Expenses(tx).Create(ctx, e)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update applies p to the stored expense and returns the result.
func (s *ExpenseService) Update(ctx context.Context, userID int64, p ExpensePatch) (*models.Expense, error) {
	var updated *models.Expense
	err := dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Expenses(tx)

		e, err := repo.Get(ctx, userID, p.ID)
		if err != nil {
			return err
		}
		if p.Amount != nil {
			e.Amount = *p.Amount
		}
		if p.Description != nil {
			e.Description = strings.TrimSpace(*p.Description)
		}
		if p.Date != nil {
			e.Date = *p.Date
		}
		if p.CategoryName != nil {
			e.CategoryName = strings.TrimSpace(*p.CategoryName)
		}

		if err := s.check(ctx, tx, e); err != nil {
			return err
		}
		if err := repo.Update(ctx, e); err != nil {
			return err
		}
		updated = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *ExpenseService) Delete(ctx context.Context, userID, id int64) error {
	return s.repomanager.Expenses(s.db).Delete(ctx, userID, id)
}

func (s *ExpenseService) check(ctx context.Context, tx dbx.DBTX, e *models.Expense) error {
	if math.IsNaN(e.Amount) || math.IsInf(e.Amount, 0) || e.Amount <= 0 {
		return invalid("Amount must be greater than zero")
	}
	if _, err := time.Parse(DateLayout, e.Date); err != nil {
		return invalid("Date must be YYYY-MM-DD")
	}
	if e.CategoryName == "" {
		return invalid("Category is required")
	}

	ok, err := s.repomanager.Categories(tx).Exists(ctx, e.UserID, e.CategoryName)
	if err != nil {
		return err
	}
	if !ok {
		return invalid("Category not found: " + e.CategoryName)
	}
	return nil
}

