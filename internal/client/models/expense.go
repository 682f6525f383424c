package models

import "time"

// DateLayout is the calendar date format used on the wire.
const DateLayout = "2006-01-02"

type Expense struct {
	ID           int64   `json:"id"`
	Amount       float64 `json:"amount"`
	Description  string  `json:"description"`
	Date         string  `json:"date"`
	CategoryName string  `json:"category_name"`
}

type ExpenseCreate struct {
	Amount       float64 `json:"amount"`
	Description  string  `json:"description"`
	Date         string  `json:"date"`
	CategoryName string  `json:"category_name"`
}

// ExpenseUpdate changes only the non-nil fields; nil goes out as JSON null.
type ExpenseUpdate struct {
	ID           int64    `json:"id"`
	Amount       *float64 `json:"amount"`
	Description  *string  `json:"description"`
	Date         *string  `json:"date"`
	CategoryName *string  `json:"category_name"`
}

type ExpensePerCategory struct {
	CategoryName string  `json:"category_name"`
	Amount       float64 `json:"amount"`
}

type ExpensePerDay struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

type ExpensesResponse struct {
	StartDate           string               `json:"start_date"`
	EndDate             string               `json:"end_date"`
	Expenses            []Expense            `json:"expenses"`
	ExpensesPerCategory []ExpensePerCategory `json:"expenses_per_category"`
	ExpensesPerDay      []ExpensePerDay      `json:"expenses_per_day"`
	TotalAmount         float64              `json:"total_amount"`
}

// FormatDate renders t in DateLayout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a DateLayout string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
