package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/gophspend/internal/server/models"
	"github.com/dmitrijs2005/gophspend/internal/server/services"
)

type loginRequest struct {
	Email    string `json:"email"`
	Phone    string `json:"wa_number"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
	Phone    string `json:"wa_number"`
}

type userResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"wa_number"`
}

type categoryList struct {
	Names []string `json:"names"`
}

type categoryRequest struct {
	Name    string `json:"name"`
	NewName string `json:"new_name,omitempty"`
}

type expenseJSON struct {
	ID           int64   `json:"id"`
	Amount       float64 `json:"amount"`
	Description  string  `json:"description"`
	Date         string  `json:"date"`
	CategoryName string  `json:"category_name"`
}

type expenseCreate struct {
	Amount       float64 `json:"amount"`
	Description  string  `json:"description"`
	Date         string  `json:"date"`
	CategoryName string  `json:"category_name"`
}

// expenseUpdate keeps the stored value for every null field.
type expenseUpdate struct {
	ID           int64    `json:"id"`
	Amount       *float64 `json:"amount"`
	Description  *string  `json:"description"`
	Date         *string  `json:"date"`
	CategoryName *string  `json:"category_name"`
}

type categoryTotal struct {
	CategoryName string  `json:"category_name"`
	Amount       float64 `json:"amount"`
}

type dayTotal struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

type expensesResponse struct {
	StartDate           string          `json:"start_date"`
	EndDate             string          `json:"end_date"`
	Expenses            []expenseJSON   `json:"expenses"`
	ExpensesPerCategory []categoryTotal `json:"expenses_per_category"`
	ExpensesPerDay      []dayTotal      `json:"expenses_per_day"`
	TotalAmount         float64         `json:"total_amount"`
}

type detailResponse struct {
	Detail string `json:"detail"`
}

func toExpenseJSON(e *models.Expense) expenseJSON {
	return expenseJSON{
		ID:           e.ID,
		Amount:       e.Amount,
		Description:  e.Description,
		Date:         e.Date,
		CategoryName: e.CategoryName,
	}
}

func toExpensesResponse(r *services.Report) expensesResponse {
	out := expensesResponse{
		StartDate:           r.StartDate,
		EndDate:             r.EndDate,
		Expenses:            make([]expenseJSON, 0, len(r.Expenses)),
		ExpensesPerCategory: make([]categoryTotal, 0, len(r.PerCategory)),
		ExpensesPerDay:      make([]dayTotal, 0, len(r.PerDay)),
		TotalAmount:         r.Total,
	}
	for i := range r.Expenses {
		out.Expenses = append(out.Expenses, toExpenseJSON(&r.Expenses[i]))
	}
	for _, c := range r.PerCategory {
		out.ExpensesPerCategory = append(out.ExpensesPerCategory, categoryTotal(c))
	}
	for _, d := range r.PerDay {
		out.ExpensesPerDay = append(out.ExpensesPerDay, dayTotal(d))
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, detailResponse{Detail: detail})
}

// decode reads a JSON body into v, answering 422 itself on failure.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(v); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "Invalid request body")
		return false
	}
	return true
}
