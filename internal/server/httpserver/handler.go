package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/gophspend/internal/common"
	"github.com/dmitrijs2005/gophspend/internal/server/services"
	"github.com/go-chi/chi/v5"
)

func (s *HTTPServer) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if !decode(w, r, &req) {
		return
	}

	s.logger.Info(r.Context(), "Registration request")

	user, err := s.users.Register(r.Context(), services.Registration{
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			writeDetail(w, http.StatusBadRequest, "Username or email already registered")
			return
		}
		s.fail(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "Registered", "username", user.Username)
	writeJSON(w, http.StatusCreated, userResponse{Username: user.Username, Email: user.Email, Phone: user.Phone})
}

func (s *HTTPServer) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decode(w, r, &req) {
		return
	}

	token, err := s.users.Login(r.Context(), services.Credentials{
		Email:    req.Email,
		Phone:    req.Phone,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			writeDetail(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		s.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{AccessToken: token, TokenType: "bearer"})
}

func (s *HTTPServer) ListCategories(w http.ResponseWriter, r *http.Request) {
	names, err := s.categories.List(r.Context(), userIDFromContext(r.Context()))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, categoryList{Names: names})
}

func (s *HTTPServer) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if !decode(w, r, &req) {
		return
	}

	if err := s.categories.Create(r.Context(), userIDFromContext(r.Context()), req.Name); err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			writeDetail(w, http.StatusBadRequest, "Category already exists")
			return
		}
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, true)
}

func (s *HTTPServer) RenameCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if !decode(w, r, &req) {
		return
	}

	if err := s.categories.Rename(r.Context(), userIDFromContext(r.Context()), req.Name, req.NewName); err != nil {
		switch {
		case errors.Is(err, common.ErrAlreadyExists):
			writeDetail(w, http.StatusBadRequest, "Category already exists")
		case errors.Is(err, common.ErrNotFound):
			writeDetail(w, http.StatusNotFound, "Category not found")
		default:
			s.fail(w, r, err)
		}
		return
	}
	writeJSON(w, http.StatusOK, true)
}

func (s *HTTPServer) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if !decode(w, r, &req) {
		return
	}

	if err := s.categories.Delete(r.Context(), userIDFromContext(r.Context()), req.Name); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			writeDetail(w, http.StatusNotFound, "Category not found")
			return
		}
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, true)
}

func (s *HTTPServer) ListExpensesPeriod(w http.ResponseWriter, r *http.Request) {
	report, err := s.expenses.ListPeriod(r.Context(), userIDFromContext(r.Context()), chi.URLParam(r, "period"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toExpensesResponse(report))
}

func (s *HTTPServer) ListExpensesRange(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	report, err := s.expenses.ListRange(r.Context(), userIDFromContext(r.Context()), q.Get("start_date"), q.Get("end_date"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toExpensesResponse(report))
}

func (s *HTTPServer) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseCreate
	if !decode(w, r, &req) {
		return
	}

	e, err := s.expenses.Create(r.Context(), userIDFromContext(r.Context()), services.ExpenseInput(req))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toExpenseJSON(e))
}

func (s *HTTPServer) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseUpdate
	if !decode(w, r, &req) {
		return
	}

	e, err := s.expenses.Update(r.Context(), userIDFromContext(r.Context()), services.ExpensePatch(req))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			writeDetail(w, http.StatusNotFound, "Expense not found")
			return
		}
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toExpenseJSON(e))
}

func (s *HTTPServer) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "Invalid expense id")
		return
	}

	if err := s.expenses.Delete(r.Context(), userIDFromContext(r.Context()), id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			writeDetail(w, http.StatusNotFound, "Expense not found")
			return
		}
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, true)
}

// fail answers errors no handler mapped itself: input errors become 422
// with their message, anything else a logged 500.
func (s *HTTPServer) fail(w http.ResponseWriter, r *http.Request, err error) {
	var ie *services.InputError
	if errors.As(err, &ie) {
		writeDetail(w, http.StatusUnprocessableEntity, ie.Msg)
		return
	}
	if errors.Is(err, common.ErrNotFound) {
		writeDetail(w, http.StatusNotFound, "Not Found")
		return
	}
	s.logger.Error(r.Context(), err.Error(), "path", r.URL.Path)
	writeDetail(w, http.StatusInternalServerError, "Internal server error")
}
