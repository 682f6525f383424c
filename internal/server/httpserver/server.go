// Package httpserver exposes the stub API over JSON/HTTP. Routes live under
// /api/v1; everything except the auth endpoints requires a bearer token.
package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/gophspend/internal/logging"
	"github.com/dmitrijs2005/gophspend/internal/server/models"
	"github.com/dmitrijs2005/gophspend/internal/server/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const shutdownTimeout = 5 * time.Second

type UserService interface {
	Register(ctx context.Context, r services.Registration) (*models.User, error)
	Login(ctx context.Context, c services.Credentials) (string, error)
	Authenticate(ctx context.Context, token string) (int64, error)
}

type CategoryService interface {
	List(ctx context.Context, userID int64) ([]string, error)
	Create(ctx context.Context, userID int64, name string) error
	Rename(ctx context.Context, userID int64, name, newName string) error
	Delete(ctx context.Context, userID int64, name string) error
}

type ExpenseService interface {
	ListPeriod(ctx context.Context, userID int64, period string) (*services.Report, error)
	ListRange(ctx context.Context, userID int64, from, to string) (*services.Report, error)
	Create(ctx context.Context, userID int64, in services.ExpenseInput) (*models.Expense, error)
	Update(ctx context.Context, userID int64, p services.ExpensePatch) (*models.Expense, error)
	Delete(ctx context.Context, userID, id int64) error
}

type HTTPServer struct {
	address    string
	users      UserService
	categories CategoryService
	expenses   ExpenseService
	logger     logging.Logger
}

func NewHTTPServer(a string, l logging.Logger, us UserService, cs CategoryService, es ExpenseService) *HTTPServer {
	return &HTTPServer{
		address:    a,
		logger:     l.With("module", "http_server"),
		users:      us,
		categories: cs,
		expenses:   es,
	}
}

// Handler returns the routed API.
func (s *HTTPServer) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestID, s.accessLog, middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", s.Login)
		r.Post("/auth/signup", s.SignUp)

		r.Group(func(r chi.Router) {
			r.Use(s.accessToken)

			r.Get("/categories", s.ListCategories)
			r.Post("/categories", s.CreateCategory)
			r.Put("/categories", s.RenameCategory)
			r.Delete("/categories", s.DeleteCategory)

			r.Get("/expenses/daterange", s.ListExpensesRange)
			r.Get("/expenses/{period}", s.ListExpensesPeriod)
			r.Post("/expenses", s.CreateExpense)
			r.Put("/expenses", s.UpdateExpense)
			r.Delete("/expenses/{id}", s.DeleteExpense)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve is Run on an existing listener.
func (s *HTTPServer) Serve(ctx context.Context, listen net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(context.Background(), "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
