package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/gophspend/internal/client/client"
	"github.com/dmitrijs2005/gophspend/internal/client/config"
	"github.com/dmitrijs2005/gophspend/internal/client/guard"
	"github.com/dmitrijs2005/gophspend/internal/client/models"
	"github.com/dmitrijs2005/gophspend/internal/client/services"
	"github.com/dmitrijs2005/gophspend/internal/logging"
)

// SessionService is the part of services.Session the CLI drives.
type SessionService interface {
	Restore(ctx context.Context) error
	SignIn(ctx context.Context, identity, password string) error
	SignUp(ctx context.Context, req models.RegisterRequest) (*models.RegisterResponse, error)
	SignOut(ctx context.Context) error
	Snapshot() services.State
	Subscribe(fn func(services.State)) func()
}

type CategoryService interface {
	List(ctx context.Context) ([]string, error)
	Create(ctx context.Context, name string) error
	Rename(ctx context.Context, name, newName string) error
	Delete(ctx context.Context, name string) error
	SeedDefaults(ctx context.Context) ([]string, error)
}

type ExpenseService interface {
	List(ctx context.Context, q client.ExpenseQuery) (*models.ExpensesResponse, error)
	Create(ctx context.Context, in services.ExpenseInput) (*models.Expense, error)
	Update(ctx context.Context, id int64, in services.ExpenseEdit) (*models.Expense, error)
	Delete(ctx context.Context, id int64) error
}

type DashboardService interface {
	Summary(ctx context.Context, period string) (*services.Summary, error)
}

// Deps bundles what App needs. Backend is the storage backend actually
// in use, shown on the settings screen.
type Deps struct {
	Config     *config.Config
	Backend    string
	Session    SessionService
	Categories CategoryService
	Expenses   ExpenseService
	Dashboard  DashboardService
	Logger     logging.Logger
}

type App struct {
	config     *config.Config
	backend    string
	session    SessionService
	categories CategoryService
	expenses   ExpenseService
	dashboard  DashboardService
	logger     logging.Logger

	guard *guard.Guard

	mu       sync.Mutex
	location guard.Location

	reader *bufio.Reader
	out    io.Writer

	unsubscribe func()
}

// NewApp builds the application and starts following session changes.
// The initial location is the dashboard; the guard moves it to the login
// screen once the session has finished loading without a token.
func NewApp(d Deps) *App {
	logger := d.Logger
	if logger == nil {
		logger = logging.NewDiscard()
	}
	cfg := d.Config
	if cfg == nil {
		cfg = &config.Config{}
		cfg.LoadDefaults()
	}

	a := &App{
		config:     cfg,
		backend:    d.Backend,
		session:    d.Session,
		categories: d.Categories,
		expenses:   d.Expenses,
		dashboard:  d.Dashboard,
		logger:     logger,
		guard:      guard.New(),
		location:   guard.LocationHome,
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
	}
	a.unsubscribe = a.session.Subscribe(func(services.State) { a.reconcile() })
	return a
}

// Close stops following session changes.
func (a *App) Close() {
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
}

func (a *App) currentLocation() guard.Location {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.location
}

// navigate moves to loc and lets the guard overrule the move.
func (a *App) navigate(loc guard.Location) guard.Location {
	a.mu.Lock()
	a.location = loc
	a.mu.Unlock()
	return a.reconcile()
}

// reconcile runs the guard against the current session and location and
// applies any redirect.
func (a *App) reconcile() guard.Location {
	st := a.session.Snapshot()

	a.mu.Lock()
	defer a.mu.Unlock()

	d, changed := a.guard.Check(guard.Input{
		Loading:  st.Loading,
		HasToken: st.Authenticated(),
		Location: a.location,
	})
	if changed {
		a.logger.Debug(context.Background(), "auth state changed", "state", d.State.String())
	}
	if d.Redirect && d.To != a.location {
		a.logger.Debug(context.Background(), "redirect", "from", string(a.location), "to", string(d.To))
		a.location = d.To
	}
	return a.location
}

// Run restores the persisted session and runs the REPL until the user
// exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, "Welcome to GophSpend (type 'help' for commands)")

	if err := a.session.Restore(ctx); err != nil {
		a.logger.Warn(ctx, "could not restore session", "error", err)
		fmt.Fprintln(a.out, client.UserMessage(err))
	}
	a.reconcile()

	runREPL(ctx, a, a.prompt, a.reader)
}

func (a *App) prompt() string {
	return fmt.Sprintf("gophspend (%s)> ", a.currentLocation())
}
