// Package guard keeps the client's current location consistent with the
// session: signed-out users are sent to the login area, signed-in users are
// sent out of it. The logic is a pure function of its input and knows
// nothing about how locations are rendered.
package guard

import "sync"

// State is the guard's view of the session.
type State int

const (
	Unknown State = iota
	Authenticated
	Unauthenticated
)

func (s State) String() string {
	switch s {
	case Authenticated:
		return "authenticated"
	case Unauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// Location is a navigable place in the client.
type Location string

const (
	LocationLogin      Location = "login"
	LocationRegister   Location = "register"
	LocationHome       Location = "home"
	LocationExpenses   Location = "expenses"
	LocationCategories Location = "categories"
	LocationSettings   Location = "settings"
)

// InAuthArea reports whether l belongs to the login/registration area.
func (l Location) InAuthArea() bool {
	return l == LocationLogin || l == LocationRegister
}

// Input is everything a decision depends on.
type Input struct {
	Loading  bool
	HasToken bool
	Location Location
}

// Decision says where to go next. To is only meaningful when Redirect is set.
type Decision struct {
	State    State
	Redirect bool
	To       Location
}

// Evaluate is the transition function. While loading it never redirects.
func Evaluate(in Input) Decision {
	if in.Loading {
		return Decision{State: Unknown}
	}

	if !in.HasToken {
		if !in.Location.InAuthArea() {
			return Decision{State: Unauthenticated, Redirect: true, To: LocationLogin}
		}
		return Decision{State: Unauthenticated}
	}

	if in.Location.InAuthArea() {
		return Decision{State: Authenticated, Redirect: true, To: LocationHome}
	}
	return Decision{State: Authenticated}
}

// Guard remembers the last evaluated state so callers can react to
// transitions rather than to every evaluation.
type Guard struct {
	mu    sync.Mutex
	state State
}

func New() *Guard {
	return &Guard{state: Unknown}
}

// Check evaluates in and records the resulting state. changed is true when
// the state differs from the previous evaluation.
func (g *Guard) Check(in Input) (d Decision, changed bool) {
	d = Evaluate(in)

	g.mu.Lock()
	defer g.mu.Unlock()
	changed = d.State != g.state
	g.state = d.State
	return d, changed
}

// State returns the state recorded by the last Check.
func (g *Guard) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}
