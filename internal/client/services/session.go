// Package services contains application services for the GophSpend client.
// This file defines the session: the single authority on whether the user
// is signed in, mediating between the REPL, the API client and the token
// store.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophspend/internal/client/client"
	"github.com/dmitrijs2005/gophspend/internal/client/models"
	"github.com/dmitrijs2005/gophspend/internal/client/tokenstore"
	"github.com/dmitrijs2005/gophspend/internal/common"
	"github.com/dmitrijs2005/gophspend/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

// State is a snapshot of the session.
type State struct {
	Token   string
	Loading bool
}

// Authenticated reports whether a token is present.
func (s State) Authenticated() bool {
	return s.Token != ""
}

// Session holds the live token and the loading flag.
//
// Loading is true from construction until Restore returns, and while any
// auth operation is in flight. Operations are not serialized against each
// other: a SignIn racing a SignOut ends with whichever wrote the token last.
// The mutex only keeps the fields consistent in memory.
type Session struct {
	api    client.AuthAPI
	store  tokenstore.Store
	logger logging.Logger
	now    func() time.Time

	mu       sync.Mutex
	token    string
	inflight int
	nextSub  int
	subs     map[int]func(State)
}

// NewSession creates a session that is loading until Restore completes.
func NewSession(api client.AuthAPI, store tokenstore.Store, logger logging.Logger) *Session {
	if logger == nil {
		logger = logging.NewDiscard()
	}
	return &Session{
		api:      api,
		store:    store,
		logger:   logger,
		now:      time.Now,
		inflight: 1,
		subs:     make(map[int]func(State)),
	}
}

// Snapshot returns the current state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() State {
	return State{Token: s.token, Loading: s.inflight > 0}
}

func (s *Session) Token() string         { return s.Snapshot().Token }
func (s *Session) Loading() bool         { return s.Snapshot().Loading }
func (s *Session) IsAuthenticated() bool { return s.Snapshot().Authenticated() }

// Subscribe registers fn to be called after every state change. Calls are
// synchronous and made without holding the session lock, so fn may read
// the session. The returned function unsubscribes.
func (s *Session) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// update applies mutate under the lock and notifies subscribers afterwards.
func (s *Session) update(mutate func()) {
	s.mu.Lock()
	before := s.snapshotLocked()
	mutate()
	after := s.snapshotLocked()
	subs := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	if before == after {
		return
	}
	for _, fn := range subs {
		fn(after)
	}
}

func (s *Session) begin()               { s.update(func() { s.inflight++ }) }
func (s *Session) setToken(token string) { s.update(func() { s.token = token }) }

func (s *Session) finish() {
	s.update(func() {
		if s.inflight > 0 {
			s.inflight--
		}
	})
}

// Restore adopts the persisted token, if any, and ends the startup loading
// phase. A persisted JWT that has already expired is discarded instead.
func (s *Session) Restore(ctx context.Context) error {
	defer s.finish()

	token, ok, err := s.store.Get(ctx, common.TokenKey)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	if !ok || token == "" {
		s.logger.Debug(ctx, "no persisted session")
		return nil
	}

	if exp, ok := TokenExpiry(token); ok && !exp.After(s.now()) {
		s.logger.Info(ctx, "persisted session expired, discarding", "expired_at", exp)
		if err := s.store.Delete(ctx, common.TokenKey); err != nil {
			s.logger.Warn(ctx, "failed to delete expired token", "error", err)
		}
		return nil
	}

	s.setToken(token)
	s.logger.Info(ctx, "session restored")
	return nil
}

// SignIn authenticates and persists the token. On failure the previous
// token is left untouched and the API error is returned as is, so its
// message is the server's detail.
func (s *Session) SignIn(ctx context.Context, identity, password string) error {
	if err := ValidateLogin(identity); err != nil {
		return err
	}

	s.begin()
	defer s.finish()

	resp, err := s.api.SignIn(ctx, identity, password)
	if err != nil {
		s.logger.Info(ctx, "sign in failed", "identity_kind", client.ClassifyIdentity(identity).String(), "error", err)
		return err
	}
	if resp.AccessToken == "" {
		return errors.New("login response carries no access token")
	}

	// Persist before publishing so that observers reacting to the new
	// token already find it in the store.
	persistErr := s.store.Set(ctx, common.TokenKey, resp.AccessToken)
	s.setToken(resp.AccessToken)

	if persistErr != nil {
		s.logger.Warn(ctx, "signed in but token not persisted", "error", persistErr)
		return fmt.Errorf("persist token: %w", persistErr)
	}

	s.logger.Info(ctx, "signed in", "identity_kind", client.ClassifyIdentity(identity).String())
	return nil
}

// SignUp registers a new user after checking the form locally. It never
// signs the user in.
func (s *Session) SignUp(ctx context.Context, req models.RegisterRequest) (*models.RegisterResponse, error) {
	if err := ValidateRegistration(req); err != nil {
		return nil, err
	}

	s.begin()
	defer s.finish()

	resp, err := s.api.SignUp(ctx, req)
	if err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "registered", "username", req.Username)
	return resp, nil
}

// SignOut clears the in-memory token and deletes the persisted one. The
// in-memory token is cleared even when the deletion fails; that failure is
// still returned.
func (s *Session) SignOut(ctx context.Context) error {
	s.begin()
	defer s.finish()

	s.setToken("")

	if err := s.store.Delete(ctx, common.TokenKey); err != nil {
		s.logger.Warn(ctx, "signed out but persisted token not deleted", "error", err)
		return fmt.Errorf("sign out: %w", err)
	}
	s.logger.Info(ctx, "signed out")
	return nil
}

// Expire ends a session the server no longer accepts.
func (s *Session) Expire(ctx context.Context) error {
	s.logger.Info(ctx, "session rejected by server")
	return s.SignOut(ctx)
}

// TokenExpiry returns the exp claim if token is a JWT carrying one. The
// signature is not verified; the value is informational only.
func TokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// Expirer is the part of Session data services need.
type Expirer interface {
	Expire(ctx context.Context) error
}

// expireOnUnauthorized turns a server-side rejection of the bearer token
// into ErrSessionExpired and signs the user out. Other errors pass through.
func expireOnUnauthorized(ctx context.Context, e Expirer, logger logging.Logger, err error) error {
	if err == nil || !errors.Is(err, common.ErrUnauthorized) {
		return err
	}
	if e != nil {
		if expErr := e.Expire(ctx); expErr != nil {
			logger.Warn(ctx, "failed to clear expired session", "error", expErr)
		}
	}
	return fmt.Errorf("%w: %w", common.ErrSessionExpired, err)
}
