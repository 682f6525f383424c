package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophspend/internal/common"
	"github.com/dmitrijs2005/gophspend/internal/server/auth"
	"github.com/dmitrijs2005/gophspend/internal/server/config"
	"github.com/dmitrijs2005/gophspend/internal/server/models"
	"github.com/dmitrijs2005/gophspend/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophspend/internal/server/repositories/users"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is lowered in tests.
var bcryptCost = bcrypt.DefaultCost

// Registration is a sign-up request.
type Registration struct {
	Username string
	Email    string
	Phone    string
	Password string
}

// Credentials identify a user by exactly one of Email, Phone or Username.
type Credentials struct {
	Email    string
	Phone    string
	Username string
	Password string
}

// lookup picks the login column. Email wins over phone, phone over username.
func (c Credentials) lookup() (users.LoginField, string, bool) {
	switch {
	case c.Email != "":
		return users.ByEmail, c.Email, true
	case c.Phone != "":
		return users.ByPhone, c.Phone, true
	case c.Username != "":
		return users.ByUsername, c.Username, true
	}
	return "", "", false
}

type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

func (s *UserService) Register(ctx context.Context, r Registration) (*models.User, error) {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)

	switch {
	case r.Username == "":
		return nil, invalid("Username is required")
	case r.Email == "":
		return nil, invalid("Email is required")
	case r.Password == "":
		return nil, invalid("Password is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(r.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repomanager.Users(s.db).Create(ctx, &models.User{
		Username:     r.Username,
		Email:        r.Email,
		Phone:        r.Phone,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, common.ErrAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login checks the credentials and issues an access token. Unknown users
// and wrong passwords are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, c Credentials) (string, error) {
	field, login, ok := c.lookup()
	if !ok {
		return "", invalid("Email, phone number or username is required")
	}

	user, err := s.repomanager.Users(s.db).GetUserByLogin(ctx, field, login)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrUnauthorized
		}
		return "", common.ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(c.Password)); err != nil {
		return "", common.ErrUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, user.Username, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", fmt.Errorf("error generating token: %w", err)
	}

	return token, nil
}

// Authenticate resolves a bearer token to a user id.
func (s *UserService) Authenticate(ctx context.Context, token string) (int64, error) {
	userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
	if err != nil {
		return 0, err
	}

	if _, err := s.repomanager.Users(s.db).GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return 0, common.ErrInvalidToken
		}
		return 0, common.ErrInternal
	}

	return userID, nil
}
