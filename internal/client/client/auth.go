package client

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/dmitrijs2005/gophspend/internal/client/models"
	"github.com/dmitrijs2005/gophspend/internal/common"
)

const (
	loginPath  = "/api/v1/auth/login"
	signupPath = "/api/v1/auth/signup"
)

// IdentityKind tells which login field an identity string fills.
type IdentityKind int

const (
	IdentityUsername IdentityKind = iota
	IdentityEmail
	IdentityPhone
)

func (k IdentityKind) String() string {
	switch k {
	case IdentityEmail:
		return "email"
	case IdentityPhone:
		return "phone"
	default:
		return "username"
	}
}

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[0-9]{10}$`)
)

// ClassifyIdentity treats local@domain.tld as an email, exactly ten digits
// as a phone number and anything else as a username.
func ClassifyIdentity(identity string) IdentityKind {
	switch {
	case emailRe.MatchString(identity):
		return IdentityEmail
	case phoneRe.MatchString(identity):
		return IdentityPhone
	default:
		return IdentityUsername
	}
}

// NewLoginRequest fills exactly one identity field.
func NewLoginRequest(identity, password string) models.LoginRequest {
	req := models.LoginRequest{Password: password}
	switch ClassifyIdentity(identity) {
	case IdentityEmail:
		req.Email = identity
	case IdentityPhone:
		req.Phone = identity
	default:
		req.Username = identity
	}
	return req
}

// SignIn exchanges credentials for a bearer token. A rejected login comes
// back as *APIError carrying the server's detail. A blank identity is
// refused before any request.
func (c *HTTPClient) SignIn(ctx context.Context, identity, password string) (*models.LoginResponse, error) {
	if strings.TrimSpace(identity) == "" {
		return nil, fmt.Errorf("%w: identity is required", common.ErrValidation)
	}

	var resp models.LoginResponse
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   loginPath,
		body:   NewLoginRequest(identity, password),
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// SignUp registers a user. The server may or may not echo the user back;
// an empty body yields a zero RegisterResponse.
func (c *HTTPClient) SignUp(ctx context.Context, r models.RegisterRequest) (*models.RegisterResponse, error) {
	var resp models.RegisterResponse
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   signupPath,
		body:   r,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
