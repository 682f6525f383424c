package common

// TokenKey is the token store key holding the bearer token.
// Absence of the key means the user is logged out.
const TokenKey = "token"

// HTTP header names used by the API client and the stub server.
const (
	AuthorizationHeaderName = "Authorization"
	RequestIDHeaderName     = "X-Request-ID"
	BearerPrefix            = "Bearer "
)
