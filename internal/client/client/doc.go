// Package client is the HTTP client of the finance API.
//
// # Overview
//
// The package provides:
//  1. Small interfaces per API slice (AuthAPI, CategoryAPI, ExpenseAPI) so
//     services and tests depend only on what they call.
//  2. HTTPClient, a JSON-over-HTTP implementation. Authenticated calls read
//     the bearer token from a TokenSource on every request, so a token
//     written to the token store is picked up by the very next call.
//  3. Login identity classification (ClassifyIdentity).
//
// # Error Handling
//
// Non-2xx responses become *APIError whose message is the server's detail
// verbatim; errors.Is maps 401/403 to ErrUnauthorized and 404 to
// ErrNotFound. Transport failures wrap ErrUnavailable. UserMessage turns
// any error into text fit for the terminal.
//
// No call is retried.
package client
