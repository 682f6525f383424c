// Package services holds the stub API server's business logic: accounts,
// categories and expenses. Handlers translate its errors into HTTP status
// codes; storage goes through repomanager.
package services

import "github.com/dmitrijs2005/gophspend/internal/common"

// InputError is a request the server refuses to act on. Its message is
// returned to the client as the response detail.
type InputError struct {
	Msg string
}

func (e *InputError) Error() string { return e.Msg }

func (e *InputError) Unwrap() error { return common.ErrValidation }

func invalid(msg string) error {
	return &InputError{Msg: msg}
}
