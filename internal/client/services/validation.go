package services

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophspend/internal/client/models"
	"github.com/dmitrijs2005/gophspend/internal/common"
)

// ValidationError is a form error detected before any network call. Its
// message is shown to the user verbatim.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
func (e *ValidationError) Unwrap() error { return common.ErrValidation }

var (
	ErrPasswordMismatch = &ValidationError{Field: "confirm_password", Message: "Passwords do not match"}
	ErrPasswordRequired = &ValidationError{Field: "password", Message: "Please enter a password"}
	ErrIdentityRequired = &ValidationError{Field: "identity", Message: "Please enter your email, phone number or username"}
	ErrInvalidAmount    = &ValidationError{Field: "amount", Message: "Please enter a valid amount"}
	ErrCategoryRequired = &ValidationError{Field: "category", Message: "Please select a category"}
	ErrInvalidDate      = &ValidationError{Field: "date", Message: "Please enter a date as YYYY-MM-DD"}
	ErrCategoryName     = &ValidationError{Field: "name", Message: "Please enter a category name"}
)

// ValidateLogin checks the sign-in form. Exactly one identity field is sent,
// so a blank identity cannot be sent at all.
func ValidateLogin(identity string) error {
	if strings.TrimSpace(identity) == "" {
		return ErrIdentityRequired
	}
	return nil
}

// ValidateRegistration checks the sign-up form.
func ValidateRegistration(req models.RegisterRequest) error {
	if req.Password != req.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if req.Password == "" {
		return ErrPasswordRequired
	}
	return nil
}

// ParseAmount accepts a positive finite decimal.
func ParseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, ErrInvalidAmount
	}
	return v, nil
}

// NormalizeDate returns s in YYYY-MM-DD form, or today's date when s is blank.
func NormalizeDate(s string, now time.Time) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return models.FormatDate(now), nil
	}
	t, err := models.ParseDate(s)
	if err != nil {
		return "", ErrInvalidDate
	}
	return models.FormatDate(t), nil
}

func categoryName(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrCategoryName
	}
	return s, nil
}
