package errors

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is returned when a mutation is attempted without an
// authenticated subject, or when a caller tries to act as somebody else.
var ErrUnauthorized = errors.New("Unauthorized")

// ErrNotFound covers both a missing record and a record owned by another
// user. The two cases are deliberately indistinguishable so callers cannot
// probe for the existence of other users' records.
var ErrNotFound = errors.New("Not found")

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	ok := errors.As(err, &validationError)
	return ok
}

var ErrInvalidTransactionType = NewValidationError("Type must be 'income' or 'expense'")
var ErrInvalidBudgetPeriod = NewValidationError("Period must be 'weekly' or 'monthly'")
var ErrInvalidAmount = NewValidationError("Amount must be greater than zero")

func NewInvalidDateError(date string) error {
	return &ValidationError{Msg: fmt.Sprintf("Invalid date '%s', expected YYYY-MM-DD", date)}
}
