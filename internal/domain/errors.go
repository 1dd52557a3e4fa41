package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound  = "user not found"
	ErrMsgUsernameTaken = "username already taken"
	ErrMsgUnauthorized  = "unauthorized"
	ErrMsgInvalidAmount = "amount must be positive"

	// Gacha errors
	ErrMsgConstellationNotFound = "constellation not found"
	ErrMsgInsufficientCurrency  = "insufficient kizuna stars"
	ErrMsgInvalidPullCount      = "pull count must be at least 1"
	ErrMsgInvalidDropRates      = "invalid drop rates"

	// Database/System errors
	ErrMsgTxClosed = "tx is closed"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrUserNotFound  = errors.New(ErrMsgUserNotFound)
	ErrUsernameTaken = errors.New(ErrMsgUsernameTaken)
	ErrUnauthorized  = errors.New(ErrMsgUnauthorized)
	ErrInvalidAmount = errors.New(ErrMsgInvalidAmount)

	ErrConstellationNotFound = errors.New(ErrMsgConstellationNotFound)
	ErrInsufficientCurrency  = errors.New(ErrMsgInsufficientCurrency)
	ErrInvalidPullCount      = errors.New(ErrMsgInvalidPullCount)
	ErrInvalidDropRates      = errors.New(ErrMsgInvalidDropRates)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)

// ShortfallError is an ErrInsufficientCurrency carrying the amounts involved
type ShortfallError struct {
	Need int
	Have int
}

func (e *ShortfallError) Error() string {
	return fmt.Sprintf("%s: need %d, have %d (short by %d)", ErrMsgInsufficientCurrency, e.Need, e.Have, e.Shortfall())
}

// Shortfall is how many more Kizuna Stars the pull required
func (e *ShortfallError) Shortfall() int {
	return e.Need - e.Have
}

// Is makes errors.Is(err, ErrInsufficientCurrency) hold
func (e *ShortfallError) Is(target error) bool {
	return target == ErrInsufficientCurrency
}
