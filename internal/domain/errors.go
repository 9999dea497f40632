package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalog errors
	ErrMsgConfigIO       = "configuration store I/O failure"
	ErrMsgInvalidReward  = "invalid reward value"
	ErrMsgJobNotFound    = "job does not exist"
	ErrMsgInvalidCatalog = "invalid job catalog"

	// Player errors
	ErrMsgPermissionDenied = "permission denied"
	ErrMsgInvalidPlayerID  = "invalid player id"
	ErrMsgPlayerOffline    = "player is not online"
	ErrMsgRecordNotFound   = "player record not found"

	// Action errors
	ErrMsgInvalidCategory = "invalid action category"
	ErrMsgInvalidAmount   = "invalid amount"

	// Economy errors
	ErrMsgAccountUnavailable = "account unavailable"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrConfigIO       = errors.New(ErrMsgConfigIO)
	ErrInvalidReward  = errors.New(ErrMsgInvalidReward)
	ErrJobNotFound    = errors.New(ErrMsgJobNotFound)
	ErrInvalidCatalog = errors.New(ErrMsgInvalidCatalog)

	ErrPermissionDenied = errors.New(ErrMsgPermissionDenied)
	ErrInvalidPlayerID  = errors.New(ErrMsgInvalidPlayerID)
	ErrPlayerOffline    = errors.New(ErrMsgPlayerOffline)
	ErrRecordNotFound   = errors.New(ErrMsgRecordNotFound)

	ErrInvalidCategory = errors.New(ErrMsgInvalidCategory)
	ErrInvalidAmount   = errors.New(ErrMsgInvalidAmount)

	ErrAccountUnavailable = errors.New(ErrMsgAccountUnavailable)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
