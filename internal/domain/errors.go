package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Request errors
	ErrMsgRequestNotFound = "request not found"

	// Cart errors
	ErrMsgCartEmpty = "cart is empty"

	// Item errors
	ErrMsgItemNotFound = "item not found"

	// Submission errors
	ErrMsgNoItems = "no items in request"

	// Roster errors
	ErrMsgRosterUnavailable = "spell roster unavailable"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Request errors
	ErrRequestNotFound = errors.New(ErrMsgRequestNotFound)

	// Cart errors
	ErrCartEmpty = errors.New(ErrMsgCartEmpty)

	// Item errors
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)

	// Submission errors
	ErrNoItems = errors.New(ErrMsgNoItems)

	// Roster errors
	ErrRosterUnavailable = errors.New(ErrMsgRosterUnavailable)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
