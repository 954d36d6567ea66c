package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Lookup errors
	ErrMsgItemNotFound     = "item not found"
	ErrMsgTemplateNotFound = "item template not found"

	// Programming errors
	ErrMsgSocketIndexOutOfRange = "socket index out of range"
	ErrMsgTemplateNotBound      = "item template not bound"
	ErrMsgInvalidOwner          = "invalid owner"
	ErrMsgInvalidAmount         = "amount must not be negative"
	ErrMsgInvariantViolation    = "item invariant violated"
	ErrMsgContainerRejected     = "container cannot accept item"

	// Content errors
	ErrMsgDuplicateTemplate = "duplicate template id"
	ErrMsgInvalidContent    = "invalid content"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
	ErrMsgTxClosed      = "tx is closed"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrItemNotFound     = errors.New(ErrMsgItemNotFound)
	ErrTemplateNotFound = errors.New(ErrMsgTemplateNotFound)

	ErrSocketIndexOutOfRange = errors.New(ErrMsgSocketIndexOutOfRange)
	ErrTemplateNotBound      = errors.New(ErrMsgTemplateNotBound)
	ErrInvalidOwner          = errors.New(ErrMsgInvalidOwner)
	ErrInvalidAmount         = errors.New(ErrMsgInvalidAmount)
	ErrInvariantViolation    = errors.New(ErrMsgInvariantViolation)
	ErrContainerRejected     = errors.New(ErrMsgContainerRejected)

	ErrDuplicateTemplate = errors.New(ErrMsgDuplicateTemplate)
	ErrInvalidContent    = errors.New(ErrMsgInvalidContent)

	ErrDatabase = errors.New(ErrMsgDatabaseError)
)
