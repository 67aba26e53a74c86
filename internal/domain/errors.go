package domain

import (
	"errors"
	"fmt"
)

// Base error categories. Specific failures below wrap one of these with
// %w, so callers can match either the exact condition or the broad class
// with errors.Is.
var (
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrValidation        = errors.New("validation failed")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrUnauthorized      = errors.New("not authorized")
)

var (
	ErrUserNotFound        = fmt.Errorf("user %w", ErrNotFound)
	ErrResourceNotFound    = fmt.Errorf("resource %w", ErrNotFound)
	ErrTransactionNotFound = fmt.Errorf("transaction %w", ErrNotFound)

	ErrDuplicateIdentity     = fmt.Errorf("%w: identity token already registered", ErrConflict)
	ErrDuplicateEmail        = fmt.Errorf("%w: email already registered", ErrConflict)
	ErrResourceUnavailable   = fmt.Errorf("%w: resource is not available", ErrConflict)
	ErrSelfTransaction       = fmt.Errorf("%w: requester owns the resource", ErrConflict)
	ErrHasActiveTransactions = fmt.Errorf("%w: open transactions exist", ErrConflict)

	ErrNotOwner = fmt.Errorf("%w: caller does not own the resource", ErrUnauthorized)

	ErrInvalidPrice           = fmt.Errorf("%w: price must be non-negative", ErrValidation)
	ErrInvalidQuality         = fmt.Errorf("%w: quality must be between 1 and 10", ErrValidation)
	ErrInvalidAge             = fmt.Errorf("%w: age in years must be non-negative", ErrValidation)
	ErrInvalidListingType     = fmt.Errorf("%w: unknown listing type", ErrValidation)
	ErrInvalidTransactionType = fmt.Errorf("%w: unknown transaction type", ErrValidation)
	ErrTypeMismatch           = fmt.Errorf("%w: transaction type does not match listing type", ErrValidation)
	ErrInvalidRating          = fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	ErrMissingField           = fmt.Errorf("%w: required field is empty", ErrValidation)
)
