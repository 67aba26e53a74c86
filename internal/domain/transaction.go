package domain

import "time"

type TransactionType string

const (
	TransactionTypeRent   TransactionType = "rent"
	TransactionTypeBorrow TransactionType = "borrow"
	TransactionTypeBuy    TransactionType = "buy"
)

func (tt TransactionType) Valid() bool {
	switch tt {
	case TransactionTypeRent, TransactionTypeBorrow, TransactionTypeBuy:
		return true
	}
	return false
}

// MatchesListing reports whether a transaction type pairs with a listing
// type: rent with rent, borrow with borrow, buy with sell.
func (tt TransactionType) MatchesListing(lt ListingType) bool {
	switch tt {
	case TransactionTypeRent:
		return lt == ListingTypeRent
	case TransactionTypeBorrow:
		return lt == ListingTypeBorrow
	case TransactionTypeBuy:
		return lt == ListingTypeSell
	}
	return false
}

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusActive    TransactionStatus = "active"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusCancelled TransactionStatus = "cancelled"
)

// Terminal reports whether no further transitions leave this status.
func (s TransactionStatus) Terminal() bool {
	return s == TransactionStatusCompleted || s == TransactionStatusCancelled
}

// CanTransitionTo encodes the transaction state machine:
// pending -> active -> completed, with cancellation allowed from
// pending and active.
func (s TransactionStatus) CanTransitionTo(next TransactionStatus) bool {
	switch s {
	case TransactionStatusPending:
		return next == TransactionStatusActive || next == TransactionStatusCancelled
	case TransactionStatusActive:
		return next == TransactionStatusCompleted || next == TransactionStatusCancelled
	}
	return false
}

const (
	MinRating int32 = 1
	MaxRating int32 = 5
)

type Transaction struct {
	ID         int32             `json:"id"`
	ResourceID int32             `json:"resource_id"`
	UserID     int32             `json:"user_id"` // counterparty, never the resource owner
	Type       TransactionType   `json:"transaction_type"`
	StartDate  time.Time         `json:"start_date"`
	EndDate    *time.Time        `json:"end_date,omitempty"`
	Status     TransactionStatus `json:"status"`
	Amount     *float64          `json:"amount,omitempty"`
	Rating     *int32            `json:"rating,omitempty"` // 1-5 stars, write-once at completion
	Review     string            `json:"review,omitempty"`
	CreatedOn  time.Time         `json:"created_on"`
}
