package repository

import (
	"context"

	"agrishare-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByIdentityToken(ctx context.Context, token string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error

	// DeleteCascade removes the user together with all owned resources in a
	// single database transaction. It fails with
	// domain.ErrHasActiveTransactions when any owned resource, or the user
	// as a counterparty, still has a pending or active transaction.
	DeleteCascade(ctx context.Context, id int32) error
}

type ResourceRepository interface {
	Create(ctx context.Context, resource *domain.Resource) error
	GetByID(ctx context.Context, id int32) (*domain.Resource, error)
	Update(ctx context.Context, resource *domain.Resource) error

	// Delete removes a resource unless a pending or active transaction
	// references it, in which case it fails with
	// domain.ErrHasActiveTransactions.
	Delete(ctx context.Context, id int32) error

	ListByOwner(ctx context.Context, ownerID int32, page, pageSize int32) ([]domain.Resource, int32, error)
	ListAvailable(ctx context.Context, category string, listingType string, page, pageSize int32) ([]domain.Resource, int32, error)
	HasOpenTransaction(ctx context.Context, resourceID int32) (bool, error)
}

// TransactionRepository owns every write that spans a transaction row and
// its resource's availability or rating columns. Each compound method
// executes as one database transaction so callers never observe a partial
// state.
type TransactionRepository interface {
	// CreateAndHoldResource inserts a pending transaction and flips the
	// resource's availability to false in one unit. Concurrent requests
	// against the same resource are serialized by the database row lock;
	// losers fail with domain.ErrResourceUnavailable.
	CreateAndHoldResource(ctx context.Context, t *domain.Transaction) error

	GetByID(ctx context.Context, id int32) (*domain.Transaction, error)

	// Activate moves a pending transaction to active. The status guard is
	// re-checked in SQL; a lost race fails with domain.ErrInvalidTransition.
	Activate(ctx context.Context, id int32) error

	// CancelAndReleaseResource moves a pending or active transaction to
	// cancelled and restores the resource's availability in one unit.
	CancelAndReleaseResource(ctx context.Context, id int32) error

	// CompleteAndReleaseResource moves an active transaction to completed,
	// records end date, final amount and the write-once rating/review,
	// restores availability, and recomputes the resource's aggregate
	// rating - all in one unit.
	CompleteAndReleaseResource(ctx context.Context, t *domain.Transaction) error

	ListByUser(ctx context.Context, userID int32, status string, page, pageSize int32) ([]domain.Transaction, int32, error)
	ListByResource(ctx context.Context, resourceID int32) ([]domain.Transaction, error)
}
