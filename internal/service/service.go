package service

import (
	"context"
	"time"

	"agrishare-backend/internal/domain"
)

type UserService interface {
	CreateUser(ctx context.Context, identityToken, email, name, phone, location, language string) (*domain.User, error)
	GetUser(ctx context.Context, id int32) (*domain.User, error)
	GetUserByIdentityToken(ctx context.Context, token string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id int32, name, email, phone, location, language string) (*domain.User, error)
	DeleteUser(ctx context.Context, id int32) error
}

// ResourceUpdate carries the owner-editable fields of a listing; nil
// pointers leave the stored value untouched.
type ResourceUpdate struct {
	Name        *string
	Category    *string
	Description *string
	Price       *float64
	Condition   *string
	AgeYears    *int32
	Quality     *int32
	ImageURL    *string
	Location    *string
	IsAvailable *bool
}

type ResourceService interface {
	ListResource(ctx context.Context, resource *domain.Resource) error
	GetResource(ctx context.Context, id int32) (*domain.Resource, error)
	UpdateResource(ctx context.Context, resourceID, ownerID int32, fields ResourceUpdate) (*domain.Resource, error)
	RemoveResource(ctx context.Context, resourceID, ownerID int32) error
	ListMyResources(ctx context.Context, ownerID int32, page, pageSize int32) ([]domain.Resource, int32, error)
	ListAvailable(ctx context.Context, category, listingType string, page, pageSize int32) ([]domain.Resource, int32, error)
}

type TransactionService interface {
	RequestTransaction(ctx context.Context, resourceID, counterpartyID int32, txType domain.TransactionType, amount *float64) (*domain.Transaction, error)
	Activate(ctx context.Context, id int32) (*domain.Transaction, error)
	Cancel(ctx context.Context, id int32) (*domain.Transaction, error)
	Complete(ctx context.Context, id int32, endDate time.Time, finalAmount float64, rating *int32, review string) (*domain.Transaction, error)
	GetTransaction(ctx context.Context, id int32) (*domain.Transaction, error)
	ListByUser(ctx context.Context, userID int32, status string, page, pageSize int32) ([]domain.Transaction, int32, error)
	ListByResource(ctx context.Context, resourceID int32) ([]domain.Transaction, error)
}
