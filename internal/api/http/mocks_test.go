package http

import (
	"context"
	"time"

	"agrishare-backend/internal/domain"
	"agrishare-backend/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockUserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, identityToken, email, name, phone, location, language string) (*domain.User, error) {
	args := m.Called(ctx, identityToken, email, name, phone, location, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) GetUser(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) GetUserByIdentityToken(ctx context.Context, token string) (*domain.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) UpdateProfile(ctx context.Context, id int32, name, email, phone, location, language string) (*domain.User, error) {
	args := m.Called(ctx, id, name, email, phone, location, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) DeleteUser(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockResourceService
type MockResourceService struct {
	mock.Mock
}

func (m *MockResourceService) ListResource(ctx context.Context, resource *domain.Resource) error {
	args := m.Called(ctx, resource)
	return args.Error(0)
}
func (m *MockResourceService) GetResource(ctx context.Context, id int32) (*domain.Resource, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resource), args.Error(1)
}
func (m *MockResourceService) UpdateResource(ctx context.Context, resourceID, ownerID int32, fields service.ResourceUpdate) (*domain.Resource, error) {
	args := m.Called(ctx, resourceID, ownerID, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resource), args.Error(1)
}
func (m *MockResourceService) RemoveResource(ctx context.Context, resourceID, ownerID int32) error {
	args := m.Called(ctx, resourceID, ownerID)
	return args.Error(0)
}
func (m *MockResourceService) ListMyResources(ctx context.Context, ownerID int32, page, pageSize int32) ([]domain.Resource, int32, error) {
	args := m.Called(ctx, ownerID, page, pageSize)
	return args.Get(0).([]domain.Resource), args.Get(1).(int32), args.Error(2)
}
func (m *MockResourceService) ListAvailable(ctx context.Context, category, listingType string, page, pageSize int32) ([]domain.Resource, int32, error) {
	args := m.Called(ctx, category, listingType, page, pageSize)
	return args.Get(0).([]domain.Resource), args.Get(1).(int32), args.Error(2)
}

// MockTransactionService
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) RequestTransaction(ctx context.Context, resourceID, counterpartyID int32, txType domain.TransactionType, amount *float64) (*domain.Transaction, error) {
	args := m.Called(ctx, resourceID, counterpartyID, txType, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) Activate(ctx context.Context, id int32) (*domain.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) Cancel(ctx context.Context, id int32) (*domain.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) Complete(ctx context.Context, id int32, endDate time.Time, finalAmount float64, rating *int32, review string) (*domain.Transaction, error) {
	args := m.Called(ctx, id, endDate, finalAmount, rating, review)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) GetTransaction(ctx context.Context, id int32) (*domain.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) ListByUser(ctx context.Context, userID int32, status string, page, pageSize int32) ([]domain.Transaction, int32, error) {
	args := m.Called(ctx, userID, status, page, pageSize)
	return args.Get(0).([]domain.Transaction), args.Get(1).(int32), args.Error(2)
}
func (m *MockTransactionService) ListByResource(ctx context.Context, resourceID int32) ([]domain.Transaction, error) {
	args := m.Called(ctx, resourceID)
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
