package service

import (
	"context"
	"time"

	"agrishare-backend/internal/domain"
	"agrishare-backend/internal/logger"
	"agrishare-backend/internal/repository"
)

type transactionService struct {
	txRepo       repository.TransactionRepository
	resourceRepo repository.ResourceRepository
	userRepo     repository.UserRepository

	// requireTypeMatch rejects requests whose transaction type does not
	// pair with the resource's listing type (buy/sell, rent/rent,
	// borrow/borrow).
	requireTypeMatch bool
}

func NewTransactionService(
	txRepo repository.TransactionRepository,
	resourceRepo repository.ResourceRepository,
	userRepo repository.UserRepository,
	requireTypeMatch bool,
) TransactionService {
	return &transactionService{
		txRepo:           txRepo,
		resourceRepo:     resourceRepo,
		userRepo:         userRepo,
		requireTypeMatch: requireTypeMatch,
	}
}

func (s *transactionService) RequestTransaction(ctx context.Context, resourceID, counterpartyID int32, txType domain.TransactionType, amount *float64) (*domain.Transaction, error) {
	if !txType.Valid() {
		return nil, domain.ErrInvalidTransactionType
	}

	resource, err := s.resourceRepo.GetByID(ctx, resourceID)
	if err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, counterpartyID); err != nil {
		return nil, err
	}
	if resource.OwnerID == counterpartyID {
		return nil, domain.ErrSelfTransaction
	}
	if s.requireTypeMatch && !txType.MatchesListing(resource.ListingType) {
		return nil, domain.ErrTypeMismatch
	}
	if !resource.IsAvailable {
		return nil, domain.ErrResourceUnavailable
	}

	t := &domain.Transaction{
		ResourceID: resourceID,
		UserID:     counterpartyID,
		Type:       txType,
		StartDate:  time.Now().UTC(),
		Status:     domain.TransactionStatusPending,
		Amount:     amount,
	}

	// The repository re-checks availability under the row lock, so of two
	// racing requests exactly one wins.
	if err := s.txRepo.CreateAndHoldResource(ctx, t); err != nil {
		return nil, err
	}

	logger.Info("transaction requested", "transaction_id", t.ID, "resource_id", resourceID, "user_id", counterpartyID, "type", txType)
	return t, nil
}

func (s *transactionService) Activate(ctx context.Context, id int32) (*domain.Transaction, error) {
	t, err := s.txRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !t.Status.CanTransitionTo(domain.TransactionStatusActive) {
		return nil, domain.ErrInvalidTransition
	}

	if err := s.txRepo.Activate(ctx, id); err != nil {
		return nil, err
	}
	t.Status = domain.TransactionStatusActive

	logger.Info("transaction activated", "transaction_id", id)
	return t, nil
}

func (s *transactionService) Cancel(ctx context.Context, id int32) (*domain.Transaction, error) {
	t, err := s.txRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !t.Status.CanTransitionTo(domain.TransactionStatusCancelled) {
		return nil, domain.ErrInvalidTransition
	}

	if err := s.txRepo.CancelAndReleaseResource(ctx, id); err != nil {
		return nil, err
	}
	t.Status = domain.TransactionStatusCancelled

	logger.Info("transaction cancelled", "transaction_id", id, "resource_id", t.ResourceID)
	return t, nil
}

func (s *transactionService) Complete(ctx context.Context, id int32, endDate time.Time, finalAmount float64, rating *int32, review string) (*domain.Transaction, error) {
	if rating != nil && (*rating < domain.MinRating || *rating > domain.MaxRating) {
		return nil, domain.ErrInvalidRating
	}

	t, err := s.txRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !t.Status.CanTransitionTo(domain.TransactionStatusCompleted) {
		return nil, domain.ErrInvalidTransition
	}

	t.EndDate = &endDate
	t.Amount = &finalAmount
	t.Rating = rating
	t.Review = review

	if err := s.txRepo.CompleteAndReleaseResource(ctx, t); err != nil {
		return nil, err
	}

	logger.Info("transaction completed", "transaction_id", id, "resource_id", t.ResourceID, "rated", rating != nil)
	return t, nil
}

func (s *transactionService) GetTransaction(ctx context.Context, id int32) (*domain.Transaction, error) {
	return s.txRepo.GetByID(ctx, id)
}

func (s *transactionService) ListByUser(ctx context.Context, userID int32, status string, page, pageSize int32) ([]domain.Transaction, int32, error) {
	return s.txRepo.ListByUser(ctx, userID, status, page, pageSize)
}

func (s *transactionService) ListByResource(ctx context.Context, resourceID int32) ([]domain.Transaction, error) {
	return s.txRepo.ListByResource(ctx, resourceID)
}
