package service

import (
	"context"

	"agrishare-backend/internal/domain"
	"agrishare-backend/internal/repository"
)

type resourceService struct {
	resourceRepo repository.ResourceRepository
	userRepo     repository.UserRepository
}

func NewResourceService(resourceRepo repository.ResourceRepository, userRepo repository.UserRepository) ResourceService {
	return &resourceService{
		resourceRepo: resourceRepo,
		userRepo:     userRepo,
	}
}

func (s *resourceService) ListResource(ctx context.Context, res *domain.Resource) error {
	if res.Name == "" || res.Category == "" {
		return domain.ErrMissingField
	}
	if !res.ListingType.Valid() {
		return domain.ErrInvalidListingType
	}
	if res.Price < 0 {
		return domain.ErrInvalidPrice
	}
	if res.Quality == 0 {
		res.Quality = domain.DefaultQuality
	}
	if res.Quality < domain.MinQuality || res.Quality > domain.MaxQuality {
		return domain.ErrInvalidQuality
	}
	if res.AgeYears < 0 {
		return domain.ErrInvalidAge
	}

	// Owner must exist before the listing is accepted.
	if _, err := s.userRepo.GetByID(ctx, res.OwnerID); err != nil {
		return err
	}

	res.IsAvailable = true
	res.Rating = 0
	return s.resourceRepo.Create(ctx, res)
}

func (s *resourceService) GetResource(ctx context.Context, id int32) (*domain.Resource, error) {
	res, err := s.resourceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if owner, err := s.userRepo.GetByID(ctx, res.OwnerID); err == nil {
		res.Owner = owner
	}
	return res, nil
}

func (s *resourceService) UpdateResource(ctx context.Context, resourceID, ownerID int32, fields ResourceUpdate) (*domain.Resource, error) {
	res, err := s.resourceRepo.GetByID(ctx, resourceID)
	if err != nil {
		return nil, err
	}
	if res.OwnerID != ownerID {
		return nil, domain.ErrNotOwner
	}

	if fields.Name != nil {
		res.Name = *fields.Name
	}
	if fields.Category != nil {
		res.Category = *fields.Category
	}
	if fields.Description != nil {
		res.Description = *fields.Description
	}
	if fields.Price != nil {
		if *fields.Price < 0 {
			return nil, domain.ErrInvalidPrice
		}
		res.Price = *fields.Price
	}
	if fields.Condition != nil {
		res.Condition = *fields.Condition
	}
	if fields.AgeYears != nil {
		if *fields.AgeYears < 0 {
			return nil, domain.ErrInvalidAge
		}
		res.AgeYears = *fields.AgeYears
	}
	if fields.Quality != nil {
		if *fields.Quality < domain.MinQuality || *fields.Quality > domain.MaxQuality {
			return nil, domain.ErrInvalidQuality
		}
		res.Quality = *fields.Quality
	}
	if fields.ImageURL != nil {
		res.ImageURL = *fields.ImageURL
	}
	if fields.Location != nil {
		res.Location = *fields.Location
	}
	if fields.IsAvailable != nil {
		// The availability flag belongs to the ledger while a booking is
		// open; owners may only toggle it in between.
		open, err := s.resourceRepo.HasOpenTransaction(ctx, resourceID)
		if err != nil {
			return nil, err
		}
		if open {
			return nil, domain.ErrHasActiveTransactions
		}
		res.IsAvailable = *fields.IsAvailable
	}

	if err := s.resourceRepo.Update(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *resourceService) RemoveResource(ctx context.Context, resourceID, ownerID int32) error {
	res, err := s.resourceRepo.GetByID(ctx, resourceID)
	if err != nil {
		return err
	}
	if res.OwnerID != ownerID {
		return domain.ErrNotOwner
	}
	return s.resourceRepo.Delete(ctx, resourceID)
}

func (s *resourceService) ListMyResources(ctx context.Context, ownerID int32, page, pageSize int32) ([]domain.Resource, int32, error) {
	return s.resourceRepo.ListByOwner(ctx, ownerID, page, pageSize)
}

func (s *resourceService) ListAvailable(ctx context.Context, category, listingType string, page, pageSize int32) ([]domain.Resource, int32, error) {
	return s.resourceRepo.ListAvailable(ctx, category, listingType, page, pageSize)
}
