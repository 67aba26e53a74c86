package service

import (
	"context"

	"agrishare-backend/internal/domain"
	"agrishare-backend/internal/repository"
)

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) CreateUser(ctx context.Context, identityToken, email, name, phone, location, language string) (*domain.User, error) {
	if identityToken == "" || email == "" || name == "" {
		return nil, domain.ErrMissingField
	}
	if language == "" {
		language = domain.DefaultLanguage
	}

	user := &domain.User{
		IdentityToken: identityToken,
		Email:         email,
		Name:          name,
		Phone:         phone,
		Location:      location,
		Language:      language,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id int32) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *userService) GetUserByIdentityToken(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrMissingField
	}
	return s.userRepo.GetByIdentityToken(ctx, token)
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if email == "" {
		return nil, domain.ErrMissingField
	}
	return s.userRepo.GetByEmail(ctx, email)
}

func (s *userService) UpdateProfile(ctx context.Context, id int32, name, email, phone, location, language string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != "" {
		user.Name = name
	}
	if email != "" {
		user.Email = email
	}
	if phone != "" {
		user.Phone = phone
	}
	if location != "" {
		user.Location = location
	}
	if language != "" {
		user.Language = language
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id int32) error {
	return s.userRepo.DeleteCascade(ctx, id)
}
