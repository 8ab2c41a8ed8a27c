package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/vedran77/inkwell/internal/domain"
	"github.com/vedran77/inkwell/internal/errs"
	"github.com/vedran77/inkwell/internal/repository"
)

var ErrUserNotFound = errors.New("user not found")

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

type UpdateUserInput struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
}

func (s *UserService) List(ctx context.Context) ([]domain.Profile, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	profiles := make([]domain.Profile, 0, len(users))
	for i := range users {
		profiles = append(profiles, users[i].Profile())
	}
	return profiles, nil
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	p := user.Profile()
	return &p, nil
}

// UpdateProfile lets a caller mutate their own record only: the path id
// must equal the authenticated caller's id.
func (s *UserService) UpdateProfile(ctx context.Context, callerID, userID uuid.UUID, input UpdateUserInput) (*domain.Profile, error) {
	if callerID != userID {
		return nil, ErrUserNotFound
	}

	user, err := s.userRepo.UpdateProfile(ctx, callerID, input.Username, input.Email)
	if err != nil {
		if errors.Is(err, errs.ErrAlreadyExists) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	p := user.Profile()
	return &p, nil
}
