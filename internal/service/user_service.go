package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"exercise-tracker/internal/domain"
	"exercise-tracker/internal/repository"
)

// --- Error Definitions ---
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrValidationFailed = errors.New("validation failed")
)

// UserService exposes user creation and listing.
type UserService interface {
	CreateUser(ctx context.Context, username string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// userService implements the UserService interface.
type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{
		userRepo: userRepo,
	}
}

// CreateUser persists a new user with a fresh id. Duplicate usernames are
// allowed, so the only validation is that the name is non-empty.
func (s *userService) CreateUser(ctx context.Context, username string) (*domain.User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, fmt.Errorf("%w: username is required", ErrValidationFailed)
	}

	user := &domain.User{
		Username: username,
	}

	userID, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = userID

	return user, nil
}

// ListUsers retrieves all users in store order.
func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.GetAll(ctx)
}
