package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"exercise-tracker/internal/domain"
	"exercise-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExerciseService exposes exercise logging and per-user log queries.
// Both operations require the referenced user to exist.
type ExerciseService interface {
	AddExercise(ctx context.Context, userID primitive.ObjectID, description string, duration int, date time.Time) (*domain.User, *domain.Exercise, error)
	GetLog(ctx context.Context, userID primitive.ObjectID, filter repository.LogFilter) (*domain.User, []domain.Exercise, error)
}

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	userRepo     repository.UserRepository
	exerciseRepo repository.ExerciseRepository
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(userRepo repository.UserRepository, exerciseRepo repository.ExerciseRepository) ExerciseService {
	return &exerciseService{
		userRepo:     userRepo,
		exerciseRepo: exerciseRepo,
	}
}

// AddExercise logs an exercise against an existing user. A zero date means
// "today". The stored date is truncated to midnight UTC so that date-range
// log queries stay inclusive on both ends.
func (s *exerciseService) AddExercise(ctx context.Context, userID primitive.ObjectID, description string, duration int, date time.Time) (*domain.User, *domain.Exercise, error) {
	if description == "" {
		return nil, nil, fmt.Errorf("%w: description is required", ErrValidationFailed)
	}
	if duration <= 0 {
		return nil, nil, fmt.Errorf("%w: duration must be a positive number of minutes", ErrValidationFailed)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, err
	}

	if date.IsZero() {
		date = time.Now()
	}

	exercise := &domain.Exercise{
		UserID:      user.ID,
		Description: description,
		Duration:    duration,
		Date:        dateOnly(date),
	}

	exerciseID, err := s.exerciseRepo.Create(ctx, exercise)
	if err != nil {
		return nil, nil, err
	}
	exercise.ID = exerciseID

	return user, exercise, nil
}

// GetLog retrieves a user's exercise log, narrowed by the given filter.
func (s *exerciseService) GetLog(ctx context.Context, userID primitive.ObjectID, filter repository.LogFilter) (*domain.User, []domain.Exercise, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, err
	}

	exercises, err := s.exerciseRepo.GetByUserID(ctx, user.ID, filter)
	if err != nil {
		return nil, nil, err
	}

	return user, exercises, nil
}

// dateOnly truncates a timestamp to midnight UTC.
func dateOnly(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
