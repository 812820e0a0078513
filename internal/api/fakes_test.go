package api

import (
	"context"
	"fmt"
	"strings"
	"time"

	"exercise-tracker/internal/domain"
	"exercise-tracker/internal/repository"
	"exercise-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeUserService is an in-memory stand-in for service.UserService.
type fakeUserService struct {
	users     []domain.User
	createErr error
	listErr   error
}

func (s *fakeUserService) CreateUser(_ context.Context, username string) (*domain.User, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	if strings.TrimSpace(username) == "" {
		return nil, fmt.Errorf("%w: username is required", service.ErrValidationFailed)
	}
	user := domain.User{
		ID:        primitive.NewObjectID(),
		Username:  username,
		CreatedAt: time.Now().UTC(),
	}
	s.users = append(s.users, user)
	return &user, nil
}

func (s *fakeUserService) ListUsers(_ context.Context) ([]domain.User, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return append([]domain.User(nil), s.users...), nil
}

// fakeExerciseService is an in-memory stand-in for service.ExerciseService
// backed by a single known user.
type fakeExerciseService struct {
	user      *domain.User
	exercises []domain.Exercise
	err       error
}

func (s *fakeExerciseService) AddExercise(_ context.Context, userID primitive.ObjectID, description string, duration int, date time.Time) (*domain.User, *domain.Exercise, error) {
	if s.err != nil {
		return nil, nil, s.err
	}
	if s.user == nil || s.user.ID != userID {
		return nil, nil, service.ErrUserNotFound
	}
	if date.IsZero() {
		date = time.Now().UTC().Truncate(24 * time.Hour)
	}
	exercise := domain.Exercise{
		ID:          primitive.NewObjectID(),
		UserID:      userID,
		Description: description,
		Duration:    duration,
		Date:        date,
	}
	s.exercises = append(s.exercises, exercise)
	return s.user, &exercise, nil
}

func (s *fakeExerciseService) GetLog(_ context.Context, userID primitive.ObjectID, filter repository.LogFilter) (*domain.User, []domain.Exercise, error) {
	if s.err != nil {
		return nil, nil, s.err
	}
	if s.user == nil || s.user.ID != userID {
		return nil, nil, service.ErrUserNotFound
	}
	var result []domain.Exercise
	for _, ex := range s.exercises {
		if filter.From != nil && ex.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && ex.Date.After(*filter.To) {
			continue
		}
		result = append(result, ex)
		if filter.Limit > 0 && int64(len(result)) == filter.Limit {
			break
		}
	}
	return s.user, result, nil
}

// setupRouter builds a test engine with the full route table.
func setupRouter(userService service.UserService, exerciseService service.ExerciseService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupRoutes(router, userService, exerciseService)
	return router
}
