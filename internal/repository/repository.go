package repository

import (
	"context"
	"time"

	"exercise-tracker/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer
var (
	ErrNotFound = RepositoryError("not found")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// LogFilter narrows an exercise log query. The zero value applies no
// filtering at all.
type LogFilter struct {
	From  *time.Time // Inclusive lower bound on the exercise date
	To    *time.Time // Inclusive upper bound on the exercise date
	Limit int64      // Maximum number of entries to return; 0 means unlimited
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	GetAll(ctx context.Context) ([]domain.User, error)
}

// ExerciseRepository defines the interface for interacting with exercise data.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID, filter LogFilter) ([]domain.Exercise, error)
}
