package service

import (
	"context"
	"errors"
	"time"

	"exercise-tracker/internal/domain"
	"exercise-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeUserRepo is an in-memory UserRepository so services can be exercised
// without a running MongoDB.
type fakeUserRepo struct {
	users []domain.User
	err   error // When set, every call fails with this error
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) (primitive.ObjectID, error) {
	if r.err != nil {
		return primitive.NilObjectID, r.err
	}
	if user.Username == "" {
		return primitive.NilObjectID, errors.New("username is required")
	}
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now().UTC()
	r.users = append(r.users, *user)
	return user.ID, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for i := range r.users {
		if r.users[i].ID == id {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetAll(_ context.Context) ([]domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	return append([]domain.User(nil), r.users...), nil
}

// fakeExerciseRepo is an in-memory ExerciseRepository mirroring the mongo
// implementation's filter semantics.
type fakeExerciseRepo struct {
	exercises []domain.Exercise
	err       error
}

func (r *fakeExerciseRepo) Create(_ context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	if r.err != nil {
		return primitive.NilObjectID, r.err
	}
	exercise.ID = primitive.NewObjectID()
	exercise.CreatedAt = time.Now().UTC()
	r.exercises = append(r.exercises, *exercise)
	return exercise.ID, nil
}

func (r *fakeExerciseRepo) GetByUserID(_ context.Context, userID primitive.ObjectID, filter repository.LogFilter) ([]domain.Exercise, error) {
	if r.err != nil {
		return nil, r.err
	}
	var result []domain.Exercise
	for _, ex := range r.exercises {
		if ex.UserID != userID {
			continue
		}
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
	return result, nil
}
