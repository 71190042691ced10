// Package remote declares the collaborator interfaces the client core
// consumes. Implementations live in subpackages: rest (HTTP/JSON with
// bearer credentials) and memory (in-process, for tests and offline
// use).
package remote

import (
	"context"

	"fittrack/internal/domain"
)

// Credentials is the shape returned by the authentication
// collaborator on a successful login or account creation.
type Credentials struct {
	UserID   string      `json:"userId"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Role     domain.Role `json:"role"`
	Token    string      `json:"token"`
}

// AuthAPI is the authentication collaborator.
type AuthAPI interface {
	// Authenticate validates the credential pair. Fails with
	// domain.ErrInvalidCredentials on a bad pair.
	Authenticate(ctx context.Context, email, secret string) (*Credentials, error)
	// CreateAccount registers a new account. Fails with
	// domain.ErrDuplicateAccount if the email is already taken.
	CreateAccount(ctx context.Context, name, email, secret string) (*Credentials, error)
}

// Page is one page of a paginated listing.
type Page[T any] struct {
	Items    []T  `json:"items"`
	Page     int  `json:"page"`
	PageSize int  `json:"pageSize"`
	Total    int  `json:"total"`
	HasNext  bool `json:"hasNextPage"`
	HasPrev  bool `json:"hasPreviousPage"`
}

// ExerciseAPI is the catalog collaborator. All calls are scoped to the
// principal whose bearer credential the implementation carries.
type ExerciseAPI interface {
	List(ctx context.Context) (*Page[domain.Exercise], error)
	Create(ctx context.Context, name string, group domain.MuscleGroup) (*domain.Exercise, error)
	Update(ctx context.Context, id string, patch domain.ExercisePatch) (*domain.Exercise, error)
	Delete(ctx context.Context, id string) error
}

// WorkoutAPI is the workout log collaborator.
type WorkoutAPI interface {
	List(ctx context.Context) (*Page[domain.Workout], error)
	Create(ctx context.Context, workout domain.Workout) (*domain.Workout, error)
	Update(ctx context.Context, id string, patch domain.WorkoutPatch) (*domain.Workout, error)
	Delete(ctx context.Context, id string) error
}
