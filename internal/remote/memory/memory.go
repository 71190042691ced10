// Package memory provides in-process implementations of the remote
// collaborators. They back the offline mode of the CLI and stand in
// for the network in tests. The contract mirrors the REST backend:
// server-assigned ids, UTC timestamps, ErrNotFound on unknown ids.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"fittrack/internal/domain"
	"fittrack/internal/remote"
)

type account struct {
	id     string
	name   string
	secret string
}

// AuthAPI is an in-memory authentication collaborator.
type AuthAPI struct {
	mu       sync.Mutex
	accounts map[string]account
}

func NewAuthAPI() *AuthAPI {
	return &AuthAPI{accounts: make(map[string]account)}
}

func (a *AuthAPI) Authenticate(_ context.Context, email, secret string) (*remote.Credentials, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	acc, ok := a.accounts[strings.ToLower(email)]
	if !ok || acc.secret != secret {
		return nil, domain.ErrInvalidCredentials
	}
	return &remote.Credentials{
		UserID:   acc.id,
		Username: acc.name,
		Email:    email,
		Role:     domain.RoleUser,
		Token:    uuid.NewString(),
	}, nil
}

func (a *AuthAPI) CreateAccount(_ context.Context, name, email, secret string) (*remote.Credentials, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	key := strings.ToLower(email)
	if _, exists := a.accounts[key]; exists {
		return nil, domain.ErrDuplicateAccount
	}
	acc := account{
		id:     uuid.NewString(),
		name:   name,
		secret: secret,
	}
	a.accounts[key] = acc
	return &remote.Credentials{
		UserID:   acc.id,
		Username: name,
		Email:    email,
		Role:     domain.RoleUser,
		Token:    uuid.NewString(),
	}, nil
}

// ExerciseAPI is an in-memory catalog collaborator scoped to a single
// principal. FailWith, when set, makes every call fail with that
// error; tests use it to drive the rollback path.
type ExerciseAPI struct {
	mu       sync.Mutex
	items    []domain.Exercise
	FailWith error
}

func NewExerciseAPI() *ExerciseAPI {
	return &ExerciseAPI{}
}

func (e *ExerciseAPI) List(context.Context) (*remote.Page[domain.Exercise], error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.FailWith != nil {
		return nil, e.FailWith
	}
	items := make([]domain.Exercise, len(e.items))
	copy(items, e.items)
	return singlePage(items), nil
}

func (e *ExerciseAPI) Create(_ context.Context, name string, group domain.MuscleGroup) (*domain.Exercise, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.FailWith != nil {
		return nil, e.FailWith
	}
	now := time.Now().UTC()
	created := domain.Exercise{
		ID:          uuid.NewString(),
		Name:        name,
		MuscleGroup: group,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	e.items = append(e.items, created)
	return &created, nil
}

func (e *ExerciseAPI) Update(_ context.Context, id string, patch domain.ExercisePatch) (*domain.Exercise, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.FailWith != nil {
		return nil, e.FailWith
	}
	for i := range e.items {
		if e.items[i].ID != id {
			continue
		}
		if patch.Apply(&e.items[i]) {
			e.items[i].UpdatedAt = time.Now().UTC()
		}
		updated := e.items[i]
		return &updated, nil
	}
	return nil, domain.ErrNotFound
}

func (e *ExerciseAPI) Delete(_ context.Context, id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.FailWith != nil {
		return e.FailWith
	}
	for i := range e.items {
		if e.items[i].ID == id {
			e.items = append(e.items[:i], e.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// WorkoutAPI is an in-memory workout log collaborator scoped to a
// single principal.
type WorkoutAPI struct {
	mu       sync.Mutex
	items    []domain.Workout
	FailWith error
}

func NewWorkoutAPI() *WorkoutAPI {
	return &WorkoutAPI{}
}

func (w *WorkoutAPI) List(context.Context) (*remote.Page[domain.Workout], error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.FailWith != nil {
		return nil, w.FailWith
	}
	items := make([]domain.Workout, len(w.items))
	copy(items, w.items)
	return singlePage(items), nil
}

func (w *WorkoutAPI) Create(_ context.Context, workout domain.Workout) (*domain.Workout, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.FailWith != nil {
		return nil, w.FailWith
	}
	now := time.Now().UTC()
	workout.ID = uuid.NewString()
	workout.CreatedAt = now
	workout.UpdatedAt = now
	w.items = append(w.items, workout)
	return &workout, nil
}

func (w *WorkoutAPI) Update(_ context.Context, id string, patch domain.WorkoutPatch) (*domain.Workout, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.FailWith != nil {
		return nil, w.FailWith
	}
	for i := range w.items {
		if w.items[i].ID != id {
			continue
		}
		if patch.Apply(&w.items[i]) {
			w.items[i].UpdatedAt = time.Now().UTC()
		}
		updated := w.items[i]
		return &updated, nil
	}
	return nil, domain.ErrNotFound
}

func (w *WorkoutAPI) Delete(_ context.Context, id string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.FailWith != nil {
		return w.FailWith
	}
	for i := range w.items {
		if w.items[i].ID == id {
			w.items = append(w.items[:i], w.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func singlePage[T any](items []T) *remote.Page[T] {
	return &remote.Page[T]{
		Items:    items,
		Page:     1,
		PageSize: len(items),
		Total:    len(items),
	}
}
