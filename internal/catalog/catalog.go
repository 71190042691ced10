// Package catalog manages the principal's library of reusable
// exercise definitions. Mutations follow an optimistic contract:
// update/remove apply to the in-memory collection first, then call
// the collaborator, and roll back if it fails. Creation waits for the
// collaborator because ids are server-assigned. Either way a failed
// operation leaves the collection exactly as it was.
package catalog

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"fittrack/internal/domain"
	"fittrack/internal/notify"
	"fittrack/internal/remote"
)

// Gate exposes the active principal; the session manager satisfies it.
type Gate interface {
	Current() (*domain.Principal, bool)
}

// Service is the exercise catalog.
type Service struct {
	gate     Gate
	api      remote.ExerciseAPI
	notifier notify.Notifier

	mu    sync.RWMutex
	items []domain.Exercise
}

func NewService(gate Gate, api remote.ExerciseAPI, notifier notify.Notifier) *Service {
	if notifier == nil {
		notifier = notify.Discard{}
	}
	return &Service{
		gate:     gate,
		api:      api,
		notifier: notifier,
	}
}

func (s *Service) authorize() error {
	if _, ok := s.gate.Current(); !ok {
		return domain.ErrUnauthenticated
	}
	return nil
}

// Refresh replaces the in-memory collection with the collaborator's
// current listing.
func (s *Service) Refresh(ctx context.Context) error {
	if err := s.authorize(); err != nil {
		return err
	}

	page, err := s.api.List(ctx)
	if err != nil {
		s.notifier.Notify(notify.KindError, "Could not load exercises", err.Error())
		return err
	}

	s.mu.Lock()
	s.items = make([]domain.Exercise, len(page.Items))
	copy(s.items, page.Items)
	s.mu.Unlock()
	return nil
}

// List returns the current known catalog in insertion order.
func (s *Service) List() ([]domain.Exercise, error) {
	if err := s.authorize(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Exercise, len(s.items))
	copy(out, s.items)
	return out, nil
}

// Add validates the name, creates the exercise through the
// collaborator, and appends the server-assigned record.
func (s *Service) Add(ctx context.Context, name string, group domain.MuscleGroup) (*domain.Exercise, error) {
	if err := s.authorize(); err != nil {
		return nil, err
	}
	if err := domain.ValidateExerciseName(name); err != nil {
		return nil, fmt.Errorf("%w: name must be at least %d characters", err, domain.MinExerciseNameLen)
	}
	if !group.Valid() {
		return nil, fmt.Errorf("%w: unknown muscle group %q", domain.ErrValidation, group)
	}

	created, err := s.api.Create(ctx, strings.TrimSpace(name), group)
	if err != nil {
		s.notifier.Notify(notify.KindError, "Could not add exercise", err.Error())
		return nil, err
	}

	s.mu.Lock()
	s.items = append(s.items, *created)
	s.mu.Unlock()

	s.notifier.Notify(notify.KindSuccess, "Exercise added", fmt.Sprintf("%s was added to your catalog.", created.Name))
	out := *created
	return &out, nil
}

// Update merges the patch into the identified exercise. Unknown ids
// fail with ErrNotFound before any collaborator call.
func (s *Service) Update(ctx context.Context, id string, patch domain.ExercisePatch) error {
	if err := s.authorize(); err != nil {
		return err
	}
	if patch.Name != nil {
		if err := domain.ValidateExerciseName(*patch.Name); err != nil {
			return fmt.Errorf("%w: name must be at least %d characters", err, domain.MinExerciseNameLen)
		}
	}
	if patch.MuscleGroup != nil && !patch.MuscleGroup.Valid() {
		return fmt.Errorf("%w: unknown muscle group %q", domain.ErrValidation, *patch.MuscleGroup)
	}

	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("exercise %s: %w", id, domain.ErrNotFound)
	}
	backup := s.items[idx]
	patch.Apply(&s.items[idx])
	s.mu.Unlock()

	updated, err := s.api.Update(ctx, id, patch)
	if err != nil {
		s.mu.Lock()
		if idx := s.indexLocked(id); idx >= 0 {
			s.items[idx] = backup
		}
		s.mu.Unlock()
		s.notifier.Notify(notify.KindError, "Could not update exercise", err.Error())
		return err
	}

	// Reconcile with the collaborator's record (fresh updatedAt).
	s.mu.Lock()
	if idx := s.indexLocked(id); idx >= 0 {
		s.items[idx] = *updated
	}
	s.mu.Unlock()

	s.notifier.Notify(notify.KindSuccess, "Exercise updated", "Your changes were saved.")
	return nil
}

// Remove deletes the identified exercise. Unknown ids fail with
// ErrNotFound; removal never cascades into committed workouts, whose
// snapshots stay as they were.
func (s *Service) Remove(ctx context.Context, id string) error {
	if err := s.authorize(); err != nil {
		return err
	}

	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("exercise %s: %w", id, domain.ErrNotFound)
	}
	removed := s.items[idx]
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	s.mu.Unlock()

	if err := s.api.Delete(ctx, id); err != nil {
		s.mu.Lock()
		s.items = append(s.items, domain.Exercise{})
		copy(s.items[idx+1:], s.items[idx:])
		s.items[idx] = removed
		s.mu.Unlock()
		s.notifier.Notify(notify.KindError, "Could not remove exercise", err.Error())
		return err
	}

	s.notifier.Notify(notify.KindSuccess, "Exercise removed", fmt.Sprintf("%s was removed.", removed.Name))
	return nil
}

// Filter returns the catalog entries whose name contains substring
// (case-insensitive) and whose muscle group equals group. An empty
// substring matches every name; an empty group matches every group.
func (s *Service) Filter(substring string, group domain.MuscleGroup) ([]domain.Exercise, error) {
	if err := s.authorize(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return FilterExercises(s.items, substring, group), nil
}

// FilterExercises is the pure filtering rule behind Service.Filter.
func FilterExercises(items []domain.Exercise, substring string, group domain.MuscleGroup) []domain.Exercise {
	needle := strings.ToLower(substring)
	out := make([]domain.Exercise, 0, len(items))
	for _, item := range items {
		if needle != "" && !strings.Contains(strings.ToLower(item.Name), needle) {
			continue
		}
		if group != "" && item.MuscleGroup != group {
			continue
		}
		out = append(out, item)
	}
	return out
}

func (s *Service) indexLocked(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}
