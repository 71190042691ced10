// Package workoutlog manages the principal's history of committed
// workout sessions, plus the pure draft-session editing functions.
// The mutation contract matches the catalog: optimistic update/remove
// with rollback, collaborator-confirmed creation.
package workoutlog

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"fittrack/internal/domain"
	"fittrack/internal/notify"
	"fittrack/internal/remote"
)

// Gate exposes the active principal; the session manager satisfies it.
type Gate interface {
	Current() (*domain.Principal, bool)
}

// Service is the workout log.
type Service struct {
	gate     Gate
	api      remote.WorkoutAPI
	notifier notify.Notifier

	mu    sync.RWMutex
	items []domain.Workout
}

func NewService(gate Gate, api remote.WorkoutAPI, notifier notify.Notifier) *Service {
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

// Refresh replaces the in-memory log with the collaborator's listing.
func (s *Service) Refresh(ctx context.Context) error {
	if err := s.authorize(); err != nil {
		return err
	}

	page, err := s.api.List(ctx)
	if err != nil {
		s.notifier.Notify(notify.KindError, "Could not load workouts", err.Error())
		return err
	}

	s.mu.Lock()
	s.items = make([]domain.Workout, len(page.Items))
	copy(s.items, page.Items)
	s.mu.Unlock()
	return nil
}

// List returns committed workouts in insertion order.
func (s *Service) List() ([]domain.Workout, error) {
	if err := s.authorize(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Workout, len(s.items))
	copy(out, s.items)
	return out, nil
}

// MostRecentFirst returns the display ordering: date descending,
// stable, ties kept in insertion order.
func (s *Service) MostRecentFirst() ([]domain.Workout, error) {
	workouts, err := s.List()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(workouts, func(i, j int) bool {
		return workouts[i].Date.After(workouts[j].Date)
	})
	return workouts, nil
}

// Commit validates the draft and persists it as a new workout.
// An empty draft fails with ErrEmptySession and a zero date with
// ErrValidation, both before any collaborator call. Exercises that
// lost all their sets are pruned rather than committed dangling.
func (s *Service) Commit(ctx context.Context, date time.Time, draft []domain.WorkoutExercise) (*domain.Workout, error) {
	if err := s.authorize(); err != nil {
		return nil, err
	}
	if date.IsZero() {
		return nil, fmt.Errorf("%w: workout date is required", domain.ErrValidation)
	}

	exercises, err := normalizeExercises(draft)
	if err != nil {
		return nil, err
	}

	created, err := s.api.Create(ctx, domain.Workout{
		Date:      date,
		Exercises: exercises,
	})
	if err != nil {
		s.notifier.Notify(notify.KindError, "Could not save workout", err.Error())
		return nil, err
	}

	s.mu.Lock()
	s.items = append(s.items, *created)
	s.mu.Unlock()

	s.notifier.Notify(notify.KindSuccess, "Workout saved",
		fmt.Sprintf("Workout of %s was recorded.", created.Date.Format("2006-01-02")))
	out := *created
	return &out, nil
}

// Update merges the patch into the identified workout. Unknown ids
// fail with ErrNotFound before any collaborator call. A patched
// exercise list goes through the same checks as a committed draft, so
// an update cannot leave the workout empty or holding the same
// exercise twice.
func (s *Service) Update(ctx context.Context, id string, patch domain.WorkoutPatch) error {
	if err := s.authorize(); err != nil {
		return err
	}
	if patch.Date != nil && patch.Date.IsZero() {
		return fmt.Errorf("%w: workout date is required", domain.ErrValidation)
	}
	if patch.Exercises != nil {
		exercises, err := normalizeExercises(patch.Exercises)
		if err != nil {
			return err
		}
		patch.Exercises = exercises
	}

	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("workout %s: %w", id, domain.ErrNotFound)
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
		s.notifier.Notify(notify.KindError, "Could not update workout", err.Error())
		return err
	}

	s.mu.Lock()
	if idx := s.indexLocked(id); idx >= 0 {
		s.items[idx] = *updated
	}
	s.mu.Unlock()

	s.notifier.Notify(notify.KindSuccess, "Workout updated", "Your changes were saved.")
	return nil
}

// Remove deletes the identified workout; unknown ids fail with
// ErrNotFound.
func (s *Service) Remove(ctx context.Context, id string) error {
	if err := s.authorize(); err != nil {
		return err
	}

	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("workout %s: %w", id, domain.ErrNotFound)
	}
	removed := s.items[idx]
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	s.mu.Unlock()

	if err := s.api.Delete(ctx, id); err != nil {
		s.mu.Lock()
		s.items = append(s.items, domain.Workout{})
		copy(s.items[idx+1:], s.items[idx:])
		s.items[idx] = removed
		s.mu.Unlock()
		s.notifier.Notify(notify.KindError, "Could not remove workout", err.Error())
		return err
	}

	s.notifier.Notify(notify.KindSuccess, "Workout removed",
		fmt.Sprintf("Workout of %s was removed.", removed.Date.Format("2006-01-02")))
	return nil
}

// normalizeExercises brings an exercise list into the committed shape:
// set-less exercises are pruned, a repeated exercise id fails with
// ErrValidation, and an empty result fails with ErrEmptySession.
func normalizeExercises(draft []domain.WorkoutExercise) ([]domain.WorkoutExercise, error) {
	exercises := make([]domain.WorkoutExercise, 0, len(draft))
	seen := make(map[string]bool, len(draft))
	for _, we := range draft {
		if len(we.Sets) == 0 {
			continue
		}
		if seen[we.ExerciseID] {
			return nil, fmt.Errorf("%w: exercise %s appears twice in the session", domain.ErrValidation, we.ExerciseID)
		}
		seen[we.ExerciseID] = true
		exercises = append(exercises, cloneExercise(we))
	}
	if len(exercises) == 0 {
		return nil, domain.ErrEmptySession
	}
	return exercises, nil
}

func (s *Service) indexLocked(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}
