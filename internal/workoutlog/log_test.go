package workoutlog_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fittrack/internal/domain"
	"fittrack/internal/notify"
	"fittrack/internal/remote/memory"
	"fittrack/internal/workoutlog"
)

type fixedGate struct {
	principal *domain.Principal
}

func (g fixedGate) Current() (*domain.Principal, bool) {
	if g.principal == nil {
		return nil, false
	}
	return g.principal, true
}

func loggedIn() fixedGate {
	return fixedGate{principal: &domain.Principal{ID: "user-1", SessionToken: "token"}}
}

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func newService(t *testing.T, gate workoutlog.Gate) (*workoutlog.Service, *memory.WorkoutAPI, *notify.Recorder) {
	t.Helper()
	api := memory.NewWorkoutAPI()
	recorder := &notify.Recorder{}
	return workoutlog.NewService(gate, api, recorder), api, recorder
}

func someDraft() []domain.WorkoutExercise {
	draft := workoutlog.AddExerciseToDraft(nil, benchPress())
	draft = workoutlog.UpdateSet(draft, "ex-bench", 0, workoutlog.SetFieldWeight, 60)
	draft = workoutlog.UpdateSet(draft, "ex-bench", 0, workoutlog.SetFieldReps, 8)
	return draft
}

func TestCommitEmptyDraft(t *testing.T) {
	svc, _, _ := newService(t, loggedIn())

	_, err := svc.Commit(context.Background(), day("2024-03-15"), nil)
	assert.ErrorIs(t, err, domain.ErrEmptySession)
}

func TestCommitRequiresDate(t *testing.T) {
	svc, _, _ := newService(t, loggedIn())

	_, err := svc.Commit(context.Background(), time.Time{}, someDraft())
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCommitRequiresSession(t *testing.T) {
	svc, _, _ := newService(t, fixedGate{})

	_, err := svc.Commit(context.Background(), day("2024-03-15"), someDraft())
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestCommitThenList(t *testing.T) {
	ctx := context.Background()
	svc, _, recorder := newService(t, loggedIn())

	committed, err := svc.Commit(ctx, day("2024-03-15"), someDraft())
	require.NoError(t, err)
	assert.NotEmpty(t, committed.ID)
	assert.False(t, committed.CreatedAt.IsZero())

	workouts, err := svc.List()
	require.NoError(t, err)
	require.Len(t, workouts, 1)
	assert.True(t, workouts[0].Date.Equal(day("2024-03-15")))
	require.Len(t, workouts[0].Exercises, 1)
	assert.Equal(t, "ex-bench", workouts[0].Exercises[0].ExerciseID)

	assert.Equal(t, notify.KindSuccess, recorder.Last().Kind)
}

func TestCommitPrunesSetlessExercises(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t, loggedIn())

	draft := someDraft()
	draft = append(draft, domain.WorkoutExercise{ExerciseID: "ex-empty", ExerciseName: "Ghost"})

	committed, err := svc.Commit(ctx, day("2024-03-15"), draft)
	require.NoError(t, err)
	require.Len(t, committed.Exercises, 1)
	assert.Equal(t, "ex-bench", committed.Exercises[0].ExerciseID)
}

func TestCommitRejectsDuplicateExercises(t *testing.T) {
	svc, _, _ := newService(t, loggedIn())

	draft := append(someDraft(), someDraft()...)
	_, err := svc.Commit(context.Background(), day("2024-03-15"), draft)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSnapshotSurvivesCatalogRename(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t, loggedIn())

	entry := benchPress()
	draft := workoutlog.AddExerciseToDraft(nil, entry)
	committed, err := svc.Commit(ctx, day("2024-03-15"), draft)
	require.NoError(t, err)

	// Renaming the catalog entry afterwards must not touch the
	// snapshot inside the committed workout.
	entry.Name = "Paused Bench Press"

	workouts, err := svc.List()
	require.NoError(t, err)
	require.Len(t, workouts, 1)
	assert.Equal(t, "Bench Press", workouts[0].Exercises[0].ExerciseName)
	assert.Equal(t, "Bench Press", committed.Exercises[0].ExerciseName)
}

func TestMostRecentFirst(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t, loggedIn())

	for _, date := range []string{"2024-01-01", "2024-03-15", "2024-02-10", "2024-03-15"} {
		_, err := svc.Commit(ctx, day(date), someDraft())
		require.NoError(t, err)
	}

	ordered, err := svc.MostRecentFirst()
	require.NoError(t, err)
	require.Len(t, ordered, 4)

	var dates []string
	for _, w := range ordered {
		dates = append(dates, w.Date.Format("2006-01-02"))
	}
	assert.Equal(t, []string{"2024-03-15", "2024-03-15", "2024-02-10", "2024-01-01"}, dates)

	// Stable: the two tied workouts keep insertion order, while
	// List() itself stays in insertion order.
	inserted, err := svc.List()
	require.NoError(t, err)
	assert.Equal(t, inserted[1].ID, ordered[0].ID)
	assert.Equal(t, inserted[3].ID, ordered[1].ID)
}

func TestUpdateUnknownID(t *testing.T) {
	svc, _, _ := newService(t, loggedIn())

	date := day("2024-03-15")
	err := svc.Update(context.Background(), "missing", domain.WorkoutPatch{Date: &date})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateRefreshesUpdatedAtOnly(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t, loggedIn())

	committed, err := svc.Commit(ctx, day("2024-03-15"), someDraft())
	require.NoError(t, err)

	newDate := day("2024-03-16")
	require.NoError(t, svc.Update(ctx, committed.ID, domain.WorkoutPatch{Date: &newDate}))

	workouts, err := svc.List()
	require.NoError(t, err)
	require.Len(t, workouts, 1)
	assert.True(t, workouts[0].Date.Equal(newDate))
	// createdAt is immutable; updatedAt moves.
	assert.True(t, workouts[0].CreatedAt.Equal(committed.CreatedAt))
	assert.False(t, workouts[0].UpdatedAt.Before(committed.UpdatedAt))
}

func TestUpdateRejectsEmptyExercises(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t, loggedIn())

	committed, err := svc.Commit(ctx, day("2024-03-15"), someDraft())
	require.NoError(t, err)

	err = svc.Update(ctx, committed.ID, domain.WorkoutPatch{Exercises: []domain.WorkoutExercise{}})
	assert.ErrorIs(t, err, domain.ErrEmptySession)

	// A committed workout can never be emptied out.
	workouts, err := svc.List()
	require.NoError(t, err)
	require.Len(t, workouts, 1)
	require.Len(t, workouts[0].Exercises, 1)
	assert.Equal(t, "ex-bench", workouts[0].Exercises[0].ExerciseID)
}

func TestUpdateRejectsDuplicateExercises(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t, loggedIn())

	committed, err := svc.Commit(ctx, day("2024-03-15"), someDraft())
	require.NoError(t, err)

	dup := append(someDraft(), someDraft()...)
	err = svc.Update(ctx, committed.ID, domain.WorkoutPatch{Exercises: dup})
	assert.ErrorIs(t, err, domain.ErrValidation)

	workouts, err := svc.List()
	require.NoError(t, err)
	require.Len(t, workouts[0].Exercises, 1)
}

func TestUpdatePrunesSetlessExercises(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t, loggedIn())

	committed, err := svc.Commit(ctx, day("2024-03-15"), someDraft())
	require.NoError(t, err)

	replacement := workoutlog.AddExerciseToDraft(nil, squat())
	replacement = workoutlog.UpdateSet(replacement, "ex-squat", 0, workoutlog.SetFieldWeight, 100)
	replacement = append(replacement, domain.WorkoutExercise{ExerciseID: "ex-ghost", ExerciseName: "Ghost"})

	require.NoError(t, svc.Update(ctx, committed.ID, domain.WorkoutPatch{Exercises: replacement}))

	workouts, err := svc.List()
	require.NoError(t, err)
	require.Len(t, workouts[0].Exercises, 1)
	assert.Equal(t, "ex-squat", workouts[0].Exercises[0].ExerciseID)
}

func TestRemoveTwiceFailsSecondTime(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t, loggedIn())

	committed, err := svc.Commit(ctx, day("2024-03-15"), someDraft())
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, committed.ID))
	assert.ErrorIs(t, svc.Remove(ctx, committed.ID), domain.ErrNotFound)
}

func TestCommitFailureLeavesLogUnchanged(t *testing.T) {
	ctx := context.Background()
	svc, api, recorder := newService(t, loggedIn())

	api.FailWith = domain.ErrCollaboratorUnavailable
	_, err := svc.Commit(ctx, day("2024-03-15"), someDraft())
	require.ErrorIs(t, err, domain.ErrCollaboratorUnavailable)

	api.FailWith = nil
	workouts, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, workouts)
	assert.Equal(t, notify.KindError, recorder.Last().Kind)
}

func TestRemoveRollsBackOnCollaboratorFailure(t *testing.T) {
	ctx := context.Background()
	svc, api, _ := newService(t, loggedIn())

	committed, err := svc.Commit(ctx, day("2024-03-15"), someDraft())
	require.NoError(t, err)
	before, err := svc.List()
	require.NoError(t, err)

	api.FailWith = domain.ErrCollaboratorUnavailable
	require.ErrorIs(t, svc.Remove(ctx, committed.ID), domain.ErrCollaboratorUnavailable)

	after, err := svc.List()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
