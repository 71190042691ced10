package workoutlog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fittrack/internal/domain"
	"fittrack/internal/workoutlog"
)

func benchPress() domain.Exercise {
	return domain.Exercise{
		ID:          "ex-bench",
		Name:        "Bench Press",
		MuscleGroup: domain.MuscleGroupChest,
	}
}

func squat() domain.Exercise {
	return domain.Exercise{
		ID:          "ex-squat",
		Name:        "Squat",
		MuscleGroup: domain.MuscleGroupQuadriceps,
	}
}

func TestAddExerciseToDraft(t *testing.T) {
	draft := workoutlog.AddExerciseToDraft(nil, benchPress())
	require.Len(t, draft, 1)

	we := draft[0]
	assert.Equal(t, "ex-bench", we.ExerciseID)
	assert.Equal(t, "Bench Press", we.ExerciseName)
	assert.Equal(t, domain.MuscleGroupChest, we.MuscleGroup)

	// Seeded with exactly one empty set.
	require.Len(t, we.Sets, 1)
	assert.Nil(t, we.Sets[0].Weight)
	assert.Nil(t, we.Sets[0].Reps)
}

func TestAddExerciseToDraft_DuplicateIsNoop(t *testing.T) {
	draft := workoutlog.AddExerciseToDraft(nil, benchPress())
	draft = workoutlog.AddSet(draft, "ex-bench")

	again := workoutlog.AddExerciseToDraft(draft, benchPress())
	require.Len(t, again, 1)
	// The existing entry, sets included, is untouched.
	assert.Len(t, again[0].Sets, 2)
}

func TestRemoveExerciseFromDraft(t *testing.T) {
	draft := workoutlog.AddExerciseToDraft(nil, benchPress())
	draft = workoutlog.AddExerciseToDraft(draft, squat())

	draft = workoutlog.RemoveExerciseFromDraft(draft, "ex-bench")
	require.Len(t, draft, 1)
	assert.Equal(t, "ex-squat", draft[0].ExerciseID)

	// Removing an absent exercise is a no-op, not an error.
	draft = workoutlog.RemoveExerciseFromDraft(draft, "ex-bench")
	assert.Len(t, draft, 1)
}

func TestAddSet(t *testing.T) {
	draft := workoutlog.AddExerciseToDraft(nil, benchPress())
	draft = workoutlog.AddSet(draft, "ex-bench")
	draft = workoutlog.AddSet(draft, "ex-bench")

	require.Len(t, draft, 1)
	assert.Len(t, draft[0].Sets, 3)
}

func TestRemoveSet_KeepsAtLeastOne(t *testing.T) {
	draft := workoutlog.AddExerciseToDraft(nil, benchPress())

	// The last remaining set must not be removable.
	draft = workoutlog.RemoveSet(draft, "ex-bench", 0)
	require.Len(t, draft, 1)
	assert.Len(t, draft[0].Sets, 1)

	draft = workoutlog.AddSet(draft, "ex-bench")
	draft = workoutlog.RemoveSet(draft, "ex-bench", 0)
	assert.Len(t, draft[0].Sets, 1)
}

func TestRemoveSet_OutOfRangeIsNoop(t *testing.T) {
	draft := workoutlog.AddExerciseToDraft(nil, benchPress())
	draft = workoutlog.AddSet(draft, "ex-bench")

	draft = workoutlog.RemoveSet(draft, "ex-bench", 5)
	assert.Len(t, draft[0].Sets, 2)
	draft = workoutlog.RemoveSet(draft, "ex-bench", -1)
	assert.Len(t, draft[0].Sets, 2)
}

func TestUpdateSet(t *testing.T) {
	draft := workoutlog.AddExerciseToDraft(nil, benchPress())

	draft = workoutlog.UpdateSet(draft, "ex-bench", 0, workoutlog.SetFieldWeight, 62.5)
	draft = workoutlog.UpdateSet(draft, "ex-bench", 0, workoutlog.SetFieldReps, 8)

	set := draft[0].Sets[0]
	require.NotNil(t, set.Weight)
	require.NotNil(t, set.Reps)
	assert.Equal(t, 62.5, *set.Weight)
	assert.Equal(t, 8, *set.Reps)
}

func TestDraftFunctionsDoNotMutateInput(t *testing.T) {
	original := workoutlog.AddExerciseToDraft(nil, benchPress())
	original = workoutlog.AddSet(original, "ex-bench")

	_ = workoutlog.UpdateSet(original, "ex-bench", 0, workoutlog.SetFieldWeight, 100)
	_ = workoutlog.RemoveSet(original, "ex-bench", 1)
	_ = workoutlog.RemoveExerciseFromDraft(original, "ex-bench")
	_ = workoutlog.AddExerciseToDraft(original, squat())

	require.Len(t, original, 1)
	require.Len(t, original[0].Sets, 2)
	assert.Nil(t, original[0].Sets[0].Weight)
}
