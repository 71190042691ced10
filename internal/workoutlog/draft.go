package workoutlog

import "fittrack/internal/domain"

// SetField names a mutable field of a workout set.
type SetField string

const (
	SetFieldWeight SetField = "weight"
	SetFieldReps   SetField = "reps"
)

// The draft functions below edit an in-progress workout session: an
// ordered list of workout exercises that has not been committed yet.
// Each one is pure; the input draft is never mutated, which keeps
// undo/redo and tests trivial.

// AddExerciseToDraft appends a new entry referencing the catalog
// entry, seeded with exactly one empty set. The entry's name and
// muscle group are copied as snapshots; they will not track later
// edits to the catalog. Adding an exercise already present in the
// draft is a no-op.
func AddExerciseToDraft(draft []domain.WorkoutExercise, entry domain.Exercise) []domain.WorkoutExercise {
	for _, we := range draft {
		if we.ExerciseID == entry.ID {
			return cloneDraft(draft)
		}
	}
	out := cloneDraft(draft)
	return append(out, domain.WorkoutExercise{
		ExerciseID:   entry.ID,
		ExerciseName: entry.Name,
		MuscleGroup:  entry.MuscleGroup,
		Sets:         []domain.WorkoutSet{{}},
	})
}

// RemoveExerciseFromDraft drops the entry for exerciseID. Removing an
// absent exercise is a no-op.
func RemoveExerciseFromDraft(draft []domain.WorkoutExercise, exerciseID string) []domain.WorkoutExercise {
	out := make([]domain.WorkoutExercise, 0, len(draft))
	for _, we := range draft {
		if we.ExerciseID == exerciseID {
			continue
		}
		out = append(out, cloneExercise(we))
	}
	return out
}

// AddSet appends one empty set to the matched exercise.
func AddSet(draft []domain.WorkoutExercise, exerciseID string) []domain.WorkoutExercise {
	out := cloneDraft(draft)
	for i := range out {
		if out[i].ExerciseID == exerciseID {
			out[i].Sets = append(out[i].Sets, domain.WorkoutSet{})
		}
	}
	return out
}

// RemoveSet drops the set at setIndex from the matched exercise. The
// last remaining set is never removed: an exercise in a draft always
// keeps at least one set.
func RemoveSet(draft []domain.WorkoutExercise, exerciseID string, setIndex int) []domain.WorkoutExercise {
	out := cloneDraft(draft)
	for i := range out {
		if out[i].ExerciseID != exerciseID {
			continue
		}
		if len(out[i].Sets) <= 1 || setIndex < 0 || setIndex >= len(out[i].Sets) {
			continue
		}
		out[i].Sets = append(out[i].Sets[:setIndex], out[i].Sets[setIndex+1:]...)
	}
	return out
}

// UpdateSet replaces the named field of the set at setIndex. Reps are
// truncated to an integer. Out-of-range positions are a no-op.
func UpdateSet(draft []domain.WorkoutExercise, exerciseID string, setIndex int, field SetField, value float64) []domain.WorkoutExercise {
	out := cloneDraft(draft)
	for i := range out {
		if out[i].ExerciseID != exerciseID {
			continue
		}
		if setIndex < 0 || setIndex >= len(out[i].Sets) {
			continue
		}
		switch field {
		case SetFieldWeight:
			weight := value
			out[i].Sets[setIndex].Weight = &weight
		case SetFieldReps:
			reps := int(value)
			out[i].Sets[setIndex].Reps = &reps
		}
	}
	return out
}

func cloneDraft(draft []domain.WorkoutExercise) []domain.WorkoutExercise {
	out := make([]domain.WorkoutExercise, len(draft))
	for i, we := range draft {
		out[i] = cloneExercise(we)
	}
	return out
}

func cloneExercise(we domain.WorkoutExercise) domain.WorkoutExercise {
	sets := make([]domain.WorkoutSet, len(we.Sets))
	copy(sets, we.Sets)
	we.Sets = sets
	return we
}
