package domain

import "time"

// WorkoutSet is one set of an exercise within a workout. Weight and
// reps are pointers because a freshly added set has neither filled in
// yet. A set has no identity of its own; its position in the owning
// exercise's set list is its identity.
type WorkoutSet struct {
	Weight *float64 `json:"weight"`
	Reps   *int     `json:"reps"`
}

// WorkoutExercise references a catalog entry from within a workout.
// ExerciseName and MuscleGroup are snapshots copied when the exercise
// is added to the session; they intentionally do NOT track later
// renames of the catalog entry. A dangling ExerciseID after the
// catalog entry is deleted is expected and tolerated.
type WorkoutExercise struct {
	ExerciseID   string       `json:"exerciseId"`
	ExerciseName string       `json:"exerciseName"`
	MuscleGroup  MuscleGroup  `json:"muscleGroup"`
	Sets         []WorkoutSet `json:"sets"`
}

// Workout is one committed workout session. Exercises is non-empty
// (enforced before persistence) and holds at most one entry per
// catalog exercise id. CreatedAt is immutable after creation;
// UpdatedAt is refreshed on every mutation.
type Workout struct {
	ID        string            `json:"id"`
	Date      time.Time         `json:"date"`
	Exercises []WorkoutExercise `json:"exercises"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// WorkoutPatch is a partial update for a committed workout: nil
// fields are left untouched.
type WorkoutPatch struct {
	Date      *time.Time        `json:"date,omitempty"`
	Exercises []WorkoutExercise `json:"exercises,omitempty"`
}

// Apply merges the patch into w and reports whether anything changed.
func (p WorkoutPatch) Apply(w *Workout) bool {
	changed := false
	if p.Date != nil && !p.Date.Equal(w.Date) {
		w.Date = *p.Date
		changed = true
	}
	if p.Exercises != nil {
		w.Exercises = p.Exercises
		changed = true
	}
	return changed
}
