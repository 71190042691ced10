package domain

import (
	"strings"
	"time"
)

// MinExerciseNameLen is the shortest accepted exercise name, after
// trimming surrounding whitespace.
const MinExerciseNameLen = 3

// Exercise is a single reusable exercise definition in the catalog.
// IDs are assigned by whichever collaborator creates the record;
// the client never generates them.
type Exercise struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	MuscleGroup MuscleGroup `json:"muscleGroup"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// ValidateExerciseName checks the catalog naming rule. Returns
// ErrValidation for names shorter than MinExerciseNameLen after
// trimming.
func ValidateExerciseName(name string) error {
	if len(strings.TrimSpace(name)) < MinExerciseNameLen {
		return ErrValidation
	}
	return nil
}

// ExercisePatch is a partial update: nil fields are left untouched.
type ExercisePatch struct {
	Name        *string      `json:"name,omitempty"`
	MuscleGroup *MuscleGroup `json:"muscleGroup,omitempty"`
}

// Apply merges the patch into e and reports whether anything changed.
// It does not touch timestamps; that is the owning store's job.
func (p ExercisePatch) Apply(e *Exercise) bool {
	changed := false
	if p.Name != nil && *p.Name != e.Name {
		e.Name = *p.Name
		changed = true
	}
	if p.MuscleGroup != nil && *p.MuscleGroup != e.MuscleGroup {
		e.MuscleGroup = *p.MuscleGroup
		changed = true
	}
	return changed
}
