package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fittrack/internal/domain"
)

func TestMuscleGroupValid(t *testing.T) {
	for _, group := range domain.MuscleGroups {
		assert.True(t, group.Valid(), "group %q should be valid", group)
	}
	assert.False(t, domain.MuscleGroup("").Valid())
	assert.False(t, domain.MuscleGroup("cardio").Valid())
}

func TestValidateExerciseName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "ok", input: "Row", wantErr: false},
		{name: "long ok", input: "Bench Press", wantErr: false},
		{name: "too short", input: "ab", wantErr: true},
		{name: "whitespace only padding", input: "  ab  ", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.ValidateExerciseName(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestExercisePatchApply(t *testing.T) {
	exercise := domain.Exercise{Name: "Bench Press", MuscleGroup: domain.MuscleGroupChest}

	assert.False(t, domain.ExercisePatch{}.Apply(&exercise))

	name := "Incline Press"
	assert.True(t, domain.ExercisePatch{Name: &name}.Apply(&exercise))
	assert.Equal(t, "Incline Press", exercise.Name)
	assert.Equal(t, domain.MuscleGroupChest, exercise.MuscleGroup)

	// Same values again: nothing to do.
	assert.False(t, domain.ExercisePatch{Name: &name}.Apply(&exercise))
}

func TestPrincipalWellFormed(t *testing.T) {
	assert.False(t, (*domain.Principal)(nil).WellFormed())
	assert.False(t, (&domain.Principal{ID: "u1"}).WellFormed())
	assert.False(t, (&domain.Principal{SessionToken: "t"}).WellFormed())
	assert.True(t, (&domain.Principal{ID: "u1", SessionToken: "t"}).WellFormed())
}
