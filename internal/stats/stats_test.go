package stats_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fittrack/internal/domain"
	"fittrack/internal/stats"
)

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func workoutWithSets(id, date string, setsPerExercise ...int) domain.Workout {
	w := domain.Workout{ID: id, Date: day(date)}
	for i, n := range setsPerExercise {
		we := domain.WorkoutExercise{
			ExerciseID:  id + "-ex-" + string(rune('a'+i)),
			MuscleGroup: domain.MuscleGroupChest,
			Sets:        make([]domain.WorkoutSet, n),
		}
		w.Exercises = append(w.Exercises, we)
	}
	return w
}

func TestCounts(t *testing.T) {
	log := []domain.Workout{
		workoutWithSets("w1", "2024-01-01", 3, 2),
		workoutWithSets("w2", "2024-01-02", 4),
	}
	catalog := []domain.Exercise{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	assert.Equal(t, 2, stats.TotalWorkouts(log))
	assert.Equal(t, 3, stats.TotalExercises(catalog))
	assert.Equal(t, 9, stats.TotalSets(log))
	assert.Equal(t, 4.5, stats.AverageSetsPerWorkout(log))
}

func TestAverageSetsPerWorkout_EmptyLogIsZero(t *testing.T) {
	avg := stats.AverageSetsPerWorkout(nil)
	assert.Equal(t, 0.0, avg)
	assert.False(t, avg != avg, "average must never be NaN")
}

func TestMostRecentWorkout(t *testing.T) {
	log := []domain.Workout{
		workoutWithSets("w1", "2024-01-01", 1),
		workoutWithSets("w2", "2024-03-15", 1),
		workoutWithSets("w3", "2024-02-10", 1),
	}

	latest := stats.MostRecentWorkout(log)
	require.NotNil(t, latest)
	assert.Equal(t, "w2", latest.ID)
}

func TestMostRecentWorkout_EmptyLog(t *testing.T) {
	assert.Nil(t, stats.MostRecentWorkout(nil))
}

func TestMostRecentWorkout_TieLastInsertedWins(t *testing.T) {
	log := []domain.Workout{
		workoutWithSets("first", "2024-03-15", 1),
		workoutWithSets("second", "2024-03-15", 1),
	}

	latest := stats.MostRecentWorkout(log)
	require.NotNil(t, latest)
	assert.Equal(t, "second", latest.ID)
}

func TestGroupBreakdown(t *testing.T) {
	w1 := domain.Workout{
		Date: day("2024-01-01"),
		Exercises: []domain.WorkoutExercise{
			{ExerciseID: "a", MuscleGroup: domain.MuscleGroupChest, Sets: make([]domain.WorkoutSet, 3)},
			{ExerciseID: "b", MuscleGroup: domain.MuscleGroupBack, Sets: make([]domain.WorkoutSet, 2)},
		},
	}
	w2 := domain.Workout{
		Date: day("2024-01-02"),
		Exercises: []domain.WorkoutExercise{
			{ExerciseID: "c", MuscleGroup: domain.MuscleGroupChest, Sets: make([]domain.WorkoutSet, 1)},
		},
	}

	breakdown := stats.GroupBreakdown([]domain.Workout{w1, w2})
	assert.Equal(t, map[domain.MuscleGroup]int{
		domain.MuscleGroupChest: 4,
		domain.MuscleGroupBack:  2,
	}, breakdown)
}
