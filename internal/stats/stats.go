// Package stats computes read-only aggregates over the catalog and
// the workout log. Everything here is pure: recomputed on demand,
// never stored.
package stats

import "fittrack/internal/domain"

// TotalWorkouts counts committed workouts.
func TotalWorkouts(log []domain.Workout) int {
	return len(log)
}

// TotalExercises counts catalog entries.
func TotalExercises(catalog []domain.Exercise) int {
	return len(catalog)
}

// SetsPerWorkout counts the sets across all exercises of one workout.
func SetsPerWorkout(w domain.Workout) int {
	total := 0
	for _, we := range w.Exercises {
		total += len(we.Sets)
	}
	return total
}

// TotalSets counts the sets across the whole log.
func TotalSets(log []domain.Workout) int {
	total := 0
	for _, w := range log {
		total += SetsPerWorkout(w)
	}
	return total
}

// AverageSetsPerWorkout is TotalSets over TotalWorkouts, 0 for an
// empty log so callers never see NaN or Inf.
func AverageSetsPerWorkout(log []domain.Workout) float64 {
	if len(log) == 0 {
		return 0
	}
	return float64(TotalSets(log)) / float64(len(log))
}

// MostRecentWorkout returns the workout with the latest date, nil for
// an empty log. Between workouts sharing the max date, the
// last-inserted one wins, matching a stable date-descending sort that
// takes the first element.
func MostRecentWorkout(log []domain.Workout) *domain.Workout {
	var latest *domain.Workout
	for i := range log {
		if latest == nil || !log[i].Date.Before(latest.Date) {
			latest = &log[i]
		}
	}
	if latest == nil {
		return nil
	}
	out := *latest
	return &out
}

// GroupBreakdown counts logged sets per muscle group, using the
// snapshot group recorded in each workout exercise. Groups with no
// sets are absent from the result.
func GroupBreakdown(log []domain.Workout) map[domain.MuscleGroup]int {
	out := make(map[domain.MuscleGroup]int)
	for _, w := range log {
		for _, we := range w.Exercises {
			if len(we.Sets) == 0 {
				continue
			}
			out[we.MuscleGroup] += len(we.Sets)
		}
	}
	return out
}
