package rest

import (
	"context"
	"net/http"

	"fittrack/internal/domain"
	"fittrack/internal/remote"
)

// WorkoutClient implements remote.WorkoutAPI against /api/v1/workouts.
type WorkoutClient struct {
	client *Client
}

func NewWorkoutClient(client *Client) *WorkoutClient {
	return &WorkoutClient{client: client}
}

func (w *WorkoutClient) List(ctx context.Context) (*remote.Page[domain.Workout], error) {
	var page remote.Page[domain.Workout]
	if err := w.client.doJSON(ctx, http.MethodGet, "/api/v1/workouts", nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (w *WorkoutClient) Create(ctx context.Context, workout domain.Workout) (*domain.Workout, error) {
	var created domain.Workout
	if err := w.client.doJSON(ctx, http.MethodPost, "/api/v1/workouts", workout, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (w *WorkoutClient) Update(ctx context.Context, id string, patch domain.WorkoutPatch) (*domain.Workout, error) {
	var updated domain.Workout
	if err := w.client.doJSON(ctx, http.MethodPut, "/api/v1/workouts/"+id, patch, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (w *WorkoutClient) Delete(ctx context.Context, id string) error {
	return w.client.doJSON(ctx, http.MethodDelete, "/api/v1/workouts/"+id, nil, nil)
}
