package rest

import (
	"context"
	"net/http"

	"fittrack/internal/domain"
	"fittrack/internal/remote"
)

// ExerciseClient implements remote.ExerciseAPI against
// /api/v1/exercises.
type ExerciseClient struct {
	client *Client
}

func NewExerciseClient(client *Client) *ExerciseClient {
	return &ExerciseClient{client: client}
}

type createExerciseRequest struct {
	Name        string             `json:"name"`
	MuscleGroup domain.MuscleGroup `json:"muscleGroup"`
}

func (e *ExerciseClient) List(ctx context.Context) (*remote.Page[domain.Exercise], error) {
	var page remote.Page[domain.Exercise]
	if err := e.client.doJSON(ctx, http.MethodGet, "/api/v1/exercises", nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (e *ExerciseClient) Create(ctx context.Context, name string, group domain.MuscleGroup) (*domain.Exercise, error) {
	var created domain.Exercise
	err := e.client.doJSON(ctx, http.MethodPost, "/api/v1/exercises", createExerciseRequest{
		Name:        name,
		MuscleGroup: group,
	}, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (e *ExerciseClient) Update(ctx context.Context, id string, patch domain.ExercisePatch) (*domain.Exercise, error) {
	var updated domain.Exercise
	if err := e.client.doJSON(ctx, http.MethodPut, "/api/v1/exercises/"+id, patch, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (e *ExerciseClient) Delete(ctx context.Context, id string) error {
	return e.client.doJSON(ctx, http.MethodDelete, "/api/v1/exercises/"+id, nil, nil)
}
