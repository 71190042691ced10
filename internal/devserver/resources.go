package devserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fittrack/internal/domain"
)

type createExerciseRequest struct {
	Name        string             `json:"name" binding:"required,min=3"`
	MuscleGroup domain.MuscleGroup `json:"muscleGroup" binding:"required"`
}

func (s *Server) handleListExercises(c *gin.Context) {
	user, ok := s.currentUser(c)
	if !ok {
		abortWithError(c, http.StatusForbidden, "unknown principal")
		return
	}

	s.mu.Lock()
	items := make([]domain.Exercise, len(user.exercises))
	copy(items, user.exercises)
	s.mu.Unlock()

	c.JSON(http.StatusOK, singlePage(items))
}

func (s *Server) handleCreateExercise(c *gin.Context) {
	user, ok := s.currentUser(c)
	if !ok {
		abortWithError(c, http.StatusForbidden, "unknown principal")
		return
	}

	var req createExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusUnprocessableEntity, "validation error: "+err.Error())
		return
	}
	if !req.MuscleGroup.Valid() {
		abortWithError(c, http.StatusUnprocessableEntity, "unknown muscle group")
		return
	}

	now := time.Now().UTC()
	created := domain.Exercise{
		ID:          uuid.NewString(),
		Name:        req.Name,
		MuscleGroup: req.MuscleGroup,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.mu.Lock()
	user.exercises = append(user.exercises, created)
	s.mu.Unlock()

	c.JSON(http.StatusCreated, created)
}

func (s *Server) handleUpdateExercise(c *gin.Context) {
	user, ok := s.currentUser(c)
	if !ok {
		abortWithError(c, http.StatusForbidden, "unknown principal")
		return
	}

	var patch domain.ExercisePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		abortWithError(c, http.StatusUnprocessableEntity, "validation error: "+err.Error())
		return
	}
	if patch.Name != nil && domain.ValidateExerciseName(*patch.Name) != nil {
		abortWithError(c, http.StatusUnprocessableEntity, "exercise name too short")
		return
	}
	if patch.MuscleGroup != nil && !patch.MuscleGroup.Valid() {
		abortWithError(c, http.StatusUnprocessableEntity, "unknown muscle group")
		return
	}

	id := c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range user.exercises {
		if user.exercises[i].ID != id {
			continue
		}
		if patch.Apply(&user.exercises[i]) {
			user.exercises[i].UpdatedAt = time.Now().UTC()
		}
		c.JSON(http.StatusOK, user.exercises[i])
		return
	}
	abortWithError(c, http.StatusNotFound, "exercise not found")
}

func (s *Server) handleDeleteExercise(c *gin.Context) {
	user, ok := s.currentUser(c)
	if !ok {
		abortWithError(c, http.StatusForbidden, "unknown principal")
		return
	}

	id := c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range user.exercises {
		if user.exercises[i].ID == id {
			user.exercises = append(user.exercises[:i], user.exercises[i+1:]...)
			c.Status(http.StatusNoContent)
			return
		}
	}
	abortWithError(c, http.StatusNotFound, "exercise not found")
}

type createWorkoutRequest struct {
	Date      time.Time                `json:"date" binding:"required"`
	Exercises []domain.WorkoutExercise `json:"exercises" binding:"required,min=1"`
}

// checkWorkoutExercises rejects an exercise list a workout must never
// hold: empty, or with the same exercise id twice.
func checkWorkoutExercises(exercises []domain.WorkoutExercise) (string, bool) {
	if len(exercises) == 0 {
		return "workout needs at least one exercise", false
	}
	seen := make(map[string]bool, len(exercises))
	for _, we := range exercises {
		if seen[we.ExerciseID] {
			return "exercise " + we.ExerciseID + " appears twice in the workout", false
		}
		seen[we.ExerciseID] = true
	}
	return "", true
}

func (s *Server) handleListWorkouts(c *gin.Context) {
	user, ok := s.currentUser(c)
	if !ok {
		abortWithError(c, http.StatusForbidden, "unknown principal")
		return
	}

	s.mu.Lock()
	items := make([]domain.Workout, len(user.workouts))
	copy(items, user.workouts)
	s.mu.Unlock()

	c.JSON(http.StatusOK, singlePage(items))
}

func (s *Server) handleCreateWorkout(c *gin.Context) {
	user, ok := s.currentUser(c)
	if !ok {
		abortWithError(c, http.StatusForbidden, "unknown principal")
		return
	}

	var req createWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusUnprocessableEntity, "validation error: "+err.Error())
		return
	}
	if msg, ok := checkWorkoutExercises(req.Exercises); !ok {
		abortWithError(c, http.StatusUnprocessableEntity, msg)
		return
	}

	now := time.Now().UTC()
	created := domain.Workout{
		ID:        uuid.NewString(),
		Date:      req.Date,
		Exercises: req.Exercises,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	user.workouts = append(user.workouts, created)
	s.mu.Unlock()

	c.JSON(http.StatusCreated, created)
}

func (s *Server) handleUpdateWorkout(c *gin.Context) {
	user, ok := s.currentUser(c)
	if !ok {
		abortWithError(c, http.StatusForbidden, "unknown principal")
		return
	}

	var patch domain.WorkoutPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		abortWithError(c, http.StatusUnprocessableEntity, "validation error: "+err.Error())
		return
	}
	if patch.Exercises != nil {
		if msg, ok := checkWorkoutExercises(patch.Exercises); !ok {
			abortWithError(c, http.StatusUnprocessableEntity, msg)
			return
		}
	}

	id := c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range user.workouts {
		if user.workouts[i].ID != id {
			continue
		}
		if patch.Apply(&user.workouts[i]) {
			user.workouts[i].UpdatedAt = time.Now().UTC()
		}
		c.JSON(http.StatusOK, user.workouts[i])
		return
	}
	abortWithError(c, http.StatusNotFound, "workout not found")
}

func (s *Server) handleDeleteWorkout(c *gin.Context) {
	user, ok := s.currentUser(c)
	if !ok {
		abortWithError(c, http.StatusForbidden, "unknown principal")
		return
	}

	id := c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range user.workouts {
		if user.workouts[i].ID == id {
			user.workouts = append(user.workouts[:i], user.workouts[i+1:]...)
			c.Status(http.StatusNoContent)
			return
		}
	}
	abortWithError(c, http.StatusNotFound, "workout not found")
}
