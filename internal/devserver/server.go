// Package devserver is an in-memory reference implementation of the
// REST backend the client consumes. It exists so the repo runs end to
// end without the production service: the CLI points at it in local
// mode and the integration tests exercise the real wire path through
// it. State lives in process memory, namespaced per account.
package devserver

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"fittrack/internal/domain"
)

type userRecord struct {
	id           string
	name         string
	email        string
	passwordHash []byte
	role         domain.Role

	exercises []domain.Exercise
	workouts  []domain.Workout
}

// Server holds the in-memory accounts and their collections.
type Server struct {
	jwtSecret     string
	jwtExpiration time.Duration

	mu           sync.Mutex
	usersByEmail map[string]*userRecord
	usersByID    map[string]*userRecord
}

// New creates a Server minting HS256 tokens with the given secret.
func New(jwtSecret string, jwtExpiration time.Duration) *Server {
	if jwtSecret == "" {
		panic("devserver: JWT secret cannot be empty")
	}
	if jwtExpiration <= 0 {
		jwtExpiration = time.Hour
	}
	return &Server{
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
		usersByEmail:  make(map[string]*userRecord),
		usersByID:     make(map[string]*userRecord),
	}
}

// Router builds the gin engine with the full API surface.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")

	authGroup := apiV1.Group("/auth")
	{
		authGroup.POST("/register", s.handleRegister)
		authGroup.POST("/login", s.handleLogin)
	}

	protected := apiV1.Group("")
	protected.Use(s.authMiddleware())
	{
		exerciseGroup := protected.Group("/exercises")
		{
			exerciseGroup.GET("", s.handleListExercises)
			exerciseGroup.POST("", s.handleCreateExercise)
			exerciseGroup.PUT("/:id", s.handleUpdateExercise)
			exerciseGroup.DELETE("/:id", s.handleDeleteExercise)
		}

		workoutGroup := protected.Group("/workouts")
		{
			workoutGroup.GET("", s.handleListWorkouts)
			workoutGroup.POST("", s.handleCreateWorkout)
			workoutGroup.PUT("/:id", s.handleUpdateWorkout)
			workoutGroup.DELETE("/:id", s.handleDeleteWorkout)
		}
	}

	return router
}

// abortWithError returns a JSON error body and stops the chain.
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

type pageResponse[T any] struct {
	Items    []T  `json:"items"`
	Page     int  `json:"page"`
	PageSize int  `json:"pageSize"`
	Total    int  `json:"total"`
	HasNext  bool `json:"hasNextPage"`
	HasPrev  bool `json:"hasPreviousPage"`
}

func singlePage[T any](items []T) pageResponse[T] {
	if items == nil {
		items = []T{}
	}
	return pageResponse[T]{
		Items:    items,
		Page:     1,
		PageSize: len(items),
		Total:    len(items),
	}
}
