package devserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"fittrack/internal/domain"
)

const contextUserIDKey = "userID"

// jwtClaims is the token payload, shared between mint and verify.
type jwtClaims struct {
	UserID string      `json:"uid"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// credentialsResponse mirrors the shape the client's auth collaborator
// expects.
type credentialsResponse struct {
	UserID   string      `json:"userId"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Role     domain.Role `json:"role"`
	Token    string      `json:"token"`
}

func (s *Server) handleRegister(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusUnprocessableEntity, "validation error: "+err.Error())
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "could not process registration")
		return
	}

	key := strings.ToLower(req.Email)

	s.mu.Lock()
	if _, exists := s.usersByEmail[key]; exists {
		s.mu.Unlock()
		abortWithError(c, http.StatusConflict, "an account with this email already exists")
		return
	}
	user := &userRecord{
		id:           uuid.NewString(),
		name:         req.Name,
		email:        req.Email,
		passwordHash: hash,
		role:         domain.RoleUser,
	}
	s.usersByEmail[key] = user
	s.usersByID[user.id] = user
	s.mu.Unlock()

	token, err := s.mintToken(user)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "could not generate token")
		return
	}
	c.JSON(http.StatusCreated, credentialsResponse{
		UserID:   user.id,
		Username: user.name,
		Email:    user.email,
		Role:     user.role,
		Token:    token,
	})
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusUnprocessableEntity, "validation error: "+err.Error())
		return
	}

	s.mu.Lock()
	user, ok := s.usersByEmail[strings.ToLower(req.Email)]
	s.mu.Unlock()

	if !ok || bcrypt.CompareHashAndPassword(user.passwordHash, []byte(req.Password)) != nil {
		abortWithError(c, http.StatusUnauthorized, "invalid email or password")
		return
	}

	token, err := s.mintToken(user)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "could not generate token")
		return
	}
	c.JSON(http.StatusOK, credentialsResponse{
		UserID:   user.id,
		Username: user.name,
		Email:    user.email,
		Role:     user.role,
		Token:    token,
	})
}

func (s *Server) mintToken(user *userRecord) (string, error) {
	now := time.Now()
	claims := &jwtClaims{
		UserID: user.id,
		Role:   user.role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.id,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "fittrack-devserver",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// authMiddleware validates the bearer token and stashes the user id
// in the request context.
func (s *Server) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithError(c, http.StatusForbidden, "authorization header is missing")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			abortWithError(c, http.StatusForbidden, "authorization header format must be Bearer {token}")
			return
		}

		claims := &jwtClaims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(s.jwtSecret), nil
		})
		if err != nil || !token.Valid || claims.UserID == "" {
			abortWithError(c, http.StatusForbidden, "invalid or expired token")
			return
		}

		s.mu.Lock()
		_, known := s.usersByID[claims.UserID]
		s.mu.Unlock()
		if !known {
			abortWithError(c, http.StatusForbidden, "unknown principal")
			return
		}

		c.Set(contextUserIDKey, claims.UserID)
		c.Next()
	}
}

// currentUser resolves the record stashed by the middleware. Callers
// hold no lock; the record pointer is stable for the server lifetime.
func (s *Server) currentUser(c *gin.Context) (*userRecord, bool) {
	idRaw, exists := c.Get(contextUserIDKey)
	if !exists {
		return nil, false
	}
	id, ok := idRaw.(string)
	if !ok {
		return nil, false
	}

	s.mu.Lock()
	user, ok := s.usersByID[id]
	s.mu.Unlock()
	return user, ok
}
