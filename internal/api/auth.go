package api

import (
	"errors"   // Sentinel error checks
	"net/http" // HTTP status codes
	"strings"  // Email normalization

	"fitness_tracker/internal/domain"
	"fitness_tracker/internal/repo"
	"fitness_tracker/internal/token"

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// SignupRequest carries the new account's identity
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest carries the login pair
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse returns the issued credential
type AuthResponse struct {
	Token string `json:"jwt"` // Signed credential, 60 day expiry
}

// isValidPassword bounds the password length; 72 bytes is bcrypt's cap
func isValidPassword(password string) bool {
	return len(password) >= 8 && len(password) <= 72
}

// SignupHandler creates a user plus their default preference and
// returns a fresh credential
func SignupHandler(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		if !isValidPassword(req.Password) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be 8-72 characters"})
			return
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		user := domain.User{
			Name:     req.Name,
			Email:    strings.ToLower(req.Email), // Lowercased so uniqueness is case-insensitive
			Password: string(hash),
		}
		if err := repo.CreateUser(db, &user); err != nil {
			if errors.Is(err, repo.ErrDuplicateEmail) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Account already exists"})
				return
			}
			logrus.WithFields(logrus.Fields{
				"email": user.Email,
				"error": err.Error(),
			}).Error("Signup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
			return
		}
		tokenStr, err := token.Issue(user.ID, jwtSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create token"})
			return
		}
		logrus.WithField("user_id", user.ID).Info("Account created")
		c.JSON(http.StatusOK, AuthResponse{Token: tokenStr})
	}
}

// LoginHandler verifies an email+password pair and returns a credential
func LoginHandler(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		user, err := repo.FindUserByEmail(db, strings.ToLower(req.Email))
		if errors.Is(err, repo.ErrNotFound) {
			// Same message as a wrong password, no account probing
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email or password"})
			return
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query account"})
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email or password"})
			return
		}
		tokenStr, err := token.Issue(user.ID, jwtSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create token"})
			return
		}
		c.JSON(http.StatusOK, AuthResponse{Token: tokenStr})
	}
}
