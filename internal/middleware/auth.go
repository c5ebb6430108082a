package middleware

import (
	"errors"   // Sentinel error checks
	"net/http" // HTTP status codes
	"strings"  // Header parsing

	"fitness_tracker/internal/repo"
	"fitness_tracker/internal/token"

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// UserIDKey is the gin context key holding the authenticated user id
const UserIDKey = "userID"

// Auth is the per-request gate: it validates the bearer credential and
// then confirms the subject still exists in storage, so a valid token
// for a since-deleted account is rejected with 404 rather than 400.
func Auth(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		// The header must be in "Bearer <token>" shape
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Missing or malformed Authorization header"})
			return
		}
		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims, err := token.Parse(tokenStr, secret)
		if err != nil {
			// One message for every credential failure, no hint which
			// check tripped
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired token"})
			return
		}
		user, err := repo.FindUserByID(db, claims.UserID)
		if errors.Is(err, repo.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Account not found"})
			return
		} else if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve account"})
			return
		}
		c.Set(UserIDKey, user.ID) // Ownership filter for everything downstream
		c.Next()
	}
}

// UserID reads the authenticated user id the gate stored in the context
func UserID(c *gin.Context) uint {
	return c.MustGet(UserIDKey).(uint)
}
