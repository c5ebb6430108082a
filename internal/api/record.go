package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"strconv"  // Query param parsing

	"fitness_tracker/internal/cache"
	"fitness_tracker/internal/domain"
	"fitness_tracker/internal/middleware"
	"fitness_tracker/internal/repo"

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// SetWeightHandler upserts a weigh-in for one date. The client sends
// the date because its locale decides what "today" is.
func SetWeightHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)
		date, dateExists := c.GetQuery("date")
		weightStr, weightExists := c.GetQuery("weight")
		if !dateExists || !weightExists {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		weight, err := strconv.Atoi(weightStr)
		if err != nil || weight < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		if err := repo.UpsertRecord(db, userID, domain.RecordWeight, date, weight); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save weigh-in"})
			return
		}
		_ = cache.InvalidateUser(context.Background(), rdb, userID)
		c.JSON(http.StatusOK, gin.H{})
	}
}

// MarkPeriodHandler toggles a period day on or off for one date
func MarkPeriodHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)
		date, exists := c.GetQuery("date")
		if !exists {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		if err := repo.ToggleRecord(db, userID, domain.RecordPeriod, date); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle date"})
			return
		}
		_ = cache.InvalidateUser(context.Background(), rdb, userID)
		c.JSON(http.StatusOK, gin.H{})
	}
}
