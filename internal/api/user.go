package api

import (
	"context"  // Context for Redis operations
	"errors"   // Sentinel error checks
	"net/http" // HTTP status codes
	"time"     // Cache TTL

	"fitness_tracker/internal/cache"
	"fitness_tracker/internal/domain"
	"fitness_tracker/internal/middleware"
	"fitness_tracker/internal/repo"

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
	"gorm.io/gorm"                 // GORM ORM library
)

// UserInfoResponse aggregates everything the client syncs on startup
type UserInfoResponse struct {
	Preference    domain.Preference `json:"preference"`
	Workouts      []domain.Workout  `json:"workouts"`
	WeightEntries []domain.Record   `json:"weightEntries"`
	PeriodDays    []domain.Record   `json:"periodDays"`
}

// UserInfoHandler returns the authenticated user's workouts (with
// exercises), preference and records. The aggregate is cached per user
// for 60s and invalidated by every mutation.
func UserInfoHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)
		ctx := context.Background()
		cacheKey := cache.UserInfoKey(userID)

		var cached UserInfoResponse
		if found, err := cache.Get(ctx, rdb, cacheKey, &cached); err == nil && found {
			c.JSON(http.StatusOK, gin.H{"user": cached, "cached": true})
			return
		}

		pref, err := repo.GetPreference(db, userID)
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Preference not found"})
			return
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch preference"})
			return
		}
		workouts, err := repo.ListWorkoutsForUser(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch workouts"})
			return
		}
		weighIns, err := repo.ListRecords(db, userID, domain.RecordWeight)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch weight entries"})
			return
		}
		periodDays, err := repo.ListRecords(db, userID, domain.RecordPeriod)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch period days"})
			return
		}

		info := UserInfoResponse{
			Preference:    *pref,
			Workouts:      workouts,
			WeightEntries: weighIns,
			PeriodDays:    periodDays,
		}
		_ = cache.Set(ctx, rdb, cacheKey, info, 60*time.Second)
		c.JSON(http.StatusOK, gin.H{"user": info, "cached": false})
	}
}

// PreferenceRequest carries the full replacement preference flags
type PreferenceRequest struct {
	UseImperial bool `json:"useImperial"`
	IsFemale    bool `json:"isFemale"`
}

// UpdatePreferenceHandler overwrites the user's preference row
func UpdatePreferenceHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)
		var req PreferenceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		err := repo.UpdatePreference(db, userID, req.UseImperial, req.IsFemale)
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Preference not found"})
			return
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update preference"})
			return
		}
		_ = cache.InvalidateUser(context.Background(), rdb, userID)
		c.JSON(http.StatusOK, gin.H{})
	}
}

// DeleteUserHandler cascade-deletes the authenticated account: the
// preference, all records, every workout and their exercises, then the
// user, atomically.
func DeleteUserHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)
		if err := repo.DeleteUserCascade(db, userID); err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,
				"error":   err.Error(),
			}).Error("Account deletion failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete account"})
			return
		}
		logrus.WithField("user_id", userID).Info("Account deleted")
		_ = cache.InvalidateUser(context.Background(), rdb, userID)
		c.JSON(http.StatusOK, gin.H{})
	}
}
