package api

import (
	"context"  // Context for Redis operations
	"errors"   // Sentinel error checks
	"net/http" // HTTP status codes
	"strconv"  // Query param parsing

	"fitness_tracker/internal/cache"
	"fitness_tracker/internal/middleware"
	"fitness_tracker/internal/repo"
	"fitness_tracker/internal/workout"

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
	"gorm.io/gorm"                 // GORM ORM library
)

// CreateWorkoutHandler stores a new workout with its exercises and
// returns the persisted result, ids included
func CreateWorkoutHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)
		var req workout.Input
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		created, err := workout.Create(db, userID, req)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,
				"error":   err.Error(),
			}).Error("Workout creation failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create workout"})
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":    userID,
			"workout_id": created.ID,
			"exercises":  len(created.Exercises),
		}).Info("Workout created")
		_ = cache.InvalidateUser(context.Background(), rdb, userID)
		c.JSON(http.StatusOK, gin.H{"workout": created})
	}
}

// UpdateWorkoutHandler reconciles an owned workout's exercise list with
// the submitted desired list. The stored list ends up exactly equal to
// the request body, or untouched on failure.
func UpdateWorkoutHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)
		var req workout.Input
		if err := c.ShouldBindJSON(&req); err != nil || req.ID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		updated, err := workout.Reconcile(db, userID, req)
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Workout not found"})
			return
		} else if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id":    userID,
				"workout_id": req.ID,
				"error":      err.Error(),
			}).Error("Workout update failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update workout"})
			return
		}
		_ = cache.InvalidateUser(context.Background(), rdb, userID)
		c.JSON(http.StatusOK, gin.H{"workout": updated})
	}
}

// DeleteWorkoutHandler removes one owned workout and all its exercises
func DeleteWorkoutHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)
		idStr, exists := c.GetQuery("id")
		if !exists {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		id, err := strconv.ParseUint(idStr, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		err = repo.DeleteWorkoutCascade(db, userID, uint(id))
		if errors.Is(err, repo.ErrNotFound) {
			// Absent and foreign-owned look the same on purpose
			c.JSON(http.StatusNotFound, gin.H{"error": "Workout not found"})
			return
		} else if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id":    userID,
				"workout_id": id,
				"error":      err.Error(),
			}).Error("Workout deletion failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete workout"})
			return
		}
		_ = cache.InvalidateUser(context.Background(), rdb, userID)
		c.JSON(http.StatusOK, gin.H{})
	}
}
