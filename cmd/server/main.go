package main

import (
	"context" // Context for the Redis ping
	"log"     // Startup logging

	"fitness_tracker/internal/api"        // HTTP handlers
	"fitness_tracker/internal/config"     // Configuration loading
	"fitness_tracker/internal/middleware" // Request gate

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig()

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}

	// Setup Redis client for the user-info cache
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default()
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Public auth routes
	r.POST("/user/signup", api.SignupHandler(db, cfg.JWTSecret))
	r.POST("/user/login", api.LoginHandler(db, cfg.JWTSecret))

	// Everything else sits behind the credential gate
	authed := r.Group("")
	authed.Use(middleware.Auth(db, cfg.JWTSecret))

	// User routes
	authed.GET("/user/info", api.UserInfoHandler(db, redisClient))
	authed.POST("/user", api.UpdatePreferenceHandler(db, redisClient))
	authed.DELETE("/user", api.DeleteUserHandler(db, redisClient))

	// Workout routes
	authed.POST("/workout", api.CreateWorkoutHandler(db, redisClient))
	authed.PUT("/workout", api.UpdateWorkoutHandler(db, redisClient))
	authed.DELETE("/workout", api.DeleteWorkoutHandler(db, redisClient))

	// Record routes
	authed.POST("/record/weight", api.SetWeightHandler(db, redisClient))
	authed.POST("/record/period", api.MarkPeriodHandler(db, redisClient))

	log.Println("Server running on " + cfg.AppPort)
	r.Run(":" + cfg.AppPort)
}
