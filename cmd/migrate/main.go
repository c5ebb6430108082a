package main

import (
	"fitness_tracker/internal/config" // Configuration loading
	"fitness_tracker/internal/db"     // Schema migration
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig()
	db.Migrate(cfg.DSN())
}
