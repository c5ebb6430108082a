package repo

import (
	"fitness_tracker/internal/domain"

	"gorm.io/gorm" // GORM ORM library
)

// ListWorkoutsForUser returns every workout owned by the user, with
// exercises preloaded in insertion order.
func ListWorkoutsForUser(db *gorm.DB, userID uint) ([]domain.Workout, error) {
	workouts := []domain.Workout{}
	err := db.Where("user_id = ?", userID).
		Preload("Exercises", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Order("id").
		Find(&workouts).Error
	if err != nil {
		return nil, err
	}
	return workouts, nil
}

// GetOwnedWorkout resolves a workout by id under the ownership filter.
// A workout that does not exist and a workout owned by another user are
// both ErrNotFound; nothing downstream can tell them apart.
func GetOwnedWorkout(db *gorm.DB, userID, workoutID uint) (*domain.Workout, error) {
	var workout domain.Workout
	err := db.Where("id = ? AND user_id = ?", workoutID, userID).First(&workout).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &workout, nil
}

// DeleteWorkoutCascade removes one owned workout and all its exercises
// in a single unit of work
func DeleteWorkoutCascade(db *gorm.DB, userID, workoutID uint) error {
	return WithTx(db, func(tx *gorm.DB) error {
		workout, err := GetOwnedWorkout(tx, userID, workoutID)
		if err != nil {
			return err
		}
		if err := tx.Where("workout_id = ?", workout.ID).Delete(&domain.Exercise{}).Error; err != nil {
			return err
		}
		return tx.Delete(workout).Error
	})
}

// ListExercisesForWorkout returns a workout's exercises in insertion order
func ListExercisesForWorkout(db *gorm.DB, workoutID uint) ([]domain.Exercise, error) {
	exercises := []domain.Exercise{}
	err := db.Where("workout_id = ?", workoutID).Order("id").Find(&exercises).Error
	if err != nil {
		return nil, err
	}
	return exercises, nil
}

// CreateExercise inserts a new exercise row
func CreateExercise(db *gorm.DB, exercise *domain.Exercise) error {
	return db.Create(exercise).Error
}

// UpdateExercise writes every mutable column of the exercise back to
// storage. Full replace, not a merge: zero values overwrite.
func UpdateExercise(db *gorm.DB, exercise *domain.Exercise) error {
	return db.Save(exercise).Error
}

// DeleteExercise removes one exercise row
func DeleteExercise(db *gorm.DB, exercise *domain.Exercise) error {
	return db.Delete(exercise).Error
}
