package repo

import (
	"errors" // Error inspection
	"fitness_tracker/internal/domain"

	"gorm.io/gorm"        // GORM ORM library
	"gorm.io/gorm/clause" // Association control on insert
)

// FindUserByEmail looks up a user by their unique email
func FindUserByEmail(db *gorm.DB, email string) (*domain.User, error) {
	var user domain.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

// FindUserByID looks up a user by primary key
func FindUserByID(db *gorm.DB, id uint) (*domain.User, error) {
	var user domain.User
	if err := db.First(&user, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

// CreateUser inserts the user and their default preference row in one
// unit of work. Fails with ErrDuplicateEmail if the email is taken.
func CreateUser(db *gorm.DB, user *domain.User) error {
	return WithTx(db, func(tx *gorm.DB) error {
		// Pre-check the email so the common case reports cleanly
		var count int64
		if err := tx.Model(&domain.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateEmail
		}
		// Associations are managed explicitly below, not by the ORM
		if err := tx.Omit(clause.Associations).Create(user).Error; err != nil {
			// Backstop for a concurrent signup hitting the unique index
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateEmail
			}
			return err
		}
		// Preference is created exactly once, here, with defaults
		pref := domain.Preference{UserID: user.ID, UseImperial: true}
		if err := tx.Create(&pref).Error; err != nil {
			return err
		}
		user.Preference = pref
		return nil
	})
}

// DeleteUserCascade removes the user together with their preference,
// records, workouts and all exercises of those workouts, atomically.
func DeleteUserCascade(db *gorm.DB, userID uint) error {
	return WithTx(db, func(tx *gorm.DB) error {
		// Exercises of every owned workout first, so no orphans survive
		owned := tx.Model(&domain.Workout{}).Select("id").Where("user_id = ?", userID)
		if err := tx.Where("workout_id IN (?)", owned).Delete(&domain.Exercise{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&domain.Workout{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&domain.Record{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&domain.Preference{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.User{}, userID).Error
	})
}

// GetPreference returns the preference row for a user
func GetPreference(db *gorm.DB, userID uint) (*domain.Preference, error) {
	var pref domain.Preference
	if err := db.Where("user_id = ?", userID).First(&pref).Error; err != nil {
		return nil, notFound(err)
	}
	return &pref, nil
}

// UpdatePreference overwrites both preference flags for a user
func UpdatePreference(db *gorm.DB, userID uint, useImperial, isFemale bool) error {
	result := db.Model(&domain.Preference{}).
		Where("user_id = ?", userID).
		// Select forces the write even when a flag is false
		Select("use_imperial", "is_female").
		Updates(domain.Preference{UseImperial: useImperial, IsFemale: isFemale})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
