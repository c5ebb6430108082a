package repo

import (
	"fmt"
	"testing"

	"fitness_tracker/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB opens a fresh in-memory sqlite database with the full schema
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Preference{},
		&domain.Workout{},
		&domain.Exercise{},
		&domain.Record{},
	))
	return db
}

// createTestUser signs up a user the way the signup path does
func createTestUser(t *testing.T, db *gorm.DB, email string) *domain.User {
	t.Helper()
	user := &domain.User{Name: "Test", Email: email, Password: "hashed"}
	require.NoError(t, CreateUser(db, user))
	return user
}

func TestCreateUser_DefaultPreference(t *testing.T) {
	db := testDB(t)
	user := createTestUser(t, db, "a@x.com")

	pref, err := GetPreference(db, user.ID)
	require.NoError(t, err)
	assert.True(t, pref.UseImperial)
	assert.False(t, pref.IsFemale)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	db := testDB(t)
	createTestUser(t, db, "a@x.com")

	err := CreateUser(db, &domain.User{Email: "a@x.com", Password: "other"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	// The failed signup must not leave a second preference row behind
	var prefs int64
	require.NoError(t, db.Model(&domain.Preference{}).Count(&prefs).Error)
	assert.Equal(t, int64(1), prefs)
}

func TestFindUserByEmail(t *testing.T) {
	db := testDB(t)
	user := createTestUser(t, db, "a@x.com")

	found, err := FindUserByEmail(db, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	_, err = FindUserByEmail(db, "nobody@x.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetOwnedWorkout_OwnershipIsolation(t *testing.T) {
	db := testDB(t)
	alice := createTestUser(t, db, "alice@x.com")
	bob := createTestUser(t, db, "bob@x.com")

	workout := domain.Workout{UserID: alice.ID, Tag: "Leg Day"}
	require.NoError(t, db.Create(&workout).Error)

	got, err := GetOwnedWorkout(db, alice.ID, workout.ID)
	require.NoError(t, err)
	assert.Equal(t, "Leg Day", got.Tag)

	// Bob asking for Alice's workout looks exactly like asking for a
	// workout that does not exist
	_, foreignErr := GetOwnedWorkout(db, bob.ID, workout.ID)
	_, missingErr := GetOwnedWorkout(db, bob.ID, 9999)
	assert.ErrorIs(t, foreignErr, ErrNotFound)
	assert.ErrorIs(t, missingErr, ErrNotFound)
	assert.Equal(t, missingErr, foreignErr)
}

func TestDeleteWorkoutCascade(t *testing.T) {
	db := testDB(t)
	alice := createTestUser(t, db, "alice@x.com")
	bob := createTestUser(t, db, "bob@x.com")

	workout := domain.Workout{UserID: alice.ID, Tag: "Push"}
	require.NoError(t, db.Create(&workout).Error)
	keep := domain.Workout{UserID: alice.ID, Tag: "Pull"}
	require.NoError(t, db.Create(&keep).Error)
	for _, w := range []uint{workout.ID, keep.ID} {
		require.NoError(t, CreateExercise(db, &domain.Exercise{WorkoutID: w, Name: "Row"}))
	}

	// Bob cannot delete it, and nothing changes when he tries
	assert.ErrorIs(t, DeleteWorkoutCascade(db, bob.ID, workout.ID), ErrNotFound)
	var count int64
	require.NoError(t, db.Model(&domain.Exercise{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)

	require.NoError(t, DeleteWorkoutCascade(db, alice.ID, workout.ID))

	// The workout and its exercises are gone, the sibling untouched
	_, err := GetOwnedWorkout(db, alice.ID, workout.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	orphans, err := ListExercisesForWorkout(db, workout.ID)
	require.NoError(t, err)
	assert.Empty(t, orphans)
	remaining, err := ListExercisesForWorkout(db, keep.ID)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestDeleteUserCascade(t *testing.T) {
	db := testDB(t)
	alice := createTestUser(t, db, "alice@x.com")
	bob := createTestUser(t, db, "bob@x.com")

	for _, u := range []*domain.User{alice, bob} {
		workout := domain.Workout{UserID: u.ID, Tag: "Day 1"}
		require.NoError(t, db.Create(&workout).Error)
		require.NoError(t, CreateExercise(db, &domain.Exercise{WorkoutID: workout.ID, Name: "Squat"}))
		require.NoError(t, UpsertRecord(db, u.ID, domain.RecordWeight, "2026-01-01", 80))
	}

	require.NoError(t, DeleteUserCascade(db, alice.ID))

	// Every trace of Alice is gone
	_, err := FindUserByID(db, alice.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = GetPreference(db, alice.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	workouts, err := ListWorkoutsForUser(db, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, workouts)
	records, err := ListRecords(db, alice.ID, domain.RecordWeight)
	require.NoError(t, err)
	assert.Empty(t, records)

	// No orphan exercises: every remaining exercise has a live workout
	var orphans int64
	require.NoError(t, db.Model(&domain.Exercise{}).
		Where("workout_id NOT IN (?)", db.Model(&domain.Workout{}).Select("id")).
		Count(&orphans).Error)
	assert.Equal(t, int64(0), orphans)

	// Bob is untouched
	bobWorkouts, err := ListWorkoutsForUser(db, bob.ID)
	require.NoError(t, err)
	require.Len(t, bobWorkouts, 1)
	assert.Len(t, bobWorkouts[0].Exercises, 1)
}

func TestUpdatePreference(t *testing.T) {
	db := testDB(t)
	user := createTestUser(t, db, "a@x.com")

	// Both flags must be written even when they go to false
	require.NoError(t, UpdatePreference(db, user.ID, false, true))
	pref, err := GetPreference(db, user.ID)
	require.NoError(t, err)
	assert.False(t, pref.UseImperial)
	assert.True(t, pref.IsFemale)

	assert.ErrorIs(t, UpdatePreference(db, 9999, true, false), ErrNotFound)
}

func TestUpsertRecord_ReplacesValue(t *testing.T) {
	db := testDB(t)
	user := createTestUser(t, db, "a@x.com")

	require.NoError(t, UpsertRecord(db, user.ID, domain.RecordWeight, "2026-08-28", 80))
	require.NoError(t, UpsertRecord(db, user.ID, domain.RecordWeight, "2026-08-28", 82))

	records, err := ListRecords(db, user.ID, domain.RecordWeight)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 82, records[0].Value)
}

func TestToggleRecord(t *testing.T) {
	db := testDB(t)
	user := createTestUser(t, db, "a@x.com")

	require.NoError(t, ToggleRecord(db, user.ID, domain.RecordPeriod, "2026-08-28"))
	records, err := ListRecords(db, user.ID, domain.RecordPeriod)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	// Toggling the same date again removes it
	require.NoError(t, ToggleRecord(db, user.ID, domain.RecordPeriod, "2026-08-28"))
	records, err = ListRecords(db, user.ID, domain.RecordPeriod)
	require.NoError(t, err)
	assert.Empty(t, records)
}
