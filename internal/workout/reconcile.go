// Package workout reconciles a client-submitted desired exercise list
// against the persisted one: matching ids are overwritten in place, new
// entries inserted, missing ones deleted, all inside one unit of work.
package workout

import (
	"fitness_tracker/internal/domain"
	"fitness_tracker/internal/repo"

	"gorm.io/gorm" // GORM ORM library
)

// ExerciseInput is one desired exercise entry. An ID referencing an
// existing exercise of the target workout means update-in-place; no ID
// (or an ID the workout doesn't own) means insert.
type ExerciseInput struct {
	ID           uint    `json:"id,omitempty"`
	Name         string  `json:"name"`
	ExerciseType string  `json:"exerciseType"`
	Reps         []int64 `json:"reps"`
	Weight       *int64  `json:"weight"`
	Duration     *int64  `json:"duration"`
	Distance     *int64  `json:"distance"`
}

// Input is the desired state of a whole workout
type Input struct {
	ID         uint            `json:"id,omitempty"` // Target workout, 0 on creation
	IsTemplate bool            `json:"isTemplate"`
	Tag        string          `json:"tag"` // Name or date
	Exercises  []ExerciseInput `json:"exercises"`
}

// applyFields copies every mutable attribute from the desired entry onto
// the persisted row. Full replace semantics: a field the client omitted
// becomes empty, it is not preserved.
func applyFields(exercise *domain.Exercise, in ExerciseInput) {
	exercise.Name = in.Name
	exercise.ExerciseType = in.ExerciseType
	exercise.Reps = in.Reps
	exercise.Weight = in.Weight
	exercise.Duration = in.Duration
	exercise.Distance = in.Distance
}

// Create stores a brand new workout with its exercises. This is the
// degenerate reconciliation: no existing set, every entry is an insert.
func Create(db *gorm.DB, userID uint, in Input) (*domain.Workout, error) {
	var result *domain.Workout
	err := repo.WithTx(db, func(tx *gorm.DB) error {
		workout := domain.Workout{UserID: userID, IsTemplate: in.IsTemplate, Tag: in.Tag}
		if err := tx.Omit("Exercises").Create(&workout).Error; err != nil {
			return err
		}
		for _, entry := range in.Exercises {
			exercise := domain.Exercise{WorkoutID: workout.ID}
			applyFields(&exercise, entry)
			if err := repo.CreateExercise(tx, &exercise); err != nil {
				return err
			}
		}
		var err error
		result, err = reload(tx, &workout)
		return err
	})
	return result, err
}

// Reconcile transforms the persisted exercise list of an owned workout
// into the desired list. Either the stored list ends up equal to the
// desired one or, on any failure, nothing changed at all.
func Reconcile(db *gorm.DB, userID uint, in Input) (*domain.Workout, error) {
	var result *domain.Workout
	err := repo.WithTx(db, func(tx *gorm.DB) error {
		// The only place ownership is checked for workout mutation;
		// everything below trusts this resolution.
		workout, err := repo.GetOwnedWorkout(tx, userID, in.ID)
		if err != nil {
			return err
		}

		// The workout's own attributes follow the same replace semantics
		workout.IsTemplate = in.IsTemplate
		workout.Tag = in.Tag
		if err := tx.Omit("Exercises").Save(workout).Error; err != nil {
			return err
		}

		existing, err := repo.ListExercisesForWorkout(tx, workout.ID)
		if err != nil {
			return err
		}
		byID := make(map[uint]*domain.Exercise, len(existing))
		for i := range existing {
			byID[existing[i].ID] = &existing[i]
		}

		// Partition the desired list into the update and insert sets.
		// Duplicate ids in the desired list: last write wins.
		kept := make(map[uint]bool, len(in.Exercises))
		for _, entry := range in.Exercises {
			if exercise, ok := byID[entry.ID]; entry.ID != 0 && ok {
				applyFields(exercise, entry)
				if err := repo.UpdateExercise(tx, exercise); err != nil {
					return err
				}
				kept[entry.ID] = true
				continue
			}
			// No id, or an id this workout doesn't own: insert fresh.
			// Discarding foreign ids stops exercises being stolen from
			// another workout by spoofing an identifier.
			exercise := domain.Exercise{WorkoutID: workout.ID}
			applyFields(&exercise, entry)
			if err := repo.CreateExercise(tx, &exercise); err != nil {
				return err
			}
		}

		// Delete set: existing rows the desired list no longer mentions
		for i := range existing {
			if !kept[existing[i].ID] {
				if err := repo.DeleteExercise(tx, &existing[i]); err != nil {
					return err
				}
			}
		}

		result, err = reload(tx, workout)
		return err
	})
	return result, err
}

// reload re-reads the workout's exercise list from storage so the caller
// sees what was actually persisted, not the in-memory mutated objects
func reload(tx *gorm.DB, workout *domain.Workout) (*domain.Workout, error) {
	exercises, err := repo.ListExercisesForWorkout(tx, workout.ID)
	if err != nil {
		return nil, err
	}
	workout.Exercises = exercises
	return workout, nil
}
