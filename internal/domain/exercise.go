package domain

// Exercise Model. The measurement fields are sparse: only the subset
// relevant to ExerciseType is expected to be set, the rest stay NULL.
type Exercise struct {
	ID           uint    `gorm:"primaryKey" json:"id,omitempty"` // Primary key
	WorkoutID    uint    `gorm:"index" json:"-"`                 // Owning workout
	Name         string  `json:"name"`                           // Exercise name
	ExerciseType string  `json:"exerciseType"`                   // Free-form kind code: rep/time/distance based
	Reps         []int64 `gorm:"serializer:json" json:"reps"`    // One count per set
	Weight       *int64  `json:"weight,omitempty"`               // Load in the user's unit system
	Duration     *int64  `json:"duration,omitempty"`             // Seconds
	Distance     *int64  `json:"distance,omitempty"`             // Meters or miles, client decides
}
