package domain

// User Model
type User struct {
	ID       uint   `gorm:"primaryKey" json:"-"`           // Primary key
	Name     string `json:"name"`                          // Display name
	Email    string `gorm:"uniqueIndex;not null" json:"-"` // Unique login identifier
	Password string `gorm:"not null" json:"-"`             // bcrypt hash, never serialized

	Preference Preference `json:"preference"` // One-to-one, created at signup
	Workouts   []Workout  `json:"workouts"`   // Owned workouts
}
