package domain

// Workout Model
type Workout struct {
	ID         uint       `gorm:"primaryKey" json:"id,omitempty"` // Primary key
	UserID     uint       `gorm:"index" json:"-"`                 // Owning user
	IsTemplate bool       `json:"isTemplate"`                     // Reusable template vs logged session
	Tag        string     `json:"tag"`                            // Name or date
	Exercises  []Exercise `json:"exercises"`                      // Ordered child exercises
}
