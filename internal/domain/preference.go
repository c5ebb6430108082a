package domain

// Preference Model, exactly one row per user
type Preference struct {
	UserID      uint `gorm:"primaryKey" json:"-"` // Owning user, also the key
	UseImperial bool `json:"useImperial"`         // Imperial vs metric units
	IsFemale    bool `json:"isFemale"`            // Enables period tracking in the client
}
