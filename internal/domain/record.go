package domain

// Record types
const (
	RecordWeight = "weight" // Daily weigh-in, Value is the weight
	RecordPeriod = "period" // Period day marker, Value unused
)

// Record Model, a generic dated entry that can encode many different
// things, like period dates or daily weigh-ins
type Record struct {
	ID     uint   `gorm:"primaryKey" json:"-"`                        // Primary key
	UserID uint   `gorm:"uniqueIndex:idx_user_type_date" json:"-"`    // Owning user
	Type   string `gorm:"uniqueIndex:idx_user_type_date" json:"-"`    // Record kind
	Date   string `gorm:"uniqueIndex:idx_user_type_date" json:"date"` // Client-local date string
	Value  int    `json:"value"`                                      // Kind-specific value
}
