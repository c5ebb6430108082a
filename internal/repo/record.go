package repo

import (
	"errors"
	"fitness_tracker/internal/domain"

	"gorm.io/gorm"        // GORM ORM library
	"gorm.io/gorm/clause" // Upsert support
)

// UpsertRecord inserts or replaces the record for (user, type, date).
// Used for daily weigh-ins, where a second entry for the same day just
// corrects the value.
func UpsertRecord(db *gorm.DB, userID uint, recordType, date string, value int) error {
	record := domain.Record{UserID: userID, Type: recordType, Date: date, Value: value}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "type"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&record).Error
}

// ToggleRecord flips the presence of a record for (user, type, date):
// absent becomes present, present is removed. Used for period days.
func ToggleRecord(db *gorm.DB, userID uint, recordType, date string) error {
	return WithTx(db, func(tx *gorm.DB) error {
		var record domain.Record
		err := tx.Where("user_id = ? AND type = ? AND date = ?", userID, recordType, date).
			First(&record).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			record = domain.Record{UserID: userID, Type: recordType, Date: date}
			return tx.Create(&record).Error
		} else if err != nil {
			return err
		}
		return tx.Delete(&record).Error
	})
}

// ListRecords returns all records of one type for a user, oldest first
func ListRecords(db *gorm.DB, userID uint, recordType string) ([]domain.Record, error) {
	records := []domain.Record{}
	err := db.Where("user_id = ? AND type = ?", userID, recordType).
		Order("date").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
