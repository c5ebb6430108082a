package repo

import (
	"errors" // Sentinel errors

	"gorm.io/gorm" // GORM ORM library
)

// Sentinel errors surfaced to handlers, which map them to status codes.
var (
	// ErrNotFound covers both "does not exist" and "owned by someone
	// else"; callers must not be able to tell the two apart.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when signup reuses a taken email
	ErrDuplicateEmail = errors.New("email already registered")
)

// WithTx runs fn inside one unit of work: commit on nil return, rollback
// on error, connection released on every path. Every request mutation
// goes through exactly one of these.
func WithTx(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.Transaction(fn)
}

// notFound translates gorm's record-not-found into the sentinel
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
