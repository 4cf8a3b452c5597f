package repository

import "gorm.io/gorm"

type SequenceRepository interface {
	// Next increments and returns the counter for name. The row is locked
	// with SELECT ... FOR UPDATE, so the caller must run it inside the
	// transaction that consumes the value.
	Next(db *gorm.DB, name string) (int64, error)
}
