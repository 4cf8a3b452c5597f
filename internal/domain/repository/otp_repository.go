package repository

import (
	"hms-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type OtpRepository interface {
	// Upsert replaces any existing code for the identifier unconditionally.
	Upsert(db *gorm.DB, otp *entity.Otp) error
	FindByIdentifier(db *gorm.DB, identifier string) (*entity.Otp, error)
	// DeleteByIdentifier reports how many rows it removed so callers can
	// tell whether they actually consumed the code.
	DeleteByIdentifier(db *gorm.DB, identifier string) (int64, error)
}
