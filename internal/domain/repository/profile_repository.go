package repository

import (
	"hms-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileRepository interface {
	Create(db *gorm.DB, profile *entity.Profile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Profile, error)
	FindByPhone(db *gorm.DB, phone string) (*entity.Profile, error)
	FindByUHID(db *gorm.DB, uhid string) (*entity.Profile, error)
	FindDoctors(db *gorm.DB, specialization string) ([]entity.Profile, error)
	Update(db *gorm.DB, profile *entity.Profile) error
}
