package repository

import (
	"hms-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type LabRequestRepository interface {
	Create(db *gorm.DB, request *entity.LabRequest) error
	FindByID(db *gorm.DB, id int64) (*entity.LabRequest, error)
	FindByStatus(db *gorm.DB, status entity.LabRequestStatus) ([]entity.LabRequest, error)
	Update(db *gorm.DB, request *entity.LabRequest) error
}
