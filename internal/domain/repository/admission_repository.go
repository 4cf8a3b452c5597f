package repository

import (
	"hms-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdmissionRepository interface {
	Create(db *gorm.DB, admission *entity.Admission) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Admission, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Admission, error)
	Update(db *gorm.DB, admission *entity.Admission) error
}
