package repository

import (
	"errors"

	"hms-backend/internal/domain/entity"
	domainRepo "hms-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type admissionRepository struct{}

func NewAdmissionRepository() domainRepo.AdmissionRepository {
	return &admissionRepository{}
}

func (r *admissionRepository) Create(db *gorm.DB, admission *entity.Admission) error {
	return db.Create(admission).Error
}

func (r *admissionRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Admission, error) {
	var admission entity.Admission
	err := db.Preload("Patient.User").Where("id = ?", id).First(&admission).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admission, nil
}

func (r *admissionRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Admission, error) {
	var admissions []entity.Admission
	err := db.Where("patient_id = ?", patientID).
		Order("admitted_at DESC").
		Find(&admissions).Error
	if err != nil {
		return nil, err
	}
	return admissions, nil
}

func (r *admissionRepository) Update(db *gorm.DB, admission *entity.Admission) error {
	return db.Save(admission).Error
}
