package repository

import (
	"errors"

	"hms-backend/internal/domain/entity"
	domainRepo "hms-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type labRequestRepository struct{}

func NewLabRequestRepository() domainRepo.LabRequestRepository {
	return &labRequestRepository{}
}

func (r *labRequestRepository) Create(db *gorm.DB, request *entity.LabRequest) error {
	return db.Create(request).Error
}

func (r *labRequestRepository) FindByID(db *gorm.DB, id int64) (*entity.LabRequest, error) {
	var request entity.LabRequest
	err := db.Preload("Patient.User").Where("id = ?", id).First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

func (r *labRequestRepository) FindByStatus(db *gorm.DB, status entity.LabRequestStatus) ([]entity.LabRequest, error) {
	var requests []entity.LabRequest
	query := db.Preload("Patient.User")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("requested_at ASC").Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *labRequestRepository) Update(db *gorm.DB, request *entity.LabRequest) error {
	return db.Save(request).Error
}
