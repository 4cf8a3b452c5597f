package repository

import (
	"errors"

	"hms-backend/internal/domain/entity"
	domainRepo "hms-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type profileRepository struct{}

func NewProfileRepository() domainRepo.ProfileRepository {
	return &profileRepository{}
}

func (r *profileRepository) Create(db *gorm.DB, profile *entity.Profile) error {
	return db.Create(profile).Error
}

func (r *profileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Profile, error) {
	var profile entity.Profile
	err := db.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) FindByPhone(db *gorm.DB, phone string) (*entity.Profile, error) {
	var profile entity.Profile
	err := db.Preload("User").Where("phone = ?", phone).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) FindByUHID(db *gorm.DB, uhid string) (*entity.Profile, error) {
	var profile entity.Profile
	err := db.Preload("User").Where("uhid = ?", uhid).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) FindDoctors(db *gorm.DB, specialization string) ([]entity.Profile, error) {
	var profiles []entity.Profile
	query := db.Preload("User").
		Joins("JOIN users ON users.id = profiles.user_id").
		Where("users.role_id = ? AND users.is_active", entity.RoleIDDoctor)
	if specialization != "" {
		query = query.Where("profiles.specialization ILIKE ?", "%"+specialization+"%")
	}
	err := query.Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *profileRepository) Update(db *gorm.DB, profile *entity.Profile) error {
	return db.Save(profile).Error
}
