package repository

import (
	"errors"

	"hms-backend/internal/domain/entity"
	domainRepo "hms-backend/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type otpRepository struct{}

func NewOtpRepository() domainRepo.OtpRepository {
	return &otpRepository{}
}

// Upsert overwrites any prior code for the identifier, so a resend always
// invalidates the previous OTP.
func (r *otpRepository) Upsert(db *gorm.DB, otp *entity.Otp) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "identifier"}},
		DoUpdates: clause.AssignmentColumns([]string{"channel", "code", "expires_at", "created_at"}),
	}).Create(otp).Error
}

func (r *otpRepository) FindByIdentifier(db *gorm.DB, identifier string) (*entity.Otp, error) {
	var otp entity.Otp
	err := db.Where("identifier = ?", identifier).First(&otp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &otp, nil
}

func (r *otpRepository) DeleteByIdentifier(db *gorm.DB, identifier string) (int64, error) {
	result := db.Where("identifier = ?", identifier).Delete(&entity.Otp{})
	return result.RowsAffected, result.Error
}
