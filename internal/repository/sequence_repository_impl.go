package repository

import (
	"hms-backend/internal/domain/entity"
	domainRepo "hms-backend/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type sequenceRepository struct{}

func NewSequenceRepository() domainRepo.SequenceRepository {
	return &sequenceRepository{}
}

// Next increments the named counter under a row lock and returns the new
// value. Concurrent callers serialize on the row, so values are unique and
// monotonic; the caller's transaction scope makes the consumption atomic.
func (r *sequenceRepository) Next(db *gorm.DB, name string) (int64, error) {
	seq := entity.Sequence{Name: name, Value: 0}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&seq).Error; err != nil {
		return 0, err
	}

	var locked entity.Sequence
	if err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("name = ?", name).
		First(&locked).Error; err != nil {
		return 0, err
	}

	locked.Value++
	if err := db.Model(&entity.Sequence{}).
		Where("name = ?", name).
		Update("value", locked.Value).Error; err != nil {
		return 0, err
	}

	return locked.Value, nil
}
