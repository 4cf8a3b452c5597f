package repository

import (
	"errors"

	"hms-backend/internal/domain/entity"
	domainRepo "hms-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type inventoryRepository struct{}

func NewInventoryRepository() domainRepo.InventoryRepository {
	return &inventoryRepository{}
}

func (r *inventoryRepository) Create(db *gorm.DB, item *entity.PharmacyInventory) error {
	return db.Create(item).Error
}

func (r *inventoryRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.PharmacyInventory, error) {
	var item entity.PharmacyInventory
	err := db.Where("id = ?", id).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *inventoryRepository) FindAll(db *gorm.DB) ([]entity.PharmacyInventory, error) {
	var items []entity.PharmacyInventory
	err := db.Order("medicine_name ASC, batch_number ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *inventoryRepository) FindLowStock(db *gorm.DB, threshold int) ([]entity.PharmacyInventory, error) {
	var items []entity.PharmacyInventory
	err := db.Where("stock < ?", threshold).
		Order("stock ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *inventoryRepository) Update(db *gorm.DB, item *entity.PharmacyInventory) error {
	return db.Save(item).Error
}

func (r *inventoryRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&entity.PharmacyInventory{}).Error
}
