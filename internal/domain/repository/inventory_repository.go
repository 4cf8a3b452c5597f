package repository

import (
	"hms-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InventoryRepository interface {
	Create(db *gorm.DB, item *entity.PharmacyInventory) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.PharmacyInventory, error)
	FindAll(db *gorm.DB) ([]entity.PharmacyInventory, error)
	FindLowStock(db *gorm.DB, threshold int) ([]entity.PharmacyInventory, error)
	Update(db *gorm.DB, item *entity.PharmacyInventory) error
	Delete(db *gorm.DB, id uuid.UUID) error
}
