package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PharmacyInventory tracks stock per medicine batch. "Low stock" is a
// derived read (Stock below the configured threshold), not a stored flag.
type PharmacyInventory struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	MedicineName string          `gorm:"type:varchar(255);not null;index" json:"medicine_name"`
	BatchNumber  string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"batch_number"`
	Stock        int             `gorm:"not null;default:0" json:"stock"`
	UnitPrice    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	GSTRate      decimal.Decimal `gorm:"column:gst_rate;type:decimal(5,2);not null;default:0" json:"gst_rate"`
	ExpiryDate   *time.Time      `gorm:"type:date" json:"expiry_date,omitempty"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (PharmacyInventory) TableName() string {
	return "pharmacy_inventory"
}

// IsLowStock reports whether the batch is strictly below the given threshold
func (p *PharmacyInventory) IsLowStock(threshold int) bool {
	return p.Stock < threshold
}
