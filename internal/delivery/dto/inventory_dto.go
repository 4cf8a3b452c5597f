package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type AddMedicineRequest struct {
	MedicineName string          `json:"medicine_name" validate:"required"`
	BatchNumber  string          `json:"batch_number" validate:"required"`
	Stock        int             `json:"stock" validate:"gte=0"`
	UnitPrice    decimal.Decimal `json:"unit_price" validate:"required"`
	GSTRate      decimal.Decimal `json:"gst_rate"`
	ExpiryDate   string          `json:"expiry_date" validate:"omitempty"` // Format: YYYY-MM-DD
}

type UpdateStockRequest struct {
	// Delta is added to the current stock; negative values dispense.
	Delta int `json:"delta" validate:"required"`
}

// Response DTOs

type InventoryItemResponse struct {
	ID           uuid.UUID       `json:"id"`
	MedicineName string          `json:"medicine_name"`
	BatchNumber  string          `json:"batch_number"`
	Stock        int             `json:"stock"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	GSTRate      decimal.Decimal `json:"gst_rate"`
	ExpiryDate   string          `json:"expiry_date,omitempty"`
	LowStock     bool            `json:"low_stock"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type InventoryListResponse struct {
	Items []InventoryItemResponse `json:"items"`
	Total int                     `json:"total"`
}

type NotificationResponse struct {
	ID        int64     `json:"id"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int                    `json:"total"`
}
