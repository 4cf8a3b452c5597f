package entity

import "time"

// NotificationKind classifies a stored notification
type NotificationKind string

const (
	NotificationKindLowStock NotificationKind = "low_stock"
	NotificationKindExpiry   NotificationKind = "expiry"
)

// Notification is a stored portal notification. The pharmacy portal writes
// one when a stock mutation leaves a batch below the low-stock threshold.
type Notification struct {
	ID        int64            `gorm:"primaryKey;autoIncrement" json:"id"`
	Kind      NotificationKind `gorm:"type:varchar(50);not null;index" json:"kind"`
	Message   string           `gorm:"type:text;not null" json:"message"`
	Read      bool             `gorm:"not null;default:false;index" json:"read"`
	CreatedAt time.Time        `gorm:"autoCreateTime" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
