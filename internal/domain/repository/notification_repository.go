package repository

import (
	"hms-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(db *gorm.DB, notification *entity.Notification) error
	FindAll(db *gorm.DB, unreadOnly bool) ([]entity.Notification, error)
	MarkRead(db *gorm.DB, id int64) (int64, error)
}
