package repository

import (
	"hms-backend/internal/domain/entity"
	domainRepo "hms-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type notificationRepository struct{}

func NewNotificationRepository() domainRepo.NotificationRepository {
	return &notificationRepository{}
}

func (r *notificationRepository) Create(db *gorm.DB, notification *entity.Notification) error {
	return db.Create(notification).Error
}

func (r *notificationRepository) FindAll(db *gorm.DB, unreadOnly bool) ([]entity.Notification, error) {
	query := db.Model(&entity.Notification{})
	if unreadOnly {
		query = query.Where("read = false")
	}

	var notifications []entity.Notification
	err := query.Order("created_at DESC").Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *notificationRepository) MarkRead(db *gorm.DB, id int64) (int64, error) {
	result := db.Model(&entity.Notification{}).
		Where("id = ? AND read = false", id).
		Update("read", true)
	return result.RowsAffected, result.Error
}
