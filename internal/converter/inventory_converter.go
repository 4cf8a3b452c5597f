package converter

import (
	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/domain/entity"
)

// InventoryItemToResponse converts a PharmacyInventory entity to its DTO.
// LowStock is derived against the configured threshold at read time.
func InventoryItemToResponse(item *entity.PharmacyInventory, lowStockThreshold int) *dto.InventoryItemResponse {
	if item == nil {
		return nil
	}

	response := &dto.InventoryItemResponse{
		ID:           item.ID,
		MedicineName: item.MedicineName,
		BatchNumber:  item.BatchNumber,
		Stock:        item.Stock,
		UnitPrice:    item.UnitPrice,
		GSTRate:      item.GSTRate,
		LowStock:     item.IsLowStock(lowStockThreshold),
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
	if item.ExpiryDate != nil {
		response.ExpiryDate = item.ExpiryDate.Format("2006-01-02")
	}

	return response
}

// InventoryItemsToResponses converts a slice of PharmacyInventory entities to DTOs
func InventoryItemsToResponses(items []entity.PharmacyInventory, lowStockThreshold int) []dto.InventoryItemResponse {
	responses := make([]dto.InventoryItemResponse, len(items))
	for i, item := range items {
		resp := InventoryItemToResponse(&item, lowStockThreshold)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// NotificationToResponse converts a Notification entity to its DTO
func NotificationToResponse(notification *entity.Notification) *dto.NotificationResponse {
	if notification == nil {
		return nil
	}
	return &dto.NotificationResponse{
		ID:        notification.ID,
		Kind:      string(notification.Kind),
		Message:   notification.Message,
		Read:      notification.Read,
		CreatedAt: notification.CreatedAt,
	}
}

// NotificationsToResponses converts a slice of Notification entities to DTOs
func NotificationsToResponses(notifications []entity.Notification) []dto.NotificationResponse {
	responses := make([]dto.NotificationResponse, len(notifications))
	for i, notification := range notifications {
		resp := NotificationToResponse(&notification)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
