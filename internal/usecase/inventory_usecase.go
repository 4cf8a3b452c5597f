package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hms-backend/internal/converter"
	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/delivery/http/middleware"
	"hms-backend/internal/domain/entity"
	"hms-backend/internal/domain/repository"
	"hms-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrMedicineNotFound     = errors.New("medicine not found")
	ErrBatchAlreadyExists   = errors.New("batch number already exists")
	ErrInsufficientStock    = errors.New("insufficient stock")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrInvalidExpiryDate    = errors.New("expiry date must be YYYY-MM-DD")
)

type InventoryUsecase interface {
	AddMedicine(ctx context.Context, req *dto.AddMedicineRequest) (*dto.InventoryItemResponse, error)
	// UpdateStock applies a signed delta to the batch stock. Stock can
	// never go below zero; crossing the low-stock threshold records a
	// notification.
	UpdateStock(ctx context.Context, id uuid.UUID, req *dto.UpdateStockRequest) (*dto.InventoryItemResponse, error)
	DeleteMedicine(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) (*dto.InventoryListResponse, error)
	ListLowStock(ctx context.Context) (*dto.InventoryListResponse, error)
	ListNotifications(ctx context.Context, unreadOnly bool) (*dto.NotificationListResponse, error)
	MarkNotificationRead(ctx context.Context, id int64) error
}

type inventoryUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	inventoryRepo     repository.InventoryRepository
	notificationRepo  repository.NotificationRepository
	auditSvc          service.AuditService
	lowStockThreshold int
}

func NewInventoryUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	inventoryRepo repository.InventoryRepository,
	notificationRepo repository.NotificationRepository,
	auditSvc service.AuditService,
	lowStockThreshold int,
) InventoryUsecase {
	return &inventoryUsecase{
		db:                db,
		log:               log,
		inventoryRepo:     inventoryRepo,
		notificationRepo:  notificationRepo,
		auditSvc:          auditSvc,
		lowStockThreshold: lowStockThreshold,
	}
}

func (u *inventoryUsecase) AddMedicine(ctx context.Context, req *dto.AddMedicineRequest) (*dto.InventoryItemResponse, error) {
	item := &entity.PharmacyInventory{
		MedicineName: req.MedicineName,
		BatchNumber:  req.BatchNumber,
		Stock:        req.Stock,
		UnitPrice:    req.UnitPrice,
		GSTRate:      req.GSTRate,
	}

	if req.ExpiryDate != "" {
		expiry, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return nil, ErrInvalidExpiryDate
		}
		item.ExpiryDate = &expiry
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.inventoryRepo.Create(tx, item); err != nil {
		if isDuplicateKeyError(err, "batch_number") {
			return nil, ErrBatchAlreadyExists
		}
		u.log.Warnf("Failed to add medicine %s: %+v", req.MedicineName, err)
		return nil, err
	}

	actorID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditSvc.Log(tx, &actorID, entity.AuditActionStockAdd, entity.JSON{
		"inventory_id": item.ID.String(),
		"medicine":     req.MedicineName,
		"batch":        req.BatchNumber,
		"stock":        req.Stock,
	}); err != nil {
		u.log.Warnf("Failed to audit stock add: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.InventoryItemToResponse(item, u.lowStockThreshold), nil
}

func (u *inventoryUsecase) UpdateStock(ctx context.Context, id uuid.UUID, req *dto.UpdateStockRequest) (*dto.InventoryItemResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	item, err := u.inventoryRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find inventory item %s: %+v", id, err)
		return nil, err
	}
	if item == nil {
		return nil, ErrMedicineNotFound
	}

	wasLow := item.IsLowStock(u.lowStockThreshold)

	newStock := item.Stock + req.Delta
	if newStock < 0 {
		return nil, ErrInsufficientStock
	}
	item.Stock = newStock

	if err := u.inventoryRepo.Update(tx, item); err != nil {
		u.log.Warnf("Failed to update stock for %s: %+v", id, err)
		return nil, err
	}

	// Notify only on the transition into low stock, not on every dispense
	// below the threshold.
	if !wasLow && item.IsLowStock(u.lowStockThreshold) {
		notification := &entity.Notification{
			Kind:    entity.NotificationKindLowStock,
			Message: fmt.Sprintf("%s (batch %s) is low on stock: %d left", item.MedicineName, item.BatchNumber, item.Stock),
		}
		if err := u.notificationRepo.Create(tx, notification); err != nil {
			u.log.Warnf("Failed to create low stock notification for %s: %+v", id, err)
			return nil, err
		}
	}

	actorID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditSvc.Log(tx, &actorID, entity.AuditActionStockUpdate, entity.JSON{
		"inventory_id": id.String(),
		"delta":        req.Delta,
		"stock":        item.Stock,
	}); err != nil {
		u.log.Warnf("Failed to audit stock update: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.InventoryItemToResponse(item, u.lowStockThreshold), nil
}

func (u *inventoryUsecase) DeleteMedicine(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	item, err := u.inventoryRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find inventory item %s: %+v", id, err)
		return err
	}
	if item == nil {
		return ErrMedicineNotFound
	}

	if err := u.inventoryRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete inventory item %s: %+v", id, err)
		return err
	}

	actorID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditSvc.Log(tx, &actorID, entity.AuditActionStockDelete, entity.JSON{
		"inventory_id": id.String(),
		"medicine":     item.MedicineName,
		"batch":        item.BatchNumber,
	}); err != nil {
		u.log.Warnf("Failed to audit stock delete: %+v", err)
		return err
	}

	return tx.Commit().Error
}

func (u *inventoryUsecase) List(ctx context.Context) (*dto.InventoryListResponse, error) {
	items, err := u.inventoryRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list inventory: %+v", err)
		return nil, err
	}
	return &dto.InventoryListResponse{
		Items: converter.InventoryItemsToResponses(items, u.lowStockThreshold),
		Total: len(items),
	}, nil
}

func (u *inventoryUsecase) ListLowStock(ctx context.Context) (*dto.InventoryListResponse, error) {
	items, err := u.inventoryRepo.FindLowStock(u.db.WithContext(ctx), u.lowStockThreshold)
	if err != nil {
		u.log.Warnf("Failed to list low stock items: %+v", err)
		return nil, err
	}
	return &dto.InventoryListResponse{
		Items: converter.InventoryItemsToResponses(items, u.lowStockThreshold),
		Total: len(items),
	}, nil
}

func (u *inventoryUsecase) ListNotifications(ctx context.Context, unreadOnly bool) (*dto.NotificationListResponse, error) {
	notifications, err := u.notificationRepo.FindAll(u.db.WithContext(ctx), unreadOnly)
	if err != nil {
		u.log.Warnf("Failed to list notifications: %+v", err)
		return nil, err
	}
	return &dto.NotificationListResponse{
		Notifications: converter.NotificationsToResponses(notifications),
		Total:         len(notifications),
	}, nil
}

func (u *inventoryUsecase) MarkNotificationRead(ctx context.Context, id int64) error {
	affected, err := u.notificationRepo.MarkRead(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to mark notification %d read: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}
