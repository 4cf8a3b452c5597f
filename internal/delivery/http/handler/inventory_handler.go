package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/usecase"
	"hms-backend/pkg/response"
	"hms-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type InventoryHandler struct {
	inventoryUsecase usecase.InventoryUsecase
	validator        *validator.CustomValidator
}

func NewInventoryHandler(inventoryUsecase usecase.InventoryUsecase, validator *validator.CustomValidator) *InventoryHandler {
	return &InventoryHandler{
		inventoryUsecase: inventoryUsecase,
		validator:        validator,
	}
}

// AddMedicine handles adding a medicine batch
// @Summary Add a medicine batch
// @Tags Pharmacy
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.AddMedicineRequest true "Add Medicine Request"
// @Success 201 {object} response.Response
// @Router /pharmacy/inventory [post]
func (h *InventoryHandler) AddMedicine(w http.ResponseWriter, r *http.Request) {
	var req dto.AddMedicineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	item, err := h.inventoryUsecase.AddMedicine(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrBatchAlreadyExists:
			response.Error(w, http.StatusConflict, "Batch number already exists", nil)
		case usecase.ErrInvalidExpiryDate:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to add medicine")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Medicine added successfully", item)
}

// UpdateStock handles restocking or dispensing a batch
// @Summary Update stock
// @Description Apply a signed delta to a batch's stock level
// @Tags Pharmacy
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Inventory Item ID"
// @Param request body dto.UpdateStockRequest true "Update Stock Request"
// @Success 200 {object} response.Response
// @Router /pharmacy/inventory/{id}/stock [put]
func (h *InventoryHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid inventory item ID", nil)
		return
	}

	var req dto.UpdateStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	item, err := h.inventoryUsecase.UpdateStock(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrMedicineNotFound:
			response.NotFound(w, "Medicine not found")
		case usecase.ErrInsufficientStock:
			response.Error(w, http.StatusConflict, "Insufficient stock", nil)
		default:
			response.InternalServerError(w, "Failed to update stock")
		}
		return
	}

	response.Success(w, http.StatusOK, "Stock updated successfully", item)
}

// DeleteMedicine handles removing a batch
// @Summary Delete a medicine batch
// @Tags Pharmacy
// @Security BearerAuth
// @Produce json
// @Param id path string true "Inventory Item ID"
// @Success 200 {object} response.Response
// @Router /pharmacy/inventory/{id} [delete]
func (h *InventoryHandler) DeleteMedicine(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid inventory item ID", nil)
		return
	}

	if err := h.inventoryUsecase.DeleteMedicine(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrMedicineNotFound:
			response.NotFound(w, "Medicine not found")
		default:
			response.InternalServerError(w, "Failed to delete medicine")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medicine deleted successfully", nil)
}

// List handles listing the full inventory
// @Summary List inventory
// @Tags Pharmacy
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /pharmacy/inventory [get]
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.inventoryUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list inventory")
		return
	}

	response.Success(w, http.StatusOK, "Inventory retrieved successfully", items)
}

// ListLowStock handles listing batches below the threshold
// @Summary List low stock batches
// @Tags Pharmacy
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /pharmacy/inventory/low-stock [get]
// @Router /admin/inventory/low-stock [get]
func (h *InventoryHandler) ListLowStock(w http.ResponseWriter, r *http.Request) {
	items, err := h.inventoryUsecase.ListLowStock(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list low stock items")
		return
	}

	response.Success(w, http.StatusOK, "Low stock items retrieved successfully", items)
}

// ListNotifications handles listing pharmacy notifications
// @Summary List notifications
// @Tags Pharmacy
// @Security BearerAuth
// @Produce json
// @Param unread query bool false "Only unread notifications"
// @Success 200 {object} response.Response
// @Router /pharmacy/notifications [get]
func (h *InventoryHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	unreadOnly := r.URL.Query().Get("unread") == "true"

	notifications, err := h.inventoryUsecase.ListNotifications(r.Context(), unreadOnly)
	if err != nil {
		response.InternalServerError(w, "Failed to list notifications")
		return
	}

	response.Success(w, http.StatusOK, "Notifications retrieved successfully", notifications)
}

// MarkNotificationRead handles acknowledging a notification
// @Summary Mark a notification as read
// @Tags Pharmacy
// @Security BearerAuth
// @Produce json
// @Param id path int true "Notification ID"
// @Success 200 {object} response.Response
// @Router /pharmacy/notifications/{id}/read [put]
func (h *InventoryHandler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid notification ID", nil)
		return
	}

	if err := h.inventoryUsecase.MarkNotificationRead(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrNotificationNotFound:
			response.NotFound(w, "Notification not found")
		default:
			response.InternalServerError(w, "Failed to mark notification read")
		}
		return
	}

	response.Success(w, http.StatusOK, "Notification marked as read", nil)
}
