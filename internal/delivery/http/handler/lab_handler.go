package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/usecase"
	"hms-backend/pkg/response"
	"hms-backend/pkg/validator"

	"github.com/gorilla/mux"
)

type LabHandler struct {
	labUsecase usecase.LabUsecase
	validator  *validator.CustomValidator
}

func NewLabHandler(labUsecase usecase.LabUsecase, validator *validator.CustomValidator) *LabHandler {
	return &LabHandler{
		labUsecase: labUsecase,
		validator:  validator,
	}
}

// CreateRequest handles a doctor ordering a lab test
// @Summary Order a lab test
// @Tags Doctor
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateLabRequestRequest true "Lab Request"
// @Success 201 {object} response.Response
// @Router /doctor/lab-requests [post]
func (h *LabHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateLabRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	request, err := h.labUsecase.CreateRequest(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to create lab request")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Lab request created successfully", request)
}

// ListRequests handles the lab worklist
// @Summary List lab requests
// @Tags Lab
// @Security BearerAuth
// @Produce json
// @Param status query string false "Status filter (requested, completed)"
// @Success 200 {object} response.Response
// @Router /lab/requests [get]
func (h *LabHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	requests, err := h.labUsecase.ListRequests(r.Context(), status)
	if err != nil {
		switch err {
		case usecase.ErrUnknownLabRequestStatus:
			response.Error(w, http.StatusBadRequest, "Invalid status", nil)
		default:
			response.InternalServerError(w, "Failed to list lab requests")
		}
		return
	}

	response.Success(w, http.StatusOK, "Lab requests retrieved successfully", requests)
}

// CompleteRequest handles the lab attaching a result
// @Summary Complete a lab request
// @Tags Lab
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Lab Request ID"
// @Param request body dto.CompleteLabRequestRequest true "Result"
// @Success 200 {object} response.Response
// @Router /lab/requests/{id}/complete [put]
func (h *LabHandler) CompleteRequest(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid lab request ID", nil)
		return
	}

	var req dto.CompleteLabRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	request, err := h.labUsecase.CompleteRequest(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrLabRequestNotFound:
			response.NotFound(w, "Lab request not found")
		case usecase.ErrLabRequestAlreadyCompleted:
			response.Error(w, http.StatusConflict, "Lab request is already completed", nil)
		default:
			response.InternalServerError(w, "Failed to complete lab request")
		}
		return
	}

	response.Success(w, http.StatusOK, "Lab request completed successfully", request)
}
