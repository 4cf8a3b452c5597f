package handler

import (
	"encoding/json"
	"net/http"

	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/usecase"
	"hms-backend/pkg/response"
	"hms-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AdmissionHandler struct {
	admissionUsecase usecase.AdmissionUsecase
	validator        *validator.CustomValidator
}

func NewAdmissionHandler(admissionUsecase usecase.AdmissionUsecase, validator *validator.CustomValidator) *AdmissionHandler {
	return &AdmissionHandler{
		admissionUsecase: admissionUsecase,
		validator:        validator,
	}
}

// Admit handles opening an inpatient stay
// @Summary Admit a patient
// @Tags Staff
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.AdmitPatientRequest true "Admit Patient Request"
// @Success 201 {object} response.Response
// @Router /staff/admissions [post]
func (h *AdmissionHandler) Admit(w http.ResponseWriter, r *http.Request) {
	var req dto.AdmitPatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	admission, err := h.admissionUsecase.Admit(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to admit patient")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Patient admitted successfully", admission)
}

// GetAdmission handles fetching one admission
// @Summary Get an admission
// @Tags Staff
// @Security BearerAuth
// @Produce json
// @Param id path string true "Admission ID"
// @Success 200 {object} response.Response
// @Router /staff/admissions/{id} [get]
func (h *AdmissionHandler) GetAdmission(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid admission ID", nil)
		return
	}

	admission, err := h.admissionUsecase.GetAdmission(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrAdmissionNotFound:
			response.NotFound(w, "Admission not found")
		default:
			response.InternalServerError(w, "Failed to get admission")
		}
		return
	}

	response.Success(w, http.StatusOK, "Admission retrieved successfully", admission)
}

// ListByPatient handles listing a patient's admissions
// @Summary List a patient's admissions
// @Tags Staff
// @Security BearerAuth
// @Produce json
// @Param id path string true "Patient ID"
// @Success 200 {object} response.Response
// @Router /staff/patients/{id}/admissions [get]
func (h *AdmissionHandler) ListByPatient(w http.ResponseWriter, r *http.Request) {
	patientID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	admissions, err := h.admissionUsecase.ListByPatient(r.Context(), patientID)
	if err != nil {
		response.InternalServerError(w, "Failed to list admissions")
		return
	}

	response.Success(w, http.StatusOK, "Admissions retrieved successfully", admissions)
}
