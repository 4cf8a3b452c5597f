package handler

import (
	"encoding/json"
	"net/http"

	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/delivery/http/middleware"
	"hms-backend/internal/usecase"
	"hms-backend/pkg/response"
	"hms-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ConsultationHandler struct {
	consultationUsecase usecase.ConsultationUsecase
	validator           *validator.CustomValidator
}

func NewConsultationHandler(consultationUsecase usecase.ConsultationUsecase, validator *validator.CustomValidator) *ConsultationHandler {
	return &ConsultationHandler{
		consultationUsecase: consultationUsecase,
		validator:           validator,
	}
}

// SaveConsultation handles a doctor recording a prescription
// @Summary Save a consultation
// @Description Record the prescription and complete the appointment
// @Tags Doctor
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body dto.SaveConsultationRequest true "Consultation Request"
// @Success 200 {object} response.Response
// @Router /doctor/consultations/{id} [put]
func (h *ConsultationHandler) SaveConsultation(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req dto.SaveConsultationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	prescription, err := h.consultationUsecase.SaveConsultation(r.Context(), appointmentID, &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrAppointmentNotOwned:
			response.Forbidden(w, "Appointment is not assigned to you")
		case usecase.ErrAppointmentCancelled:
			response.Error(w, http.StatusConflict, "Appointment is cancelled", nil)
		default:
			response.InternalServerError(w, "Failed to save consultation")
		}
		return
	}

	response.Success(w, http.StatusOK, "Consultation saved successfully", prescription)
}

// GetPrescription handles fetching the prescription for an appointment
// @Summary Get a prescription
// @Tags Doctor
// @Security BearerAuth
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Response
// @Router /doctor/consultations/{id} [get]
// @Router /pharmacy/appointments/{id}/prescription [get]
func (h *ConsultationHandler) GetPrescription(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	prescription, err := h.consultationUsecase.GetPrescription(r.Context(), appointmentID)
	if err != nil {
		switch err {
		case usecase.ErrPrescriptionNotFound:
			response.NotFound(w, "Prescription not found")
		default:
			response.InternalServerError(w, "Failed to get prescription")
		}
		return
	}

	response.Success(w, http.StatusOK, "Prescription retrieved successfully", prescription)
}

// ListMyPrescriptions handles a patient listing their prescription history
// @Summary List my prescriptions
// @Tags Patient
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /patient/prescriptions [get]
func (h *ConsultationHandler) ListMyPrescriptions(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	prescriptions, err := h.consultationUsecase.ListPatientPrescriptions(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to list prescriptions")
		return
	}

	response.Success(w, http.StatusOK, "Prescriptions retrieved successfully", prescriptions)
}
