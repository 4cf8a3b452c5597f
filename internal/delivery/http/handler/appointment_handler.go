package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/delivery/http/middleware"
	"hms-backend/internal/usecase"
	"hms-backend/pkg/response"
	"hms-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// BookSelf handles a patient booking their own appointment
// @Summary Book an appointment
// @Tags Patient
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.BookAppointmentRequest true "Book Appointment Request"
// @Success 201 {object} response.Response
// @Router /patient/appointments [post]
func (h *AppointmentHandler) BookSelf(w http.ResponseWriter, r *http.Request) {
	h.book(w, r, true)
}

// BookByStaff handles front-desk booking on behalf of a patient
// @Summary Book an appointment for a patient
// @Tags Staff
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.BookAppointmentRequest true "Book Appointment Request"
// @Success 201 {object} response.Response
// @Router /staff/appointments [post]
func (h *AppointmentHandler) BookByStaff(w http.ResponseWriter, r *http.Request) {
	h.book(w, r, false)
}

func (h *AppointmentHandler) book(w http.ResponseWriter, r *http.Request, asSelf bool) {
	var req dto.BookAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}
	if !asSelf && req.PatientID == uuid.Nil {
		response.Error(w, http.StatusBadRequest, "patient_id is required", nil)
		return
	}

	appointment, err := h.appointmentUsecase.Book(r.Context(), &req, asSelf)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrPastSchedule:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to book appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked successfully", appointment)
}

// ListMine handles a patient listing their own appointments
// @Summary List my appointments
// @Tags Patient
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /patient/appointments [get]
func (h *AppointmentHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointments, err := h.appointmentUsecase.ListForPatient(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to list appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

// ListForDoctor handles a doctor listing their own appointment queue
// @Summary List my consultation queue
// @Tags Doctor
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /doctor/appointments [get]
func (h *AppointmentHandler) ListForDoctor(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointments, err := h.appointmentUsecase.ListForDoctor(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to list appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

// ListByDate handles the front-desk day view
// @Summary List appointments for a day
// @Tags Staff
// @Security BearerAuth
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} response.Response
// @Router /staff/appointments [get]
func (h *AppointmentHandler) ListByDate(w http.ResponseWriter, r *http.Request) {
	day := time.Now()
	if dateParam := r.URL.Query().Get("date"); dateParam != "" {
		parsed, err := time.Parse("2006-01-02", dateParam)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid date, use YYYY-MM-DD", nil)
			return
		}
		day = parsed
	}

	appointments, err := h.appointmentUsecase.ListByDate(r.Context(), day)
	if err != nil {
		response.InternalServerError(w, "Failed to list appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

// CancelSelf handles a patient cancelling their own appointment
// @Summary Cancel my appointment
// @Tags Patient
// @Security BearerAuth
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Response
// @Router /patient/appointments/{id}/cancel [put]
func (h *AppointmentHandler) CancelSelf(w http.ResponseWriter, r *http.Request) {
	h.cancel(w, r, true)
}

// CancelByStaff handles front-desk cancellation of any appointment
// @Summary Cancel an appointment
// @Tags Staff
// @Security BearerAuth
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Response
// @Router /staff/appointments/{id}/cancel [put]
func (h *AppointmentHandler) CancelByStaff(w http.ResponseWriter, r *http.Request) {
	h.cancel(w, r, false)
}

func (h *AppointmentHandler) cancel(w http.ResponseWriter, r *http.Request, requireOwnership bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	if err := h.appointmentUsecase.Cancel(r.Context(), id, requireOwnership); err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrAppointmentNotOwned:
			response.Forbidden(w, "Appointment does not belong to you")
		case usecase.ErrAppointmentAlreadyCancelled:
			response.Error(w, http.StatusConflict, "Appointment is already cancelled", nil)
		case usecase.ErrAppointmentCompleted:
			response.Error(w, http.StatusConflict, "Appointment is already completed", nil)
		default:
			response.InternalServerError(w, "Failed to cancel appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled successfully", nil)
}
