package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/delivery/http/middleware"
	"hms-backend/internal/domain/entity"
	"hms-backend/internal/domain/repository"
	"hms-backend/internal/usecase"
	"hms-backend/pkg/response"
	"hms-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type BillingHandler struct {
	billingUsecase usecase.BillingUsecase
	validator      *validator.CustomValidator
}

func NewBillingHandler(billingUsecase usecase.BillingUsecase, validator *validator.CustomValidator) *BillingHandler {
	return &BillingHandler{
		billingUsecase: billingUsecase,
		validator:      validator,
	}
}

// CreateOPDInvoice handles raising an outpatient invoice
// @Summary Create an OPD invoice
// @Description Bill an appointment and record the income ledger entry
// @Tags Billing
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateOPDInvoiceRequest true "OPD Invoice Request"
// @Success 201 {object} response.Response
// @Router /billing/opd [post]
func (h *BillingHandler) CreateOPDInvoice(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOPDInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	invoice, err := h.billingUsecase.CreateOPDInvoice(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrAppointmentNotBillable:
			response.Error(w, http.StatusConflict, "Appointment cannot be billed", nil)
		case usecase.ErrNegativeInvoiceDiscount:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create invoice")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Invoice created successfully", invoice)
}

// CreateIPDInvoice handles billing and discharging an admission
// @Summary Create an IPD invoice
// @Description Bill an admission and discharge it in the same transaction
// @Tags Billing
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Admission ID"
// @Param request body dto.CreateIPDInvoiceRequest true "IPD Invoice Request"
// @Success 201 {object} response.Response
// @Router /billing/ipd/{id} [post]
func (h *BillingHandler) CreateIPDInvoice(w http.ResponseWriter, r *http.Request) {
	admissionID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid admission ID", nil)
		return
	}

	var req dto.CreateIPDInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	invoice, err := h.billingUsecase.CreateIPDInvoice(r.Context(), admissionID, &req)
	if err != nil {
		switch err {
		case usecase.ErrAdmissionNotFound:
			response.NotFound(w, "Admission not found")
		case usecase.ErrAdmissionDischarged:
			response.Error(w, http.StatusConflict, "Admission is already discharged", nil)
		case usecase.ErrNegativeInvoiceDiscount:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create invoice")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Invoice created successfully", invoice)
}

// GetInvoice handles fetching one invoice with its items
// @Summary Get an invoice
// @Tags Billing
// @Security BearerAuth
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} response.Response
// @Router /billing/invoices/{id} [get]
func (h *BillingHandler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid invoice ID", nil)
		return
	}

	invoice, err := h.billingUsecase.GetInvoice(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrInvoiceNotFound:
			response.NotFound(w, "Invoice not found")
		default:
			response.InternalServerError(w, "Failed to get invoice")
		}
		return
	}

	response.Success(w, http.StatusOK, "Invoice retrieved successfully", invoice)
}

// ListPatientInvoices handles listing invoices for a patient
// @Summary List a patient's invoices
// @Tags Billing
// @Security BearerAuth
// @Produce json
// @Param patient query string true "Patient ID"
// @Success 200 {object} response.Response
// @Router /billing/invoices [get]
func (h *BillingHandler) ListPatientInvoices(w http.ResponseWriter, r *http.Request) {
	patientID, err := uuid.Parse(r.URL.Query().Get("patient"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	invoices, err := h.billingUsecase.ListInvoicesByPatient(r.Context(), patientID)
	if err != nil {
		response.InternalServerError(w, "Failed to list invoices")
		return
	}

	response.Success(w, http.StatusOK, "Invoices retrieved successfully", invoices)
}

// ListMyInvoices handles the patient portal billing history
// @Summary List my invoices
// @Tags Patient
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /patient/invoices [get]
func (h *BillingHandler) ListMyInvoices(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	invoices, err := h.billingUsecase.ListInvoicesByPatient(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to list invoices")
		return
	}

	response.Success(w, http.StatusOK, "Invoices retrieved successfully", invoices)
}

// ListLedger handles listing ledger entries
// @Summary List ledger entries
// @Tags Billing
// @Security BearerAuth
// @Produce json
// @Param type query string false "Entry type (income, expense)"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Router /billing/ledger [get]
func (h *BillingHandler) ListLedger(w http.ResponseWriter, r *http.Request) {
	filter, ok := h.parseLedgerFilter(w, r)
	if !ok {
		return
	}

	entries, err := h.billingUsecase.ListLedger(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to list ledger entries")
		return
	}

	response.Success(w, http.StatusOK, "Ledger entries retrieved successfully", entries)
}

// CreateExpense handles recording a manual expense
// @Summary Record an expense
// @Tags Billing
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateExpenseRequest true "Expense Request"
// @Success 201 {object} response.Response
// @Router /billing/expenses [post]
func (h *BillingHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	entry, err := h.billingUsecase.CreateExpense(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrNegativeExpenseAmount:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to record expense")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Expense recorded successfully", entry)
}

// FinancialReport handles the income/expense summary
// @Summary Financial report
// @Description Sum income and expense over a period
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Router /admin/reports/financial [get]
func (h *BillingHandler) FinancialReport(w http.ResponseWriter, r *http.Request) {
	from, ok := h.parseDateParam(w, r, "from")
	if !ok {
		return
	}
	to, ok := h.parseDateParam(w, r, "to")
	if !ok {
		return
	}

	report := h.billingUsecase.FinancialReport(r.Context(), from, to)
	response.Success(w, http.StatusOK, "Financial report generated successfully", report)
}

func (h *BillingHandler) parseLedgerFilter(w http.ResponseWriter, r *http.Request) (repository.LedgerFilter, bool) {
	var filter repository.LedgerFilter

	switch entryType := r.URL.Query().Get("type"); entryType {
	case "":
	case "income":
		filter.Type = entity.LedgerTypeIncome
	case "expense":
		filter.Type = entity.LedgerTypeExpense
	default:
		response.Error(w, http.StatusBadRequest, "Invalid type, use income or expense", nil)
		return filter, false
	}

	from, ok := h.parseDateParam(w, r, "from")
	if !ok {
		return filter, false
	}
	to, ok := h.parseDateParam(w, r, "to")
	if !ok {
		return filter, false
	}
	filter.From = from
	filter.To = to

	return filter, true
}

func (h *BillingHandler) parseDateParam(w http.ResponseWriter, r *http.Request, name string) (time.Time, bool) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return time.Time{}, true
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid "+name+" date, use YYYY-MM-DD", nil)
		return time.Time{}, false
	}
	return parsed, true
}
