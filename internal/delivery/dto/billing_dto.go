package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type InvoiceItemRequest struct {
	ItemType  string          `json:"item_type" validate:"required,oneof=medicine service"`
	Name      string          `json:"name" validate:"required"`
	Quantity  int             `json:"quantity" validate:"required,min=1"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"required"`
	GSTRate   decimal.Decimal `json:"gst_rate"`
}

type CreateOPDInvoiceRequest struct {
	AppointmentID uuid.UUID            `json:"appointment_id" validate:"required"`
	Items         []InvoiceItemRequest `json:"items" validate:"required,min=1,dive"`
	Discount      decimal.Decimal      `json:"discount"`
}

type CreateIPDInvoiceRequest struct {
	Items    []InvoiceItemRequest `json:"items" validate:"required,min=1,dive"`
	Discount decimal.Decimal      `json:"discount"`
}

type CreateExpenseRequest struct {
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Description string          `json:"description" validate:"required"`
}

// Response DTOs

type InvoiceItemResponse struct {
	ItemType  string          `json:"item_type"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	GSTRate   decimal.Decimal `json:"gst_rate"`
	Amount    decimal.Decimal `json:"amount"`
	GSTAmount decimal.Decimal `json:"gst_amount"`
}

type InvoiceResponse struct {
	ID             uuid.UUID             `json:"id"`
	BillNumber     string                `json:"bill_number"`
	Kind           string                `json:"kind"`
	PatientID      uuid.UUID             `json:"patient_id"`
	AppointmentID  *uuid.UUID            `json:"appointment_id,omitempty"`
	AdmissionID    *uuid.UUID            `json:"admission_id,omitempty"`
	SubTotal       decimal.Decimal       `json:"sub_total"`
	TotalGST       decimal.Decimal       `json:"total_gst"`
	DiscountAmount decimal.Decimal       `json:"discount_amount"`
	GrandTotal     decimal.Decimal       `json:"grand_total"`
	Items          []InvoiceItemResponse `json:"items"`
	CreatedAt      time.Time             `json:"created_at"`
}

type InvoiceListResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
	Total    int               `json:"total"`
}

type LedgerEntryResponse struct {
	ID              int64           `json:"id"`
	TransactionType string          `json:"transaction_type"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	InvoiceID       *uuid.UUID      `json:"invoice_id,omitempty"`
	EntryDate       string          `json:"entry_date"`
}

type LedgerListResponse struct {
	Entries []LedgerEntryResponse `json:"entries"`
	Total   int                   `json:"total"`
}

// FinancialReportResponse sums the ledger over a period. On query failure
// the handler returns a zeroed report rather than an error, so dashboards
// keep rendering.
type FinancialReportResponse struct {
	From         string          `json:"from,omitempty"`
	To           string          `json:"to,omitempty"`
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Net          decimal.Decimal `json:"net"`
}
