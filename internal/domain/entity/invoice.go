package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceKind distinguishes outpatient from admission billing
type InvoiceKind string

const (
	InvoiceKindOPD InvoiceKind = "opd"
	InvoiceKindIPD InvoiceKind = "ipd"
)

// InvoiceItemType distinguishes medicine lines from service lines
type InvoiceItemType string

const (
	InvoiceItemTypeMedicine InvoiceItemType = "medicine"
	InvoiceItemTypeService  InvoiceItemType = "service"
)

// Invoice aggregates per-visit (OPD) or per-admission (IPD) charges.
// Invariants: SubTotal = sum of item amounts, TotalGST = sum of item GST
// amounts, GrandTotal = max(0, SubTotal + TotalGST - DiscountAmount).
type Invoice struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	BillNumber     string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"bill_number"`
	Kind           InvoiceKind     `gorm:"type:invoice_kind;not null;index" json:"kind"`
	PatientID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"patient_id"`
	AppointmentID  *uuid.UUID      `gorm:"type:uuid;index" json:"appointment_id,omitempty"`
	AdmissionID    *uuid.UUID      `gorm:"type:uuid;index" json:"admission_id,omitempty"`
	SubTotal       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"sub_total"`
	TotalGST       decimal.Decimal `gorm:"column:total_gst;type:decimal(12,2);not null" json:"total_gst"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"discount_amount"`
	GrandTotal     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"grand_total"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient Profile       `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Items   []InvoiceItem `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

func (Invoice) TableName() string {
	return "invoices"
}

// InvoiceItem is a single billed line on an invoice.
// Amount = Quantity * UnitPrice, GSTAmount = Amount * GSTRate / 100.
type InvoiceItem struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	InvoiceID uuid.UUID       `gorm:"type:uuid;not null;index" json:"invoice_id"`
	ItemType  InvoiceItemType `gorm:"type:invoice_item_type;not null" json:"item_type"`
	Name      string          `gorm:"type:varchar(255);not null" json:"name"`
	Quantity  int             `gorm:"not null;default:1" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	GSTRate   decimal.Decimal `gorm:"column:gst_rate;type:decimal(5,2);not null;default:0" json:"gst_rate"`
	Amount    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	GSTAmount decimal.Decimal `gorm:"column:gst_amount;type:decimal(12,2);not null;default:0" json:"gst_amount"`
}

func (InvoiceItem) TableName() string {
	return "invoice_items"
}
