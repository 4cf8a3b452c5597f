package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerType represents the direction of a ledger entry
type LedgerType string

const (
	LedgerTypeIncome  LedgerType = "income"
	LedgerTypeExpense LedgerType = "expense"
)

// Ledger is the append-only financial record. Invoice-backed entries carry
// a unique InvoiceID reference, so each invoice has exactly one ledger row;
// manual expense entries leave it null.
type Ledger struct {
	ID              int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	TransactionType LedgerType      `gorm:"type:ledger_type;not null;index" json:"transaction_type"`
	Amount          decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Description     string          `gorm:"type:text;not null" json:"description"`
	InvoiceID       *uuid.UUID      `gorm:"type:uuid;uniqueIndex" json:"invoice_id,omitempty"`
	EntryDate       time.Time       `gorm:"type:date;not null;index" json:"entry_date"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (Ledger) TableName() string {
	return "ledger_entries"
}
