package repository

import (
	"time"

	"hms-backend/internal/domain/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LedgerFilter narrows ledger listings. Zero values mean "no constraint".
type LedgerFilter struct {
	Type entity.LedgerType
	From time.Time
	To   time.Time
}

type LedgerRepository interface {
	Create(db *gorm.DB, entry *entity.Ledger) error
	Find(db *gorm.DB, filter LedgerFilter) ([]entity.Ledger, error)
	SumByType(db *gorm.DB, transactionType entity.LedgerType, from, to time.Time) (decimal.Decimal, error)
}
