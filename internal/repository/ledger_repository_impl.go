package repository

import (
	"time"

	"hms-backend/internal/domain/entity"
	domainRepo "hms-backend/internal/domain/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ledgerRepository struct{}

func NewLedgerRepository() domainRepo.LedgerRepository {
	return &ledgerRepository{}
}

func (r *ledgerRepository) Create(db *gorm.DB, entry *entity.Ledger) error {
	return db.Create(entry).Error
}

func (r *ledgerRepository) Find(db *gorm.DB, filter domainRepo.LedgerFilter) ([]entity.Ledger, error) {
	query := db.Model(&entity.Ledger{})
	if filter.Type != "" {
		query = query.Where("transaction_type = ?", filter.Type)
	}
	if !filter.From.IsZero() {
		query = query.Where("entry_date >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		query = query.Where("entry_date <= ?", filter.To)
	}

	var entries []entity.Ledger
	err := query.Order("entry_date DESC, id DESC").Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *ledgerRepository) SumByType(db *gorm.DB, transactionType entity.LedgerType, from, to time.Time) (decimal.Decimal, error) {
	query := db.Model(&entity.Ledger{}).Where("transaction_type = ?", transactionType)
	if !from.IsZero() {
		query = query.Where("entry_date >= ?", from)
	}
	if !to.IsZero() {
		query = query.Where("entry_date <= ?", to)
	}

	var total decimal.NullDecimal
	err := query.Select("SUM(amount)").Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
