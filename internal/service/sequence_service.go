package service

import (
	"fmt"
	"time"

	"hms-backend/internal/domain/entity"
	"hms-backend/internal/domain/repository"

	"gorm.io/gorm"
)

// SequenceService hands out UHIDs and bill numbers from per-day database
// counters. Both registration paths and both billing paths go through here,
// so numbers are unique and monotonic within a day no matter which portal
// asked first.
type SequenceService struct {
	seqRepo repository.SequenceRepository
}

func NewSequenceService(seqRepo repository.SequenceRepository) *SequenceService {
	return &SequenceService{seqRepo: seqRepo}
}

// NextUHID returns the next patient identifier, e.g. WH-20260831-0007.
// Must be called inside the transaction that creates the profile.
func (s *SequenceService) NextUHID(tx *gorm.DB, now time.Time) (string, error) {
	day := now.Format("20060102")
	seq, err := s.seqRepo.Next(tx, "uhid:"+day)
	if err != nil {
		return "", err
	}
	return FormatUHID(now, seq), nil
}

// NextBillNumber returns the next bill number for the invoice kind,
// e.g. OPD-20260831-0012 or INV-IPD-20260831-0003. Must be called inside
// the transaction that creates the invoice.
func (s *SequenceService) NextBillNumber(tx *gorm.DB, kind entity.InvoiceKind, now time.Time) (string, error) {
	day := now.Format("20060102")
	seq, err := s.seqRepo.Next(tx, fmt.Sprintf("bill:%s:%s", kind, day))
	if err != nil {
		return "", err
	}
	return FormatBillNumber(kind, now, seq), nil
}

// FormatUHID renders a UHID for the given day and sequence value
func FormatUHID(day time.Time, seq int64) string {
	return fmt.Sprintf("WH-%s-%04d", day.Format("20060102"), seq)
}

// FormatBillNumber renders a bill number for the given kind, day and
// sequence value
func FormatBillNumber(kind entity.InvoiceKind, day time.Time, seq int64) string {
	prefix := "OPD"
	if kind == entity.InvoiceKindIPD {
		prefix = "INV-IPD"
	}
	return fmt.Sprintf("%s-%s-%04d", prefix, day.Format("20060102"), seq)
}
