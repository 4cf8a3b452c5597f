package service

import (
	"testing"
	"time"

	"hms-backend/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestFormatUHID(t *testing.T) {
	day := time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC)

	assert.Equal(t, "WH-20260831-0001", FormatUHID(day, 1))
	assert.Equal(t, "WH-20260831-0042", FormatUHID(day, 42))
	// Sequences past four digits keep growing instead of wrapping.
	assert.Equal(t, "WH-20260831-12345", FormatUHID(day, 12345))
}

func TestFormatBillNumber(t *testing.T) {
	day := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, "OPD-20260831-0012", FormatBillNumber(entity.InvoiceKindOPD, day, 12))
	assert.Equal(t, "INV-IPD-20260831-0003", FormatBillNumber(entity.InvoiceKindIPD, day, 3))
}
