package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/domain/entity"
	"hms-backend/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubLedgerRepo struct {
	entries []entity.Ledger
}

func (s *stubLedgerRepo) Create(db *gorm.DB, entry *entity.Ledger) error {
	s.entries = append(s.entries, *entry)
	return nil
}

func (s *stubLedgerRepo) Find(db *gorm.DB, filter repository.LedgerFilter) ([]entity.Ledger, error) {
	return s.entries, nil
}

func (s *stubLedgerRepo) SumByType(db *gorm.DB, transactionType entity.LedgerType, from, to time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func TestComputeInvoice(t *testing.T) {
	items := []dto.InvoiceItemRequest{
		{
			ItemType:  "medicine",
			Name:      "Paracetamol 500mg",
			Quantity:  2,
			UnitPrice: decimal.NewFromInt(100),
			GSTRate:   decimal.NewFromInt(5),
		},
	}

	invoice, lines := ComputeInvoice(items, decimal.NewFromInt(10))

	require.Len(t, lines, 1)
	assert.True(t, lines[0].Amount.Equal(decimal.NewFromInt(200)), "amount = %s", lines[0].Amount)
	assert.True(t, lines[0].GSTAmount.Equal(decimal.NewFromInt(10)), "gst amount = %s", lines[0].GSTAmount)

	assert.True(t, invoice.SubTotal.Equal(decimal.NewFromInt(200)), "sub total = %s", invoice.SubTotal)
	assert.True(t, invoice.TotalGST.Equal(decimal.NewFromInt(10)), "total gst = %s", invoice.TotalGST)
	assert.True(t, invoice.DiscountAmount.Equal(decimal.NewFromInt(10)))
	assert.True(t, invoice.GrandTotal.Equal(decimal.NewFromInt(200)), "grand total = %s", invoice.GrandTotal)
}

func TestComputeInvoiceMultipleItems(t *testing.T) {
	items := []dto.InvoiceItemRequest{
		{
			ItemType:  "service",
			Name:      "Consultation",
			Quantity:  1,
			UnitPrice: decimal.NewFromInt(500),
			GSTRate:   decimal.Zero,
		},
		{
			ItemType:  "medicine",
			Name:      "Amoxicillin 250mg",
			Quantity:  3,
			UnitPrice: decimal.NewFromFloat(45.50),
			GSTRate:   decimal.NewFromInt(12),
		},
	}

	invoice, lines := ComputeInvoice(items, decimal.Zero)

	require.Len(t, lines, 2)
	assert.True(t, lines[0].GSTAmount.IsZero())
	assert.True(t, lines[1].Amount.Equal(decimal.NewFromFloat(136.50)), "amount = %s", lines[1].Amount)
	assert.True(t, lines[1].GSTAmount.Equal(decimal.NewFromFloat(16.38)), "gst amount = %s", lines[1].GSTAmount)

	assert.True(t, invoice.SubTotal.Equal(decimal.NewFromFloat(636.50)), "sub total = %s", invoice.SubTotal)
	assert.True(t, invoice.TotalGST.Equal(decimal.NewFromFloat(16.38)), "total gst = %s", invoice.TotalGST)
	assert.True(t, invoice.GrandTotal.Equal(decimal.NewFromFloat(652.88)), "grand total = %s", invoice.GrandTotal)
}

func TestComputeInvoiceDiscountClampsAtZero(t *testing.T) {
	items := []dto.InvoiceItemRequest{
		{
			ItemType:  "service",
			Name:      "Dressing",
			Quantity:  1,
			UnitPrice: decimal.NewFromInt(50),
			GSTRate:   decimal.Zero,
		},
	}

	invoice, _ := ComputeInvoice(items, decimal.NewFromInt(100))

	assert.True(t, invoice.SubTotal.Equal(decimal.NewFromInt(50)))
	assert.True(t, invoice.GrandTotal.IsZero(), "grand total = %s", invoice.GrandTotal)
}

func TestCreateExpenseRejectsNonPositiveAmount(t *testing.T) {
	uc := NewBillingUsecase(newTestDB(), newTestLogger(), nil, &stubLedgerRepo{}, nil, nil, nil, &stubAuditService{})

	_, err := uc.CreateExpense(context.Background(), &dto.CreateExpenseRequest{
		Amount:      decimal.NewFromInt(-50),
		Description: "Refund posted to the wrong ledger",
	})
	assert.ErrorIs(t, err, ErrNegativeExpenseAmount)
}

func TestCreateExpenseFailsWhenAuditWriteFails(t *testing.T) {
	auditErr := errors.New("audit_logs insert failed")
	uc := NewBillingUsecase(newTestDB(), newTestLogger(), nil, &stubLedgerRepo{}, nil, nil, nil, &stubAuditService{err: auditErr})

	// The ledger entry and its audit record commit together or not at all.
	_, err := uc.CreateExpense(context.Background(), &dto.CreateExpenseRequest{
		Amount:      decimal.NewFromInt(1200),
		Description: "Oxygen cylinder refill",
	})
	assert.ErrorIs(t, err, auditErr)
}

func TestComputeInvoiceItemTypes(t *testing.T) {
	items := []dto.InvoiceItemRequest{
		{ItemType: "medicine", Name: "A", Quantity: 1, UnitPrice: decimal.NewFromInt(10)},
		{ItemType: "service", Name: "B", Quantity: 1, UnitPrice: decimal.NewFromInt(20)},
	}

	_, lines := ComputeInvoice(items, decimal.Zero)

	require.Len(t, lines, 2)
	assert.Equal(t, entity.InvoiceItemTypeMedicine, lines[0].ItemType)
	assert.Equal(t, entity.InvoiceItemTypeService, lines[1].ItemType)
}
