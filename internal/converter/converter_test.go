package converter

import (
	"testing"
	"time"

	"hms-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserToResponseHidesPasswordAndMapsRole(t *testing.T) {
	dob := time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC)
	user := &entity.User{
		ID:       uuid.New(),
		Email:    "pat@hospital.local",
		Password: "hashed",
		FullName: "Pat Example",
		RoleID:   entity.RoleIDPatient,
		IsActive: true,
		Profile: &entity.Profile{
			Phone:       "+911234567890",
			Gender:      "F",
			DateOfBirth: &dob,
			UHID:        "WH-20260831-0001",
		},
	}

	resp := UserToResponse(user)
	require.NotNil(t, resp)

	assert.Equal(t, "patient", resp.Role)
	assert.Equal(t, "pat@hospital.local", resp.Email)
	require.NotNil(t, resp.Profile)
	assert.Equal(t, "WH-20260831-0001", resp.Profile.UHID)
	assert.Equal(t, "1990-04-12", resp.Profile.DateOfBirth)
}

func TestUserToResponseNil(t *testing.T) {
	assert.Nil(t, UserToResponse(nil))
}

func TestInventoryItemToResponseDerivesLowStock(t *testing.T) {
	item := &entity.PharmacyInventory{
		ID:           uuid.New(),
		MedicineName: "Ibuprofen 400mg",
		BatchNumber:  "B-1001",
		Stock:        5,
		UnitPrice:    decimal.NewFromInt(12),
	}

	low := InventoryItemToResponse(item, 10)
	require.NotNil(t, low)
	assert.True(t, low.LowStock)

	ok := InventoryItemToResponse(item, 4)
	require.NotNil(t, ok)
	assert.False(t, ok.LowStock)

	atThreshold := InventoryItemToResponse(item, 5)
	require.NotNil(t, atThreshold)
	assert.False(t, atThreshold.LowStock)
}

func TestInvoiceToResponseCarriesItems(t *testing.T) {
	invoiceID := uuid.New()
	invoice := &entity.Invoice{
		ID:         invoiceID,
		BillNumber: "OPD-20260831-0001",
		Kind:       entity.InvoiceKindOPD,
		PatientID:  uuid.New(),
		SubTotal:   decimal.NewFromInt(200),
		TotalGST:   decimal.NewFromInt(10),
		GrandTotal: decimal.NewFromInt(200),
		Items: []entity.InvoiceItem{
			{
				InvoiceID: invoiceID,
				ItemType:  entity.InvoiceItemTypeMedicine,
				Name:      "Paracetamol 500mg",
				Quantity:  2,
				UnitPrice: decimal.NewFromInt(100),
				GSTRate:   decimal.NewFromInt(5),
				Amount:    decimal.NewFromInt(200),
				GSTAmount: decimal.NewFromInt(10),
			},
		},
	}

	resp := InvoiceToResponse(invoice)
	require.NotNil(t, resp)
	assert.Equal(t, "OPD-20260831-0001", resp.BillNumber)
	assert.Equal(t, "opd", resp.Kind)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "medicine", resp.Items[0].ItemType)
	assert.True(t, resp.Items[0].Amount.Equal(decimal.NewFromInt(200)))
}

func TestLedgerToResponseFormatsEntryDate(t *testing.T) {
	entry := &entity.Ledger{
		ID:              7,
		TransactionType: entity.LedgerTypeExpense,
		Amount:          decimal.NewFromInt(500),
		Description:     "Oxygen cylinders",
		EntryDate:       time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
	}

	resp := LedgerToResponse(entry)
	require.NotNil(t, resp)
	assert.Equal(t, "expense", resp.TransactionType)
	assert.Equal(t, "2026-08-31", resp.EntryDate)
	assert.Nil(t, resp.InvoiceID)
}
