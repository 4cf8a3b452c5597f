package converter

import (
	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/domain/entity"
)

// InvoiceToResponse converts an Invoice entity (with items) to its DTO
func InvoiceToResponse(invoice *entity.Invoice) *dto.InvoiceResponse {
	if invoice == nil {
		return nil
	}

	items := make([]dto.InvoiceItemResponse, len(invoice.Items))
	for i, item := range invoice.Items {
		items[i] = dto.InvoiceItemResponse{
			ItemType:  string(item.ItemType),
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			GSTRate:   item.GSTRate,
			Amount:    item.Amount,
			GSTAmount: item.GSTAmount,
		}
	}

	return &dto.InvoiceResponse{
		ID:             invoice.ID,
		BillNumber:     invoice.BillNumber,
		Kind:           string(invoice.Kind),
		PatientID:      invoice.PatientID,
		AppointmentID:  invoice.AppointmentID,
		AdmissionID:    invoice.AdmissionID,
		SubTotal:       invoice.SubTotal,
		TotalGST:       invoice.TotalGST,
		DiscountAmount: invoice.DiscountAmount,
		GrandTotal:     invoice.GrandTotal,
		Items:          items,
		CreatedAt:      invoice.CreatedAt,
	}
}

// InvoicesToResponses converts a slice of Invoice entities to DTOs
func InvoicesToResponses(invoices []entity.Invoice) []dto.InvoiceResponse {
	responses := make([]dto.InvoiceResponse, len(invoices))
	for i, invoice := range invoices {
		resp := InvoiceToResponse(&invoice)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// LedgerToResponse converts a Ledger entity to its DTO
func LedgerToResponse(entry *entity.Ledger) *dto.LedgerEntryResponse {
	if entry == nil {
		return nil
	}
	return &dto.LedgerEntryResponse{
		ID:              entry.ID,
		TransactionType: string(entry.TransactionType),
		Amount:          entry.Amount,
		Description:     entry.Description,
		InvoiceID:       entry.InvoiceID,
		EntryDate:       entry.EntryDate.Format("2006-01-02"),
	}
}

// LedgersToResponses converts a slice of Ledger entities to DTOs
func LedgersToResponses(entries []entity.Ledger) []dto.LedgerEntryResponse {
	responses := make([]dto.LedgerEntryResponse, len(entries))
	for i, entry := range entries {
		resp := LedgerToResponse(&entry)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
