package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hms-backend/internal/converter"
	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/delivery/http/middleware"
	"hms-backend/internal/domain/entity"
	"hms-backend/internal/domain/repository"
	"hms-backend/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvoiceNotFound         = errors.New("invoice not found")
	ErrAdmissionNotFound       = errors.New("admission not found")
	ErrAdmissionDischarged     = errors.New("admission is already discharged")
	ErrAppointmentNotBillable  = errors.New("appointment cannot be billed")
	ErrNegativeInvoiceDiscount = errors.New("discount cannot be negative")
	ErrNegativeExpenseAmount   = errors.New("expense amount must be positive")
)

type BillingUsecase interface {
	CreateOPDInvoice(ctx context.Context, req *dto.CreateOPDInvoiceRequest) (*dto.InvoiceResponse, error)
	// CreateIPDInvoice bills an admission and discharges it in the same
	// transaction.
	CreateIPDInvoice(ctx context.Context, admissionID uuid.UUID, req *dto.CreateIPDInvoiceRequest) (*dto.InvoiceResponse, error)
	GetInvoice(ctx context.Context, id uuid.UUID) (*dto.InvoiceResponse, error)
	ListInvoicesByPatient(ctx context.Context, patientID uuid.UUID) (*dto.InvoiceListResponse, error)
	ListLedger(ctx context.Context, filter repository.LedgerFilter) (*dto.LedgerListResponse, error)
	CreateExpense(ctx context.Context, req *dto.CreateExpenseRequest) (*dto.LedgerEntryResponse, error)
	FinancialReport(ctx context.Context, from, to time.Time) *dto.FinancialReportResponse
}

type billingUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	invoiceRepo     repository.InvoiceRepository
	ledgerRepo      repository.LedgerRepository
	appointmentRepo repository.AppointmentRepository
	admissionRepo   repository.AdmissionRepository
	seqService      *service.SequenceService
	auditSvc        service.AuditService
}

func NewBillingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	invoiceRepo repository.InvoiceRepository,
	ledgerRepo repository.LedgerRepository,
	appointmentRepo repository.AppointmentRepository,
	admissionRepo repository.AdmissionRepository,
	seqService *service.SequenceService,
	auditSvc service.AuditService,
) BillingUsecase {
	return &billingUsecase{
		db:              db,
		log:             log,
		invoiceRepo:     invoiceRepo,
		ledgerRepo:      ledgerRepo,
		appointmentRepo: appointmentRepo,
		admissionRepo:   admissionRepo,
		seqService:      seqService,
		auditSvc:        auditSvc,
	}
}

// ComputeInvoice derives all invoice money fields from the requested items
// and discount. Per item: Amount = Quantity * UnitPrice and GSTAmount =
// Amount * GSTRate / 100. Then SubTotal = sum of amounts, TotalGST = sum of
// GST amounts, GrandTotal = SubTotal + TotalGST - discount, clamped at zero
// so an oversized discount never produces a negative bill.
func ComputeInvoice(items []dto.InvoiceItemRequest, discount decimal.Decimal) (entity.Invoice, []entity.InvoiceItem) {
	hundred := decimal.NewFromInt(100)
	subTotal := decimal.Zero
	totalGST := decimal.Zero

	lines := make([]entity.InvoiceItem, len(items))
	for i, item := range items {
		amount := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		gstAmount := amount.Mul(item.GSTRate).Div(hundred)

		lines[i] = entity.InvoiceItem{
			ItemType:  entity.InvoiceItemType(item.ItemType),
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			GSTRate:   item.GSTRate,
			Amount:    amount,
			GSTAmount: gstAmount,
		}

		subTotal = subTotal.Add(amount)
		totalGST = totalGST.Add(gstAmount)
	}

	grandTotal := subTotal.Add(totalGST).Sub(discount)
	if grandTotal.IsNegative() {
		grandTotal = decimal.Zero
	}

	return entity.Invoice{
		SubTotal:       subTotal,
		TotalGST:       totalGST,
		DiscountAmount: discount,
		GrandTotal:     grandTotal,
	}, lines
}

func (u *billingUsecase) CreateOPDInvoice(ctx context.Context, req *dto.CreateOPDInvoiceRequest) (*dto.InvoiceResponse, error) {
	if req.Discount.IsNegative() {
		return nil, ErrNegativeInvoiceDiscount
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, req.AppointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", req.AppointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.IsCancelled() {
		return nil, ErrAppointmentNotBillable
	}

	now := time.Now()
	billNumber, err := u.seqService.NextBillNumber(tx, entity.InvoiceKindOPD, now)
	if err != nil {
		u.log.Warnf("Failed to generate bill number: %+v", err)
		return nil, err
	}

	invoice, items := ComputeInvoice(req.Items, req.Discount)
	invoice.BillNumber = billNumber
	invoice.Kind = entity.InvoiceKindOPD
	invoice.PatientID = appointment.PatientID
	invoice.AppointmentID = &req.AppointmentID
	invoice.Items = items

	if err := u.createInvoiceWithLedger(ctx, tx, &invoice, now); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.InvoiceToResponse(&invoice), nil
}

func (u *billingUsecase) CreateIPDInvoice(ctx context.Context, admissionID uuid.UUID, req *dto.CreateIPDInvoiceRequest) (*dto.InvoiceResponse, error) {
	if req.Discount.IsNegative() {
		return nil, ErrNegativeInvoiceDiscount
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	admission, err := u.admissionRepo.FindByID(tx, admissionID)
	if err != nil {
		u.log.Warnf("Failed to find admission %s: %+v", admissionID, err)
		return nil, err
	}
	if admission == nil {
		return nil, ErrAdmissionNotFound
	}
	if admission.IsDischarged() {
		return nil, ErrAdmissionDischarged
	}

	now := time.Now()
	billNumber, err := u.seqService.NextBillNumber(tx, entity.InvoiceKindIPD, now)
	if err != nil {
		u.log.Warnf("Failed to generate bill number: %+v", err)
		return nil, err
	}

	invoice, items := ComputeInvoice(req.Items, req.Discount)
	invoice.BillNumber = billNumber
	invoice.Kind = entity.InvoiceKindIPD
	invoice.PatientID = admission.PatientID
	invoice.AdmissionID = &admissionID
	invoice.Items = items

	if err := u.createInvoiceWithLedger(ctx, tx, &invoice, now); err != nil {
		return nil, err
	}

	// Billing an admission closes the stay.
	admission.Status = entity.AdmissionStatusDischarged
	admission.DischargedAt = &now
	if err := u.admissionRepo.Update(tx, admission); err != nil {
		u.log.Warnf("Failed to discharge admission %s: %+v", admissionID, err)
		return nil, err
	}

	actorID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditSvc.Log(tx, &actorID, entity.AuditActionAdmissionDischarge, entity.JSON{
		"admission_id": admissionID.String(),
		"invoice_id":   invoice.ID.String(),
	}); err != nil {
		u.log.Warnf("Failed to audit discharge of %s: %+v", admissionID, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.InvoiceToResponse(&invoice), nil
}

// createInvoiceWithLedger persists the invoice with its items and writes the
// single income ledger row that mirrors it. The unique invoice reference on
// the ledger makes a duplicate row impossible.
func (u *billingUsecase) createInvoiceWithLedger(ctx context.Context, tx *gorm.DB, invoice *entity.Invoice, now time.Time) error {
	if err := u.invoiceRepo.Create(tx, invoice); err != nil {
		u.log.Warnf("Failed to create invoice %s: %+v", invoice.BillNumber, err)
		return err
	}

	entry := &entity.Ledger{
		TransactionType: entity.LedgerTypeIncome,
		Amount:          invoice.GrandTotal,
		Description:     fmt.Sprintf("Invoice %s", invoice.BillNumber),
		InvoiceID:       &invoice.ID,
		EntryDate:       now,
	}
	if err := u.ledgerRepo.Create(tx, entry); err != nil {
		u.log.Warnf("Failed to create ledger entry for %s: %+v", invoice.BillNumber, err)
		return err
	}

	actorID, _ := middleware.GetUserIDFromContext(ctx)
	return u.auditSvc.Log(tx, &actorID, entity.AuditActionInvoiceCreate, entity.JSON{
		"invoice_id":  invoice.ID.String(),
		"bill_number": invoice.BillNumber,
		"grand_total": invoice.GrandTotal.String(),
	})
}

func (u *billingUsecase) GetInvoice(ctx context.Context, id uuid.UUID) (*dto.InvoiceResponse, error) {
	invoice, err := u.invoiceRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find invoice %s: %+v", id, err)
		return nil, err
	}
	if invoice == nil {
		return nil, ErrInvoiceNotFound
	}
	return converter.InvoiceToResponse(invoice), nil
}

func (u *billingUsecase) ListInvoicesByPatient(ctx context.Context, patientID uuid.UUID) (*dto.InvoiceListResponse, error) {
	invoices, err := u.invoiceRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to list invoices for %s: %+v", patientID, err)
		return nil, err
	}
	return &dto.InvoiceListResponse{
		Invoices: converter.InvoicesToResponses(invoices),
		Total:    len(invoices),
	}, nil
}

func (u *billingUsecase) ListLedger(ctx context.Context, filter repository.LedgerFilter) (*dto.LedgerListResponse, error) {
	entries, err := u.ledgerRepo.Find(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list ledger entries: %+v", err)
		return nil, err
	}
	return &dto.LedgerListResponse{
		Entries: converter.LedgersToResponses(entries),
		Total:   len(entries),
	}, nil
}

func (u *billingUsecase) CreateExpense(ctx context.Context, req *dto.CreateExpenseRequest) (*dto.LedgerEntryResponse, error) {
	if !req.Amount.IsPositive() {
		return nil, ErrNegativeExpenseAmount
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	entry := &entity.Ledger{
		TransactionType: entity.LedgerTypeExpense,
		Amount:          req.Amount,
		Description:     req.Description,
		EntryDate:       time.Now(),
	}

	if err := u.ledgerRepo.Create(tx, entry); err != nil {
		u.log.Warnf("Failed to create expense entry: %+v", err)
		return nil, err
	}

	actorID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditSvc.Log(tx, &actorID, entity.AuditActionExpenseCreate, entity.JSON{
		"amount":      req.Amount.String(),
		"description": req.Description,
	}); err != nil {
		u.log.Warnf("Failed to audit expense entry: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.LedgerToResponse(entry), nil
}

// FinancialReport sums income and expense over the period. Query failures
// are logged and reported as zero so the dashboard keeps rendering.
func (u *billingUsecase) FinancialReport(ctx context.Context, from, to time.Time) *dto.FinancialReportResponse {
	report := &dto.FinancialReportResponse{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		Net:          decimal.Zero,
	}
	if !from.IsZero() {
		report.From = from.Format("2006-01-02")
	}
	if !to.IsZero() {
		report.To = to.Format("2006-01-02")
	}

	income, err := u.ledgerRepo.SumByType(u.db.WithContext(ctx), entity.LedgerTypeIncome, from, to)
	if err != nil {
		u.log.Warnf("Failed to sum income: %+v", err)
		return report
	}
	expense, err := u.ledgerRepo.SumByType(u.db.WithContext(ctx), entity.LedgerTypeExpense, from, to)
	if err != nil {
		u.log.Warnf("Failed to sum expense: %+v", err)
		return report
	}

	report.TotalIncome = income
	report.TotalExpense = expense
	report.Net = income.Sub(expense)
	return report
}
