package service

import (
	"context"
	"time"

	"github.com/balihai/hoa-api/internal/domain/entity"
	"github.com/balihai/hoa-api/internal/domain/enum"
	"github.com/balihai/hoa-api/internal/domain/repository"
	"github.com/balihai/hoa-api/pkg/apperror"
	"github.com/balihai/hoa-api/pkg/pagination"
	"github.com/balihai/hoa-api/pkg/storage"
	"github.com/balihai/hoa-api/pkg/utils"
	"github.com/google/uuid"
)

// BillingService handles invoices and payment transactions, including the
// resident payment-proof approval workflow
type BillingService struct {
	invoiceRepo     repository.InvoiceRepository
	transactionRepo repository.TransactionRepository
	residentRepo    repository.ResidentRepository
	txManager       repository.TxManager
	store           storage.ObjectStore

	penaltyRatePercent int
	maxReceiptImages   int
	now                func() time.Time
}

// NewBillingService creates a new billing service
func NewBillingService(
	invoiceRepo repository.InvoiceRepository,
	transactionRepo repository.TransactionRepository,
	residentRepo repository.ResidentRepository,
	txManager repository.TxManager,
	store storage.ObjectStore,
	penaltyRatePercent int,
	maxReceiptImages int,
) *BillingService {
	return &BillingService{
		invoiceRepo:        invoiceRepo,
		transactionRepo:    transactionRepo,
		residentRepo:       residentRepo,
		txManager:          txManager,
		store:              store,
		penaltyRatePercent: penaltyRatePercent,
		maxReceiptImages:   maxReceiptImages,
		now:                time.Now,
	}
}

// CreateInvoiceInput represents the create invoice input. Amount is in cents.
type CreateInvoiceInput struct {
	ResidentID  uuid.UUID
	Type        enum.InvoiceType
	Description string
	Amount      int64
	Month       string
	Year        int
	DueDate     time.Time
}

// CreateInvoice issues a charge to a resident. When the resident is
// delinquent at this moment a one-time penalty is added; the penalty is a
// snapshot and is never recomputed if the resident's standing changes later.
func (s *BillingService) CreateInvoice(ctx context.Context, input *CreateInvoiceInput) (*entity.Invoice, error) {
	if input.Amount <= 0 {
		return nil, apperror.NewBadRequestError("Amount must be greater than zero")
	}

	resident, err := s.residentRepo.GetByID(ctx, input.ResidentID)
	if err != nil {
		return nil, err
	}
	if resident == nil {
		return nil, apperror.NewNotFoundError("Resident")
	}

	var penalty int64
	if resident.Status == enum.ResidentStatusDelinquent {
		penalty = input.Amount * int64(s.penaltyRatePercent) / 100
	}

	invoice := &entity.Invoice{
		ResidentID:  input.ResidentID,
		Type:        input.Type,
		Description: input.Description,
		Amount:      input.Amount,
		Penalty:     penalty,
		TotalAmount: input.Amount + penalty,
		Month:       input.Month,
		Year:        input.Year,
		DueDate:     input.DueDate,
		Status:      enum.InvoiceStatusUnpaid,
		Version:     1,
	}

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

// GetInvoice returns a single invoice
func (s *BillingService) GetInvoice(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// ListInvoices returns invoices with pagination. Unpaid invoices past their
// due date are flipped to overdue before the listing is read.
func (s *BillingService) ListInvoices(ctx context.Context, params *pagination.PaginationParams, filter repository.InvoiceFilter) (*pagination.PaginatedResult[entity.Invoice], error) {
	if _, err := s.invoiceRepo.MarkOverdue(ctx, s.now()); err != nil {
		return nil, err
	}

	invoices, total, err := s.invoiceRepo.List(ctx, params, filter)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(invoices, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// ListResidentInvoices returns all invoices of one resident, oldest first
func (s *BillingService) ListResidentInvoices(ctx context.Context, residentID uuid.UUID) ([]entity.Invoice, error) {
	if _, err := s.invoiceRepo.MarkOverdue(ctx, s.now()); err != nil {
		return nil, err
	}
	return s.invoiceRepo.ListByResident(ctx, residentID)
}

// ensurePayable rejects payments against invoices that are settled or that
// already have a proof waiting for review
func ensurePayable(invoice *entity.Invoice) error {
	switch invoice.Status {
	case enum.InvoiceStatusPaid:
		return apperror.NewConflictError("Invoice is already fully paid")
	case enum.InvoiceStatusPendingApproval:
		return apperror.NewConflictError("Invoice has a payment awaiting approval")
	}
	return nil
}

// applyPayment credits an amount against the invoice and settles the status.
// Overpayments are accepted as-is; the balance simply goes negative.
func applyPayment(invoice *entity.Invoice, amount int64) {
	invoice.AmountPaid += amount
	if invoice.AmountPaid >= invoice.TotalAmount {
		invoice.Status = enum.InvoiceStatusPaid
	} else {
		invoice.Status = enum.InvoiceStatusPartial
	}
}

// RecordPaymentInput represents a staff-recorded payment. Amount is in cents.
type RecordPaymentInput struct {
	InvoiceID       uuid.UUID
	Amount          int64
	PaymentMethod   enum.PaymentMethod
	ReferenceNumber string
	PaymentDate     time.Time
	RecordedByID    uuid.UUID
}

// RecordPayment records an over-the-counter payment. The transaction is
// completed immediately and the invoice is credited in the same database
// transaction.
func (s *BillingService) RecordPayment(ctx context.Context, input *RecordPaymentInput) (*entity.Transaction, error) {
	if input.Amount <= 0 {
		return nil, apperror.NewBadRequestError("Amount must be greater than zero")
	}

	invoice, err := s.invoiceRepo.GetByID(ctx, input.InvoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	if err := ensurePayable(invoice); err != nil {
		return nil, err
	}

	referenceNumber := input.ReferenceNumber
	if referenceNumber == "" {
		referenceNumber = utils.GenerateReferenceNo("OR")
	}

	paymentDate := input.PaymentDate
	if paymentDate.IsZero() {
		paymentDate = s.now()
	}

	transaction := &entity.Transaction{
		InvoiceID:       invoice.ID,
		ResidentID:      invoice.ResidentID,
		AmountPaid:      input.Amount,
		PaymentMethod:   input.PaymentMethod,
		ReferenceNumber: referenceNumber,
		Status:          enum.TransactionStatusCompleted,
		PaymentDate:     paymentDate,
		RecordedByID:    &input.RecordedByID,
	}

	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.transactionRepo.Create(ctx, transaction); err != nil {
			return err
		}
		version := invoice.Version
		applyPayment(invoice, input.Amount)
		return s.invoiceRepo.UpdateWithVersion(ctx, invoice, version)
	})
	if err != nil {
		return nil, err
	}
	return transaction, nil
}

// ReceiptImageInput is one uploaded receipt image
type ReceiptImageInput struct {
	FileName    string
	ContentType string
	Data        []byte
}

// SubmitPaymentProofInput represents a resident-submitted payment proof.
// Amount is in cents.
type SubmitPaymentProofInput struct {
	InvoiceID       uuid.UUID
	ResidentID      uuid.UUID
	Amount          int64
	PaymentMethod   enum.PaymentMethod
	ReferenceNumber string
	Images          []ReceiptImageInput
}

// SubmitPaymentProof files a pending payment with receipt images and parks
// the invoice in pending approval until staff review it. When no amount is
// claimed the remaining balance is used.
func (s *BillingService) SubmitPaymentProof(ctx context.Context, input *SubmitPaymentProofInput) (*entity.Transaction, error) {
	if input.Amount < 0 {
		return nil, apperror.NewBadRequestError("Amount must not be negative")
	}
	if len(input.Images) == 0 {
		return nil, apperror.NewBadRequestError("At least one receipt image is required")
	}
	if len(input.Images) > s.maxReceiptImages {
		return nil, apperror.NewBadRequestError("Too many receipt images")
	}

	invoice, err := s.invoiceRepo.GetByID(ctx, input.InvoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	if invoice.ResidentID != input.ResidentID {
		return nil, apperror.ErrForbidden
	}
	if err := ensurePayable(invoice); err != nil {
		return nil, err
	}

	amount := input.Amount
	if amount == 0 {
		amount = invoice.Balance()
	}

	urls := make([]string, 0, len(input.Images))
	for _, image := range input.Images {
		url, err := s.store.Save(ctx, image.FileName, image.ContentType, image.Data)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}

	referenceNumber := input.ReferenceNumber
	if referenceNumber == "" {
		referenceNumber = utils.GenerateReferenceNo("PAY")
	}

	transaction := &entity.Transaction{
		InvoiceID:       invoice.ID,
		ResidentID:      invoice.ResidentID,
		AmountPaid:      amount,
		PaymentMethod:   input.PaymentMethod,
		ReferenceNumber: referenceNumber,
		ReceiptImages:   urls,
		Status:          enum.TransactionStatusPending,
		PaymentDate:     s.now(),
	}

	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.transactionRepo.Create(ctx, transaction); err != nil {
			return err
		}
		version := invoice.Version
		invoice.Status = enum.InvoiceStatusPendingApproval
		return s.invoiceRepo.UpdateWithVersion(ctx, invoice, version)
	})
	if err != nil {
		return nil, err
	}
	return transaction, nil
}

// ApprovePayment completes a pending payment. The reviewer may override the
// claimed amount with the one actually verified against the receipt. The
// transaction flip and the invoice credit happen in one database transaction
// so a crash can never leave one without the other.
func (s *BillingService) ApprovePayment(ctx context.Context, transactionID, approverID uuid.UUID, confirmedAmount *int64) (*entity.Transaction, error) {
	transaction, err := s.transactionRepo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, apperror.NewNotFoundError("Transaction")
	}
	if transaction.Status != enum.TransactionStatusPending {
		return nil, apperror.NewConflictError("Payment is not awaiting approval")
	}

	if confirmedAmount != nil {
		if *confirmedAmount <= 0 {
			return nil, apperror.NewBadRequestError("Confirmed amount must be greater than zero")
		}
		transaction.AmountPaid = *confirmedAmount
	}

	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		invoice, err := s.invoiceRepo.GetByID(ctx, transaction.InvoiceID)
		if err != nil {
			return err
		}
		if invoice == nil {
			return apperror.NewNotFoundError("Invoice")
		}

		version := invoice.Version
		applyPayment(invoice, transaction.AmountPaid)
		if err := s.invoiceRepo.UpdateWithVersion(ctx, invoice, version); err != nil {
			return err
		}

		transaction.Status = enum.TransactionStatusCompleted
		transaction.RecordedByID = &approverID
		return s.transactionRepo.Update(ctx, transaction)
	})
	if err != nil {
		return nil, err
	}
	return transaction, nil
}

// RejectPayment rejects a pending payment with a reason and releases the
// invoice back to its pre-submission status
func (s *BillingService) RejectPayment(ctx context.Context, transactionID, reviewerID uuid.UUID, reason string) (*entity.Transaction, error) {
	transaction, err := s.transactionRepo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, apperror.NewNotFoundError("Transaction")
	}
	if transaction.Status != enum.TransactionStatusPending {
		return nil, apperror.NewConflictError("Payment is not awaiting approval")
	}

	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		invoice, err := s.invoiceRepo.GetByID(ctx, transaction.InvoiceID)
		if err != nil {
			return err
		}
		if invoice == nil {
			return apperror.NewNotFoundError("Invoice")
		}

		version := invoice.Version
		switch {
		case invoice.AmountPaid > 0:
			invoice.Status = enum.InvoiceStatusPartial
		case s.now().After(invoice.DueDate):
			invoice.Status = enum.InvoiceStatusOverdue
		default:
			invoice.Status = enum.InvoiceStatusUnpaid
		}
		if err := s.invoiceRepo.UpdateWithVersion(ctx, invoice, version); err != nil {
			return err
		}

		transaction.Status = enum.TransactionStatusRejected
		transaction.RejectionReason = reason
		transaction.RecordedByID = &reviewerID
		return s.transactionRepo.Update(ctx, transaction)
	})
	if err != nil {
		return nil, err
	}
	return transaction, nil
}

// GetTransaction returns a single transaction
func (s *BillingService) GetTransaction(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	transaction, err := s.transactionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, apperror.NewNotFoundError("Transaction")
	}
	return transaction, nil
}

// ListTransactions returns transactions with pagination
func (s *BillingService) ListTransactions(ctx context.Context, params *pagination.PaginationParams, filter repository.TransactionFilter) (*pagination.PaginatedResult[entity.Transaction], error) {
	transactions, total, err := s.transactionRepo.List(ctx, params, filter)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(transactions, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// ListInvoiceTransactions returns the payment history of one invoice
func (s *BillingService) ListInvoiceTransactions(ctx context.Context, invoiceID uuid.UUID) ([]entity.Transaction, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return s.transactionRepo.ListByInvoice(ctx, invoiceID)
}
