package service

import (
	"context"
	"time"

	"github.com/balihai/hoa-api/internal/domain/enum"
	"github.com/balihai/hoa-api/internal/domain/repository"
	"github.com/balihai/hoa-api/pkg/apperror"
	"github.com/google/uuid"
)

// Report is a tagged union: Type names the kind and exactly one payload
// pointer is set. Reports are derived on demand and never persisted.
type Report struct {
	Type        enum.ReportType `json:"type"`
	From        time.Time       `json:"from"`
	To          time.Time       `json:"to"`
	GeneratedAt time.Time       `json:"generated_at"`

	FinancialSummary *FinancialSummaryReport `json:"financial_summary,omitempty"`
	Collection       *CollectionReport       `json:"collection_report,omitempty"`
	Expense          *ExpenseReport          `json:"expense_report,omitempty"`
	CustomerLedger   *CustomerLedgerReport   `json:"customer_ledger,omitempty"`
}

// FinancialSummaryReport totals money in against money out for a period
type FinancialSummaryReport struct {
	TotalBilled    float64 `json:"total_billed"`
	TotalCollected float64 `json:"total_collected"`
	TotalPenalties float64 `json:"total_penalties"`
	TotalExpenses  float64 `json:"total_expenses"`
	NetIncome      float64 `json:"net_income"`
}

// CollectionReportRow is one completed payment in a collection report
type CollectionReportRow struct {
	PaymentDate     time.Time          `json:"payment_date"`
	ResidentName    string             `json:"resident_name"`
	ReferenceNumber string             `json:"reference_number"`
	PaymentMethod   enum.PaymentMethod `json:"payment_method"`
	InvoiceType     enum.InvoiceType   `json:"invoice_type"`
	Amount          float64            `json:"amount"`
}

// CollectionReport lists completed payments for a period
type CollectionReport struct {
	Rows           []CollectionReportRow `json:"rows"`
	TotalCollected float64               `json:"total_collected"`
}

// ExpenseReportRow is one disbursement in an expense report
type ExpenseReportRow struct {
	ExpenseDate time.Time            `json:"expense_date"`
	Category    enum.ExpenseCategory `json:"category"`
	Description string               `json:"description"`
	PaidTo      string               `json:"paid_to"`
	Amount      float64              `json:"amount"`
}

// ExpenseReport lists disbursements for a period with per-category totals
type ExpenseReport struct {
	Rows             []ExpenseReportRow `json:"rows"`
	TotalsByCategory map[string]float64 `json:"totals_by_category"`
	TotalExpenses    float64            `json:"total_expenses"`
}

// LedgerRow is one line of a resident's ledger. Exactly one of Charge and
// Payment is non-zero; Balance is the running balance after the line.
type LedgerRow struct {
	Date        time.Time `json:"date"`
	Particulars string    `json:"particulars"`
	Charge      float64   `json:"charge"`
	Payment     float64   `json:"payment"`
	Balance     float64   `json:"balance"`
}

// CustomerLedgerReport is a resident's full charge and payment history with
// a running balance
type CustomerLedgerReport struct {
	ResidentID    uuid.UUID   `json:"resident_id"`
	ResidentName  string      `json:"resident_name"`
	Rows          []LedgerRow `json:"rows"`
	EndingBalance float64     `json:"ending_balance"`
}

// ReportService derives reports from billing and expense data
type ReportService struct {
	reportRepo      repository.ReportRepository
	invoiceRepo     repository.InvoiceRepository
	transactionRepo repository.TransactionRepository
	residentRepo    repository.ResidentRepository
	now             func() time.Time
}

// NewReportService creates a new report service
func NewReportService(
	reportRepo repository.ReportRepository,
	invoiceRepo repository.InvoiceRepository,
	transactionRepo repository.TransactionRepository,
	residentRepo repository.ResidentRepository,
) *ReportService {
	return &ReportService{
		reportRepo:      reportRepo,
		invoiceRepo:     invoiceRepo,
		transactionRepo: transactionRepo,
		residentRepo:    residentRepo,
		now:             time.Now,
	}
}

// GenerateReportInput selects the report kind and period. ResidentID is
// required for the customer ledger and ignored otherwise.
type GenerateReportInput struct {
	Type       enum.ReportType
	From       time.Time
	To         time.Time
	ResidentID *uuid.UUID
}

// Generate builds the requested report
func (s *ReportService) Generate(ctx context.Context, input *GenerateReportInput) (*Report, error) {
	if !input.Type.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown report type")
	}
	if input.Type != enum.ReportTypeCustomerLedger && input.To.Before(input.From) {
		return nil, apperror.NewBadRequestError("Period end is before period start")
	}

	report := &Report{
		Type:        input.Type,
		From:        input.From,
		To:          input.To,
		GeneratedAt: s.now(),
	}

	var err error
	switch input.Type {
	case enum.ReportTypeFinancialSummary:
		report.FinancialSummary, err = s.financialSummary(ctx, input.From, input.To)
	case enum.ReportTypeCollection:
		report.Collection, err = s.collectionReport(ctx, input.From, input.To)
	case enum.ReportTypeExpense:
		report.Expense, err = s.expenseReport(ctx, input.From, input.To)
	case enum.ReportTypeCustomerLedger:
		if input.ResidentID == nil {
			return nil, apperror.NewBadRequestError("Resident is required for a customer ledger")
		}
		report.CustomerLedger, err = s.customerLedger(ctx, *input.ResidentID)
	}
	if err != nil {
		return nil, err
	}
	return report, nil
}

func (s *ReportService) financialSummary(ctx context.Context, from, to time.Time) (*FinancialSummaryReport, error) {
	billed, err := s.reportRepo.GetTotalBilled(ctx, from, to)
	if err != nil {
		return nil, err
	}
	collected, err := s.reportRepo.GetTotalCollected(ctx, from, to)
	if err != nil {
		return nil, err
	}
	penalties, err := s.reportRepo.GetTotalPenalties(ctx, from, to)
	if err != nil {
		return nil, err
	}
	expenses, err := s.reportRepo.GetTotalExpenses(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return &FinancialSummaryReport{
		TotalBilled:    float64(billed) / 100,
		TotalCollected: float64(collected) / 100,
		TotalPenalties: float64(penalties) / 100,
		TotalExpenses:  float64(expenses) / 100,
		NetIncome:      float64(collected-expenses) / 100,
	}, nil
}

func (s *ReportService) collectionReport(ctx context.Context, from, to time.Time) (*CollectionReport, error) {
	rows, err := s.reportRepo.GetCollectionRows(ctx, from, to)
	if err != nil {
		return nil, err
	}

	report := &CollectionReport{Rows: make([]CollectionReportRow, 0, len(rows))}
	var totalCents int64
	for _, row := range rows {
		totalCents += row.AmountPaid
		report.Rows = append(report.Rows, CollectionReportRow{
			PaymentDate:     row.PaymentDate,
			ResidentName:    row.ResidentName,
			ReferenceNumber: row.ReferenceNumber,
			PaymentMethod:   row.PaymentMethod,
			InvoiceType:     row.InvoiceType,
			Amount:          float64(row.AmountPaid) / 100,
		})
	}
	report.TotalCollected = float64(totalCents) / 100
	return report, nil
}

func (s *ReportService) expenseReport(ctx context.Context, from, to time.Time) (*ExpenseReport, error) {
	rows, err := s.reportRepo.GetExpenseRows(ctx, from, to)
	if err != nil {
		return nil, err
	}

	report := &ExpenseReport{
		Rows:             make([]ExpenseReportRow, 0, len(rows)),
		TotalsByCategory: make(map[string]float64),
	}
	var totalCents int64
	categoryCents := make(map[string]int64)
	for _, row := range rows {
		totalCents += row.Amount
		categoryCents[row.Category.String()] += row.Amount
		report.Rows = append(report.Rows, ExpenseReportRow{
			ExpenseDate: row.ExpenseDate,
			Category:    row.Category,
			Description: row.Description,
			PaidTo:      row.PaidTo,
			Amount:      float64(row.Amount) / 100,
		})
	}
	for category, cents := range categoryCents {
		report.TotalsByCategory[category] = float64(cents) / 100
	}
	report.TotalExpenses = float64(totalCents) / 100
	return report, nil
}

// customerLedger merges a resident's invoices and completed payments into
// one chronological statement. Charges land on the invoice issue date,
// payments on the payment date; on equal dates the charge comes first.
func (s *ReportService) customerLedger(ctx context.Context, residentID uuid.UUID) (*CustomerLedgerReport, error) {
	resident, err := s.residentRepo.GetByID(ctx, residentID)
	if err != nil {
		return nil, err
	}
	if resident == nil {
		return nil, apperror.NewNotFoundError("Resident")
	}

	invoices, err := s.invoiceRepo.ListByResident(ctx, residentID)
	if err != nil {
		return nil, err
	}
	completed := enum.TransactionStatusCompleted
	payments, err := s.transactionRepo.ListByResident(ctx, residentID, &completed)
	if err != nil {
		return nil, err
	}

	report := &CustomerLedgerReport{
		ResidentID:   residentID,
		ResidentName: resident.FullName(),
		Rows:         make([]LedgerRow, 0, len(invoices)+len(payments)),
	}

	var balanceCents int64
	i, j := 0, 0
	for i < len(invoices) || j < len(payments) {
		takeCharge := j >= len(payments)
		if !takeCharge && i < len(invoices) {
			takeCharge = !invoices[i].CreatedAt.After(payments[j].PaymentDate)
		}

		if takeCharge {
			invoice := invoices[i]
			balanceCents += invoice.TotalAmount
			report.Rows = append(report.Rows, LedgerRow{
				Date:        invoice.CreatedAt,
				Particulars: invoice.Description,
				Charge:      float64(invoice.TotalAmount) / 100,
				Balance:     float64(balanceCents) / 100,
			})
			i++
		} else {
			payment := payments[j]
			balanceCents -= payment.AmountPaid
			report.Rows = append(report.Rows, LedgerRow{
				Date:        payment.PaymentDate,
				Particulars: "Payment " + payment.ReferenceNumber,
				Payment:     float64(payment.AmountPaid) / 100,
				Balance:     float64(balanceCents) / 100,
			})
			j++
		}
	}

	report.EndingBalance = float64(balanceCents) / 100
	return report, nil
}
