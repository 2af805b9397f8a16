package repository

import (
	"context"
	"time"

	"github.com/balihai/hoa-api/internal/domain/enum"
)

// CollectionRowResult is one completed payment inside a collection report,
// amounts in cents
type CollectionRowResult struct {
	PaymentDate     time.Time
	ResidentName    string
	ReferenceNumber string
	PaymentMethod   enum.PaymentMethod
	InvoiceType     enum.InvoiceType
	AmountPaid      int64
}

// ExpenseRowResult is one disbursement inside an expense report, amount in cents
type ExpenseRowResult struct {
	ExpenseDate time.Time
	Category    enum.ExpenseCategory
	Description string
	PaidTo      string
	Amount      int64
}

// MonthlyCollectionResult is collected revenue for one month of a year, in cents
type MonthlyCollectionResult struct {
	Month     int
	Collected int64
}

// ReportRepository defines interface for reporting/aggregation queries.
// All monetary aggregates are returned in cents.
type ReportRepository interface {
	// GetTotalBilled sums invoice totals (dues plus penalties) issued in the range
	GetTotalBilled(ctx context.Context, from, to time.Time) (int64, error)

	// GetTotalPenalties sums penalty portions of invoices issued in the range
	GetTotalPenalties(ctx context.Context, from, to time.Time) (int64, error)

	// GetTotalCollected sums completed payments received in the range
	GetTotalCollected(ctx context.Context, from, to time.Time) (int64, error)

	// GetTotalExpenses sums expenses dated in the range
	GetTotalExpenses(ctx context.Context, from, to time.Time) (int64, error)

	// GetCollectionRows returns completed payments in the range, oldest first
	GetCollectionRows(ctx context.Context, from, to time.Time) ([]CollectionRowResult, error)

	// GetExpenseRows returns expenses in the range, oldest first
	GetExpenseRows(ctx context.Context, from, to time.Time) ([]ExpenseRowResult, error)

	// GetMonthlyCollections returns collected revenue per month for a year
	GetMonthlyCollections(ctx context.Context, year int) ([]MonthlyCollectionResult, error)

	// GetOutstandingBalance sums the unpaid remainder across open invoices
	GetOutstandingBalance(ctx context.Context) (int64, error)

	// CountInvoicesByStatus counts invoices currently in a status
	CountInvoicesByStatus(ctx context.Context, status enum.InvoiceStatus) (int64, error)
}
