package repository

import (
	"context"
	"time"

	"github.com/balihai/hoa-api/internal/domain/enum"
	domainRepo "github.com/balihai/hoa-api/internal/domain/repository"
	"gorm.io/gorm"
)

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) domainRepo.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) GetTotalBilled(ctx context.Context, from, to time.Time) (int64, error) {
	var total int64
	err := dbFromContext(ctx, r.db).WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total_amount), 0)
		FROM invoices
		WHERE created_at >= ? AND created_at <= ? AND deleted_at IS NULL
	`, from, to).Scan(&total).Error
	return total, err
}

func (r *reportRepository) GetTotalPenalties(ctx context.Context, from, to time.Time) (int64, error) {
	var total int64
	err := dbFromContext(ctx, r.db).WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(penalty), 0)
		FROM invoices
		WHERE created_at >= ? AND created_at <= ? AND deleted_at IS NULL
	`, from, to).Scan(&total).Error
	return total, err
}

func (r *reportRepository) GetTotalCollected(ctx context.Context, from, to time.Time) (int64, error) {
	var total int64
	err := dbFromContext(ctx, r.db).WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(amount_paid), 0)
		FROM transactions
		WHERE status = ? AND payment_date >= ? AND payment_date <= ? AND deleted_at IS NULL
	`, enum.TransactionStatusCompleted, from, to).Scan(&total).Error
	return total, err
}

func (r *reportRepository) GetTotalExpenses(ctx context.Context, from, to time.Time) (int64, error) {
	var total int64
	err := dbFromContext(ctx, r.db).WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE expense_date >= ? AND expense_date <= ? AND deleted_at IS NULL
	`, from, to).Scan(&total).Error
	return total, err
}

func (r *reportRepository) GetCollectionRows(ctx context.Context, from, to time.Time) ([]domainRepo.CollectionRowResult, error) {
	var results []domainRepo.CollectionRowResult

	err := dbFromContext(ctx, r.db).WithContext(ctx).Raw(`
		SELECT
			t.payment_date as payment_date,
			res.last_name || ', ' || res.first_name as resident_name,
			t.reference_number as reference_number,
			t.payment_method as payment_method,
			i.type as invoice_type,
			t.amount_paid as amount_paid
		FROM transactions t
		JOIN residents res ON res.id = t.resident_id
		JOIN invoices i ON i.id = t.invoice_id
		WHERE t.status = ? AND t.payment_date >= ? AND t.payment_date <= ?
			AND t.deleted_at IS NULL
		ORDER BY t.payment_date ASC
	`, enum.TransactionStatusCompleted, from, to).Scan(&results).Error

	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *reportRepository) GetExpenseRows(ctx context.Context, from, to time.Time) ([]domainRepo.ExpenseRowResult, error) {
	var results []domainRepo.ExpenseRowResult

	err := dbFromContext(ctx, r.db).WithContext(ctx).Raw(`
		SELECT
			expense_date,
			category,
			description,
			paid_to,
			amount
		FROM expenses
		WHERE expense_date >= ? AND expense_date <= ? AND deleted_at IS NULL
		ORDER BY expense_date ASC
	`, from, to).Scan(&results).Error

	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *reportRepository) GetMonthlyCollections(ctx context.Context, year int) ([]domainRepo.MonthlyCollectionResult, error) {
	var results []domainRepo.MonthlyCollectionResult

	err := dbFromContext(ctx, r.db).WithContext(ctx).Raw(`
		SELECT
			EXTRACT(MONTH FROM payment_date)::int as month,
			COALESCE(SUM(amount_paid), 0) as collected
		FROM transactions
		WHERE status = ? AND EXTRACT(YEAR FROM payment_date) = ? AND deleted_at IS NULL
		GROUP BY month
		ORDER BY month ASC
	`, enum.TransactionStatusCompleted, year).Scan(&results).Error

	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *reportRepository) GetOutstandingBalance(ctx context.Context) (int64, error) {
	var total int64
	err := dbFromContext(ctx, r.db).WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total_amount - amount_paid), 0)
		FROM invoices
		WHERE status IN (?, ?, ?) AND deleted_at IS NULL
	`, enum.InvoiceStatusUnpaid, enum.InvoiceStatusPartial, enum.InvoiceStatusOverdue).Scan(&total).Error
	return total, err
}

func (r *reportRepository) CountInvoicesByStatus(ctx context.Context, status enum.InvoiceStatus) (int64, error) {
	var count int64
	err := dbFromContext(ctx, r.db).WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM invoices WHERE status = ? AND deleted_at IS NULL
	`, status).Scan(&count).Error
	return count, err
}
