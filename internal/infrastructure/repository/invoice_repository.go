package repository

import (
	"context"
	"errors"
	"time"

	"github.com/balihai/hoa-api/internal/domain/entity"
	"github.com/balihai/hoa-api/internal/domain/enum"
	domainRepo "github.com/balihai/hoa-api/internal/domain/repository"
	"github.com/balihai/hoa-api/pkg/apperror"
	"github.com/balihai/hoa-api/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *gorm.DB) domainRepo.InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	return dbFromContext(ctx, r.db).WithContext(ctx).Create(invoice).Error
}

func (r *invoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := dbFromContext(ctx, r.db).WithContext(ctx).
		Preload("Resident").
		First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

func (r *invoiceRepository) List(ctx context.Context, params *pagination.PaginationParams, filter domainRepo.InvoiceFilter) ([]entity.Invoice, int64, error) {
	var invoices []entity.Invoice
	var total int64

	query := dbFromContext(ctx, r.db).WithContext(ctx).Model(&entity.Invoice{})

	if filter.ResidentID != nil {
		query = query.Where("resident_id = ?", *filter.ResidentID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Month != "" {
		query = query.Where("month = ?", filter.Month)
	}
	if filter.Year != 0 {
		query = query.Where("year = ?", filter.Year)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Preload("Resident").
		Offset(params.Offset()).Limit(params.PerPage).
		Order("due_date DESC, created_at DESC").
		Find(&invoices).Error

	return invoices, total, err
}

func (r *invoiceRepository) ListByResident(ctx context.Context, residentID uuid.UUID) ([]entity.Invoice, error) {
	var invoices []entity.Invoice
	err := dbFromContext(ctx, r.db).WithContext(ctx).
		Where("resident_id = ?", residentID).
		Order("created_at ASC, due_date ASC").
		Find(&invoices).Error
	return invoices, err
}

func (r *invoiceRepository) Update(ctx context.Context, invoice *entity.Invoice) error {
	return dbFromContext(ctx, r.db).WithContext(ctx).Save(invoice).Error
}

// UpdateWithVersion applies the payment-relevant fields only when the stored
// version still matches. RowsAffected of zero means a concurrent writer
// bumped the version first.
func (r *invoiceRepository) UpdateWithVersion(ctx context.Context, invoice *entity.Invoice, expectedVersion int) error {
	result := dbFromContext(ctx, r.db).WithContext(ctx).
		Model(&entity.Invoice{}).
		Where("id = ? AND version = ?", invoice.ID, expectedVersion).
		Updates(map[string]interface{}{
			"amount_paid": invoice.AmountPaid,
			"status":      invoice.Status,
			"version":     expectedVersion + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperror.ErrVersionConflict
	}
	invoice.Version = expectedVersion + 1
	return nil
}

func (r *invoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFromContext(ctx, r.db).WithContext(ctx).Delete(&entity.Invoice{}, "id = ?", id).Error
}

func (r *invoiceRepository) MarkOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	result := dbFromContext(ctx, r.db).WithContext(ctx).
		Model(&entity.Invoice{}).
		Where("status = ? AND due_date < ?", enum.InvoiceStatusUnpaid, asOf).
		Update("status", enum.InvoiceStatusOverdue)
	return result.RowsAffected, result.Error
}
