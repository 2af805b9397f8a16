package repository

import (
	"context"
	"errors"

	"github.com/balihai/hoa-api/internal/domain/entity"
	"github.com/balihai/hoa-api/internal/domain/enum"
	domainRepo "github.com/balihai/hoa-api/internal/domain/repository"
	"github.com/balihai/hoa-api/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) domainRepo.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	return dbFromContext(ctx, r.db).WithContext(ctx).Create(transaction).Error
}

func (r *transactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transaction entity.Transaction
	err := dbFromContext(ctx, r.db).WithContext(ctx).
		Preload("Resident").
		Preload("Invoice").
		First(&transaction, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &transaction, err
}

func (r *transactionRepository) List(ctx context.Context, params *pagination.PaginationParams, filter domainRepo.TransactionFilter) ([]entity.Transaction, int64, error) {
	var transactions []entity.Transaction
	var total int64

	query := dbFromContext(ctx, r.db).WithContext(ctx).Model(&entity.Transaction{})

	if filter.ResidentID != nil {
		query = query.Where("resident_id = ?", *filter.ResidentID)
	}
	if filter.InvoiceID != nil {
		query = query.Where("invoice_id = ?", *filter.InvoiceID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Preload("Resident").Preload("Invoice").
		Offset(params.Offset()).Limit(params.PerPage).
		Order("payment_date DESC, created_at DESC").
		Find(&transactions).Error

	return transactions, total, err
}

func (r *transactionRepository) ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]entity.Transaction, error) {
	var transactions []entity.Transaction
	err := dbFromContext(ctx, r.db).WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		Order("payment_date ASC, created_at ASC").
		Find(&transactions).Error
	return transactions, err
}

func (r *transactionRepository) ListByResident(ctx context.Context, residentID uuid.UUID, status *enum.TransactionStatus) ([]entity.Transaction, error) {
	var transactions []entity.Transaction
	query := dbFromContext(ctx, r.db).WithContext(ctx).
		Where("resident_id = ?", residentID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	err := query.Order("payment_date ASC, created_at ASC").Find(&transactions).Error
	return transactions, err
}

func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	return dbFromContext(ctx, r.db).WithContext(ctx).Save(transaction).Error
}

func (r *transactionRepository) CountByStatus(ctx context.Context, status enum.TransactionStatus) (int64, error) {
	var count int64
	err := dbFromContext(ctx, r.db).WithContext(ctx).Model(&entity.Transaction{}).
		Where("status = ?", status).Count(&count).Error
	return count, err
}
