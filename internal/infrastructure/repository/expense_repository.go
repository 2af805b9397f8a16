package repository

import (
	"context"
	"errors"

	"github.com/balihai/hoa-api/internal/domain/entity"
	domainRepo "github.com/balihai/hoa-api/internal/domain/repository"
	"github.com/balihai/hoa-api/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) domainRepo.ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	return dbFromContext(ctx, r.db).WithContext(ctx).Create(expense).Error
}

func (r *expenseRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	var expense entity.Expense
	err := dbFromContext(ctx, r.db).WithContext(ctx).First(&expense, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &expense, err
}

func (r *expenseRepository) List(ctx context.Context, params *pagination.PaginationParams, filter domainRepo.ExpenseFilter) ([]entity.Expense, int64, error) {
	var expenses []entity.Expense
	var total int64

	query := dbFromContext(ctx, r.db).WithContext(ctx).Model(&entity.Expense{})

	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.From != nil {
		query = query.Where("expense_date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("expense_date <= ?", *filter.To)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("expense_date DESC, created_at DESC").
		Find(&expenses).Error

	return expenses, total, err
}

func (r *expenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	return dbFromContext(ctx, r.db).WithContext(ctx).Save(expense).Error
}

func (r *expenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFromContext(ctx, r.db).WithContext(ctx).Delete(&entity.Expense{}, "id = ?", id).Error
}
