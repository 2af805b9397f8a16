package repository

import (
	"context"
	"time"

	"github.com/balihai/hoa-api/internal/domain/entity"
	"github.com/balihai/hoa-api/internal/domain/enum"
	"github.com/balihai/hoa-api/pkg/pagination"
	"github.com/google/uuid"
)

// ExpenseFilter narrows expense listings
type ExpenseFilter struct {
	Category *enum.ExpenseCategory
	From     *time.Time
	To       *time.Time
}

// ExpenseRepository defines the interface for expense data operations
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)
	// List returns expenses with page-based pagination and the total count
	List(ctx context.Context, params *pagination.PaginationParams, filter ExpenseFilter) ([]entity.Expense, int64, error)
	Update(ctx context.Context, expense *entity.Expense) error
	Delete(ctx context.Context, id uuid.UUID) error
}
