package repository

import (
	"context"

	"github.com/balihai/hoa-api/internal/domain/entity"
	"github.com/balihai/hoa-api/internal/domain/enum"
	"github.com/balihai/hoa-api/pkg/pagination"
	"github.com/google/uuid"
)

// TransactionFilter narrows transaction listings
type TransactionFilter struct {
	ResidentID *uuid.UUID
	InvoiceID  *uuid.UUID
	Status     *enum.TransactionStatus
}

// TransactionRepository defines the interface for payment transaction data operations
type TransactionRepository interface {
	Create(ctx context.Context, transaction *entity.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)
	// List returns transactions with page-based pagination and the total count
	List(ctx context.Context, params *pagination.PaginationParams, filter TransactionFilter) ([]entity.Transaction, int64, error)
	ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]entity.Transaction, error)
	ListByResident(ctx context.Context, residentID uuid.UUID, status *enum.TransactionStatus) ([]entity.Transaction, error)
	Update(ctx context.Context, transaction *entity.Transaction) error
	CountByStatus(ctx context.Context, status enum.TransactionStatus) (int64, error)
}
