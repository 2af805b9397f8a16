package repository

import (
	"context"
	"time"

	"github.com/balihai/hoa-api/internal/domain/entity"
	"github.com/balihai/hoa-api/internal/domain/enum"
	"github.com/balihai/hoa-api/pkg/pagination"
	"github.com/google/uuid"
)

// InvoiceFilter narrows invoice listings
type InvoiceFilter struct {
	ResidentID *uuid.UUID
	Status     *enum.InvoiceStatus
	Month      string
	Year       int
}

// InvoiceRepository defines the interface for invoice data operations
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	// List returns invoices with page-based pagination and the total count
	List(ctx context.Context, params *pagination.PaginationParams, filter InvoiceFilter) ([]entity.Invoice, int64, error)
	ListByResident(ctx context.Context, residentID uuid.UUID) ([]entity.Invoice, error)
	Update(ctx context.Context, invoice *entity.Invoice) error
	// UpdateWithVersion persists the invoice only if the stored row still
	// matches expectedVersion, bumping the version on success. Returns
	// apperror.ErrVersionConflict when another writer got there first.
	UpdateWithVersion(ctx context.Context, invoice *entity.Invoice, expectedVersion int) error
	Delete(ctx context.Context, id uuid.UUID) error
	// MarkOverdue flips unpaid invoices whose due date has passed to overdue
	// and returns the number of rows affected
	MarkOverdue(ctx context.Context, asOf time.Time) (int64, error)
}
