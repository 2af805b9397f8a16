package repository

import (
	"context"

	"github.com/balihai/hoa-api/internal/domain/entity"
	"github.com/balihai/hoa-api/internal/domain/enum"
	"github.com/balihai/hoa-api/pkg/pagination"
	"github.com/google/uuid"
)

// ComplaintFilter narrows complaint listings
type ComplaintFilter struct {
	ResidentID *uuid.UUID
	Status     *enum.ComplaintStatus
	Archived   *bool
}

// ComplaintRepository defines the interface for complaint data operations
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *entity.Complaint) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Complaint, error)
	// List returns complaints with page-based pagination and the total count
	List(ctx context.Context, params *pagination.PaginationParams, filter ComplaintFilter) ([]entity.Complaint, int64, error)
	Update(ctx context.Context, complaint *entity.Complaint) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByStatus(ctx context.Context, status enum.ComplaintStatus) (int64, error)
}
