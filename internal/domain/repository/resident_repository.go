package repository

import (
	"context"

	"github.com/balihai/hoa-api/internal/domain/entity"
	"github.com/balihai/hoa-api/internal/domain/enum"
	"github.com/balihai/hoa-api/pkg/pagination"
	"github.com/google/uuid"
)

// ResidentFilter narrows resident listings
type ResidentFilter struct {
	Search string
	Status *enum.ResidentStatus
	Type   *enum.ResidentType
}

// ResidentRepository defines the interface for resident data operations
type ResidentRepository interface {
	Create(ctx context.Context, resident *entity.Resident) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Resident, error)
	// List returns residents with page-based pagination and the total count
	List(ctx context.Context, params *pagination.PaginationParams, filter ResidentFilter) ([]entity.Resident, int64, error)
	Update(ctx context.Context, resident *entity.Resident) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status enum.ResidentStatus) (int64, error)
}
