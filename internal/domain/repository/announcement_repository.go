package repository

import (
	"context"
	"time"

	"github.com/balihai/hoa-api/internal/domain/entity"
	"github.com/balihai/hoa-api/pkg/pagination"
	"github.com/google/uuid"
)

// AnnouncementRepository defines the interface for announcement data operations
type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *entity.Announcement) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Announcement, error)
	// List returns announcements with page-based pagination and the total
	// count, optionally including archived ones
	List(ctx context.Context, params *pagination.PaginationParams, includeArchived bool) ([]entity.Announcement, int64, error)
	Update(ctx context.Context, announcement *entity.Announcement) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ArchiveExpired flags announcements whose expiry has passed and returns
	// the number of rows affected
	ArchiveExpired(ctx context.Context, asOf time.Time) (int64, error)
}
