package repository

import (
	"context"
	"errors"
	"time"

	"github.com/balihai/hoa-api/internal/domain/entity"
	domainRepo "github.com/balihai/hoa-api/internal/domain/repository"
	"github.com/balihai/hoa-api/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type announcementRepository struct {
	db *gorm.DB
}

// NewAnnouncementRepository creates a new announcement repository
func NewAnnouncementRepository(db *gorm.DB) domainRepo.AnnouncementRepository {
	return &announcementRepository{db: db}
}

func (r *announcementRepository) Create(ctx context.Context, announcement *entity.Announcement) error {
	return dbFromContext(ctx, r.db).WithContext(ctx).Create(announcement).Error
}

func (r *announcementRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Announcement, error) {
	var announcement entity.Announcement
	err := dbFromContext(ctx, r.db).WithContext(ctx).First(&announcement, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &announcement, err
}

func (r *announcementRepository) List(ctx context.Context, params *pagination.PaginationParams, includeArchived bool) ([]entity.Announcement, int64, error) {
	var announcements []entity.Announcement
	var total int64

	query := dbFromContext(ctx, r.db).WithContext(ctx).Model(&entity.Announcement{})
	if !includeArchived {
		query = query.Where("archived = ?", false)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("posted_at DESC").
		Find(&announcements).Error

	return announcements, total, err
}

func (r *announcementRepository) Update(ctx context.Context, announcement *entity.Announcement) error {
	return dbFromContext(ctx, r.db).WithContext(ctx).Save(announcement).Error
}

func (r *announcementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFromContext(ctx, r.db).WithContext(ctx).Delete(&entity.Announcement{}, "id = ?", id).Error
}

func (r *announcementRepository) ArchiveExpired(ctx context.Context, asOf time.Time) (int64, error) {
	result := dbFromContext(ctx, r.db).WithContext(ctx).
		Model(&entity.Announcement{}).
		Where("archived = ? AND expires_at IS NOT NULL AND expires_at < ?", false, asOf).
		Update("archived", true)
	return result.RowsAffected, result.Error
}
