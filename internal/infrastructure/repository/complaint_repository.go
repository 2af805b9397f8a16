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

type complaintRepository struct {
	db *gorm.DB
}

// NewComplaintRepository creates a new complaint repository
func NewComplaintRepository(db *gorm.DB) domainRepo.ComplaintRepository {
	return &complaintRepository{db: db}
}

func (r *complaintRepository) Create(ctx context.Context, complaint *entity.Complaint) error {
	return dbFromContext(ctx, r.db).WithContext(ctx).Create(complaint).Error
}

func (r *complaintRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Complaint, error) {
	var complaint entity.Complaint
	err := dbFromContext(ctx, r.db).WithContext(ctx).
		Preload("Resident").
		First(&complaint, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &complaint, err
}

func (r *complaintRepository) List(ctx context.Context, params *pagination.PaginationParams, filter domainRepo.ComplaintFilter) ([]entity.Complaint, int64, error) {
	var complaints []entity.Complaint
	var total int64

	query := dbFromContext(ctx, r.db).WithContext(ctx).Model(&entity.Complaint{})

	if filter.ResidentID != nil {
		query = query.Where("resident_id = ?", *filter.ResidentID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Archived != nil {
		query = query.Where("archived = ?", *filter.Archived)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Preload("Resident").
		Offset(params.Offset()).Limit(params.PerPage).
		Order("filed_at DESC").
		Find(&complaints).Error

	return complaints, total, err
}

func (r *complaintRepository) Update(ctx context.Context, complaint *entity.Complaint) error {
	return dbFromContext(ctx, r.db).WithContext(ctx).Save(complaint).Error
}

func (r *complaintRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFromContext(ctx, r.db).WithContext(ctx).Delete(&entity.Complaint{}, "id = ?", id).Error
}

func (r *complaintRepository) CountByStatus(ctx context.Context, status enum.ComplaintStatus) (int64, error) {
	var count int64
	err := dbFromContext(ctx, r.db).WithContext(ctx).Model(&entity.Complaint{}).
		Where("status = ?", status).Count(&count).Error
	return count, err
}
