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

type residentRepository struct {
	db *gorm.DB
}

// NewResidentRepository creates a new resident repository
func NewResidentRepository(db *gorm.DB) domainRepo.ResidentRepository {
	return &residentRepository{db: db}
}

func (r *residentRepository) Create(ctx context.Context, resident *entity.Resident) error {
	return dbFromContext(ctx, r.db).WithContext(ctx).Create(resident).Error
}

func (r *residentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Resident, error) {
	var resident entity.Resident
	err := dbFromContext(ctx, r.db).WithContext(ctx).First(&resident, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &resident, err
}

func (r *residentRepository) List(ctx context.Context, params *pagination.PaginationParams, filter domainRepo.ResidentFilter) ([]entity.Resident, int64, error) {
	var residents []entity.Resident
	var total int64

	query := dbFromContext(ctx, r.db).WithContext(ctx).Model(&entity.Resident{})

	if filter.Search != "" {
		query = query.Where("first_name ILIKE ? OR last_name ILIKE ? OR contact_number ILIKE ?",
			"%"+filter.Search+"%", "%"+filter.Search+"%", "%"+filter.Search+"%")
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", *filter.Type)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("last_name ASC, first_name ASC").
		Find(&residents).Error

	return residents, total, err
}

func (r *residentRepository) Update(ctx context.Context, resident *entity.Resident) error {
	return dbFromContext(ctx, r.db).WithContext(ctx).Save(resident).Error
}

func (r *residentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFromContext(ctx, r.db).WithContext(ctx).Delete(&entity.Resident{}, "id = ?", id).Error
}

func (r *residentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := dbFromContext(ctx, r.db).WithContext(ctx).Model(&entity.Resident{}).Count(&count).Error
	return count, err
}

func (r *residentRepository) CountByStatus(ctx context.Context, status enum.ResidentStatus) (int64, error) {
	var count int64
	err := dbFromContext(ctx, r.db).WithContext(ctx).Model(&entity.Resident{}).
		Where("status = ?", status).Count(&count).Error
	return count, err
}
