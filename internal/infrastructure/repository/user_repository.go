package repository

import (
	"context"
	"errors"

	"github.com/balihai/hoa-api/internal/domain/entity"
	domainRepo "github.com/balihai/hoa-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domainRepo.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	return dbFromContext(ctx, r.db).WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var user entity.User
	err := dbFromContext(ctx, r.db).WithContext(ctx).
		Preload("Roles").
		First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, err
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := dbFromContext(ctx, r.db).WithContext(ctx).
		Preload("Roles").
		First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, err
}

func (r *userRepository) GetByLinkedResident(ctx context.Context, residentID uuid.UUID) (*entity.User, error) {
	var user entity.User
	err := dbFromContext(ctx, r.db).WithContext(ctx).
		Preload("Roles").
		First(&user, "linked_resident_id = ?", residentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, err
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	return dbFromContext(ctx, r.db).WithContext(ctx).Save(user).Error
}

func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFromContext(ctx, r.db).WithContext(ctx).Delete(&entity.User{}, "id = ?", id).Error
}

func (r *userRepository) GetRoleByName(ctx context.Context, name string) (*entity.Role, error) {
	var role entity.Role
	err := dbFromContext(ctx, r.db).WithContext(ctx).First(&role, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &role, err
}

func (r *userRepository) AssignRole(ctx context.Context, user *entity.User, role *entity.Role) error {
	return dbFromContext(ctx, r.db).WithContext(ctx).Model(user).Association("Roles").Append(role)
}
