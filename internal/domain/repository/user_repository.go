package repository

import (
	"context"

	"github.com/balihai/hoa-api/internal/domain/entity"
	"github.com/google/uuid"
)

// UserRepository defines the interface for portal account data operations
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByLinkedResident(ctx context.Context, residentID uuid.UUID) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uuid.UUID) error

	GetRoleByName(ctx context.Context, name string) (*entity.Role, error)
	AssignRole(ctx context.Context, user *entity.User, role *entity.Role) error
}
