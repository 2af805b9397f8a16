package service

import (
	"context"

	"github.com/balihai/hoa-api/internal/domain/entity"
	"github.com/balihai/hoa-api/internal/domain/enum"
	"github.com/balihai/hoa-api/internal/domain/repository"
	"github.com/balihai/hoa-api/pkg/apperror"
	"github.com/balihai/hoa-api/pkg/pagination"
	"github.com/balihai/hoa-api/pkg/utils"
	"github.com/google/uuid"
)

// ResidentService handles resident-related operations
type ResidentService struct {
	residentRepo repository.ResidentRepository
	userRepo     repository.UserRepository
	txManager    repository.TxManager
}

// NewResidentService creates a new resident service
func NewResidentService(
	residentRepo repository.ResidentRepository,
	userRepo repository.UserRepository,
	txManager repository.TxManager,
) *ResidentService {
	return &ResidentService{
		residentRepo: residentRepo,
		userRepo:     userRepo,
		txManager:    txManager,
	}
}

// CreateResidentInput represents the create resident input
type CreateResidentInput struct {
	FirstName        string
	LastName         string
	ContactNumber    string
	Email            *string
	Address          entity.Address
	Type             enum.ResidentType
	Status           enum.ResidentStatus
	Vehicles         []entity.Vehicle
	HouseholdMembers []entity.HouseholdMember
}

// Create registers a new resident
func (s *ResidentService) Create(ctx context.Context, input *CreateResidentInput) (*entity.Resident, error) {
	resident := &entity.Resident{
		FirstName:        input.FirstName,
		LastName:         input.LastName,
		ContactNumber:    input.ContactNumber,
		Email:            input.Email,
		Address:          input.Address,
		Type:             input.Type,
		Status:           input.Status,
		Vehicles:         input.Vehicles,
		HouseholdMembers: input.HouseholdMembers,
	}

	if err := s.residentRepo.Create(ctx, resident); err != nil {
		return nil, err
	}
	return resident, nil
}

// GetByID returns a single resident
func (s *ResidentService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Resident, error) {
	resident, err := s.residentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if resident == nil {
		return nil, apperror.NewNotFoundError("Resident")
	}
	return resident, nil
}

// List returns residents with pagination
func (s *ResidentService) List(ctx context.Context, params *pagination.PaginationParams, filter repository.ResidentFilter) (*pagination.PaginatedResult[entity.Resident], error) {
	residents, total, err := s.residentRepo.List(ctx, params, filter)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(residents, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// UpdateResidentInput represents the update resident input. Nil fields are
// left unchanged.
type UpdateResidentInput struct {
	FirstName        *string
	LastName         *string
	ContactNumber    *string
	Email            *string
	Address          *entity.Address
	Type             *enum.ResidentType
	Status           *enum.ResidentStatus
	Vehicles         []entity.Vehicle
	HouseholdMembers []entity.HouseholdMember
}

// Update modifies an existing resident
func (s *ResidentService) Update(ctx context.Context, id uuid.UUID, input *UpdateResidentInput) (*entity.Resident, error) {
	resident, err := s.residentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if resident == nil {
		return nil, apperror.NewNotFoundError("Resident")
	}

	if input.FirstName != nil {
		resident.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		resident.LastName = *input.LastName
	}
	if input.ContactNumber != nil {
		resident.ContactNumber = *input.ContactNumber
	}
	if input.Email != nil {
		resident.Email = input.Email
	}
	if input.Address != nil {
		resident.Address = *input.Address
	}
	if input.Type != nil {
		resident.Type = *input.Type
	}
	if input.Status != nil {
		resident.Status = *input.Status
	}
	if input.Vehicles != nil {
		resident.Vehicles = input.Vehicles
	}
	if input.HouseholdMembers != nil {
		resident.HouseholdMembers = input.HouseholdMembers
	}

	if err := s.residentRepo.Update(ctx, resident); err != nil {
		return nil, err
	}
	return resident, nil
}

// Delete removes a resident together with their portal account, if any
func (s *ResidentService) Delete(ctx context.Context, id uuid.UUID) error {
	resident, err := s.residentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if resident == nil {
		return apperror.NewNotFoundError("Resident")
	}

	return s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.GetByLinkedResident(ctx, id)
		if err != nil {
			return err
		}
		if user != nil {
			if err := s.userRepo.Delete(ctx, user.ID); err != nil {
				return err
			}
		}
		return s.residentRepo.Delete(ctx, id)
	})
}

// ProvisionAccountInput represents the portal account provisioning input
type ProvisionAccountInput struct {
	Email    string
	Password string
}

// ProvisionAccount creates a portal login for a resident. A resident can
// have at most one linked account.
func (s *ResidentService) ProvisionAccount(ctx context.Context, residentID uuid.UUID, input *ProvisionAccountInput) (*entity.User, error) {
	resident, err := s.residentRepo.GetByID(ctx, residentID)
	if err != nil {
		return nil, err
	}
	if resident == nil {
		return nil, apperror.NewNotFoundError("Resident")
	}

	existing, err := s.userRepo.GetByLinkedResident(ctx, residentID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Resident already has a portal account")
	}

	taken, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if taken != nil {
		return nil, apperror.NewConflictError("Email is already in use")
	}

	role, err := s.userRepo.GetRoleByName(ctx, "resident")
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, apperror.NewNotFoundError("Resident role")
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		FirstName:        resident.FirstName,
		LastName:         resident.LastName,
		Email:            input.Email,
		Password:         hashed,
		LinkedResidentID: &residentID,
		Roles:            []entity.Role{*role},
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
