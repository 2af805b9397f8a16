package service

import (
	"context"
	"time"

	"github.com/balihai/hoa-api/internal/domain/entity"
	"github.com/balihai/hoa-api/internal/domain/enum"
	"github.com/balihai/hoa-api/internal/domain/repository"
	"github.com/balihai/hoa-api/pkg/apperror"
	"github.com/balihai/hoa-api/pkg/pagination"
	"github.com/google/uuid"
)

// ComplaintService handles resident complaints, service requests and
// incident reports
type ComplaintService struct {
	complaintRepo repository.ComplaintRepository
	residentRepo  repository.ResidentRepository
	now           func() time.Time
}

// NewComplaintService creates a new complaint service
func NewComplaintService(
	complaintRepo repository.ComplaintRepository,
	residentRepo repository.ResidentRepository,
) *ComplaintService {
	return &ComplaintService{
		complaintRepo: complaintRepo,
		residentRepo:  residentRepo,
		now:           time.Now,
	}
}

// CreateComplaintInput represents the create complaint input
type CreateComplaintInput struct {
	ResidentID  uuid.UUID
	Type        enum.ComplaintType
	Subject     string
	Description string
}

// Create files a new complaint for a resident
func (s *ComplaintService) Create(ctx context.Context, input *CreateComplaintInput) (*entity.Complaint, error) {
	resident, err := s.residentRepo.GetByID(ctx, input.ResidentID)
	if err != nil {
		return nil, err
	}
	if resident == nil {
		return nil, apperror.NewNotFoundError("Resident")
	}

	complaint := &entity.Complaint{
		ResidentID:  input.ResidentID,
		Type:        input.Type,
		Subject:     input.Subject,
		Description: input.Description,
		Status:      enum.ComplaintStatusPending,
		FiledAt:     s.now(),
	}

	if err := s.complaintRepo.Create(ctx, complaint); err != nil {
		return nil, err
	}
	return complaint, nil
}

// GetByID returns a single complaint
func (s *ComplaintService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Complaint, error) {
	complaint, err := s.complaintRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if complaint == nil {
		return nil, apperror.NewNotFoundError("Complaint")
	}
	return complaint, nil
}

// List returns complaints with pagination
func (s *ComplaintService) List(ctx context.Context, params *pagination.PaginationParams, filter repository.ComplaintFilter) (*pagination.PaginatedResult[entity.Complaint], error) {
	complaints, total, err := s.complaintRepo.List(ctx, params, filter)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(complaints, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// UpdateStatusInput represents the complaint status update input
type UpdateStatusInput struct {
	Status     enum.ComplaintStatus
	Resolution string
}

// UpdateStatus moves a complaint through its handling lifecycle. Resolving
// or rejecting stamps the resolution date.
func (s *ComplaintService) UpdateStatus(ctx context.Context, id uuid.UUID, input *UpdateStatusInput) (*entity.Complaint, error) {
	complaint, err := s.complaintRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if complaint == nil {
		return nil, apperror.NewNotFoundError("Complaint")
	}

	complaint.Status = input.Status
	if input.Resolution != "" {
		complaint.Resolution = input.Resolution
	}
	if input.Status == enum.ComplaintStatusResolved || input.Status == enum.ComplaintStatusRejected {
		resolvedAt := s.now()
		complaint.ResolvedDate = &resolvedAt
	}

	if err := s.complaintRepo.Update(ctx, complaint); err != nil {
		return nil, err
	}
	return complaint, nil
}

// Archive hides a settled complaint from the active listing
func (s *ComplaintService) Archive(ctx context.Context, id uuid.UUID) (*entity.Complaint, error) {
	complaint, err := s.complaintRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if complaint == nil {
		return nil, apperror.NewNotFoundError("Complaint")
	}
	if complaint.Status != enum.ComplaintStatusResolved && complaint.Status != enum.ComplaintStatusRejected {
		return nil, apperror.NewConflictError("Only settled complaints can be archived")
	}

	complaint.Archived = true
	if err := s.complaintRepo.Update(ctx, complaint); err != nil {
		return nil, err
	}
	return complaint, nil
}

// Delete removes a complaint
func (s *ComplaintService) Delete(ctx context.Context, id uuid.UUID) error {
	complaint, err := s.complaintRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if complaint == nil {
		return apperror.NewNotFoundError("Complaint")
	}
	return s.complaintRepo.Delete(ctx, id)
}
