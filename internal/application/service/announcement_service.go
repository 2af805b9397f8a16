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

// AnnouncementService handles community announcements
type AnnouncementService struct {
	announcementRepo repository.AnnouncementRepository
	now              func() time.Time
}

// NewAnnouncementService creates a new announcement service
func NewAnnouncementService(announcementRepo repository.AnnouncementRepository) *AnnouncementService {
	return &AnnouncementService{
		announcementRepo: announcementRepo,
		now:              time.Now,
	}
}

// CreateAnnouncementInput represents the create announcement input
type CreateAnnouncementInput struct {
	Title      string
	Content    string
	Priority   enum.AnnouncementPriority
	ExpiresAt  *time.Time
	PostedByID uuid.UUID
}

// Create posts a new announcement
func (s *AnnouncementService) Create(ctx context.Context, input *CreateAnnouncementInput) (*entity.Announcement, error) {
	if input.ExpiresAt != nil && !input.ExpiresAt.After(s.now()) {
		return nil, apperror.NewBadRequestError("Expiry must be in the future")
	}

	announcement := &entity.Announcement{
		Title:      input.Title,
		Content:    input.Content,
		Priority:   input.Priority,
		PostedAt:   s.now(),
		ExpiresAt:  input.ExpiresAt,
		PostedByID: &input.PostedByID,
	}

	if err := s.announcementRepo.Create(ctx, announcement); err != nil {
		return nil, err
	}
	return announcement, nil
}

// GetByID returns a single announcement
func (s *AnnouncementService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Announcement, error) {
	announcement, err := s.announcementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if announcement == nil {
		return nil, apperror.NewNotFoundError("Announcement")
	}
	return announcement, nil
}

// List returns announcements with pagination. Announcements past their
// expiry are archived before the listing is read, so readers never see a
// stale active notice.
func (s *AnnouncementService) List(ctx context.Context, params *pagination.PaginationParams, includeArchived bool) (*pagination.PaginatedResult[entity.Announcement], error) {
	if _, err := s.announcementRepo.ArchiveExpired(ctx, s.now()); err != nil {
		return nil, err
	}

	announcements, total, err := s.announcementRepo.List(ctx, params, includeArchived)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(announcements, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// UpdateAnnouncementInput represents the update announcement input. Nil
// fields are left unchanged.
type UpdateAnnouncementInput struct {
	Title     *string
	Content   *string
	Priority  *enum.AnnouncementPriority
	ExpiresAt *time.Time
}

// Update modifies an existing announcement
func (s *AnnouncementService) Update(ctx context.Context, id uuid.UUID, input *UpdateAnnouncementInput) (*entity.Announcement, error) {
	announcement, err := s.announcementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if announcement == nil {
		return nil, apperror.NewNotFoundError("Announcement")
	}

	if input.Title != nil {
		announcement.Title = *input.Title
	}
	if input.Content != nil {
		announcement.Content = *input.Content
	}
	if input.Priority != nil {
		announcement.Priority = *input.Priority
	}
	if input.ExpiresAt != nil {
		announcement.ExpiresAt = input.ExpiresAt
	}

	if err := s.announcementRepo.Update(ctx, announcement); err != nil {
		return nil, err
	}
	return announcement, nil
}

// Reuse brings an archived announcement back with a fresh expiry and
// posting time
func (s *AnnouncementService) Reuse(ctx context.Context, id uuid.UUID, expiresAt *time.Time) (*entity.Announcement, error) {
	announcement, err := s.announcementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if announcement == nil {
		return nil, apperror.NewNotFoundError("Announcement")
	}
	if !announcement.Archived {
		return nil, apperror.NewConflictError("Announcement is not archived")
	}
	if expiresAt != nil && !expiresAt.After(s.now()) {
		return nil, apperror.NewBadRequestError("Expiry must be in the future")
	}

	announcement.Archived = false
	announcement.PostedAt = s.now()
	announcement.ExpiresAt = expiresAt

	if err := s.announcementRepo.Update(ctx, announcement); err != nil {
		return nil, err
	}
	return announcement, nil
}

// Delete removes an announcement
func (s *AnnouncementService) Delete(ctx context.Context, id uuid.UUID) error {
	announcement, err := s.announcementRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if announcement == nil {
		return apperror.NewNotFoundError("Announcement")
	}
	return s.announcementRepo.Delete(ctx, id)
}
