package service

import (
	"context"
	"testing"
	"time"

	"github.com/balihai/hoa-api/internal/domain/entity"
	"github.com/balihai/hoa-api/pkg/apperror"
	"github.com/balihai/hoa-api/pkg/pagination"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAnnouncement_RejectsPastExpiry(t *testing.T) {
	svc := NewAnnouncementService(&mockAnnouncementRepo{})

	past := time.Now().AddDate(0, 0, -1)
	_, err := svc.Create(context.Background(), &CreateAnnouncementInput{
		Title:     "Water interruption",
		ExpiresAt: &past,
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestListAnnouncements_ArchivesExpiredFirst(t *testing.T) {
	archiveCalled := false
	repo := &mockAnnouncementRepo{
		archiveExpiredFn: func(ctx context.Context, asOf time.Time) (int64, error) {
			archiveCalled = true
			return 2, nil
		},
		listFn: func(ctx context.Context, params *pagination.PaginationParams, includeArchived bool) ([]entity.Announcement, int64, error) {
			require.True(t, archiveCalled, "expired announcements must be archived before listing")
			return []entity.Announcement{{Title: "Clubhouse schedule"}}, 1, nil
		},
	}
	svc := NewAnnouncementService(repo)

	params := &pagination.PaginationParams{Page: 1, PerPage: 10}
	result, err := svc.List(context.Background(), params, false)
	require.NoError(t, err)
	assert.Len(t, result.Items, 1)
}

func TestReuseAnnouncement_RequiresArchived(t *testing.T) {
	repo := &mockAnnouncementRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Announcement, error) {
			return &entity.Announcement{ID: id, Title: "Curfew reminder", Archived: false}, nil
		},
	}
	svc := NewAnnouncementService(repo)

	_, err := svc.Reuse(context.Background(), uuid.New(), nil)
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestReuseAnnouncement_ResetsPostingAndExpiry(t *testing.T) {
	now := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	oldPostedAt := now.AddDate(0, -6, 0)

	var updated *entity.Announcement
	repo := &mockAnnouncementRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Announcement, error) {
			return &entity.Announcement{
				ID:       id,
				Title:    "Annual general assembly",
				Archived: true,
				PostedAt: oldPostedAt,
			}, nil
		},
		updateFn: func(ctx context.Context, announcement *entity.Announcement) error {
			updated = announcement
			return nil
		},
	}
	svc := NewAnnouncementService(repo)
	svc.now = func() time.Time { return now }

	expiresAt := now.AddDate(0, 0, 14)
	announcement, err := svc.Reuse(context.Background(), uuid.New(), &expiresAt)
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.False(t, announcement.Archived)
	assert.Equal(t, now, announcement.PostedAt)
	require.NotNil(t, announcement.ExpiresAt)
	assert.Equal(t, expiresAt, *announcement.ExpiresAt)
}

func TestReuseAnnouncement_RejectsPastExpiry(t *testing.T) {
	now := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	repo := &mockAnnouncementRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Announcement, error) {
			return &entity.Announcement{ID: id, Archived: true}, nil
		},
	}
	svc := NewAnnouncementService(repo)
	svc.now = func() time.Time { return now }

	past := now.AddDate(0, 0, -7)
	_, err := svc.Reuse(context.Background(), uuid.New(), &past)
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}
