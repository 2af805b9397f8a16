package service

import (
	"context"
	"testing"
	"time"

	"github.com/balihai/hoa-api/internal/domain/entity"
	"github.com/balihai/hoa-api/internal/domain/enum"
	"github.com/balihai/hoa-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateComplaint_StartsPending(t *testing.T) {
	residentID := uuid.New()
	now := time.Date(2026, 8, 10, 8, 30, 0, 0, time.UTC)

	complaintRepo := &mockComplaintRepo{
		createFn: func(ctx context.Context, complaint *entity.Complaint) error { return nil },
	}
	residentRepo := &mockResidentRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Resident, error) {
			return goodStandingResident(residentID), nil
		},
	}
	svc := NewComplaintService(complaintRepo, residentRepo)
	svc.now = func() time.Time { return now }

	complaint, err := svc.Create(context.Background(), &CreateComplaintInput{
		ResidentID: residentID,
		Type:       enum.ComplaintTypeComplaint,
		Subject:    "Noise at night",
	})
	require.NoError(t, err)

	assert.Equal(t, enum.ComplaintStatusPending, complaint.Status)
	assert.Equal(t, now, complaint.FiledAt)
	assert.Nil(t, complaint.ResolvedDate)
}

func TestCreateComplaint_UnknownResident(t *testing.T) {
	residentRepo := &mockResidentRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Resident, error) {
			return nil, nil
		},
	}
	svc := NewComplaintService(&mockComplaintRepo{}, residentRepo)

	_, err := svc.Create(context.Background(), &CreateComplaintInput{ResidentID: uuid.New()})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestUpdateComplaintStatus_StampsResolvedDate(t *testing.T) {
	now := time.Date(2026, 8, 12, 16, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		status      enum.ComplaintStatus
		wantStamped bool
	}{
		{"in progress leaves date empty", enum.ComplaintStatusInProgress, false},
		{"resolved stamps the date", enum.ComplaintStatusResolved, true},
		{"rejected stamps the date", enum.ComplaintStatusRejected, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			complaintRepo := &mockComplaintRepo{
				getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Complaint, error) {
					return &entity.Complaint{ID: id, Status: enum.ComplaintStatusPending}, nil
				},
				updateFn: func(ctx context.Context, complaint *entity.Complaint) error { return nil },
			}
			svc := NewComplaintService(complaintRepo, &mockResidentRepo{})
			svc.now = func() time.Time { return now }

			complaint, err := svc.UpdateStatus(context.Background(), uuid.New(), &UpdateStatusInput{
				Status:     tt.status,
				Resolution: "handled by security",
			})
			require.NoError(t, err)

			assert.Equal(t, tt.status, complaint.Status)
			if tt.wantStamped {
				require.NotNil(t, complaint.ResolvedDate)
				assert.Equal(t, now, *complaint.ResolvedDate)
			} else {
				assert.Nil(t, complaint.ResolvedDate)
			}
		})
	}
}

func TestArchiveComplaint_OnlySettled(t *testing.T) {
	complaintRepo := &mockComplaintRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Complaint, error) {
			return &entity.Complaint{ID: id, Status: enum.ComplaintStatusInProgress}, nil
		},
	}
	svc := NewComplaintService(complaintRepo, &mockResidentRepo{})

	_, err := svc.Archive(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestArchiveComplaint_HidesResolved(t *testing.T) {
	var updated *entity.Complaint
	complaintRepo := &mockComplaintRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Complaint, error) {
			return &entity.Complaint{ID: id, Status: enum.ComplaintStatusResolved}, nil
		},
		updateFn: func(ctx context.Context, complaint *entity.Complaint) error {
			updated = complaint
			return nil
		},
	}
	svc := NewComplaintService(complaintRepo, &mockResidentRepo{})

	complaint, err := svc.Archive(context.Background(), uuid.New())
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.True(t, complaint.Archived)
}
