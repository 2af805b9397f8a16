package service

import (
	"context"
	"testing"

	"github.com/balihai/hoa-api/internal/domain/entity"
	"github.com/balihai/hoa-api/pkg/apperror"
	"github.com/balihai/hoa-api/pkg/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvisionAccount_LinksResident(t *testing.T) {
	residentID := uuid.New()

	var created *entity.User
	userRepo := &mockUserRepo{
		getByLinkedResidentFn: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			return nil, nil
		},
		getByEmailFn: func(ctx context.Context, email string) (*entity.User, error) {
			return nil, nil
		},
		getRoleByNameFn: func(ctx context.Context, name string) (*entity.Role, error) {
			assert.Equal(t, "resident", name)
			return &entity.Role{ID: 3, Name: "resident"}, nil
		},
		createFn: func(ctx context.Context, user *entity.User) error {
			created = user
			return nil
		},
	}
	residentRepo := &mockResidentRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Resident, error) {
			return goodStandingResident(residentID), nil
		},
	}
	svc := NewResidentService(residentRepo, userRepo, &mockTxManager{})

	user, err := svc.ProvisionAccount(context.Background(), residentID, &ProvisionAccountInput{
		Email:    "jose.cruz@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	require.NotNil(t, user.LinkedResidentID)
	assert.Equal(t, residentID, *user.LinkedResidentID)
	assert.Equal(t, "Jose", user.FirstName)
	require.Len(t, user.Roles, 1)
	assert.Equal(t, "resident", user.Roles[0].Name)
	assert.True(t, utils.CheckPasswordHash("secret123", user.Password))
}

func TestProvisionAccount_AlreadyLinkedConflict(t *testing.T) {
	residentID := uuid.New()

	userRepo := &mockUserRepo{
		getByLinkedResidentFn: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			return &entity.User{ID: uuid.New(), LinkedResidentID: &residentID}, nil
		},
	}
	residentRepo := &mockResidentRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Resident, error) {
			return goodStandingResident(residentID), nil
		},
	}
	svc := NewResidentService(residentRepo, userRepo, &mockTxManager{})

	_, err := svc.ProvisionAccount(context.Background(), residentID, &ProvisionAccountInput{
		Email:    "jose.cruz@example.com",
		Password: "secret123",
	})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestProvisionAccount_EmailTakenConflict(t *testing.T) {
	residentID := uuid.New()

	userRepo := &mockUserRepo{
		getByLinkedResidentFn: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			return nil, nil
		},
		getByEmailFn: func(ctx context.Context, email string) (*entity.User, error) {
			return &entity.User{ID: uuid.New(), Email: email}, nil
		},
	}
	residentRepo := &mockResidentRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Resident, error) {
			return goodStandingResident(residentID), nil
		},
	}
	svc := NewResidentService(residentRepo, userRepo, &mockTxManager{})

	_, err := svc.ProvisionAccount(context.Background(), residentID, &ProvisionAccountInput{
		Email:    "taken@example.com",
		Password: "secret123",
	})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestDeleteResident_RemovesLinkedAccount(t *testing.T) {
	residentID := uuid.New()
	userID := uuid.New()

	userDeleted := false
	residentDeleted := false

	userRepo := &mockUserRepo{
		getByLinkedResidentFn: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			return &entity.User{ID: userID, LinkedResidentID: &residentID}, nil
		},
		deleteFn: func(ctx context.Context, id uuid.UUID) error {
			assert.Equal(t, userID, id)
			userDeleted = true
			return nil
		},
	}
	residentRepo := &mockResidentRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Resident, error) {
			return goodStandingResident(residentID), nil
		},
		deleteFn: func(ctx context.Context, id uuid.UUID) error {
			require.True(t, userDeleted, "linked account goes before the resident record")
			residentDeleted = true
			return nil
		},
	}
	svc := NewResidentService(residentRepo, userRepo, &mockTxManager{})

	require.NoError(t, svc.Delete(context.Background(), residentID))
	assert.True(t, residentDeleted)
}

func TestDeleteResident_NoLinkedAccount(t *testing.T) {
	residentID := uuid.New()

	userRepo := &mockUserRepo{
		getByLinkedResidentFn: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			return nil, nil
		},
	}
	residentRepo := &mockResidentRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Resident, error) {
			return goodStandingResident(residentID), nil
		},
		deleteFn: func(ctx context.Context, id uuid.UUID) error { return nil },
	}
	svc := NewResidentService(residentRepo, userRepo, &mockTxManager{})

	require.NoError(t, svc.Delete(context.Background(), residentID))
}

func TestUpdateResident_PartialFields(t *testing.T) {
	residentID := uuid.New()

	residentRepo := &mockResidentRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Resident, error) {
			return goodStandingResident(residentID), nil
		},
		updateFn: func(ctx context.Context, resident *entity.Resident) error { return nil },
	}
	svc := NewResidentService(residentRepo, &mockUserRepo{}, &mockTxManager{})

	contact := "09171234567"
	resident, err := svc.Update(context.Background(), residentID, &UpdateResidentInput{
		ContactNumber: &contact,
	})
	require.NoError(t, err)

	assert.Equal(t, contact, resident.ContactNumber)
	assert.Equal(t, "Jose", resident.FirstName) // untouched
}
