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

func TestCreateExpense_RejectsNonPositiveAmount(t *testing.T) {
	svc := NewExpenseService(&mockExpenseRepo{})

	_, err := svc.Create(context.Background(), &CreateExpenseInput{
		Description: "Generator fuel",
		Amount:      0,
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestCreateExpense_RecordsDisbursement(t *testing.T) {
	recordedBy := uuid.New()
	var created *entity.Expense

	repo := &mockExpenseRepo{
		createFn: func(ctx context.Context, expense *entity.Expense) error {
			created = expense
			return nil
		},
	}
	svc := NewExpenseService(repo)

	expense, err := svc.Create(context.Background(), &CreateExpenseInput{
		Description:  "Street light repair",
		Category:     enum.ExpenseCategoryMaintenance,
		Amount:       45000,
		ExpenseDate:  time.Date(2026, 7, 3, 0, 0, 0, 0, time.UTC),
		PaidTo:       "ABC Electrical",
		RecordedByID: recordedBy,
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, int64(45000), expense.Amount)
	require.NotNil(t, expense.RecordedByID)
	assert.Equal(t, recordedBy, *expense.RecordedByID)
}

func TestUpdateExpense_PartialFields(t *testing.T) {
	repo := &mockExpenseRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
			return &entity.Expense{
				ID:          id,
				Description: "Street light repair",
				Category:    enum.ExpenseCategoryMaintenance,
				Amount:      45000,
			}, nil
		},
		updateFn: func(ctx context.Context, expense *entity.Expense) error { return nil },
	}
	svc := NewExpenseService(repo)

	badAmount := int64(-100)
	_, err := svc.Update(context.Background(), uuid.New(), &UpdateExpenseInput{Amount: &badAmount})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	newAmount := int64(52500)
	expense, err := svc.Update(context.Background(), uuid.New(), &UpdateExpenseInput{Amount: &newAmount})
	require.NoError(t, err)

	assert.Equal(t, newAmount, expense.Amount)
	assert.Equal(t, "Street light repair", expense.Description) // untouched
}
