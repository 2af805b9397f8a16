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

// ExpenseService handles association disbursements
type ExpenseService struct {
	expenseRepo repository.ExpenseRepository
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenseRepo repository.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

// CreateExpenseInput represents the create expense input. Amount is in cents.
type CreateExpenseInput struct {
	Description  string
	Category     enum.ExpenseCategory
	Amount       int64
	ExpenseDate  time.Time
	PaidTo       string
	Remarks      string
	RecordedByID uuid.UUID
}

// Create records a new expense
func (s *ExpenseService) Create(ctx context.Context, input *CreateExpenseInput) (*entity.Expense, error) {
	if input.Amount <= 0 {
		return nil, apperror.NewBadRequestError("Amount must be greater than zero")
	}

	expense := &entity.Expense{
		Description:  input.Description,
		Category:     input.Category,
		Amount:       input.Amount,
		ExpenseDate:  input.ExpenseDate,
		PaidTo:       input.PaidTo,
		Remarks:      input.Remarks,
		RecordedByID: &input.RecordedByID,
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// GetByID returns a single expense
func (s *ExpenseService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, apperror.NewNotFoundError("Expense")
	}
	return expense, nil
}

// List returns expenses with pagination
func (s *ExpenseService) List(ctx context.Context, params *pagination.PaginationParams, filter repository.ExpenseFilter) (*pagination.PaginatedResult[entity.Expense], error) {
	expenses, total, err := s.expenseRepo.List(ctx, params, filter)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(expenses, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// UpdateExpenseInput represents the update expense input. Nil fields are
// left unchanged.
type UpdateExpenseInput struct {
	Description *string
	Category    *enum.ExpenseCategory
	Amount      *int64
	ExpenseDate *time.Time
	PaidTo      *string
	Remarks     *string
}

// Update modifies an existing expense
func (s *ExpenseService) Update(ctx context.Context, id uuid.UUID, input *UpdateExpenseInput) (*entity.Expense, error) {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, apperror.NewNotFoundError("Expense")
	}

	if input.Description != nil {
		expense.Description = *input.Description
	}
	if input.Category != nil {
		expense.Category = *input.Category
	}
	if input.Amount != nil {
		if *input.Amount <= 0 {
			return nil, apperror.NewBadRequestError("Amount must be greater than zero")
		}
		expense.Amount = *input.Amount
	}
	if input.ExpenseDate != nil {
		expense.ExpenseDate = *input.ExpenseDate
	}
	if input.PaidTo != nil {
		expense.PaidTo = *input.PaidTo
	}
	if input.Remarks != nil {
		expense.Remarks = *input.Remarks
	}

	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// Delete removes an expense
func (s *ExpenseService) Delete(ctx context.Context, id uuid.UUID) error {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if expense == nil {
		return apperror.NewNotFoundError("Expense")
	}
	return s.expenseRepo.Delete(ctx, id)
}
