package request

import (
	"time"

	"github.com/balihai/hoa-api/internal/domain/enum"
)

// CreateExpenseRequest represents the create expense request payload.
// Amount is a decimal currency value.
type CreateExpenseRequest struct {
	Description string               `json:"description" binding:"required"`
	Category    enum.ExpenseCategory `json:"category"`
	Amount      float64              `json:"amount" binding:"required,gt=0"`
	ExpenseDate time.Time            `json:"expense_date" binding:"required"`
	PaidTo      string               `json:"paid_to"`
	Remarks     string               `json:"remarks"`
}

// UpdateExpenseRequest represents the update expense request payload.
// Omitted fields are left unchanged.
type UpdateExpenseRequest struct {
	Description *string               `json:"description"`
	Category    *enum.ExpenseCategory `json:"category"`
	Amount      *float64              `json:"amount" binding:"omitempty,gt=0"`
	ExpenseDate *time.Time            `json:"expense_date"`
	PaidTo      *string               `json:"paid_to"`
	Remarks     *string               `json:"remarks"`
}
