package request

import (
	"time"

	"github.com/balihai/hoa-api/internal/domain/enum"
	"github.com/google/uuid"
)

// CreateInvoiceRequest represents the create invoice request payload.
// Amount is a decimal currency value.
type CreateInvoiceRequest struct {
	ResidentID  uuid.UUID        `json:"resident_id" binding:"required"`
	Type        enum.InvoiceType `json:"type"`
	Description string           `json:"description" binding:"required"`
	Amount      float64          `json:"amount" binding:"required,gt=0"`
	Month       string           `json:"month"`
	Year        int              `json:"year"`
	DueDate     time.Time        `json:"due_date" binding:"required"`
}

// RecordPaymentRequest represents a staff-recorded payment payload
type RecordPaymentRequest struct {
	Amount          float64            `json:"amount" binding:"required,gt=0"`
	PaymentMethod   enum.PaymentMethod `json:"payment_method"`
	ReferenceNumber string             `json:"reference_number"`
	PaymentDate     time.Time          `json:"payment_date"`
}

// SubmitPaymentProofRequest represents the multipart form fields of a
// resident payment proof submission; receipt images travel as files.
// When amount is omitted the remaining invoice balance is claimed.
type SubmitPaymentProofRequest struct {
	Amount          float64 `form:"amount" binding:"omitempty,gte=0"`
	PaymentMethod   string  `form:"payment_method"`
	ReferenceNumber string  `form:"reference_number"`
}

// ApprovePaymentRequest carries the optional verified amount a reviewer
// confirms against the submitted receipt
type ApprovePaymentRequest struct {
	ConfirmedAmount *float64 `json:"confirmed_amount" binding:"omitempty,gt=0"`
}

// RejectPaymentRequest represents the payment rejection payload
type RejectPaymentRequest struct {
	Reason string `json:"reason" binding:"required"`
}
