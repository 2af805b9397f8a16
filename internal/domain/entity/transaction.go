package entity

import (
	"encoding/json"
	"time"

	"github.com/balihai/hoa-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Transaction represents a payment against an invoice. Staff-recorded
// payments are completed immediately; resident-submitted proofs start out
// pending and move to completed or rejected through the approval workflow.
type Transaction struct {
	ID              uuid.UUID              `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID       uuid.UUID              `gorm:"type:uuid;not null;index" json:"invoice_id"`
	ResidentID      uuid.UUID              `gorm:"type:uuid;not null;index" json:"resident_id"`
	AmountPaid      int64                  `gorm:"not null" json:"-"` // cents
	PaymentMethod   enum.PaymentMethod     `gorm:"default:0" json:"payment_method"`
	ReferenceNumber string                 `gorm:"size:100;unique;not null" json:"reference_number"`
	ReceiptImages   []string               `gorm:"serializer:json" json:"receipt_images,omitempty"`
	RejectionReason string                 `gorm:"type:text" json:"rejection_reason,omitempty"`
	Status          enum.TransactionStatus `gorm:"default:0;index" json:"status"`
	PaymentDate     time.Time              `gorm:"not null" json:"payment_date"`
	RecordedByID    *uuid.UUID             `gorm:"type:uuid" json:"recorded_by_id,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
	DeletedAt       gorm.DeletedAt         `gorm:"index" json:"-"`

	// Relationships
	Invoice    *Invoice  `gorm:"foreignKey:InvoiceID" json:"invoice,omitempty"`
	Resident   *Resident `gorm:"foreignKey:ResidentID" json:"resident,omitempty"`
	RecordedBy *User     `gorm:"foreignKey:RecordedByID" json:"recorded_by,omitempty"`
}

// BeforeCreate generates a UUID before creating a new transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}

// MarshalJSON adds a decimal representation of the amount
func (t Transaction) MarshalJSON() ([]byte, error) {
	type Alias Transaction
	return json.Marshal(&struct {
		Alias
		AmountPaid float64 `json:"amount_paid"`
	}{
		Alias:      Alias(t),
		AmountPaid: float64(t.AmountPaid) / 100,
	})
}
