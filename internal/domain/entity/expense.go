package entity

import (
	"encoding/json"
	"time"

	"github.com/balihai/hoa-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Expense represents an association disbursement, stored in cents
type Expense struct {
	ID           uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	Description  string               `gorm:"type:text;not null" json:"description"`
	Category     enum.ExpenseCategory `gorm:"default:0;index" json:"category"`
	Amount       int64                `gorm:"not null" json:"-"` // cents
	ExpenseDate  time.Time            `gorm:"not null;index" json:"expense_date"`
	PaidTo       string               `gorm:"size:255" json:"paid_to"`
	Remarks      string               `gorm:"type:text" json:"remarks,omitempty"`
	RecordedByID *uuid.UUID           `gorm:"type:uuid" json:"recorded_by_id,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
	DeletedAt    gorm.DeletedAt       `gorm:"index" json:"-"`

	// Relationships
	RecordedBy *User `gorm:"foreignKey:RecordedByID" json:"recorded_by,omitempty"`
}

// BeforeCreate generates a UUID before creating a new expense
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Expense model
func (Expense) TableName() string {
	return "expenses"
}

// MarshalJSON adds a decimal representation of the amount
func (e Expense) MarshalJSON() ([]byte, error) {
	type Alias Expense
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(e),
		Amount: float64(e.Amount) / 100,
	})
}
