package entity

import (
	"encoding/json"
	"time"

	"github.com/balihai/hoa-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Invoice represents a billing charge issued to a resident. All money fields
// are stored in cents. Penalty is a one-time snapshot taken at creation when
// the resident is delinquent; it is never recomputed afterwards.
type Invoice struct {
	ID          uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	ResidentID  uuid.UUID          `gorm:"type:uuid;not null;index" json:"resident_id"`
	Type        enum.InvoiceType   `gorm:"default:0" json:"type"`
	Description string             `gorm:"type:text" json:"description"`
	Amount      int64              `gorm:"not null" json:"-"` // cents
	Penalty     int64              `gorm:"default:0" json:"-"`
	TotalAmount int64              `gorm:"not null" json:"-"`
	AmountPaid  int64              `gorm:"default:0" json:"-"`
	Month       string             `gorm:"size:20" json:"month"`
	Year        int                `json:"year"`
	DueDate     time.Time          `gorm:"not null" json:"due_date"`
	Status      enum.InvoiceStatus `gorm:"default:0;index" json:"status"`
	Version     int                `gorm:"default:1;not null" json:"version"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	DeletedAt   gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Resident     *Resident     `gorm:"foreignKey:ResidentID" json:"resident,omitempty"`
	Transactions []Transaction `gorm:"foreignKey:InvoiceID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new invoice
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// Balance returns the outstanding amount in cents. It can go negative when an
// overpayment is recorded; callers that display it clamp as needed.
func (i *Invoice) Balance() int64 {
	return i.TotalAmount - i.AmountPaid
}

// MarshalJSON adds decimal representations of the money fields
func (i Invoice) MarshalJSON() ([]byte, error) {
	type Alias Invoice
	return json.Marshal(&struct {
		Alias
		Amount      float64 `json:"amount"`
		Penalty     float64 `json:"penalty"`
		TotalAmount float64 `json:"total_amount"`
		AmountPaid  float64 `json:"amount_paid"`
		Balance     float64 `json:"balance"`
	}{
		Alias:       Alias(i),
		Amount:      float64(i.Amount) / 100,
		Penalty:     float64(i.Penalty) / 100,
		TotalAmount: float64(i.TotalAmount) / 100,
		AmountPaid:  float64(i.AmountPaid) / 100,
		Balance:     float64(i.Balance()) / 100,
	})
}
