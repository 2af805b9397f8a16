package entity

import (
	"time"

	"github.com/balihai/hoa-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Complaint is a resident-filed ticket: a complaint proper, a service
// request, or an incident report
type Complaint struct {
	ID           uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	ResidentID   uuid.UUID            `gorm:"type:uuid;not null;index" json:"resident_id"`
	Type         enum.ComplaintType   `gorm:"default:0" json:"type"`
	Subject      string               `gorm:"size:255;not null" json:"subject"`
	Description  string               `gorm:"type:text;not null" json:"description"`
	Status       enum.ComplaintStatus `gorm:"default:0;index" json:"status"`
	Resolution   string               `gorm:"type:text" json:"resolution,omitempty"`
	ResolvedDate *time.Time           `json:"resolved_date,omitempty"`
	Archived     bool                 `gorm:"default:false;index" json:"archived"`
	FiledAt      time.Time            `gorm:"not null" json:"filed_at"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
	DeletedAt    gorm.DeletedAt       `gorm:"index" json:"-"`

	// Relationships
	Resident *Resident `gorm:"foreignKey:ResidentID" json:"resident,omitempty"`
}

// BeforeCreate generates a UUID before creating a new complaint
func (c *Complaint) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Complaint model
func (Complaint) TableName() string {
	return "complaints"
}
