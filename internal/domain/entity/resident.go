package entity

import (
	"time"

	"github.com/balihai/hoa-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Address locates a resident's unit inside the subdivision
type Address struct {
	Block  string `gorm:"size:50;not null" json:"block"`
	Lot    string `gorm:"size:50;not null" json:"lot"`
	Street string `gorm:"size:255" json:"street"`
}

// Vehicle is a registered vehicle for sticker issuance
type Vehicle struct {
	PlateNumber   string `json:"plate_number"`
	Model         string `json:"model"`
	Type          string `json:"type"` // car or motorcycle
	StickerIssued bool   `json:"sticker_issued"`
}

// HouseholdMember is a demographic record for a person in the household
type HouseholdMember struct {
	Name     string `json:"name"`
	Relation string `json:"relation"`
	Age      int    `json:"age"`
}

// Resident represents a member of the homeowners' association. The status
// field drives penalty computation at invoice-creation time; it is never
// re-evaluated against already-issued invoices.
type Resident struct {
	ID               uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	FirstName        string              `gorm:"size:255;not null" json:"first_name"`
	LastName         string              `gorm:"size:255;not null" json:"last_name"`
	ContactNumber    string              `gorm:"size:50;not null" json:"contact_number"`
	Email            *string             `gorm:"size:255" json:"email,omitempty"`
	Address          Address             `gorm:"embedded;embeddedPrefix:address_" json:"address"`
	Type             enum.ResidentType   `gorm:"default:0" json:"type"`
	Status           enum.ResidentStatus `gorm:"default:0" json:"status"`
	Vehicles         []Vehicle           `gorm:"serializer:json" json:"vehicles,omitempty"`
	HouseholdMembers []HouseholdMember   `gorm:"serializer:json" json:"household_members,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
	DeletedAt        gorm.DeletedAt      `gorm:"index" json:"-"`

	// Relationships
	Invoices     []Invoice     `gorm:"foreignKey:ResidentID" json:"-"`
	Transactions []Transaction `gorm:"foreignKey:ResidentID" json:"-"`
	Complaints   []Complaint   `gorm:"foreignKey:ResidentID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new resident
func (r *Resident) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Resident model
func (Resident) TableName() string {
	return "residents"
}

// FullName returns the resident's display name, surname first
func (r *Resident) FullName() string {
	return r.LastName + ", " + r.FirstName
}
