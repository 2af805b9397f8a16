package request

import (
	"github.com/balihai/hoa-api/internal/domain/entity"
	"github.com/balihai/hoa-api/internal/domain/enum"
)

// AddressRequest represents a resident address payload
type AddressRequest struct {
	Block  string `json:"block" binding:"required"`
	Lot    string `json:"lot" binding:"required"`
	Street string `json:"street"`
}

// CreateResidentRequest represents the create resident request payload
type CreateResidentRequest struct {
	FirstName        string                   `json:"first_name" binding:"required"`
	LastName         string                   `json:"last_name" binding:"required"`
	ContactNumber    string                   `json:"contact_number" binding:"required"`
	Email            *string                  `json:"email" binding:"omitempty,email"`
	Address          AddressRequest           `json:"address" binding:"required"`
	Type             enum.ResidentType        `json:"type"`
	Status           enum.ResidentStatus      `json:"status"`
	Vehicles         []entity.Vehicle         `json:"vehicles"`
	HouseholdMembers []entity.HouseholdMember `json:"household_members"`
}

// UpdateResidentRequest represents the update resident request payload.
// Omitted fields are left unchanged.
type UpdateResidentRequest struct {
	FirstName        *string                  `json:"first_name"`
	LastName         *string                  `json:"last_name"`
	ContactNumber    *string                  `json:"contact_number"`
	Email            *string                  `json:"email" binding:"omitempty,email"`
	Address          *AddressRequest          `json:"address"`
	Type             *enum.ResidentType       `json:"type"`
	Status           *enum.ResidentStatus     `json:"status"`
	Vehicles         []entity.Vehicle         `json:"vehicles"`
	HouseholdMembers []entity.HouseholdMember `json:"household_members"`
}

// ProvisionAccountRequest represents the portal account provisioning payload
type ProvisionAccountRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}
