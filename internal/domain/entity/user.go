package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a portal account. Resident accounts carry a link to the
// resident record they belong to; admin and staff accounts do not.
type User struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	FirstName        string         `gorm:"size:255;not null" json:"first_name"`
	LastName         string         `gorm:"size:255;not null" json:"last_name"`
	Email            string         `gorm:"size:255;unique;not null" json:"email"`
	Password         string         `gorm:"size:255" json:"-"`
	LinkedResidentID *uuid.UUID     `gorm:"type:uuid;index" json:"linked_resident_id,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Roles          []Role    `gorm:"many2many:user_has_roles;foreignKey:ID;joinForeignKey:user_id;References:ID;joinReferences:role_id" json:"roles,omitempty"`
	LinkedResident *Resident `gorm:"foreignKey:LinkedResidentID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// HasRole checks if the user has a specific role
func (u *User) HasRole(roleName string) bool {
	for _, role := range u.Roles {
		if role.Name == roleName {
			return true
		}
	}
	return false
}

// RoleNames returns the names of all roles assigned to the user
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, role := range u.Roles {
		names = append(names, role.Name)
	}
	return names
}

// Role represents a role in the RBAC system (admin, staff, resident)
type Role struct {
	ID        uint      `gorm:"primary_key" json:"id"`
	Name      string    `gorm:"size:255;not null;unique" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for the Role model
func (Role) TableName() string {
	return "roles"
}
