package entity

import (
	"time"

	"github.com/balihai/hoa-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Announcement is a community notice. Expired announcements are archived
// lazily whenever the list is read, and an archived announcement can be
// reused by clearing the archive flag with a fresh expiry.
type Announcement struct {
	ID          uuid.UUID                 `gorm:"type:uuid;primary_key" json:"id"`
	Title       string                    `gorm:"size:255;not null" json:"title"`
	Content     string                    `gorm:"type:text;not null" json:"content"`
	Priority    enum.AnnouncementPriority `gorm:"default:0" json:"priority"`
	PostedAt    time.Time                 `gorm:"not null" json:"posted_at"`
	ExpiresAt   *time.Time                `json:"expires_at,omitempty"`
	Archived    bool                      `gorm:"default:false;index" json:"archived"`
	PostedByID  *uuid.UUID                `gorm:"type:uuid" json:"posted_by_id,omitempty"`
	CreatedAt   time.Time                 `json:"created_at"`
	UpdatedAt   time.Time                 `json:"updated_at"`
	DeletedAt   gorm.DeletedAt            `gorm:"index" json:"-"`

	// Relationships
	PostedBy *User `gorm:"foreignKey:PostedByID" json:"posted_by,omitempty"`
}

// BeforeCreate generates a UUID before creating a new announcement
func (a *Announcement) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Announcement model
func (Announcement) TableName() string {
	return "announcements"
}

// IsExpired reports whether the announcement has passed its expiry time
func (a *Announcement) IsExpired(now time.Time) bool {
	return a.ExpiresAt != nil && now.After(*a.ExpiresAt)
}
