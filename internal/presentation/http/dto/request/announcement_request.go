package request

import (
	"time"

	"github.com/balihai/hoa-api/internal/domain/enum"
)

// CreateAnnouncementRequest represents the create announcement request payload
type CreateAnnouncementRequest struct {
	Title     string                    `json:"title" binding:"required"`
	Content   string                    `json:"content" binding:"required"`
	Priority  enum.AnnouncementPriority `json:"priority"`
	ExpiresAt *time.Time                `json:"expires_at"`
}

// UpdateAnnouncementRequest represents the update announcement request
// payload. Omitted fields are left unchanged.
type UpdateAnnouncementRequest struct {
	Title     *string                    `json:"title"`
	Content   *string                    `json:"content"`
	Priority  *enum.AnnouncementPriority `json:"priority"`
	ExpiresAt *time.Time                 `json:"expires_at"`
}

// ReuseAnnouncementRequest represents the reuse request payload
type ReuseAnnouncementRequest struct {
	ExpiresAt *time.Time `json:"expires_at"`
}
