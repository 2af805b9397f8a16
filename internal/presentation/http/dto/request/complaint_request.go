package request

import (
	"github.com/balihai/hoa-api/internal/domain/enum"
	"github.com/google/uuid"
)

// CreateComplaintRequest represents the create complaint request payload.
// ResidentID is only honored for staff; residents always file as themselves.
type CreateComplaintRequest struct {
	ResidentID  *uuid.UUID         `json:"resident_id"`
	Type        enum.ComplaintType `json:"type"`
	Subject     string             `json:"subject" binding:"required"`
	Description string             `json:"description" binding:"required"`
}

// UpdateComplaintStatusRequest represents the status update payload
type UpdateComplaintStatusRequest struct {
	Status     enum.ComplaintStatus `json:"status"`
	Resolution string               `json:"resolution"`
}
