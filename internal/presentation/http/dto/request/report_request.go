package request

import (
	"time"

	"github.com/google/uuid"
)

// GenerateReportRequest represents the report query parameters
type GenerateReportRequest struct {
	Type       string     `form:"type" binding:"required"`
	From       time.Time  `form:"from" time_format:"2006-01-02"`
	To         time.Time  `form:"to" time_format:"2006-01-02"`
	ResidentID *uuid.UUID `form:"resident_id"`
	Format     string     `form:"format"` // json (default) or xlsx
}
