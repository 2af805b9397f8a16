package handler

import (
	"github.com/balihai/hoa-api/internal/application/service"
	"github.com/balihai/hoa-api/internal/domain/enum"
	"github.com/balihai/hoa-api/internal/domain/repository"
	"github.com/balihai/hoa-api/internal/presentation/http/dto/request"
	"github.com/balihai/hoa-api/internal/presentation/http/dto/response"
	"github.com/balihai/hoa-api/pkg/apperror"
	"github.com/balihai/hoa-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ComplaintHandler handles complaint endpoints
type ComplaintHandler struct {
	complaintService *service.ComplaintService
}

// NewComplaintHandler creates a new complaint handler
func NewComplaintHandler(complaintService *service.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{complaintService: complaintService}
}

// Create handles POST /api/v1/complaints. Residents file as themselves;
// staff can file on behalf of any resident.
func (h *ComplaintHandler) Create(c *gin.Context) {
	var req request.CreateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var residentID uuid.UUID
	if IsStaff(c) {
		if req.ResidentID == nil {
			response.BadRequest(c, "Resident is required")
			return
		}
		residentID = *req.ResidentID
	} else {
		linked := GetLinkedResidentID(c)
		if linked == nil {
			response.Error(c, apperror.ErrNoLinkedResident)
			return
		}
		residentID = *linked
	}

	complaint, err := h.complaintService.Create(c.Request.Context(), &service.CreateComplaintInput{
		ResidentID:  residentID,
		Type:        req.Type,
		Subject:     req.Subject,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Complaint filed", complaint)
}

// List handles GET /api/v1/complaints. Residents only see their own tickets.
func (h *ComplaintHandler) List(c *gin.Context) {
	var params pagination.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	filter := repository.ComplaintFilter{}
	if !IsStaff(c) {
		linked := GetLinkedResidentID(c)
		if linked == nil {
			response.Error(c, apperror.ErrNoLinkedResident)
			return
		}
		filter.ResidentID = linked
	} else if r := c.Query("resident_id"); r != "" {
		residentID, err := uuid.Parse(r)
		if err != nil {
			response.BadRequest(c, "Invalid resident ID")
			return
		}
		filter.ResidentID = &residentID
	}
	if s := c.Query("status"); s != "" {
		if status, ok := enum.ParseComplaintStatus(s); ok {
			filter.Status = &status
		}
	}
	if s := c.Query("archived"); s != "" {
		archived := s == "true"
		filter.Archived = &archived
	}

	result, err := h.complaintService.List(c.Request.Context(), &params, filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Complaints retrieved", result)
}

// Get handles GET /api/v1/complaints/:id
func (h *ComplaintHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid complaint ID")
		return
	}

	complaint, err := h.complaintService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	if !IsStaff(c) {
		linked := GetLinkedResidentID(c)
		if linked == nil || complaint.ResidentID != *linked {
			response.Forbidden(c, "Access denied")
			return
		}
	}

	response.OK(c, "Complaint retrieved", complaint)
}

// UpdateStatus handles PATCH /api/v1/complaints/:id/status
func (h *ComplaintHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid complaint ID")
		return
	}

	var req request.UpdateComplaintStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	complaint, err := h.complaintService.UpdateStatus(c.Request.Context(), id, &service.UpdateStatusInput{
		Status:     req.Status,
		Resolution: req.Resolution,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Complaint updated", complaint)
}

// Archive handles POST /api/v1/complaints/:id/archive
func (h *ComplaintHandler) Archive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid complaint ID")
		return
	}

	complaint, err := h.complaintService.Archive(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Complaint archived", complaint)
}

// Delete handles DELETE /api/v1/complaints/:id
func (h *ComplaintHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid complaint ID")
		return
	}

	if err := h.complaintService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
