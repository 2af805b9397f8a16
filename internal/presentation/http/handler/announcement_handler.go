package handler

import (
	"github.com/balihai/hoa-api/internal/application/service"
	"github.com/balihai/hoa-api/internal/presentation/http/dto/request"
	"github.com/balihai/hoa-api/internal/presentation/http/dto/response"
	"github.com/balihai/hoa-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AnnouncementHandler handles announcement endpoints
type AnnouncementHandler struct {
	announcementService *service.AnnouncementService
}

// NewAnnouncementHandler creates a new announcement handler
func NewAnnouncementHandler(announcementService *service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{announcementService: announcementService}
}

// Create handles POST /api/v1/announcements
func (h *AnnouncementHandler) Create(c *gin.Context) {
	var req request.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	announcement, err := h.announcementService.Create(c.Request.Context(), &service.CreateAnnouncementInput{
		Title:      req.Title,
		Content:    req.Content,
		Priority:   req.Priority,
		ExpiresAt:  req.ExpiresAt,
		PostedByID: *userID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Announcement posted", announcement)
}

// List handles GET /api/v1/announcements. Staff can pass include_archived=true.
func (h *AnnouncementHandler) List(c *gin.Context) {
	var params pagination.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	includeArchived := c.Query("include_archived") == "true" && IsStaff(c)

	result, err := h.announcementService.List(c.Request.Context(), &params, includeArchived)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Announcements retrieved", result)
}

// Get handles GET /api/v1/announcements/:id
func (h *AnnouncementHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid announcement ID")
		return
	}

	announcement, err := h.announcementService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Announcement retrieved", announcement)
}

// Update handles PUT /api/v1/announcements/:id
func (h *AnnouncementHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid announcement ID")
		return
	}

	var req request.UpdateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	announcement, err := h.announcementService.Update(c.Request.Context(), id, &service.UpdateAnnouncementInput{
		Title:     req.Title,
		Content:   req.Content,
		Priority:  req.Priority,
		ExpiresAt: req.ExpiresAt,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Announcement updated", announcement)
}

// Reuse handles POST /api/v1/announcements/:id/reuse
func (h *AnnouncementHandler) Reuse(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid announcement ID")
		return
	}

	var req request.ReuseAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	announcement, err := h.announcementService.Reuse(c.Request.Context(), id, req.ExpiresAt)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Announcement reposted", announcement)
}

// Delete handles DELETE /api/v1/announcements/:id
func (h *AnnouncementHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid announcement ID")
		return
	}

	if err := h.announcementService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
