package handler

import (
	"github.com/balihai/hoa-api/internal/application/service"
	"github.com/balihai/hoa-api/internal/domain/entity"
	"github.com/balihai/hoa-api/internal/domain/enum"
	"github.com/balihai/hoa-api/internal/domain/repository"
	"github.com/balihai/hoa-api/internal/presentation/http/dto/request"
	"github.com/balihai/hoa-api/internal/presentation/http/dto/response"
	"github.com/balihai/hoa-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ResidentHandler handles resident endpoints
type ResidentHandler struct {
	residentService *service.ResidentService
}

// NewResidentHandler creates a new resident handler
func NewResidentHandler(residentService *service.ResidentService) *ResidentHandler {
	return &ResidentHandler{residentService: residentService}
}

// Create handles POST /api/v1/residents
func (h *ResidentHandler) Create(c *gin.Context) {
	var req request.CreateResidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resident, err := h.residentService.Create(c.Request.Context(), &service.CreateResidentInput{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		ContactNumber: req.ContactNumber,
		Email:         req.Email,
		Address: entity.Address{
			Block:  req.Address.Block,
			Lot:    req.Address.Lot,
			Street: req.Address.Street,
		},
		Type:             req.Type,
		Status:           req.Status,
		Vehicles:         req.Vehicles,
		HouseholdMembers: req.HouseholdMembers,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Resident created", resident)
}

// List handles GET /api/v1/residents
func (h *ResidentHandler) List(c *gin.Context) {
	var params pagination.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	filter := repository.ResidentFilter{Search: c.Query("search")}
	if s := c.Query("status"); s != "" {
		if status, ok := enum.ParseResidentStatus(s); ok {
			filter.Status = &status
		}
	}
	if t := c.Query("type"); t != "" {
		if residentType, ok := enum.ParseResidentType(t); ok {
			filter.Type = &residentType
		}
	}

	result, err := h.residentService.List(c.Request.Context(), &params, filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Residents retrieved", result)
}

// Get handles GET /api/v1/residents/:id
func (h *ResidentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid resident ID")
		return
	}

	resident, err := h.residentService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Resident retrieved", resident)
}

// Update handles PUT /api/v1/residents/:id
func (h *ResidentHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid resident ID")
		return
	}

	var req request.UpdateResidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input := &service.UpdateResidentInput{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		ContactNumber:    req.ContactNumber,
		Email:            req.Email,
		Type:             req.Type,
		Status:           req.Status,
		Vehicles:         req.Vehicles,
		HouseholdMembers: req.HouseholdMembers,
	}
	if req.Address != nil {
		input.Address = &entity.Address{
			Block:  req.Address.Block,
			Lot:    req.Address.Lot,
			Street: req.Address.Street,
		}
	}

	resident, err := h.residentService.Update(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Resident updated", resident)
}

// Delete handles DELETE /api/v1/residents/:id
func (h *ResidentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid resident ID")
		return
	}

	if err := h.residentService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// ProvisionAccount handles POST /api/v1/residents/:id/account
func (h *ResidentHandler) ProvisionAccount(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid resident ID")
		return
	}

	var req request.ProvisionAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.residentService.ProvisionAccount(c.Request.Context(), id, &service.ProvisionAccountInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Portal account created", user)
}
