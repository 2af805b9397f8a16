package handler

import (
	"time"

	"github.com/balihai/hoa-api/internal/application/service"
	"github.com/balihai/hoa-api/internal/domain/enum"
	"github.com/balihai/hoa-api/internal/domain/repository"
	"github.com/balihai/hoa-api/internal/presentation/http/dto/request"
	"github.com/balihai/hoa-api/internal/presentation/http/dto/response"
	"github.com/balihai/hoa-api/pkg/pagination"
	"github.com/balihai/hoa-api/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ExpenseHandler handles expense endpoints
type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// Create handles POST /api/v1/expenses
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req request.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	expense, err := h.expenseService.Create(c.Request.Context(), &service.CreateExpenseInput{
		Description:  req.Description,
		Category:     req.Category,
		Amount:       utils.ToCents(req.Amount),
		ExpenseDate:  req.ExpenseDate,
		PaidTo:       req.PaidTo,
		Remarks:      req.Remarks,
		RecordedByID: *userID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Expense recorded", expense)
}

// List handles GET /api/v1/expenses
func (h *ExpenseHandler) List(c *gin.Context) {
	var params pagination.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	filter := repository.ExpenseFilter{}
	if s := c.Query("category"); s != "" {
		if category, ok := enum.ParseExpenseCategory(s); ok {
			filter.Category = &category
		}
	}
	if s := c.Query("from"); s != "" {
		from, err := time.Parse("2006-01-02", s)
		if err != nil {
			response.BadRequest(c, "Invalid from date")
			return
		}
		filter.From = &from
	}
	if s := c.Query("to"); s != "" {
		to, err := time.Parse("2006-01-02", s)
		if err != nil {
			response.BadRequest(c, "Invalid to date")
			return
		}
		filter.To = &to
	}

	result, err := h.expenseService.List(c.Request.Context(), &params, filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Expenses retrieved", result)
}

// Get handles GET /api/v1/expenses/:id
func (h *ExpenseHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid expense ID")
		return
	}

	expense, err := h.expenseService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expense retrieved", expense)
}

// Update handles PUT /api/v1/expenses/:id
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid expense ID")
		return
	}

	var req request.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input := &service.UpdateExpenseInput{
		Description: req.Description,
		Category:    req.Category,
		ExpenseDate: req.ExpenseDate,
		PaidTo:      req.PaidTo,
		Remarks:     req.Remarks,
	}
	if req.Amount != nil {
		cents := utils.ToCents(*req.Amount)
		input.Amount = &cents
	}

	expense, err := h.expenseService.Update(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expense updated", expense)
}

// Delete handles DELETE /api/v1/expenses/:id
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid expense ID")
		return
	}

	if err := h.expenseService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
