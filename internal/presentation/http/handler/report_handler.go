package handler

import (
	"fmt"
	"net/http"

	"github.com/balihai/hoa-api/internal/application/service"
	"github.com/balihai/hoa-api/internal/domain/enum"
	"github.com/balihai/hoa-api/internal/presentation/http/dto/request"
	"github.com/balihai/hoa-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// ReportHandler handles report endpoints
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Generate handles GET /api/v1/reports. With format=xlsx the report is
// returned as an Excel download instead of JSON.
func (h *ReportHandler) Generate(c *gin.Context) {
	var req request.GenerateReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	report, err := h.reportService.Generate(c.Request.Context(), &service.GenerateReportInput{
		Type:       enum.ReportType(req.Type),
		From:       req.From,
		To:         req.To,
		ResidentID: req.ResidentID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	if req.Format == "xlsx" {
		data, err := h.reportService.ExportXLSX(report)
		if err != nil {
			response.Error(c, err)
			return
		}
		fileName := fmt.Sprintf("%s_%s.xlsx", report.Type, report.GeneratedAt.Format("20060102"))
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
		return
	}

	response.OK(c, "Report generated", report)
}
