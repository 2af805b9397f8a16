package handler

import (
	"io"

	"github.com/balihai/hoa-api/internal/application/service"
	"github.com/balihai/hoa-api/internal/domain/enum"
	"github.com/balihai/hoa-api/internal/domain/repository"
	"github.com/balihai/hoa-api/internal/presentation/http/dto/request"
	"github.com/balihai/hoa-api/internal/presentation/http/dto/response"
	"github.com/balihai/hoa-api/pkg/apperror"
	"github.com/balihai/hoa-api/pkg/pagination"
	"github.com/balihai/hoa-api/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BillingHandler handles invoice and payment endpoints
type BillingHandler struct {
	billingService *service.BillingService
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(billingService *service.BillingService) *BillingHandler {
	return &BillingHandler{billingService: billingService}
}

// CreateInvoice handles POST /api/v1/invoices
func (h *BillingHandler) CreateInvoice(c *gin.Context) {
	var req request.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	invoice, err := h.billingService.CreateInvoice(c.Request.Context(), &service.CreateInvoiceInput{
		ResidentID:  req.ResidentID,
		Type:        req.Type,
		Description: req.Description,
		Amount:      utils.ToCents(req.Amount),
		Month:       req.Month,
		Year:        req.Year,
		DueDate:     req.DueDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Invoice created", invoice)
}

// ListInvoices handles GET /api/v1/invoices
func (h *BillingHandler) ListInvoices(c *gin.Context) {
	var params pagination.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	filter := repository.InvoiceFilter{Month: c.Query("month")}
	if s := c.Query("status"); s != "" {
		if status, ok := enum.ParseInvoiceStatus(s); ok {
			filter.Status = &status
		}
	}
	if r := c.Query("resident_id"); r != "" {
		residentID, err := uuid.Parse(r)
		if err != nil {
			response.BadRequest(c, "Invalid resident ID")
			return
		}
		filter.ResidentID = &residentID
	}

	result, err := h.billingService.ListInvoices(c.Request.Context(), &params, filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Invoices retrieved", result)
}

// GetInvoice handles GET /api/v1/invoices/:id. Residents can only read
// their own invoices.
func (h *BillingHandler) GetInvoice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.billingService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	if !IsStaff(c) {
		residentID := GetLinkedResidentID(c)
		if residentID == nil || invoice.ResidentID != *residentID {
			response.Forbidden(c, "Access denied")
			return
		}
	}

	response.OK(c, "Invoice retrieved", invoice)
}

// ListInvoiceTransactions handles GET /api/v1/invoices/:id/transactions
func (h *BillingHandler) ListInvoiceTransactions(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	transactions, err := h.billingService.ListInvoiceTransactions(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment history retrieved", transactions)
}

// RecordPayment handles POST /api/v1/invoices/:id/payments
func (h *BillingHandler) RecordPayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req request.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	transaction, err := h.billingService.RecordPayment(c.Request.Context(), &service.RecordPaymentInput{
		InvoiceID:       id,
		Amount:          utils.ToCents(req.Amount),
		PaymentMethod:   req.PaymentMethod,
		ReferenceNumber: req.ReferenceNumber,
		PaymentDate:     req.PaymentDate,
		RecordedByID:    *userID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Payment recorded", transaction)
}

// SubmitProof handles POST /api/v1/invoices/:id/proof. The body is a
// multipart form with the payment fields and up to three receipt images.
func (h *BillingHandler) SubmitProof(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	residentID := GetLinkedResidentID(c)
	if residentID == nil {
		response.Error(c, apperror.ErrNoLinkedResident)
		return
	}

	var req request.SubmitPaymentProofRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		response.BadRequest(c, "Invalid multipart form")
		return
	}

	images := make([]service.ReceiptImageInput, 0, len(form.File["images"]))
	for _, fileHeader := range form.File["images"] {
		file, err := fileHeader.Open()
		if err != nil {
			response.BadRequest(c, "Unable to read receipt image")
			return
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			response.BadRequest(c, "Unable to read receipt image")
			return
		}
		images = append(images, service.ReceiptImageInput{
			FileName:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	transaction, err := h.billingService.SubmitPaymentProof(c.Request.Context(), &service.SubmitPaymentProofInput{
		InvoiceID:       id,
		ResidentID:      *residentID,
		Amount:          utils.ToCents(req.Amount),
		PaymentMethod:   enum.ParsePaymentMethod(req.PaymentMethod),
		ReferenceNumber: req.ReferenceNumber,
		Images:          images,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Payment proof submitted", transaction)
}

// ListTransactions handles GET /api/v1/transactions
func (h *BillingHandler) ListTransactions(c *gin.Context) {
	var params pagination.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	filter := repository.TransactionFilter{}
	if s := c.Query("status"); s != "" {
		if status, ok := enum.ParseTransactionStatus(s); ok {
			filter.Status = &status
		}
	}
	if r := c.Query("resident_id"); r != "" {
		residentID, err := uuid.Parse(r)
		if err != nil {
			response.BadRequest(c, "Invalid resident ID")
			return
		}
		filter.ResidentID = &residentID
	}

	result, err := h.billingService.ListTransactions(c.Request.Context(), &params, filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Transactions retrieved", result)
}

// GetTransaction handles GET /api/v1/transactions/:id
func (h *BillingHandler) GetTransaction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	transaction, err := h.billingService.GetTransaction(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	if !IsStaff(c) {
		residentID := GetLinkedResidentID(c)
		if residentID == nil || transaction.ResidentID != *residentID {
			response.Forbidden(c, "Access denied")
			return
		}
	}

	response.OK(c, "Transaction retrieved", transaction)
}

// ApprovePayment handles POST /api/v1/transactions/:id/approve
func (h *BillingHandler) ApprovePayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	var confirmedAmount *int64
	if c.Request.ContentLength > 0 {
		var req request.ApprovePaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		if req.ConfirmedAmount != nil {
			cents := utils.ToCents(*req.ConfirmedAmount)
			confirmedAmount = &cents
		}
	}

	transaction, err := h.billingService.ApprovePayment(c.Request.Context(), id, *userID, confirmedAmount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment approved", transaction)
}

// RejectPayment handles POST /api/v1/transactions/:id/reject
func (h *BillingHandler) RejectPayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	var req request.RejectPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	transaction, err := h.billingService.RejectPayment(c.Request.Context(), id, *userID, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment rejected", transaction)
}

// MyInvoices handles GET /api/v1/my/invoices for resident accounts
func (h *BillingHandler) MyInvoices(c *gin.Context) {
	residentID := GetLinkedResidentID(c)
	if residentID == nil {
		response.Error(c, apperror.ErrNoLinkedResident)
		return
	}

	invoices, err := h.billingService.ListResidentInvoices(c.Request.Context(), *residentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoices retrieved", invoices)
}
