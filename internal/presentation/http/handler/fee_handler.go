package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wanjiku/elimu-api/internal/application/service"
	"github.com/wanjiku/elimu-api/internal/presentation/http/dto/request"
	"github.com/wanjiku/elimu-api/internal/presentation/http/dto/response"
)

// FeeHandler handles fee ledger and receipt HTTP requests
type FeeHandler struct {
	feeService     *service.FeeService
	receiptService *service.ReceiptService
}

// NewFeeHandler creates a new fee handler
func NewFeeHandler(feeService *service.FeeService, receiptService *service.ReceiptService) *FeeHandler {
	return &FeeHandler{feeService: feeService, receiptService: receiptService}
}

// RecordFee handles creating a new fee ledger entry
// @Summary Record Fee
// @Description Create a fee ledger entry for a student
// @Tags fees
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.RecordFeeRequest true "Fee entry data"
// @Success 201 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /fees [post]
func (h *FeeHandler) RecordFee(c *gin.Context) {
	var req request.RecordFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		response.BadRequest(c, "Invalid student ID")
		return
	}

	entry, err := h.feeService.RecordFee(c.Request.Context(), &service.RecordFeeInput{
		StudentID:    studentID,
		ReceiptNo:    req.ReceiptNo,
		Month:        req.Month,
		MonthlyFee:   req.MonthlyFee,
		OtherCharges: req.OtherCharges,
		PaidAmount:   req.PaidAmount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Fee recorded successfully", gin.H{
		"entry": entry,
	})
}

// RecordPayment handles a payment against an existing fee entry
// @Summary Record Payment
// @Description Apply a payment to an existing fee entry
// @Tags fees
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.RecordPaymentRequest true "Payment data"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /fees/payments [post]
func (h *FeeHandler) RecordPayment(c *gin.Context) {
	var req request.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		response.BadRequest(c, "Invalid student ID")
		return
	}

	entry, err := h.feeService.RecordPayment(c.Request.Context(), studentID, req.ReceiptNo, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment recorded successfully", gin.H{
		"entry": entry,
	})
}

// GetLedger handles fetching a student's full fee history
// @Summary Get Fee Ledger
// @Description Get all fee entries for a student in insertion order
// @Tags fees
// @Security BearerAuth
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /fees/students/{id} [get]
func (h *FeeHandler) GetLedger(c *gin.Context) {
	studentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid student ID")
		return
	}

	entries, err := h.feeService.GetLedger(c.Request.Context(), studentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Fee ledger retrieved successfully", gin.H{
		"entries": entries,
	})
}

// ResolveReceipt handles resolving a printable fee receipt
// @Summary Resolve Receipt
// @Description Build the full receipt view for one fee entry, including the
// previous month's carried-forward due and the outstanding balance
// @Tags fees
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.ResolveReceiptRequest true "Receipt identifiers"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /fees/receipt [post]
func (h *FeeHandler) ResolveReceipt(c *gin.Context) {
	var req request.ResolveReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Student ID and receipt number are required")
		return
	}

	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		response.BadRequest(c, "Invalid student ID")
		return
	}

	receipt, err := h.receiptService.GetReceipt(c.Request.Context(), studentID, req.ReceiptNo)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt resolved successfully", receipt)
}

// GetStats handles fetching school-wide fee statistics
// @Summary Fee Stats
// @Description Get aggregate charged and collected totals
// @Tags fees
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /fees/stats [get]
func (h *FeeHandler) GetStats(c *gin.Context) {
	stats, err := h.feeService.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Fee stats retrieved successfully", stats)
}
