package api

import (
	"strings"
	"time"

	"github.com/caffe-pos/internal/http/response"
	"github.com/caffe-pos/internal/models"
	"github.com/caffe-pos/internal/repository"
	"github.com/caffe-pos/internal/service"

	"github.com/gin-gonic/gin"
)

// ProcessPaymentRequest 柜台收款请求
type ProcessPaymentRequest struct {
	OrderID uint         `json:"order_id" binding:"required"`
	Amount  models.Money `json:"amount" binding:"required"`
	Method  string       `json:"method" binding:"required"`
	Notes   string       `json:"notes"`
}

// CreatePaymentRequest 手工补录支付记录请求
type CreatePaymentRequest struct {
	OrderID       uint         `json:"order_id" binding:"required"`
	Amount        models.Money `json:"amount" binding:"required"`
	Method        string       `json:"method" binding:"required"`
	TransactionID string       `json:"transaction_id"`
	Notes         string       `json:"notes"`
	PaymentDate   *time.Time   `json:"payment_date"`
}

// UpdatePaymentRequest 更新支付记录请求
type UpdatePaymentRequest struct {
	Amount *models.Money `json:"amount"`
	Method *string       `json:"method"`
	Notes  *string       `json:"notes"`
}

// ProcessPayment 柜台收款并结清订单
func (h *Handler) ProcessPayment(c *gin.Context) {
	var req ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "order_id, amount and method are required", err)
		return
	}
	if req.Amount.Decimal.IsNegative() {
		respondError(c, response.CodeBadRequest, "amount must not be negative", nil)
		return
	}

	result, err := h.PaymentService.ProcessPayment(service.ProcessPaymentInput{
		OrderID: req.OrderID,
		Amount:  req.Amount,
		Method:  req.Method,
		Notes:   req.Notes,
	})
	if err != nil {
		respondWithMappedError(c, err, paymentErrorRules, response.CodeInternal, "failed to process payment")
		return
	}

	requestLog(c).Infow("payment_processed",
		"payment_id", result.PaymentID,
		"order_id", result.OrderID,
		"amount_paid", result.AmountPaid.String(),
		"change", result.Change.String(),
	)
	response.Success(c, result)
}

// ListPayments 支付记录列表
func (h *Handler) ListPayments(c *gin.Context) {
	page, pageSize := parsePagination(c)

	createdFrom, err := parseTimeNullable(strings.TrimSpace(c.Query("created_from")))
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid created_from", err)
		return
	}
	createdTo, err := parseTimeNullable(strings.TrimSpace(c.Query("created_to")))
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid created_to", err)
		return
	}

	payments, total, err := h.PaymentService.List(repository.PaymentListFilter{
		Page:        page,
		PageSize:    pageSize,
		OrderID:     parseUintQuery(c, "order_id"),
		Method:      strings.TrimSpace(c.Query("method")),
		CreatedFrom: createdFrom,
		CreatedTo:   createdTo,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "failed to list payments", err)
		return
	}
	response.SuccessWithPage(c, payments, buildPagination(page, pageSize, total))
}

// GetPayment 支付记录详情
func (h *Handler) GetPayment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	payment, err := h.PaymentService.Get(id)
	if err != nil {
		respondWithMappedError(c, err, paymentErrorRules, response.CodeInternal, "failed to load payment")
		return
	}
	response.Success(c, payment)
}

// CreatePayment 手工补录支付记录
func (h *Handler) CreatePayment(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "order_id, amount and method are required", err)
		return
	}
	if req.Amount.Decimal.IsNegative() {
		respondError(c, response.CodeBadRequest, "amount must not be negative", nil)
		return
	}

	payment, err := h.PaymentService.Create(service.CreatePaymentInput{
		OrderID:       req.OrderID,
		Amount:        req.Amount,
		Method:        req.Method,
		TransactionID: req.TransactionID,
		Notes:         req.Notes,
		PaymentDate:   req.PaymentDate,
	})
	if err != nil {
		respondWithMappedError(c, err, paymentErrorRules, response.CodeInternal, "failed to create payment")
		return
	}
	response.Success(c, payment)
}

// UpdatePayment 更新支付记录
func (h *Handler) UpdatePayment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	if req.Amount != nil && req.Amount.Decimal.IsNegative() {
		respondError(c, response.CodeBadRequest, "amount must not be negative", nil)
		return
	}

	payment, err := h.PaymentService.Update(id, service.UpdatePaymentInput{
		Amount: req.Amount,
		Method: req.Method,
		Notes:  req.Notes,
	})
	if err != nil {
		respondWithMappedError(c, err, paymentErrorRules, response.CodeInternal, "failed to update payment")
		return
	}
	response.Success(c, payment)
}

// DeletePayment 删除支付记录
func (h *Handler) DeletePayment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.PaymentService.Delete(id); err != nil {
		respondWithMappedError(c, err, paymentErrorRules, response.CodeInternal, "failed to delete payment")
		return
	}
	response.SuccessWithMsg(c, "payment deleted", nil)
}
