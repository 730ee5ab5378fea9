package api

import (
	"strings"

	"github.com/caffe-pos/internal/http/response"
	"github.com/caffe-pos/internal/models"
	"github.com/caffe-pos/internal/repository"
	"github.com/caffe-pos/internal/service"

	"github.com/gin-gonic/gin"
)

// OrderItemRequest 订单行请求
type OrderItemRequest struct {
	ItemID   uint   `json:"item_id" binding:"required"`
	Quantity int    `json:"quantity" binding:"required"`
	Note     string `json:"note"`
}

// CreateOrderRequest 创建订单请求
type CreateOrderRequest struct {
	CustomerName    string             `json:"customer_name"`
	CustomerPhone   string             `json:"customer_phone"`
	DiscountPercent models.Money       `json:"discount_percent"`
	Notes           string             `json:"notes"`
	Items           []OrderItemRequest `json:"items"`
}

// EditOrderRequest 编辑订单请求
type EditOrderRequest struct {
	CustomerName    *string            `json:"customer_name"`
	CustomerPhone   *string            `json:"customer_phone"`
	DiscountPercent *models.Money      `json:"discount_percent"`
	Notes           *string            `json:"notes"`
	Items           []OrderItemRequest `json:"items"`
}

// UpdateOrderStatusRequest 更新订单状态请求
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func toOrderItemInputs(items []OrderItemRequest) []service.OrderItemInput {
	if items == nil {
		return nil
	}
	inputs := make([]service.OrderItemInput, 0, len(items))
	for _, item := range items {
		inputs = append(inputs, service.OrderItemInput{
			ItemID:   item.ItemID,
			Quantity: item.Quantity,
			Note:     item.Note,
		})
	}
	return inputs
}

// ListOrders 订单列表
func (h *Handler) ListOrders(c *gin.Context) {
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

	orders, total, err := h.OrderService.List(repository.OrderListFilter{
		Page:        page,
		PageSize:    pageSize,
		UserID:      parseUintQuery(c, "user_id"),
		Status:      strings.TrimSpace(c.Query("status")),
		Keyword:     strings.TrimSpace(c.Query("keyword")),
		CreatedFrom: createdFrom,
		CreatedTo:   createdTo,
		WithItems:   true,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "failed to list orders", err)
		return
	}
	response.SuccessWithPage(c, orders, buildPagination(page, pageSize, total))
}

// GetOrder 订单详情
func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	order, err := h.OrderService.Get(id)
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "failed to load order")
		return
	}
	response.Success(c, order)
}

// CreateOrder 创建订单
func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	order, err := h.OrderService.CreateOrder(service.CreateOrderInput{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		UserID:          userID,
		DiscountPercent: req.DiscountPercent,
		Notes:           req.Notes,
		Items:           toOrderItemInputs(req.Items),
	})
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "failed to create order")
		return
	}

	requestLog(c).Infow("order_created",
		"order_id", order.ID,
		"user_id", userID,
		"final_amount", order.FinalAmount.String(),
	)
	response.Success(c, order)
}

// EditOrder 编辑订单
func (h *Handler) EditOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req EditOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	order, err := h.OrderService.EditOrder(id, service.EditOrderInput{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		DiscountPercent: req.DiscountPercent,
		Notes:           req.Notes,
		Items:           toOrderItemInputs(req.Items),
	})
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "failed to edit order")
		return
	}
	response.Success(c, order)
}

// UpdateOrderStatus 更新订单状态
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "status is required", err)
		return
	}

	order, err := h.OrderService.UpdateStatus(id, req.Status)
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "failed to update order status")
		return
	}

	requestLog(c).Infow("order_status_updated",
		"order_id", order.ID,
		"status", order.Status,
	)
	response.Success(c, order)
}

// DeleteOrder 删除订单
func (h *Handler) DeleteOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.OrderService.DeleteOrder(id); err != nil {
		respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "failed to delete order")
		return
	}
	response.SuccessWithMsg(c, "order deleted", nil)
}
