package api

import (
	"strconv"
	"strings"

	"github.com/caffe-pos/internal/http/response"
	"github.com/caffe-pos/internal/models"
	"github.com/caffe-pos/internal/repository"
	"github.com/caffe-pos/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateItemRequest 创建商品请求
type CreateItemRequest struct {
	Name        string       `json:"name" binding:"required"`
	Description string       `json:"description"`
	Price       models.Money `json:"price" binding:"required"`
	CategoryID  uint         `json:"category_id" binding:"required"`
	ImageURL    string       `json:"image_url"`
	IsActive    *bool        `json:"is_active"`
}

// UpdateItemRequest 更新商品请求
type UpdateItemRequest struct {
	Name        *string       `json:"name"`
	Description *string       `json:"description"`
	Price       *models.Money `json:"price"`
	CategoryID  *uint         `json:"category_id"`
	ImageURL    *string       `json:"image_url"`
	IsActive    *bool         `json:"is_active"`
}

// ListItems 商品列表
func (h *Handler) ListItems(c *gin.Context) {
	page, pageSize := parsePagination(c)
	sortDesc, _ := strconv.ParseBool(c.DefaultQuery("sort_desc", "false"))

	items, total, err := h.ItemService.List(repository.ItemListFilter{
		Page:       page,
		PageSize:   pageSize,
		Keyword:    strings.TrimSpace(c.Query("keyword")),
		CategoryID: parseUintQuery(c, "category_id"),
		IsActive:   parseBoolQuery(c, "is_active"),
		SortBy:     strings.TrimSpace(c.Query("sort_by")),
		SortDesc:   sortDesc,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "failed to list items", err)
		return
	}
	response.SuccessWithPage(c, items, buildPagination(page, pageSize, total))
}

// GetItem 商品详情
func (h *Handler) GetItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	item, err := h.ItemService.Get(id)
	if err != nil {
		respondWithMappedError(c, err, catalogErrorRules, response.CodeInternal, "failed to load item")
		return
	}
	response.Success(c, item)
}

// CreateItem 创建商品
func (h *Handler) CreateItem(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "item name, price and category are required", err)
		return
	}
	if req.Price.Decimal.IsNegative() {
		respondError(c, response.CodeBadRequest, "price must not be negative", nil)
		return
	}

	item, err := h.ItemService.Create(service.CreateItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		ImageURL:    req.ImageURL,
		IsActive:    req.IsActive,
	})
	if err != nil {
		respondWithMappedError(c, err, catalogErrorRules, response.CodeInternal, "failed to create item")
		return
	}
	response.Success(c, item)
}

// UpdateItem 更新商品
func (h *Handler) UpdateItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	if req.Price != nil && req.Price.Decimal.IsNegative() {
		respondError(c, response.CodeBadRequest, "price must not be negative", nil)
		return
	}

	item, err := h.ItemService.Update(id, service.UpdateItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		ImageURL:    req.ImageURL,
		IsActive:    req.IsActive,
	})
	if err != nil {
		respondWithMappedError(c, err, catalogErrorRules, response.CodeInternal, "failed to update item")
		return
	}
	response.Success(c, item)
}

// DeleteItem 删除商品
func (h *Handler) DeleteItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.ItemService.Delete(id); err != nil {
		respondWithMappedError(c, err, catalogErrorRules, response.CodeInternal, "failed to delete item")
		return
	}
	response.SuccessWithMsg(c, "item deleted", nil)
}
