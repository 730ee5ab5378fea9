package api

import (
	"strings"

	"github.com/caffe-pos/internal/http/response"
	"github.com/caffe-pos/internal/repository"
	"github.com/caffe-pos/internal/service"

	"github.com/gin-gonic/gin"
)

// PermissionRequest 创建/更新权限请求
type PermissionRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Module      string `json:"module" binding:"required"`
}

// ListPermissions 权限列表
func (h *Handler) ListPermissions(c *gin.Context) {
	page, pageSize := parsePagination(c)

	permissions, total, err := h.PermissionService.List(repository.PermissionListFilter{
		Page:     page,
		PageSize: pageSize,
		Module:   strings.TrimSpace(c.Query("module")),
		Keyword:  strings.TrimSpace(c.Query("keyword")),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "failed to list permissions", err)
		return
	}
	response.SuccessWithPage(c, permissions, buildPagination(page, pageSize, total))
}

// GetPermission 权限详情
func (h *Handler) GetPermission(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	permission, err := h.PermissionService.Get(id)
	if err != nil {
		respondWithMappedError(c, err, accountErrorRules, response.CodeInternal, "failed to load permission")
		return
	}
	response.Success(c, permission)
}

// CreatePermission 创建权限
func (h *Handler) CreatePermission(c *gin.Context) {
	var req PermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "permission name and module are required", err)
		return
	}

	permission, err := h.PermissionService.Create(service.PermissionInput{
		Name:        req.Name,
		Description: req.Description,
		Module:      req.Module,
	})
	if err != nil {
		respondWithMappedError(c, err, accountErrorRules, response.CodeInternal, "failed to create permission")
		return
	}
	response.Success(c, permission)
}

// UpdatePermission 更新权限
func (h *Handler) UpdatePermission(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req PermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "permission name and module are required", err)
		return
	}

	permission, err := h.PermissionService.Update(id, service.PermissionInput{
		Name:        req.Name,
		Description: req.Description,
		Module:      req.Module,
	})
	if err != nil {
		respondWithMappedError(c, err, accountErrorRules, response.CodeInternal, "failed to update permission")
		return
	}
	response.Success(c, permission)
}

// DeletePermission 删除权限
func (h *Handler) DeletePermission(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.PermissionService.Delete(id); err != nil {
		respondWithMappedError(c, err, accountErrorRules, response.CodeInternal, "failed to delete permission")
		return
	}
	response.SuccessWithMsg(c, "permission deleted", nil)
}
