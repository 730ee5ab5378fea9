package api

import (
	"github.com/caffe-pos/internal/http/response"
	"github.com/caffe-pos/internal/service"

	"github.com/gin-gonic/gin"
)

// RoleRequest 创建/更新角色请求
type RoleRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// ListRoles 角色列表
func (h *Handler) ListRoles(c *gin.Context) {
	roles, err := h.RoleService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "failed to list roles", err)
		return
	}
	response.Success(c, roles)
}

// GetRole 角色详情
func (h *Handler) GetRole(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	role, err := h.RoleService.Get(id)
	if err != nil {
		respondWithMappedError(c, err, accountErrorRules, response.CodeInternal, "failed to load role")
		return
	}
	response.Success(c, role)
}

// CreateRole 创建角色
func (h *Handler) CreateRole(c *gin.Context) {
	var req RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "role name is required", err)
		return
	}

	role, err := h.RoleService.Create(service.RoleInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondWithMappedError(c, err, accountErrorRules, response.CodeInternal, "failed to create role")
		return
	}
	response.Success(c, role)
}

// UpdateRole 更新角色
func (h *Handler) UpdateRole(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "role name is required", err)
		return
	}

	role, err := h.RoleService.Update(id, service.RoleInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondWithMappedError(c, err, accountErrorRules, response.CodeInternal, "failed to update role")
		return
	}
	response.Success(c, role)
}

// DeleteRole 删除角色
func (h *Handler) DeleteRole(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.RoleService.Delete(id); err != nil {
		respondWithMappedError(c, err, accountErrorRules, response.CodeInternal, "failed to delete role")
		return
	}
	response.SuccessWithMsg(c, "role deleted", nil)
}
