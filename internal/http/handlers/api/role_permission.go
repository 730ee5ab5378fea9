package api

import (
	"github.com/caffe-pos/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GrantPermissionRequest 角色授权请求
type GrantPermissionRequest struct {
	PermissionID uint `json:"permission_id" binding:"required"`
}

// ListRolePermissions 角色授权列表
func (h *Handler) ListRolePermissions(c *gin.Context) {
	roleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	grants, err := h.RolePermissionService.ListByRole(roleID)
	if err != nil {
		respondWithMappedError(c, err, accountErrorRules, response.CodeInternal, "failed to list role permissions")
		return
	}
	response.Success(c, grants)
}

// GrantRolePermission 给角色授权
func (h *Handler) GrantRolePermission(c *gin.Context) {
	roleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req GrantPermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "permission_id is required", err)
		return
	}

	grant, err := h.RolePermissionService.Grant(roleID, req.PermissionID)
	if err != nil {
		respondWithMappedError(c, err, accountErrorRules, response.CodeInternal, "failed to grant permission")
		return
	}

	requestLog(c).Infow("role_permission_granted",
		"role_id", roleID,
		"permission_id", req.PermissionID,
	)
	response.Success(c, grant)
}

// RevokeRolePermission 撤销角色授权
func (h *Handler) RevokeRolePermission(c *gin.Context) {
	roleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	permissionID, ok := parseIDParam(c, "permission_id")
	if !ok {
		return
	}

	if err := h.RolePermissionService.Revoke(roleID, permissionID); err != nil {
		respondWithMappedError(c, err, accountErrorRules, response.CodeInternal, "failed to revoke permission")
		return
	}
	response.SuccessWithMsg(c, "permission revoked", nil)
}
