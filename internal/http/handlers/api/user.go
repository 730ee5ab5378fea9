package api

import (
	"strings"

	"github.com/caffe-pos/internal/http/response"
	"github.com/caffe-pos/internal/repository"
	"github.com/caffe-pos/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateUserRequest 创建用户请求
type CreateUserRequest struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	RoleID      uint   `json:"role_id" binding:"required"`
	IsActive    *bool  `json:"is_active"`
}

// UpdateUserRequest 更新用户请求
type UpdateUserRequest struct {
	Password    *string `json:"password"`
	FullName    *string `json:"full_name"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phone_number"`
	RoleID      *uint   `json:"role_id"`
	IsActive    *bool   `json:"is_active"`
}

// ListUsers 用户列表
func (h *Handler) ListUsers(c *gin.Context) {
	page, pageSize := parsePagination(c)

	users, total, err := h.UserService.List(repository.UserListFilter{
		Page:     page,
		PageSize: pageSize,
		Keyword:  strings.TrimSpace(c.Query("keyword")),
		RoleID:   parseUintQuery(c, "role_id"),
		IsActive: parseBoolQuery(c, "is_active"),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "failed to list users", err)
		return
	}
	response.SuccessWithPage(c, users, buildPagination(page, pageSize, total))
}

// GetUser 用户详情
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.UserService.Get(id)
	if err != nil {
		respondWithMappedError(c, err, accountErrorRules, response.CodeInternal, "failed to load user")
		return
	}
	response.Success(c, user)
}

// CreateUser 创建用户
func (h *Handler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "username, password and role_id are required", err)
		return
	}

	user, err := h.UserService.Create(service.CreateUserInput{
		Username:    req.Username,
		Password:    req.Password,
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		RoleID:      req.RoleID,
		IsActive:    req.IsActive,
	})
	if err != nil {
		respondWithMappedError(c, err, accountErrorRules, response.CodeInternal, "failed to create user")
		return
	}

	requestLog(c).Infow("user_created",
		"user_id", user.ID,
		"username", user.Username,
	)
	response.Success(c, user)
}

// UpdateUser 更新用户
func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	user, err := h.UserService.Update(id, service.UpdateUserInput{
		Password:    req.Password,
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		RoleID:      req.RoleID,
		IsActive:    req.IsActive,
	})
	if err != nil {
		respondWithMappedError(c, err, accountErrorRules, response.CodeInternal, "failed to update user")
		return
	}
	response.Success(c, user)
}

// DeleteUser 删除用户
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	currentID, ok := currentUserID(c)
	if !ok {
		return
	}
	if currentID == id {
		respondError(c, response.CodeBadRequest, "cannot delete the current account", nil)
		return
	}

	if err := h.UserService.Delete(id); err != nil {
		respondWithMappedError(c, err, accountErrorRules, response.CodeInternal, "failed to delete user")
		return
	}
	response.SuccessWithMsg(c, "user deleted", nil)
}
