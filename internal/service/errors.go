package service

import "errors"

// 服务层统一哨兵错误，处理器据此映射业务状态码。
var (
	ErrNotFound           = errors.New("record not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrWeakPassword       = errors.New("password too weak")
	ErrUserDisabled       = errors.New("user disabled")
	ErrUsernameExists     = errors.New("username already exists")
	ErrNameExists         = errors.New("name already exists")

	ErrCategoryInUse = errors.New("category has items")
	ErrItemInUse     = errors.New("item referenced by orders")
	ErrRoleInUse     = errors.New("role assigned to users")
	ErrRoleNotFound  = errors.New("role not found")

	ErrEmptyOrderItems     = errors.New("order must contain at least one item")
	ErrInvalidOrderItem    = errors.New("invalid order item")
	ErrItemNotFound        = errors.New("item not found")
	ErrOrderNotFound       = errors.New("order not found")
	ErrOrderStatusInvalid  = errors.New("invalid order status")
	ErrOrderAlreadyPaid    = errors.New("order already settled")
	ErrInsufficientPayment = errors.New("payment amount insufficient")
	ErrPaymentNotFound     = errors.New("payment not found")

	ErrPermissionNotFound     = errors.New("permission not found")
	ErrPermissionInUse        = errors.New("permission granted to roles")
	ErrRolePermissionExists   = errors.New("permission already granted to role")
	ErrRolePermissionNotFound = errors.New("role permission grant not found")
)
