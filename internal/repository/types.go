package repository

import "time"

// CategoryListFilter 查询分类列表的过滤条件
type CategoryListFilter struct {
	Page     int
	PageSize int
	Keyword  string
	IsActive *bool
}

// ItemListFilter 查询商品列表的过滤条件
type ItemListFilter struct {
	Page       int
	PageSize   int
	Keyword    string
	CategoryID uint
	IsActive   *bool
	SortBy     string
	SortDesc   bool
}

// OrderListFilter 查询订单列表的过滤条件
type OrderListFilter struct {
	Page        int
	PageSize    int
	UserID      uint
	Status      string
	Keyword     string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	WithItems   bool
}

// PaymentListFilter 查询支付记录列表的过滤条件
type PaymentListFilter struct {
	Page        int
	PageSize    int
	OrderID     uint
	Method      string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// UserListFilter 查询用户列表的过滤条件
type UserListFilter struct {
	Page     int
	PageSize int
	Keyword  string
	RoleID   uint
	IsActive *bool
}

// PermissionListFilter 查询权限列表的过滤条件
type PermissionListFilter struct {
	Page     int
	PageSize int
	Module   string
	Keyword  string
}
