package constants

import "strings"

// 订单状态
const (
	OrderStatusPending    = "Pending"
	OrderStatusProcessing = "Processing"
	OrderStatusCompleted  = "Completed"
	OrderStatusCancelled  = "Cancelled"
	OrderStatusRefunded   = "Refunded"
	OrderStatusPaid       = "Paid"
)

// OrderStatuses 订单状态全集（用于边界校验）
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusCompleted,
	OrderStatusCancelled,
	OrderStatusRefunded,
	OrderStatusPaid,
}

// NormalizeOrderStatus 校验订单状态（大小写不敏感），返回规范形式
func NormalizeOrderStatus(status string) (string, bool) {
	trimmed := strings.TrimSpace(status)
	for _, s := range OrderStatuses {
		if strings.EqualFold(s, trimmed) {
			return s, true
		}
	}
	return "", false
}

// 商品列表排序字段白名单
const (
	ItemSortName      = "name"
	ItemSortPrice     = "price"
	ItemSortCreatedAt = "created_at"
)

// 分页默认值
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)
