package models

import "time"

// Order 订单表
type Order struct {
	ID              uint       `gorm:"primarykey" json:"id"`                                         // 主键
	CustomerName    string     `gorm:"type:varchar(200)" json:"customer_name"`                       // 顾客姓名
	CustomerPhone   string     `gorm:"type:varchar(20)" json:"customer_phone"`                       // 顾客电话
	UserID          uint       `gorm:"index;not null" json:"user_id"`                                // 下单员工ID
	TotalAmount     Money      `gorm:"type:decimal(18,2);not null;default:0" json:"total_amount"`    // 订单项小计之和
	DiscountPercent Money      `gorm:"type:decimal(6,2);not null;default:0" json:"discount_percent"` // 折扣百分比（0-100）
	FinalAmount     Money      `gorm:"type:decimal(18,2);not null;default:0" json:"final_amount"`    // 折后应付金额
	Status          string     `gorm:"index;not null" json:"status"`                                 // 订单状态
	Notes           string     `gorm:"type:text" json:"notes"`                                       // 备注
	OrderDate       *time.Time `gorm:"index" json:"order_date"`                                      // 下单时间
	CreatedAt       time.Time  `gorm:"index" json:"created_at"`                                      // 创建时间
	UpdatedAt       time.Time  `json:"updated_at"`                                                   // 更新时间

	Items    []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`    // 订单项
	Payments []Payment   `gorm:"foreignKey:OrderID" json:"payments,omitempty"` // 支付记录
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
