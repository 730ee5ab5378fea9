package models

import "time"

// Payment 支付记录表
type Payment struct {
	ID            uint       `gorm:"primarykey" json:"id"`                             // 主键
	OrderID       uint       `gorm:"index;not null" json:"order_id"`                   // 订单ID
	PaymentDate   *time.Time `gorm:"index" json:"payment_date"`                        // 支付时间
	Amount        Money      `gorm:"type:decimal(18,2);not null" json:"amount"`        // 实收金额
	Method        string     `gorm:"type:varchar(50)" json:"method"`                   // 支付方式
	TransactionID string     `gorm:"uniqueIndex;not null" json:"transaction_id"`       // 交易流水号
	Notes         string     `gorm:"type:text" json:"notes"`                           // 备注
	CreatedAt     time.Time  `gorm:"index" json:"created_at"`                          // 创建时间
	UpdatedAt     time.Time  `json:"updated_at"`                                       // 更新时间
}

// TableName 指定表名
func (Payment) TableName() string {
	return "payments"
}
