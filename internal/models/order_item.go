package models

import "time"

// OrderItem 订单项表
// PriceAtSale 为下单时的商品单价快照，商品后续调价不影响历史订单。
type OrderItem struct {
	ID          uint      `gorm:"primarykey" json:"id"`                                       // 主键
	OrderID     uint      `gorm:"index;not null" json:"order_id"`                             // 订单ID
	ItemID      uint      `gorm:"index;not null" json:"item_id"`                              // 商品ID
	Quantity    int       `gorm:"not null" json:"quantity"`                                   // 数量
	PriceAtSale Money     `gorm:"type:decimal(18,2);not null;default:0" json:"price_at_sale"` // 成交单价快照
	Subtotal    Money     `gorm:"type:decimal(18,2);not null;default:0" json:"subtotal"`      // 小计
	Note        string    `gorm:"type:text" json:"note"`                                      // 订单项备注
	CreatedAt   time.Time `json:"created_at"`                                                 // 创建时间
	UpdatedAt   time.Time `json:"updated_at"`                                                 // 更新时间

	Item *Item `gorm:"foreignKey:ItemID" json:"item,omitempty"` // 商品
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
