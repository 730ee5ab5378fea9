package models

import "time"

// Item 商品表
type Item struct {
	ID          uint      `gorm:"primarykey" json:"id"`                            // 主键
	Name        string    `gorm:"index;not null" json:"name"`                      // 商品名称
	Description string    `gorm:"type:text" json:"description"`                    // 商品描述
	Price       Money     `gorm:"type:decimal(18,2);not null;default:0" json:"price"` // 单价
	CategoryID  uint      `gorm:"index;not null" json:"category_id"`               // 分类ID
	ImageURL    string    `gorm:"type:varchar(500)" json:"image_url"`              // 图片地址
	IsActive    bool      `gorm:"not null;default:true;index" json:"is_active"`    // 是否上架
	CreatedAt   time.Time `gorm:"index" json:"created_at"`                         // 创建时间
	UpdatedAt   time.Time `json:"updated_at"`                                      // 更新时间

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"` // 所属分类
}

// TableName 指定表名
func (Item) TableName() string {
	return "items"
}
