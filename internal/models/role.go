package models

import "time"

// Role 角色表
type Role struct {
	ID          uint      `gorm:"primarykey" json:"id"`             // 主键
	Name        string    `gorm:"uniqueIndex;not null" json:"name"` // 角色名称
	Description string    `gorm:"type:text" json:"description"`     // 角色描述
	CreatedAt   time.Time `json:"created_at"`                       // 创建时间
	UpdatedAt   time.Time `json:"updated_at"`                       // 更新时间
}

// TableName 指定表名
func (Role) TableName() string {
	return "roles"
}
