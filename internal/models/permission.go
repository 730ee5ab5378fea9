package models

import "time"

// Permission 权限表
type Permission struct {
	ID          uint      `gorm:"primarykey" json:"id"`          // 主键
	Name        string    `gorm:"index;not null" json:"name"`    // 权限名称
	Description string    `gorm:"type:text" json:"description"`  // 权限描述
	Module      string    `gorm:"index;not null" json:"module"`  // 所属功能模块
	CreatedAt   time.Time `json:"created_at"`                    // 创建时间
	UpdatedAt   time.Time `json:"updated_at"`                    // 更新时间
}

// TableName 指定表名
func (Permission) TableName() string {
	return "permissions"
}
