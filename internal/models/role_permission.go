package models

import "time"

// RolePermission 角色权限关联表
type RolePermission struct {
	ID           uint      `gorm:"primarykey" json:"id"`                                              // 主键
	RoleID       uint      `gorm:"index:idx_role_permission,unique;not null" json:"role_id"`          // 角色ID
	PermissionID uint      `gorm:"index:idx_role_permission,unique;not null" json:"permission_id"`    // 权限ID
	CreatedAt    time.Time `json:"created_at"`                                                        // 创建时间

	Role       *Role       `gorm:"foreignKey:RoleID" json:"role,omitempty"`             // 角色
	Permission *Permission `gorm:"foreignKey:PermissionID" json:"permission,omitempty"` // 权限
}

// TableName 指定表名
func (RolePermission) TableName() string {
	return "role_permissions"
}
