package models

import "time"

// User 员工账号表
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`                         // 主键
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`         // 登录账号
	PasswordHash string    `gorm:"not null" json:"-"`                            // 密码哈希（不返回给前端）
	FullName     string    `gorm:"type:varchar(100)" json:"full_name"`           // 姓名
	Email        string    `gorm:"type:varchar(100)" json:"email"`               // 邮箱
	PhoneNumber  string    `gorm:"type:varchar(20)" json:"phone_number"`         // 电话
	RoleID       uint      `gorm:"index;not null" json:"role_id"`                // 角色ID
	IsActive     bool      `gorm:"not null;default:true;index" json:"is_active"` // 是否启用
	CreatedAt    time.Time `gorm:"index" json:"created_at"`                      // 创建时间
	UpdatedAt    time.Time `json:"updated_at"`                                   // 更新时间

	Role *Role `gorm:"foreignKey:RoleID" json:"role,omitempty"` // 角色
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
