package models

import (
	"errors"

	"github.com/caffe-pos/internal/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// InitDefaultData 初始化默认角色与管理员账号
// 仅在空库时创建，保证新部署可以直接登录后台。
func InitDefaultData(username, password string) error {
	role, err := ensureAdminRole()
	if err != nil {
		return err
	}

	var count int64
	DB.Model(&User{}).Count(&count)
	if count > 0 {
		return nil
	}

	if username == "" {
		username = "admin"
	}
	if password == "" {
		password = "admin123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := User{
		Username:     username,
		PasswordHash: string(hash),
		FullName:     "Administrator",
		RoleID:       role.ID,
		IsActive:     true,
	}
	if err := DB.Create(&user).Error; err != nil {
		return err
	}

	if password == "admin123" {
		logger.Warnw("default_admin_created_with_default_password", "username", username)
		logger.Warnw("default_admin_password_change_required", "username", username)
	} else {
		logger.Warnw("default_admin_created", "username", username, "password_hidden", true)
	}
	return nil
}

func ensureAdminRole() (*Role, error) {
	var role Role
	err := DB.Where("name = ?", "Admin").First(&role).Error
	if err == nil {
		return &role, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	role = Role{Name: "Admin", Description: "Full access"}
	if err := DB.Create(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}
