package repository

import (
	"errors"

	"github.com/caffe-pos/internal/models"

	"gorm.io/gorm"
)

// RolePermissionRepository 角色授权数据访问接口
type RolePermissionRepository interface {
	ListByRole(roleID uint) ([]models.RolePermission, error)
	Get(roleID, permissionID uint) (*models.RolePermission, error)
	Create(grant *models.RolePermission) error
	Delete(roleID, permissionID uint) error
	DeleteByRole(roleID uint) error
	DeleteByPermission(permissionID uint) error
	WithTx(tx *gorm.DB) *GormRolePermissionRepository
}

// GormRolePermissionRepository GORM 实现
type GormRolePermissionRepository struct {
	db *gorm.DB
}

// NewRolePermissionRepository 创建角色授权仓库
func NewRolePermissionRepository(db *gorm.DB) *GormRolePermissionRepository {
	return &GormRolePermissionRepository{db: db}
}

// WithTx 绑定事务
func (r *GormRolePermissionRepository) WithTx(tx *gorm.DB) *GormRolePermissionRepository {
	if tx == nil {
		return r
	}
	return &GormRolePermissionRepository{db: tx}
}

// ListByRole 获取角色的全部授权，预加载权限详情
func (r *GormRolePermissionRepository) ListByRole(roleID uint) ([]models.RolePermission, error) {
	var grants []models.RolePermission
	if err := r.db.Preload("Permission").Where("role_id = ?", roleID).Order("id ASC").Find(&grants).Error; err != nil {
		return nil, err
	}
	return grants, nil
}

// Get 获取指定的角色授权
func (r *GormRolePermissionRepository) Get(roleID, permissionID uint) (*models.RolePermission, error) {
	var grant models.RolePermission
	err := r.db.Where("role_id = ? AND permission_id = ?", roleID, permissionID).First(&grant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &grant, nil
}

// Create 创建角色授权
func (r *GormRolePermissionRepository) Create(grant *models.RolePermission) error {
	return r.db.Create(grant).Error
}

// Delete 删除指定的角色授权
func (r *GormRolePermissionRepository) Delete(roleID, permissionID uint) error {
	return r.db.Where("role_id = ? AND permission_id = ?", roleID, permissionID).Delete(&models.RolePermission{}).Error
}

// DeleteByRole 删除角色的全部授权
func (r *GormRolePermissionRepository) DeleteByRole(roleID uint) error {
	return r.db.Where("role_id = ?", roleID).Delete(&models.RolePermission{}).Error
}

// DeleteByPermission 删除权限的全部授权
func (r *GormRolePermissionRepository) DeleteByPermission(permissionID uint) error {
	return r.db.Where("permission_id = ?", permissionID).Delete(&models.RolePermission{}).Error
}
