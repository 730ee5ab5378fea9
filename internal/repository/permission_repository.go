package repository

import (
	"errors"
	"fmt"

	"github.com/caffe-pos/internal/models"

	"gorm.io/gorm"
)

// PermissionRepository 权限数据访问接口
type PermissionRepository interface {
	List(filter PermissionListFilter) ([]models.Permission, int64, error)
	GetByID(id uint) (*models.Permission, error)
	GetByName(name string) (*models.Permission, error)
	Create(permission *models.Permission) error
	Update(permission *models.Permission) error
	Delete(id uint) error
	CountGrants(permissionID uint) (int64, error)
}

// GormPermissionRepository GORM 实现
type GormPermissionRepository struct {
	db *gorm.DB
}

// NewPermissionRepository 创建权限仓库
func NewPermissionRepository(db *gorm.DB) *GormPermissionRepository {
	return &GormPermissionRepository{db: db}
}

// List 权限列表
func (r *GormPermissionRepository) List(filter PermissionListFilter) ([]models.Permission, int64, error) {
	query := r.db.Model(&models.Permission{})

	if filter.Module != "" {
		query = query.Where("module = ?", filter.Module)
	}
	if filter.Keyword != "" {
		like := "%" + filter.Keyword + "%"
		query = query.Where(fmt.Sprintf("name %s ?", likeOperator(r.db)), like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var permissions []models.Permission
	if err := query.Order("module ASC, name ASC").Find(&permissions).Error; err != nil {
		return nil, 0, err
	}
	return permissions, total, nil
}

// GetByID 根据 ID 获取权限
func (r *GormPermissionRepository) GetByID(id uint) (*models.Permission, error) {
	var permission models.Permission
	if err := r.db.First(&permission, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &permission, nil
}

// GetByName 根据名称获取权限
func (r *GormPermissionRepository) GetByName(name string) (*models.Permission, error) {
	var permission models.Permission
	if err := r.db.Where("name = ?", name).First(&permission).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &permission, nil
}

// Create 创建权限
func (r *GormPermissionRepository) Create(permission *models.Permission) error {
	return r.db.Create(permission).Error
}

// Update 更新权限
func (r *GormPermissionRepository) Update(permission *models.Permission) error {
	return r.db.Save(permission).Error
}

// Delete 删除权限
func (r *GormPermissionRepository) Delete(id uint) error {
	return r.db.Delete(&models.Permission{}, id).Error
}

// CountGrants 统计权限被角色授权的次数
func (r *GormPermissionRepository) CountGrants(permissionID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.RolePermission{}).Where("permission_id = ?", permissionID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
