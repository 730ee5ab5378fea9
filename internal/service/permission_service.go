package service

import (
	"strings"

	"github.com/caffe-pos/internal/models"
	"github.com/caffe-pos/internal/repository"
)

// PermissionService 权限管理服务
type PermissionService struct {
	repo repository.PermissionRepository
}

// NewPermissionService 创建权限管理服务
func NewPermissionService(repo repository.PermissionRepository) *PermissionService {
	return &PermissionService{repo: repo}
}

// PermissionInput 创建/更新权限输入
type PermissionInput struct {
	Name        string
	Description string
	Module      string
}

// List 权限列表
func (s *PermissionService) List(filter repository.PermissionListFilter) ([]models.Permission, int64, error) {
	return s.repo.List(filter)
}

// Get 权限详情
func (s *PermissionService) Get(id uint) (*models.Permission, error) {
	permission, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if permission == nil {
		return nil, ErrNotFound
	}
	return permission, nil
}

// Create 创建权限
func (s *PermissionService) Create(input PermissionInput) (*models.Permission, error) {
	name := strings.TrimSpace(input.Name)
	existing, err := s.repo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrNameExists
	}

	permission := models.Permission{
		Name:        name,
		Description: input.Description,
		Module:      strings.TrimSpace(input.Module),
	}
	if err := s.repo.Create(&permission); err != nil {
		return nil, err
	}
	return &permission, nil
}

// Update 更新权限
func (s *PermissionService) Update(id uint, input PermissionInput) (*models.Permission, error) {
	permission, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if permission == nil {
		return nil, ErrNotFound
	}

	name := strings.TrimSpace(input.Name)
	existing, err := s.repo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != id {
		return nil, ErrNameExists
	}

	permission.Name = name
	permission.Description = input.Description
	permission.Module = strings.TrimSpace(input.Module)
	if err := s.repo.Update(permission); err != nil {
		return nil, err
	}
	return permission, nil
}

// Delete 删除权限，已授权给角色的权限不许删除
func (s *PermissionService) Delete(id uint) error {
	permission, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if permission == nil {
		return ErrNotFound
	}

	count, err := s.repo.CountGrants(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrPermissionInUse
	}
	return s.repo.Delete(id)
}
