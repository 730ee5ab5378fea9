package service

import (
	"github.com/caffe-pos/internal/models"
	"github.com/caffe-pos/internal/repository"
)

// RolePermissionService 角色授权服务
type RolePermissionService struct {
	repo           repository.RolePermissionRepository
	roleRepo       repository.RoleRepository
	permissionRepo repository.PermissionRepository
}

// NewRolePermissionService 创建角色授权服务
func NewRolePermissionService(
	repo repository.RolePermissionRepository,
	roleRepo repository.RoleRepository,
	permissionRepo repository.PermissionRepository,
) *RolePermissionService {
	return &RolePermissionService{
		repo:           repo,
		roleRepo:       roleRepo,
		permissionRepo: permissionRepo,
	}
}

// ListByRole 获取角色的授权列表
func (s *RolePermissionService) ListByRole(roleID uint) ([]models.RolePermission, error) {
	role, err := s.roleRepo.GetByID(roleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, ErrRoleNotFound
	}
	return s.repo.ListByRole(roleID)
}

// Grant 给角色授权
func (s *RolePermissionService) Grant(roleID, permissionID uint) (*models.RolePermission, error) {
	role, err := s.roleRepo.GetByID(roleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, ErrRoleNotFound
	}
	permission, err := s.permissionRepo.GetByID(permissionID)
	if err != nil {
		return nil, err
	}
	if permission == nil {
		return nil, ErrPermissionNotFound
	}

	existing, err := s.repo.Get(roleID, permissionID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrRolePermissionExists
	}

	grant := models.RolePermission{
		RoleID:       roleID,
		PermissionID: permissionID,
	}
	if err := s.repo.Create(&grant); err != nil {
		return nil, err
	}
	return &grant, nil
}

// Revoke 撤销角色授权
func (s *RolePermissionService) Revoke(roleID, permissionID uint) error {
	existing, err := s.repo.Get(roleID, permissionID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrRolePermissionNotFound
	}
	return s.repo.Delete(roleID, permissionID)
}
