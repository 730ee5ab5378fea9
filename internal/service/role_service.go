package service

import (
	"strings"

	"github.com/caffe-pos/internal/models"
	"github.com/caffe-pos/internal/repository"
)

// RoleService 角色管理服务
type RoleService struct {
	repo     repository.RoleRepository
	userRepo repository.UserRepository
}

// NewRoleService 创建角色管理服务
func NewRoleService(repo repository.RoleRepository, userRepo repository.UserRepository) *RoleService {
	return &RoleService{repo: repo, userRepo: userRepo}
}

// RoleInput 创建/更新角色输入
type RoleInput struct {
	Name        string
	Description string
}

// List 角色列表
func (s *RoleService) List() ([]models.Role, error) {
	return s.repo.List()
}

// Get 角色详情
func (s *RoleService) Get(id uint) (*models.Role, error) {
	role, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, ErrNotFound
	}
	return role, nil
}

// Create 创建角色
func (s *RoleService) Create(input RoleInput) (*models.Role, error) {
	name := strings.TrimSpace(input.Name)
	count, err := s.repo.CountByName(name, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrNameExists
	}

	role := models.Role{
		Name:        name,
		Description: input.Description,
	}
	if err := s.repo.Create(&role); err != nil {
		return nil, err
	}
	return &role, nil
}

// Update 更新角色
func (s *RoleService) Update(id uint, input RoleInput) (*models.Role, error) {
	role, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, ErrNotFound
	}

	name := strings.TrimSpace(input.Name)
	count, err := s.repo.CountByName(name, &id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrNameExists
	}

	role.Name = name
	role.Description = input.Description
	if err := s.repo.Update(role); err != nil {
		return nil, err
	}
	return role, nil
}

// Delete 删除角色，已分配用户的角色不许删除
func (s *RoleService) Delete(id uint) error {
	role, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if role == nil {
		return ErrNotFound
	}

	count, err := s.userRepo.CountByRole(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrRoleInUse
	}
	return s.repo.Delete(id)
}
