package service

import (
	"context"
	"strings"

	"github.com/caffe-pos/internal/cache"
	"github.com/caffe-pos/internal/models"
	"github.com/caffe-pos/internal/repository"
)

// UserService 用户管理服务
type UserService struct {
	repo     repository.UserRepository
	roleRepo repository.RoleRepository
	auth     *AuthService
}

// NewUserService 创建用户管理服务
func NewUserService(repo repository.UserRepository, roleRepo repository.RoleRepository, auth *AuthService) *UserService {
	return &UserService{repo: repo, roleRepo: roleRepo, auth: auth}
}

// CreateUserInput 创建用户输入
type CreateUserInput struct {
	Username    string
	Password    string
	FullName    string
	Email       string
	PhoneNumber string
	RoleID      uint
	IsActive    *bool
}

// UpdateUserInput 更新用户输入，nil 字段表示不修改
type UpdateUserInput struct {
	Password    *string
	FullName    *string
	Email       *string
	PhoneNumber *string
	RoleID      *uint
	IsActive    *bool
}

// List 用户列表
func (s *UserService) List(filter repository.UserListFilter) ([]models.User, int64, error) {
	return s.repo.List(filter)
}

// Get 用户详情
func (s *UserService) Get(id uint) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// Create 创建用户
func (s *UserService) Create(input CreateUserInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	count, err := s.repo.CountByUsername(username, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUsernameExists
	}

	role, err := s.roleRepo.GetByID(input.RoleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, ErrRoleNotFound
	}

	if err := s.auth.ValidatePassword(input.Password); err != nil {
		return nil, err
	}
	hash, err := s.auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:     username,
		PasswordHash: hash,
		FullName:     input.FullName,
		Email:        input.Email,
		PhoneNumber:  input.PhoneNumber,
		RoleID:       input.RoleID,
		IsActive:     true,
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	if err := s.repo.Create(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Update 更新用户，仅覆盖请求中出现的字段
func (s *UserService) Update(id uint, input UpdateUserInput) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	if input.RoleID != nil {
		role, err := s.roleRepo.GetByID(*input.RoleID)
		if err != nil {
			return nil, err
		}
		if role == nil {
			return nil, ErrRoleNotFound
		}
		user.RoleID = *input.RoleID
	}
	if input.Password != nil {
		if err := s.auth.ValidatePassword(*input.Password); err != nil {
			return nil, err
		}
		hash, err := s.auth.HashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.PhoneNumber != nil {
		user.PhoneNumber = *input.PhoneNumber
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	user.Role = nil
	if err := s.repo.Update(user); err != nil {
		return nil, err
	}
	// 鉴权快照随用户变更一并失效
	_ = cache.DelUserAuthState(context.Background(), id)
	return user, nil
}

// Delete 删除用户
func (s *UserService) Delete(id uint) error {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	_ = cache.DelUserAuthState(context.Background(), id)
	return nil
}
