package service

import (
	"strings"

	"github.com/caffe-pos/internal/models"
	"github.com/caffe-pos/internal/repository"
)

// ItemService 商品业务服务
type ItemService struct {
	repo         repository.ItemRepository
	categoryRepo repository.CategoryRepository
}

// NewItemService 创建商品服务
func NewItemService(repo repository.ItemRepository, categoryRepo repository.CategoryRepository) *ItemService {
	return &ItemService{repo: repo, categoryRepo: categoryRepo}
}

// CreateItemInput 创建商品输入
type CreateItemInput struct {
	Name        string
	Description string
	Price       models.Money
	CategoryID  uint
	ImageURL    string
	IsActive    *bool
}

// UpdateItemInput 更新商品输入，nil 字段表示不修改
type UpdateItemInput struct {
	Name        *string
	Description *string
	Price       *models.Money
	CategoryID  *uint
	ImageURL    *string
	IsActive    *bool
}

// List 获取商品列表
func (s *ItemService) List(filter repository.ItemListFilter) ([]models.Item, int64, error) {
	return s.repo.List(filter)
}

// Get 获取商品详情
func (s *ItemService) Get(id uint) (*models.Item, error) {
	item, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}
	return item, nil
}

// Create 创建商品
func (s *ItemService) Create(input CreateItemInput) (*models.Item, error) {
	if input.CategoryID > 0 {
		category, err := s.categoryRepo.GetByID(input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, ErrNotFound
		}
	}

	item := models.Item{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Price:       input.Price,
		CategoryID:  input.CategoryID,
		ImageURL:    input.ImageURL,
		IsActive:    true,
	}
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}
	if err := s.repo.Create(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Update 更新商品，仅覆盖请求中出现的字段
func (s *ItemService) Update(id uint, input UpdateItemInput) (*models.Item, error) {
	item, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}

	if input.CategoryID != nil && *input.CategoryID > 0 {
		category, err := s.categoryRepo.GetByID(*input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, ErrNotFound
		}
		item.CategoryID = *input.CategoryID
	}
	if input.Name != nil {
		item.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Price != nil {
		item.Price = *input.Price
	}
	if input.ImageURL != nil {
		item.ImageURL = *input.ImageURL
	}
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}

	// Save 会连带 Category 关联写回，清掉避免覆盖
	item.Category = nil
	if err := s.repo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete 删除商品，已被订单引用的商品不允许删除
func (s *ItemService) Delete(id uint) error {
	item, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrNotFound
	}

	count, err := s.repo.CountOrderItems(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrItemInUse
	}
	return s.repo.Delete(id)
}
