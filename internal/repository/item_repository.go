package repository

import (
	"errors"
	"fmt"

	"github.com/caffe-pos/internal/constants"
	"github.com/caffe-pos/internal/models"

	"gorm.io/gorm"
)

// ItemRepository 商品数据访问接口
type ItemRepository interface {
	List(filter ItemListFilter) ([]models.Item, int64, error)
	GetByID(id uint) (*models.Item, error)
	ListByIDs(ids []uint) ([]models.Item, error)
	Create(item *models.Item) error
	Update(item *models.Item) error
	Delete(id uint) error
	CountOrderItems(itemID uint) (int64, error)
	WithTx(tx *gorm.DB) *GormItemRepository
}

// GormItemRepository GORM 实现
type GormItemRepository struct {
	db *gorm.DB
}

// NewItemRepository 创建商品仓库
func NewItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// WithTx 绑定事务
func (r *GormItemRepository) WithTx(tx *gorm.DB) *GormItemRepository {
	if tx == nil {
		return r
	}
	return &GormItemRepository{db: tx}
}

// List 商品列表，支持关键字、分类、上架状态过滤与白名单排序
func (r *GormItemRepository) List(filter ItemListFilter) ([]models.Item, int64, error) {
	query := r.db.Model(&models.Item{})

	if filter.Keyword != "" {
		like := "%" + filter.Keyword + "%"
		op := likeOperator(r.db)
		categoryMatch := r.db.Model(&models.Category{}).Select("id").
			Where(fmt.Sprintf("name %s ?", op), like)
		query = query.Where(
			fmt.Sprintf("name %s ? OR description %s ? OR category_id IN (?)", op, op),
			like, like, categoryMatch,
		)
	}
	if filter.CategoryID > 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var items []models.Item
	if err := query.Order(itemSortClause(filter)).Preload("Category").Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// itemSortClause 按白名单决定排序列，非法值回落到名称排序。
func itemSortClause(filter ItemListFilter) string {
	column := constants.ItemSortName
	switch filter.SortBy {
	case constants.ItemSortPrice, constants.ItemSortCreatedAt:
		column = filter.SortBy
	}
	if filter.SortDesc {
		return column + " DESC"
	}
	return column + " ASC"
}

// GetByID 根据 ID 获取商品
func (r *GormItemRepository) GetByID(id uint) (*models.Item, error) {
	var item models.Item
	if err := r.db.Preload("Category").First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// ListByIDs 批量获取商品
func (r *GormItemRepository) ListByIDs(ids []uint) ([]models.Item, error) {
	if len(ids) == 0 {
		return []models.Item{}, nil
	}
	var items []models.Item
	if err := r.db.Where("id IN ?", ids).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Create 创建商品
func (r *GormItemRepository) Create(item *models.Item) error {
	return r.db.Create(item).Error
}

// Update 更新商品
func (r *GormItemRepository) Update(item *models.Item) error {
	return r.db.Save(item).Error
}

// Delete 删除商品
func (r *GormItemRepository) Delete(id uint) error {
	return r.db.Delete(&models.Item{}, id).Error
}

// CountOrderItems 统计商品被订单行引用的次数
func (r *GormItemRepository) CountOrderItems(itemID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.OrderItem{}).Where("item_id = ?", itemID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
