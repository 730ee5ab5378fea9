package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/caffe-pos/internal/constants"
	"github.com/caffe-pos/internal/models"
	"github.com/caffe-pos/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderService 订单业务服务
type OrderService struct {
	orderRepo repository.OrderRepository
	itemRepo  repository.ItemRepository
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository, itemRepo repository.ItemRepository) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		itemRepo:  itemRepo,
	}
}

// OrderItemInput 订单行输入
type OrderItemInput struct {
	ItemID   uint
	Quantity int
	Note     string
}

// CreateOrderInput 创建订单输入
type CreateOrderInput struct {
	CustomerName    string
	CustomerPhone   string
	UserID          uint
	DiscountPercent models.Money
	Notes           string
	Items           []OrderItemInput
}

// EditOrderInput 编辑订单输入，nil 字段表示不修改
type EditOrderInput struct {
	CustomerName    *string
	CustomerPhone   *string
	DiscountPercent *models.Money
	Notes           *string
	Items           []OrderItemInput // nil 表示保留原订单行
}

// List 订单列表
func (s *OrderService) List(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.List(filter)
}

// Get 订单详情
func (s *OrderService) Get(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// CreateOrder 创建订单：校验订单行、锁定成交价快照并原子落库。
func (s *OrderService) CreateOrder(input CreateOrderInput) (*models.Order, error) {
	if len(input.Items) == 0 {
		return nil, ErrEmptyOrderItems
	}
	for _, line := range input.Items {
		if line.ItemID == 0 || line.Quantity <= 0 {
			return nil, ErrInvalidOrderItem
		}
	}

	var order *models.Order
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)

		lines, total, err := s.buildOrderLines(tx, input.Items)
		if err != nil {
			return err
		}

		now := time.Now()
		order = &models.Order{
			CustomerName:    input.CustomerName,
			CustomerPhone:   input.CustomerPhone,
			UserID:          input.UserID,
			TotalAmount:     total,
			DiscountPercent: input.DiscountPercent,
			FinalAmount:     applyDiscount(total, input.DiscountPercent),
			Status:          constants.OrderStatusPending,
			Notes:           input.Notes,
			OrderDate:       &now,
		}
		return orderRepo.Create(order, lines)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(order.ID)
}

// buildOrderLines 批量查询商品并生成带价格快照的订单行。
func (s *OrderService) buildOrderLines(tx *gorm.DB, inputs []OrderItemInput) ([]models.OrderItem, models.Money, error) {
	itemRepo := s.itemRepo.WithTx(tx)

	ids := make([]uint, 0, len(inputs))
	seen := make(map[uint]struct{}, len(inputs))
	for _, line := range inputs {
		if _, ok := seen[line.ItemID]; ok {
			continue
		}
		seen[line.ItemID] = struct{}{}
		ids = append(ids, line.ItemID)
	}

	items, err := itemRepo.ListByIDs(ids)
	if err != nil {
		return nil, models.MoneyZero(), err
	}
	byID := make(map[uint]models.Item, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	var missing []uint
	for _, id := range ids {
		if _, ok := byID[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
		return nil, models.MoneyZero(), fmt.Errorf("%w: ids %v", ErrItemNotFound, missing)
	}

	total := decimal.Zero
	lines := make([]models.OrderItem, 0, len(inputs))
	for _, input := range inputs {
		item := byID[input.ItemID]
		subtotal := item.Price.Decimal.Mul(decimal.NewFromInt(int64(input.Quantity)))
		total = total.Add(subtotal)
		lines = append(lines, models.OrderItem{
			ItemID:      item.ID,
			Quantity:    input.Quantity,
			PriceAtSale: item.Price,
			Subtotal:    models.NewMoneyFromDecimal(subtotal),
			Note:        input.Note,
		})
	}
	return lines, models.NewMoneyFromDecimal(total), nil
}

// applyDiscount 按百分比折扣计算应付金额，结果不会低于零。
func applyDiscount(total models.Money, discountPercent models.Money) models.Money {
	discount := total.Decimal.Mul(discountPercent.Decimal).Div(decimal.NewFromInt(100))
	final := total.Decimal.Sub(discount)
	if final.IsNegative() {
		final = decimal.Zero
	}
	return models.NewMoneyFromDecimal(final)
}

// UpdateStatus 更新订单状态，状态值必须在已知集合内。
func (s *OrderService) UpdateStatus(id uint, status string) (*models.Order, error) {
	normalized, ok := constants.NormalizeOrderStatus(status)
	if !ok {
		return nil, ErrOrderStatusInvalid
	}

	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	if err := s.orderRepo.UpdateStatus(id, normalized, nil); err != nil {
		return nil, err
	}
	order.Status = normalized
	return order, nil
}

// EditOrder 编辑订单：可替换订单行并重算金额，整体在事务中完成。
func (s *OrderService) EditOrder(id uint, input EditOrderInput) (*models.Order, error) {
	if input.Items != nil {
		if len(input.Items) == 0 {
			return nil, ErrEmptyOrderItems
		}
		for _, line := range input.Items {
			if line.ItemID == 0 || line.Quantity <= 0 {
				return nil, ErrInvalidOrderItem
			}
		}
	}

	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)

		if input.CustomerName != nil {
			order.CustomerName = *input.CustomerName
		}
		if input.CustomerPhone != nil {
			order.CustomerPhone = *input.CustomerPhone
		}
		if input.Notes != nil {
			order.Notes = *input.Notes
		}
		if input.DiscountPercent != nil {
			order.DiscountPercent = *input.DiscountPercent
		}

		if input.Items != nil {
			lines, total, err := s.buildOrderLines(tx, input.Items)
			if err != nil {
				return err
			}
			if err := orderRepo.ReplaceItems(order.ID, lines); err != nil {
				return err
			}
			order.TotalAmount = total
		}
		order.FinalAmount = applyDiscount(order.TotalAmount, order.DiscountPercent)

		order.Items = nil
		order.Payments = nil
		return orderRepo.Update(order)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(id)
}

// DeleteOrder 删除订单，级联清理订单行与支付记录。
func (s *OrderService) DeleteOrder(id uint) error {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrOrderNotFound
	}

	return models.DB.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)
		if err := orderRepo.DeletePayments(id); err != nil {
			return err
		}
		if err := orderRepo.DeleteItems(id); err != nil {
			return err
		}
		return orderRepo.Delete(id)
	})
}
