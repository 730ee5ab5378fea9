package service

import (
	"time"

	"github.com/caffe-pos/internal/constants"
	"github.com/caffe-pos/internal/models"
	"github.com/caffe-pos/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentService 支付业务服务
type PaymentService struct {
	paymentRepo repository.PaymentRepository
	orderRepo   repository.OrderRepository
}

// NewPaymentService 创建支付服务
func NewPaymentService(paymentRepo repository.PaymentRepository, orderRepo repository.OrderRepository) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
	}
}

// ProcessPaymentInput 柜台收款输入
type ProcessPaymentInput struct {
	OrderID uint
	Amount  models.Money
	Method  string
	Notes   string
}

// ProcessPaymentResult 柜台收款结果，含找零金额
type ProcessPaymentResult struct {
	PaymentID      uint         `json:"payment_id"`
	OrderID        uint         `json:"order_id"`
	TotalAmountDue models.Money `json:"total_amount_due"`
	AmountPaid     models.Money `json:"amount_paid"`
	Change         models.Money `json:"change"`
	Message        string       `json:"message"`
}

// CreatePaymentInput 手工补录支付记录输入
type CreatePaymentInput struct {
	OrderID       uint
	Amount        models.Money
	Method        string
	TransactionID string
	Notes         string
	PaymentDate   *time.Time
}

// UpdatePaymentInput 更新支付记录输入，nil 字段表示不修改
type UpdatePaymentInput struct {
	Amount *models.Money
	Method *string
	Notes  *string
}

// ProcessPayment 柜台收款：在事务内复核订单状态、记账并把订单置为已支付。
func (s *PaymentService) ProcessPayment(input ProcessPaymentInput) (*ProcessPaymentResult, error) {
	var result *ProcessPaymentResult
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)
		paymentRepo := s.paymentRepo.WithTx(tx)

		order, err := orderRepo.GetByID(input.OrderID)
		if err != nil {
			return err
		}
		if order == nil {
			return ErrOrderNotFound
		}
		// 状态在事务内复核，避免并发下重复收款
		if order.Status == constants.OrderStatusPaid || order.Status == constants.OrderStatusCompleted {
			return ErrOrderAlreadyPaid
		}
		if input.Amount.Decimal.LessThan(order.FinalAmount.Decimal) {
			return ErrInsufficientPayment
		}

		now := time.Now()
		payment := models.Payment{
			OrderID:       order.ID,
			PaymentDate:   &now,
			Amount:        input.Amount,
			Method:        input.Method,
			TransactionID: uuid.NewString(),
			Notes:         input.Notes,
		}
		if err := paymentRepo.Create(&payment); err != nil {
			return err
		}
		if err := orderRepo.UpdateStatus(order.ID, constants.OrderStatusPaid, nil); err != nil {
			return err
		}

		change := input.Amount.Decimal.Sub(order.FinalAmount.Decimal)
		result = &ProcessPaymentResult{
			PaymentID:      payment.ID,
			OrderID:        order.ID,
			TotalAmountDue: order.FinalAmount,
			AmountPaid:     input.Amount,
			Change:         models.NewMoneyFromDecimal(change),
			Message:        "payment processed",
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// List 支付记录列表
func (s *PaymentService) List(filter repository.PaymentListFilter) ([]models.Payment, int64, error) {
	return s.paymentRepo.List(filter)
}

// Get 支付记录详情
func (s *PaymentService) Get(id uint) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}
	return payment, nil
}

// Create 手工补录支付记录，不变更订单状态
func (s *PaymentService) Create(input CreatePaymentInput) (*models.Payment, error) {
	order, err := s.orderRepo.GetByID(input.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	transactionID := input.TransactionID
	if transactionID == "" {
		transactionID = uuid.NewString()
	}
	paymentDate := input.PaymentDate
	if paymentDate == nil {
		now := time.Now()
		paymentDate = &now
	}

	payment := models.Payment{
		OrderID:       input.OrderID,
		PaymentDate:   paymentDate,
		Amount:        input.Amount,
		Method:        input.Method,
		TransactionID: transactionID,
		Notes:         input.Notes,
	}
	if err := s.paymentRepo.Create(&payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// Update 更新支付记录
func (s *PaymentService) Update(id uint, input UpdatePaymentInput) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}

	if input.Amount != nil {
		payment.Amount = *input.Amount
	}
	if input.Method != nil {
		payment.Method = *input.Method
	}
	if input.Notes != nil {
		payment.Notes = *input.Notes
	}

	if err := s.paymentRepo.Update(payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// Delete 删除支付记录
func (s *PaymentService) Delete(id uint) error {
	payment, err := s.paymentRepo.GetByID(id)
	if err != nil {
		return err
	}
	if payment == nil {
		return ErrPaymentNotFound
	}
	return s.paymentRepo.Delete(id)
}
