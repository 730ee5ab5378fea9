package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/caffe-pos/internal/constants"
	"github.com/caffe-pos/internal/models"
	"github.com/caffe-pos/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupPaymentServiceTest(t *testing.T) (*PaymentService, *OrderService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:payment_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Category{},
		&models.Item{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db
	orderRepo := repository.NewOrderRepository(db)
	orderSvc := NewOrderService(orderRepo, repository.NewItemRepository(db))
	paymentSvc := NewPaymentService(repository.NewPaymentRepository(db), orderRepo)
	return paymentSvc, orderSvc, db
}

func seedPayableOrder(t *testing.T, orderSvc *OrderService, db *gorm.DB) *models.Order {
	t.Helper()
	category := models.Category{Name: "Drinks", IsActive: true}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	item := models.Item{Name: "Latte", Price: models.NewMoneyFromInt(65000), CategoryID: category.ID, IsActive: true}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("create item failed: %v", err)
	}

	order, err := orderSvc.CreateOrder(CreateOrderInput{
		CustomerName:    "Walk-in",
		DiscountPercent: models.NewMoneyFromInt(10),
		Items:           []OrderItemInput{{ItemID: item.ID, Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	// 130000 - 10% = 117000
	if !order.FinalAmount.Decimal.Equal(decimal.NewFromInt(117000)) {
		t.Fatalf("unexpected final amount %s", order.FinalAmount)
	}
	return order
}

func TestProcessPaymentComputesChangeAndSettles(t *testing.T) {
	paymentSvc, orderSvc, db := setupPaymentServiceTest(t)
	order := seedPayableOrder(t, orderSvc, db)

	result, err := paymentSvc.ProcessPayment(ProcessPaymentInput{
		OrderID: order.ID,
		Amount:  models.NewMoneyFromInt(120000),
		Method:  "cash",
	})
	if err != nil {
		t.Fatalf("process payment failed: %v", err)
	}
	if !result.Change.Decimal.Equal(decimal.NewFromInt(3000)) {
		t.Fatalf("expected change 3000, got %s", result.Change)
	}
	if !result.TotalAmountDue.Decimal.Equal(decimal.NewFromInt(117000)) {
		t.Fatalf("expected due 117000, got %s", result.TotalAmountDue)
	}

	reloaded, err := orderSvc.Get(order.ID)
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if reloaded.Status != constants.OrderStatusPaid {
		t.Fatalf("expected status Paid, got %s", reloaded.Status)
	}

	var payments []models.Payment
	if err := db.Where("order_id = ?", order.ID).Find(&payments).Error; err != nil {
		t.Fatalf("load payments failed: %v", err)
	}
	if len(payments) != 1 {
		t.Fatalf("expected 1 payment row, got %d", len(payments))
	}
	if payments[0].TransactionID == "" {
		t.Fatalf("expected generated transaction id")
	}
}

func TestProcessPaymentRejectsInsufficientAmount(t *testing.T) {
	paymentSvc, orderSvc, db := setupPaymentServiceTest(t)
	order := seedPayableOrder(t, orderSvc, db)

	_, err := paymentSvc.ProcessPayment(ProcessPaymentInput{
		OrderID: order.ID,
		Amount:  models.NewMoneyFromInt(100000),
		Method:  "cash",
	})
	if !errors.Is(err, ErrInsufficientPayment) {
		t.Fatalf("expected ErrInsufficientPayment, got %v", err)
	}

	var paymentCount int64
	db.Model(&models.Payment{}).Count(&paymentCount)
	if paymentCount != 0 {
		t.Fatalf("expected no payment rows, got %d", paymentCount)
	}
	reloaded, _ := orderSvc.Get(order.ID)
	if reloaded.Status != constants.OrderStatusPending {
		t.Fatalf("expected status unchanged, got %s", reloaded.Status)
	}
}

func TestProcessPaymentRejectsSettledOrder(t *testing.T) {
	paymentSvc, orderSvc, db := setupPaymentServiceTest(t)
	order := seedPayableOrder(t, orderSvc, db)

	if _, err := paymentSvc.ProcessPayment(ProcessPaymentInput{
		OrderID: order.ID,
		Amount:  models.NewMoneyFromInt(117000),
		Method:  "cash",
	}); err != nil {
		t.Fatalf("first payment failed: %v", err)
	}

	_, err := paymentSvc.ProcessPayment(ProcessPaymentInput{
		OrderID: order.ID,
		Amount:  models.NewMoneyFromInt(117000),
		Method:  "cash",
	})
	if !errors.Is(err, ErrOrderAlreadyPaid) {
		t.Fatalf("expected ErrOrderAlreadyPaid, got %v", err)
	}

	var paymentCount int64
	db.Model(&models.Payment{}).Count(&paymentCount)
	if paymentCount != 1 {
		t.Fatalf("expected single payment row, got %d", paymentCount)
	}
}

func TestProcessPaymentOrderNotFound(t *testing.T) {
	paymentSvc, _, _ := setupPaymentServiceTest(t)

	_, err := paymentSvc.ProcessPayment(ProcessPaymentInput{
		OrderID: 4242,
		Amount:  models.NewMoneyFromInt(1000),
		Method:  "cash",
	})
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestPaymentCreateKeepsOrderStatus(t *testing.T) {
	paymentSvc, orderSvc, _ := setupPaymentServiceTest(t)
	order := seedPayableOrder(t, orderSvc, models.DB)

	payment, err := paymentSvc.Create(CreatePaymentInput{
		OrderID: order.ID,
		Amount:  models.NewMoneyFromInt(50000),
		Method:  "transfer",
		Notes:   "partial deposit",
	})
	if err != nil {
		t.Fatalf("create payment failed: %v", err)
	}
	if payment.TransactionID == "" {
		t.Fatalf("expected generated transaction id")
	}

	reloaded, _ := orderSvc.Get(order.ID)
	if reloaded.Status != constants.OrderStatusPending {
		t.Fatalf("manual payment must not settle order, got status %s", reloaded.Status)
	}
}
