package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/caffe-pos/internal/constants"
	"github.com/caffe-pos/internal/models"
	"github.com/caffe-pos/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupOrderServiceTest(t *testing.T) (*OrderService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:order_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
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
	return NewOrderService(repository.NewOrderRepository(db), repository.NewItemRepository(db)), db
}

func seedOrderTestItems(t *testing.T, db *gorm.DB) (models.Item, models.Item) {
	t.Helper()
	category := models.Category{Name: "Drinks", IsActive: true}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	latte := models.Item{Name: "Latte", Price: models.NewMoneyFromInt(50000), CategoryID: category.ID, IsActive: true}
	cake := models.Item{Name: "Cheesecake", Price: models.NewMoneyFromInt(30000), CategoryID: category.ID, IsActive: true}
	if err := db.Create(&latte).Error; err != nil {
		t.Fatalf("create latte failed: %v", err)
	}
	if err := db.Create(&cake).Error; err != nil {
		t.Fatalf("create cake failed: %v", err)
	}
	return latte, cake
}

func TestCreateOrderComputesTotalsWithDiscount(t *testing.T) {
	svc, _ := setupOrderServiceTest(t)
	latte, cake := seedOrderTestItems(t, models.DB)

	order, err := svc.CreateOrder(CreateOrderInput{
		CustomerName:    "Walk-in",
		DiscountPercent: models.NewMoneyFromInt(10),
		Items: []OrderItemInput{
			{ItemID: latte.ID, Quantity: 2},
			{ItemID: cake.ID, Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if !order.TotalAmount.Decimal.Equal(decimal.NewFromInt(130000)) {
		t.Fatalf("expected total 130000, got %s", order.TotalAmount)
	}
	if !order.FinalAmount.Decimal.Equal(decimal.NewFromInt(117000)) {
		t.Fatalf("expected final 117000, got %s", order.FinalAmount)
	}
	if order.Status != constants.OrderStatusPending {
		t.Fatalf("expected pending status, got %s", order.Status)
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected 2 order items, got %d", len(order.Items))
	}
	for _, line := range order.Items {
		if line.ItemID == latte.ID && !line.Subtotal.Decimal.Equal(decimal.NewFromInt(100000)) {
			t.Fatalf("latte subtotal mismatch: %s", line.Subtotal)
		}
	}
}

func TestCreateOrderRejectsEmptyItems(t *testing.T) {
	svc, _ := setupOrderServiceTest(t)

	if _, err := svc.CreateOrder(CreateOrderInput{CustomerName: "Walk-in"}); !errors.Is(err, ErrEmptyOrderItems) {
		t.Fatalf("expected ErrEmptyOrderItems, got %v", err)
	}
	if _, err := svc.CreateOrder(CreateOrderInput{
		Items: []OrderItemInput{{ItemID: 1, Quantity: 0}},
	}); !errors.Is(err, ErrInvalidOrderItem) {
		t.Fatalf("expected ErrInvalidOrderItem, got %v", err)
	}
}

func TestCreateOrderEnumeratesMissingItems(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	latte, _ := seedOrderTestItems(t, db)

	_, err := svc.CreateOrder(CreateOrderInput{
		Items: []OrderItemInput{
			{ItemID: latte.ID, Quantity: 1},
			{ItemID: 9001, Quantity: 1},
			{ItemID: 9002, Quantity: 1},
		},
	})
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "9001") || !strings.Contains(err.Error(), "9002") {
		t.Fatalf("expected missing ids in error, got %q", err.Error())
	}

	var orderCount int64
	if err := db.Model(&models.Order{}).Count(&orderCount).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if orderCount != 0 {
		t.Fatalf("expected no orders persisted, got %d", orderCount)
	}
}

func TestCreateOrderSnapshotSurvivesPriceChange(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	latte, _ := seedOrderTestItems(t, db)

	order, err := svc.CreateOrder(CreateOrderInput{
		Items: []OrderItemInput{{ItemID: latte.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	if err := db.Model(&models.Item{}).Where("id = ?", latte.ID).
		Update("price", decimal.NewFromInt(99000)).Error; err != nil {
		t.Fatalf("update price failed: %v", err)
	}

	reloaded, err := svc.Get(order.ID)
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if !reloaded.Items[0].PriceAtSale.Decimal.Equal(decimal.NewFromInt(50000)) {
		t.Fatalf("expected snapshot price 50000, got %s", reloaded.Items[0].PriceAtSale)
	}
	if !reloaded.TotalAmount.Decimal.Equal(decimal.NewFromInt(50000)) {
		t.Fatalf("expected total unchanged, got %s", reloaded.TotalAmount)
	}
}

func TestCreateOrderDiscountFloorsAtZero(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	latte, _ := seedOrderTestItems(t, db)

	order, err := svc.CreateOrder(CreateOrderInput{
		DiscountPercent: models.NewMoneyFromInt(150),
		Items:           []OrderItemInput{{ItemID: latte.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if !order.FinalAmount.Decimal.Equal(decimal.Zero) {
		t.Fatalf("expected final 0, got %s", order.FinalAmount)
	}
}

func TestUpdateStatusValidatesAgainstKnownSet(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	latte, _ := seedOrderTestItems(t, db)

	order, err := svc.CreateOrder(CreateOrderInput{
		Items: []OrderItemInput{{ItemID: latte.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	if _, err := svc.UpdateStatus(order.ID, "Bogus"); !errors.Is(err, ErrOrderStatusInvalid) {
		t.Fatalf("expected ErrOrderStatusInvalid, got %v", err)
	}

	updated, err := svc.UpdateStatus(order.ID, "cancelled")
	if err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	if updated.Status != constants.OrderStatusCancelled {
		t.Fatalf("expected normalized status Cancelled, got %s", updated.Status)
	}

	if _, err := svc.UpdateStatus(order.ID+100, constants.OrderStatusPaid); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestEditOrderReplacesItemsAndRecomputes(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	latte, cake := seedOrderTestItems(t, db)

	order, err := svc.CreateOrder(CreateOrderInput{
		Items: []OrderItemInput{{ItemID: latte.ID, Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	discount := models.NewMoneyFromInt(50)
	edited, err := svc.EditOrder(order.ID, EditOrderInput{
		DiscountPercent: &discount,
		Items:           []OrderItemInput{{ItemID: cake.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("edit order failed: %v", err)
	}
	if len(edited.Items) != 1 || edited.Items[0].ItemID != cake.ID {
		t.Fatalf("expected items replaced, got %+v", edited.Items)
	}
	if !edited.TotalAmount.Decimal.Equal(decimal.NewFromInt(30000)) {
		t.Fatalf("expected total 30000, got %s", edited.TotalAmount)
	}
	if !edited.FinalAmount.Decimal.Equal(decimal.NewFromInt(15000)) {
		t.Fatalf("expected final 15000, got %s", edited.FinalAmount)
	}

	var lineCount int64
	if err := db.Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&lineCount).Error; err != nil {
		t.Fatalf("count order items failed: %v", err)
	}
	if lineCount != 1 {
		t.Fatalf("expected 1 order item row, got %d", lineCount)
	}
}

func TestDeleteOrderCascades(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	latte, _ := seedOrderTestItems(t, db)

	order, err := svc.CreateOrder(CreateOrderInput{
		Items: []OrderItemInput{{ItemID: latte.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	now := time.Now()
	payment := models.Payment{OrderID: order.ID, PaymentDate: &now, Amount: order.FinalAmount, Method: "cash", TransactionID: "tx-cascade"}
	if err := db.Create(&payment).Error; err != nil {
		t.Fatalf("create payment failed: %v", err)
	}

	if err := svc.DeleteOrder(order.ID); err != nil {
		t.Fatalf("delete order failed: %v", err)
	}

	var orders, lines, payments int64
	db.Model(&models.Order{}).Count(&orders)
	db.Model(&models.OrderItem{}).Count(&lines)
	db.Model(&models.Payment{}).Count(&payments)
	if orders != 0 || lines != 0 || payments != 0 {
		t.Fatalf("expected full cascade, got orders=%d lines=%d payments=%d", orders, lines, payments)
	}
}
