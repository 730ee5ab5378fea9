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

func setupItemServiceTest(t *testing.T) (*ItemService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:item_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Item{}, &models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewItemService(repository.NewItemRepository(db), repository.NewCategoryRepository(db)), db
}

func TestItemCreateRequiresExistingCategory(t *testing.T) {
	svc, db := setupItemServiceTest(t)

	_, err := svc.Create(CreateItemInput{Name: "Latte", Price: models.NewMoneyFromInt(28000), CategoryID: 77})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing category, got %v", err)
	}

	category := models.Category{Name: "Drinks", IsActive: true}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	item, err := svc.Create(CreateItemInput{Name: "Latte", Price: models.NewMoneyFromInt(28000), CategoryID: category.ID})
	if err != nil {
		t.Fatalf("create item failed: %v", err)
	}
	if !item.IsActive {
		t.Fatalf("expected item active by default")
	}
}

func TestItemUpdateOnlyProvidedFields(t *testing.T) {
	svc, db := setupItemServiceTest(t)

	category := models.Category{Name: "Drinks", IsActive: true}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	item, err := svc.Create(CreateItemInput{
		Name:        "Latte",
		Description: "house blend",
		Price:       models.NewMoneyFromInt(28000),
		CategoryID:  category.ID,
	})
	if err != nil {
		t.Fatalf("create item failed: %v", err)
	}

	price := models.NewMoneyFromInt(32000)
	updated, err := svc.Update(item.ID, UpdateItemInput{Price: &price})
	if err != nil {
		t.Fatalf("update item failed: %v", err)
	}
	if !updated.Price.Decimal.Equal(decimal.NewFromInt(32000)) {
		t.Fatalf("expected price updated, got %s", updated.Price)
	}
	if updated.Name != "Latte" || updated.Description != "house blend" || updated.CategoryID != category.ID {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestItemDeleteBlockedWhenReferencedByOrder(t *testing.T) {
	svc, db := setupItemServiceTest(t)

	category := models.Category{Name: "Drinks", IsActive: true}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	item, err := svc.Create(CreateItemInput{Name: "Latte", Price: models.NewMoneyFromInt(28000), CategoryID: category.ID})
	if err != nil {
		t.Fatalf("create item failed: %v", err)
	}

	order := models.Order{Status: constants.OrderStatusPending}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	line := models.OrderItem{OrderID: order.ID, ItemID: item.ID, Quantity: 1, PriceAtSale: item.Price, Subtotal: item.Price}
	if err := db.Create(&line).Error; err != nil {
		t.Fatalf("create order item failed: %v", err)
	}

	if err := svc.Delete(item.ID); !errors.Is(err, ErrItemInUse) {
		t.Fatalf("expected ErrItemInUse, got %v", err)
	}
}
