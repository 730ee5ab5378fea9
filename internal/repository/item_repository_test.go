package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/caffe-pos/internal/constants"
	"github.com/caffe-pos/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupItemRepositoryTest(t *testing.T) (*GormItemRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:item_repo_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Category{},
		&models.Item{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewItemRepository(db), db
}

func seedItemCategory(t *testing.T, db *gorm.DB, name string) models.Category {
	t.Helper()
	category := models.Category{Name: name, IsActive: true}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	return category
}

func TestItemRepositoryListFiltersByCategoryAndActive(t *testing.T) {
	repo, db := setupItemRepositoryTest(t)
	drinks := seedItemCategory(t, db, "Drinks")
	snacks := seedItemCategory(t, db, "Snacks")

	items := []models.Item{
		{Name: "Latte", Price: models.NewMoneyFromInt(28000), CategoryID: drinks.ID, IsActive: true},
		{Name: "Espresso", Price: models.NewMoneyFromInt(18000), CategoryID: drinks.ID, IsActive: false},
		{Name: "Croissant", Price: models.NewMoneyFromInt(22000), CategoryID: snacks.ID, IsActive: true},
	}
	for i := range items {
		if err := db.Create(&items[i]).Error; err != nil {
			t.Fatalf("create item failed: %v", err)
		}
	}

	active := true
	got, total, err := repo.List(ItemListFilter{Page: 1, PageSize: 10, CategoryID: drinks.ID, IsActive: &active})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected total 1, got %d", total)
	}
	if len(got) != 1 || got[0].Name != "Latte" {
		t.Fatalf("unexpected items: %+v", got)
	}
	if got[0].Category == nil || got[0].Category.Name != "Drinks" {
		t.Fatalf("expected category preloaded, got %+v", got[0].Category)
	}
}

func TestItemRepositoryListKeywordSearch(t *testing.T) {
	repo, db := setupItemRepositoryTest(t)
	drinks := seedItemCategory(t, db, "Drinks")

	items := []models.Item{
		{Name: "Cappuccino", Description: "with milk foam", Price: models.NewMoneyFromInt(30000), CategoryID: drinks.ID, IsActive: true},
		{Name: "Americano", Description: "black coffee", Price: models.NewMoneyFromInt(20000), CategoryID: drinks.ID, IsActive: true},
	}
	for i := range items {
		if err := db.Create(&items[i]).Error; err != nil {
			t.Fatalf("create item failed: %v", err)
		}
	}

	got, total, err := repo.List(ItemListFilter{Page: 1, PageSize: 10, Keyword: "milk"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || len(got) != 1 || got[0].Name != "Cappuccino" {
		t.Fatalf("keyword search mismatch: total=%d items=%+v", total, got)
	}

	// 关键字也命中分类名称
	got, total, err = repo.List(ItemListFilter{Page: 1, PageSize: 10, Keyword: "Drinks"})
	if err != nil {
		t.Fatalf("list by category keyword failed: %v", err)
	}
	if total != 2 || len(got) != 2 {
		t.Fatalf("category keyword should match both items, total=%d items=%d", total, len(got))
	}
}

func TestItemRepositorySortWhitelistFallsBackToName(t *testing.T) {
	clause := itemSortClause(ItemListFilter{SortBy: "password_hash", SortDesc: true})
	if clause != constants.ItemSortName+" DESC" {
		t.Fatalf("expected fallback to name sort, got %q", clause)
	}
	clause = itemSortClause(ItemListFilter{SortBy: constants.ItemSortPrice})
	if clause != constants.ItemSortPrice+" ASC" {
		t.Fatalf("expected price asc, got %q", clause)
	}
}

func TestItemRepositoryCountOrderItems(t *testing.T) {
	repo, db := setupItemRepositoryTest(t)
	drinks := seedItemCategory(t, db, "Drinks")

	item := models.Item{Name: "Latte", Price: models.NewMoneyFromInt(28000), CategoryID: drinks.ID, IsActive: true}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("create item failed: %v", err)
	}
	order := models.Order{Status: constants.OrderStatusPending}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	line := models.OrderItem{
		OrderID:     order.ID,
		ItemID:      item.ID,
		Quantity:    2,
		PriceAtSale: item.Price,
		Subtotal:    models.NewMoneyFromInt(56000),
	}
	if err := db.Create(&line).Error; err != nil {
		t.Fatalf("create order item failed: %v", err)
	}

	count, err := repo.CountOrderItems(item.ID)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected count 1, got %d", count)
	}
}
