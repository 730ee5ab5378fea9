package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/caffe-pos/internal/models"
	"github.com/caffe-pos/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupCategoryServiceTest(t *testing.T) (*CategoryService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:category_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Item{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewCategoryService(repository.NewCategoryRepository(db)), db
}

func TestCategoryCreateRejectsDuplicateName(t *testing.T) {
	svc, _ := setupCategoryServiceTest(t)

	if _, err := svc.Create(CreateCategoryInput{Name: "Drinks"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(CreateCategoryInput{Name: " Drinks "}); !errors.Is(err, ErrNameExists) {
		t.Fatalf("expected ErrNameExists, got %v", err)
	}
}

func TestCategoryUpdateOnlyProvidedFields(t *testing.T) {
	svc, _ := setupCategoryServiceTest(t)

	category, err := svc.Create(CreateCategoryInput{Name: "Drinks", Description: "hot and cold"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	inactive := false
	updated, err := svc.Update(category.ID, UpdateCategoryInput{IsActive: &inactive})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "Drinks" || updated.Description != "hot and cold" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
	if updated.IsActive {
		t.Fatalf("expected is_active false")
	}
}

func TestCategoryDeleteBlockedWhenItemsAttached(t *testing.T) {
	svc, db := setupCategoryServiceTest(t)

	category, err := svc.Create(CreateCategoryInput{Name: "Drinks"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	item := models.Item{Name: "Latte", Price: models.NewMoneyFromInt(28000), CategoryID: category.ID, IsActive: true}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("create item failed: %v", err)
	}

	if err := svc.Delete(category.ID); !errors.Is(err, ErrCategoryInUse) {
		t.Fatalf("expected ErrCategoryInUse, got %v", err)
	}

	if err := db.Delete(&models.Item{}, item.ID).Error; err != nil {
		t.Fatalf("delete item failed: %v", err)
	}
	if err := svc.Delete(category.ID); err != nil {
		t.Fatalf("delete category failed: %v", err)
	}
	if err := svc.Delete(category.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
