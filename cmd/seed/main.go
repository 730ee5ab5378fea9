package main

import (
	"log"

	"github.com/caffe-pos/internal/config"
	"github.com/caffe-pos/internal/logger"
	"github.com/caffe-pos/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 默认角色与管理员
	if err := models.InitDefaultData(cfg.Admin.Username, cfg.Admin.Password); err != nil {
		stdLog.Fatalf("Failed to init default data: %v", err)
	}

	// 收银员角色
	cashier := ensureRole(stdLog, "Cashier", "Front counter operations")
	var admin models.Role
	if err := models.DB.Where("name = ?", "Admin").First(&admin).Error; err != nil {
		stdLog.Fatalf("Failed to load admin role: %v", err)
	}

	// 模块权限
	permissions := []models.Permission{
		{Name: "orders.manage", Description: "Create, edit and settle orders", Module: "orders"},
		{Name: "payments.manage", Description: "Record and adjust payments", Module: "payments"},
		{Name: "items.manage", Description: "Maintain menu items", Module: "items"},
		{Name: "categories.manage", Description: "Maintain item categories", Module: "categories"},
		{Name: "users.manage", Description: "Manage staff accounts", Module: "users"},
		{Name: "roles.manage", Description: "Manage roles and grants", Module: "roles"},
	}
	permissionIDs := map[string]uint{}
	for _, perm := range permissions {
		var existing models.Permission
		if err := models.DB.Where("name = ?", perm.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&perm).Error; err != nil {
				stdLog.Printf("Failed to create permission %s: %v", perm.Name, err)
				continue
			}
			stdLog.Printf("Created permission: %s", perm.Name)
			permissionIDs[perm.Name] = perm.ID
		} else {
			stdLog.Printf("Permission already exists: %s", existing.Name)
			permissionIDs[existing.Name] = existing.ID
		}
	}

	// 管理员获得全部权限，收银员仅限前台操作
	for name, id := range permissionIDs {
		ensureGrant(stdLog, admin.ID, id, name)
	}
	for _, name := range []string{"orders.manage", "payments.manage"} {
		if id, ok := permissionIDs[name]; ok && cashier != nil {
			ensureGrant(stdLog, cashier.ID, id, name)
		}
	}

	// 示例分类
	categories := []models.Category{
		{Name: "Coffee", Description: "Espresso based drinks", IsActive: true},
		{Name: "Tea", Description: "Hot and iced tea", IsActive: true},
		{Name: "Pastry", Description: "Baked goods", IsActive: true},
	}
	categoryIDs := map[string]uint{}
	for _, cat := range categories {
		var existing models.Category
		if err := models.DB.Where("name = ?", cat.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Printf("Failed to create category %s: %v", cat.Name, err)
				continue
			}
			stdLog.Printf("Created category: %s", cat.Name)
			categoryIDs[cat.Name] = cat.ID
		} else {
			stdLog.Printf("Category already exists: %s", existing.Name)
			categoryIDs[existing.Name] = existing.ID
		}
	}

	// 示例商品
	items := []models.Item{
		{
			Name:        "Espresso",
			Description: "Double shot",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(18000)),
			CategoryID:  categoryIDs["Coffee"],
			IsActive:    true,
		},
		{
			Name:        "Cappuccino",
			Description: "Espresso with steamed milk foam",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(25000)),
			CategoryID:  categoryIDs["Coffee"],
			IsActive:    true,
		},
		{
			Name:        "Jasmine Tea",
			Description: "Hot jasmine green tea",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(15000)),
			CategoryID:  categoryIDs["Tea"],
			IsActive:    true,
		},
		{
			Name:        "Croissant",
			Description: "Butter croissant, baked daily",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(22000)),
			CategoryID:  categoryIDs["Pastry"],
			IsActive:    true,
		},
	}
	for _, item := range items {
		if item.CategoryID == 0 {
			continue
		}
		var existing models.Item
		if err := models.DB.Where("name = ?", item.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&item).Error; err != nil {
				stdLog.Printf("Failed to create item %s: %v", item.Name, err)
			} else {
				stdLog.Printf("Created item: %s", item.Name)
			}
		} else {
			stdLog.Printf("Item already exists: %s", existing.Name)
		}
	}

	stdLog.Println("Seed completed")
}

func ensureRole(stdLog *log.Logger, name, description string) *models.Role {
	var existing models.Role
	if err := models.DB.Where("name = ?", name).First(&existing).Error; err == nil {
		stdLog.Printf("Role already exists: %s", name)
		return &existing
	}
	role := models.Role{Name: name, Description: description}
	if err := models.DB.Create(&role).Error; err != nil {
		stdLog.Printf("Failed to create role %s: %v", name, err)
		return nil
	}
	stdLog.Printf("Created role: %s", name)
	return &role
}

func ensureGrant(stdLog *log.Logger, roleID, permissionID uint, name string) {
	var existing models.RolePermission
	err := models.DB.Where("role_id = ? AND permission_id = ?", roleID, permissionID).First(&existing).Error
	if err == nil {
		return
	}
	grant := models.RolePermission{RoleID: roleID, PermissionID: permissionID}
	if err := models.DB.Create(&grant).Error; err != nil {
		stdLog.Printf("Failed to grant %s to role %d: %v", name, roleID, err)
		return
	}
	stdLog.Printf("Granted %s to role %d", name, roleID)
}
