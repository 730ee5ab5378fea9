package provider

import (
	"github.com/caffe-pos/internal/cache"
	"github.com/caffe-pos/internal/config"
	"github.com/caffe-pos/internal/logger"
	"github.com/caffe-pos/internal/models"
	"github.com/caffe-pos/internal/repository"
	"github.com/caffe-pos/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config *config.Config

	// Repositories
	CategoryRepo       repository.CategoryRepository
	ItemRepo           repository.ItemRepository
	OrderRepo          repository.OrderRepository
	PaymentRepo        repository.PaymentRepository
	UserRepo           repository.UserRepository
	RoleRepo           repository.RoleRepository
	PermissionRepo     repository.PermissionRepository
	RolePermissionRepo repository.RolePermissionRepository

	// Services
	AuthService           *service.AuthService
	CategoryService       *service.CategoryService
	ItemService           *service.ItemService
	OrderService          *service.OrderService
	PaymentService        *service.PaymentService
	UserService           *service.UserService
	RoleService           *service.RoleService
	PermissionService     *service.PermissionService
	RolePermissionService *service.RolePermissionService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	c := &Container{Config: cfg}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.ItemRepo = repository.NewItemRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.PaymentRepo = repository.NewPaymentRepository(db)
	c.UserRepo = repository.NewUserRepository(db)
	c.RoleRepo = repository.NewRoleRepository(db)
	c.PermissionRepo = repository.NewPermissionRepository(db)
	c.RolePermissionRepo = repository.NewRolePermissionRepository(db)
}

func (c *Container) initServices() {
	c.AuthService = service.NewAuthService(c.Config, c.UserRepo)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.ItemService = service.NewItemService(c.ItemRepo, c.CategoryRepo)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.ItemRepo)
	c.PaymentService = service.NewPaymentService(c.PaymentRepo, c.OrderRepo)
	c.UserService = service.NewUserService(c.UserRepo, c.RoleRepo, c.AuthService)
	c.RoleService = service.NewRoleService(c.RoleRepo, c.UserRepo)
	c.PermissionService = service.NewPermissionService(c.PermissionRepo)
	c.RolePermissionService = service.NewRolePermissionService(c.RolePermissionRepo, c.RoleRepo, c.PermissionRepo)
}
