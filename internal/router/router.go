package router

import (
	"fmt"
	"strings"

	"github.com/caffe-pos/internal/cache"
	"github.com/caffe-pos/internal/config"
	"github.com/caffe-pos/internal/http/handlers/api"
	"github.com/caffe-pos/internal/logger"
	"github.com/caffe-pos/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	handler := api.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "pos"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 认证接口
		auth := apiV1.Group("/auth")
		{
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("username")), handler.Login)
		}

		// 业务接口（需鉴权）
		protected := apiV1.Group("")
		protected.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.UserRepo))
		{
			protected.GET("/auth/me", handler.Me)
			protected.POST("/auth/change-password", handler.ChangePassword)

			protected.GET("/orders", handler.ListOrders)
			protected.GET("/orders/:id", handler.GetOrder)
			protected.POST("/orders", handler.CreateOrder)
			protected.PUT("/orders/:id", handler.EditOrder)
			protected.PATCH("/orders/:id/status", handler.UpdateOrderStatus)
			protected.DELETE("/orders/:id", handler.DeleteOrder)

			protected.POST("/payments/process-payment", handler.ProcessPayment)
			protected.GET("/payments", handler.ListPayments)
			protected.GET("/payments/:id", handler.GetPayment)
			protected.POST("/payments", handler.CreatePayment)
			protected.PUT("/payments/:id", handler.UpdatePayment)
			protected.DELETE("/payments/:id", handler.DeletePayment)

			protected.GET("/items", handler.ListItems)
			protected.GET("/items/:id", handler.GetItem)
			protected.POST("/items", handler.CreateItem)
			protected.PUT("/items/:id", handler.UpdateItem)
			protected.DELETE("/items/:id", handler.DeleteItem)

			protected.GET("/categories", handler.ListCategories)
			protected.GET("/categories/:id", handler.GetCategory)
			protected.POST("/categories", handler.CreateCategory)
			protected.PUT("/categories/:id", handler.UpdateCategory)
			protected.DELETE("/categories/:id", handler.DeleteCategory)

			protected.GET("/users", handler.ListUsers)
			protected.GET("/users/:id", handler.GetUser)
			protected.POST("/users", handler.CreateUser)
			protected.PUT("/users/:id", handler.UpdateUser)
			protected.DELETE("/users/:id", handler.DeleteUser)

			protected.GET("/roles", handler.ListRoles)
			protected.GET("/roles/:id", handler.GetRole)
			protected.POST("/roles", handler.CreateRole)
			protected.PUT("/roles/:id", handler.UpdateRole)
			protected.DELETE("/roles/:id", handler.DeleteRole)
			protected.GET("/roles/:id/permissions", handler.ListRolePermissions)
			protected.POST("/roles/:id/permissions", handler.GrantRolePermission)
			protected.DELETE("/roles/:id/permissions/:permission_id", handler.RevokeRolePermission)

			protected.GET("/permissions", handler.ListPermissions)
			protected.GET("/permissions/:id", handler.GetPermission)
			protected.POST("/permissions", handler.CreatePermission)
			protected.PUT("/permissions/:id", handler.UpdatePermission)
			protected.DELETE("/permissions/:id", handler.DeletePermission)
		}
	}

	return r
}
