package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/myysophia/poa-backend/internal/api/handlers"
	"github.com/myysophia/poa-backend/internal/api/middleware"
	"github.com/myysophia/poa-backend/internal/config"
	"github.com/myysophia/poa-backend/internal/repository"
	"github.com/myysophia/poa-backend/internal/service"
	"gorm.io/gorm"
)

// Services 路由依赖的业务服务
type Services struct {
	Auth        handlers.AuthService
	Permissions handlers.PermissionService
	Partners    handlers.PartnerService
	Users       repository.UserRepository
	AuditLogs   repository.AuditLogRepository
}

// NewServices 基于数据库连接组装业务服务
func NewServices(db *gorm.DB, cfg *config.Config) *Services {
	permissionRepo := repository.NewPermissionRepository(db)
	partnerRepo := repository.NewPartnerRepository(db)
	userRepo := repository.NewUserRepository(db)

	return &Services{
		Auth:        service.NewAuthService(userRepo, &cfg.JWT),
		Permissions: service.NewPermissionService(permissionRepo, partnerRepo),
		Partners:    service.NewPartnerService(partnerRepo, permissionRepo),
		Users:       userRepo,
		AuditLogs:   repository.NewAuditLogRepository(db),
	}
}

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, services *Services) *gin.Engine {
	router := gin.New()

	// 全局中间件
	router.Use(
		middleware.RequestIDMiddleware(),
		middleware.RecoveryMiddleware(),
		middleware.LoggerMiddleware(),
		middleware.CorsMiddleware(),
	)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authHandler := handlers.NewAuthHandler(services.Auth)
	permissionHandler := handlers.NewPermissionHandler(services.Permissions)
	partnerHandler := handlers.NewPartnerHandler(services.Partners)

	// 公开路由
	public := router.Group("/api/v1")
	public.Use(middleware.LocaleMiddleware(&cfg.Locale, nil))
	{
		public.POST("/auth/login", authHandler.Login)
	}

	// 需要认证的路由
	authorized := router.Group("/api/v1")
	authorized.Use(
		middleware.AuthMiddleware(&cfg.JWT),
		middleware.LocaleMiddleware(&cfg.Locale, services.Users),
		middleware.AuditLogMiddleware(services.AuditLogs),
	)
	{
		authorized.GET("/user/current", authHandler.GetCurrentUser)

		// 权限管理
		permissions := authorized.Group("/permissions")
		{
			permissions.GET("", permissionHandler.List)
			permissions.POST("", permissionHandler.Create)
			permissions.POST("/batch", permissionHandler.CreateBatch)
			permissions.GET("/name-get", permissionHandler.NameGet)
			permissions.GET("/name-search", permissionHandler.NameSearch)
			permissions.GET("/:id", permissionHandler.Get)
			permissions.PUT("/:id", permissionHandler.Update)
			permissions.DELETE("/:id", permissionHandler.Delete)
			permissions.PUT("/:id/partners", permissionHandler.ReplacePartners)
		}

		// 客户权限
		partners := authorized.Group("/partners")
		{
			partners.GET("/:id/permissions", partnerHandler.ListPermissions)
			partners.PUT("/:id/permissions", partnerHandler.ReplacePermissions)
		}
	}

	return router
}
