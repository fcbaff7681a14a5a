package handlers

//go:generate mockgen -destination=mock_services_test.go -package=handlers -source=services.go

import (
	"context"

	"github.com/myysophia/poa-backend/internal/db/models"
	"github.com/myysophia/poa-backend/internal/service"
)

// PermissionService 权限处理器依赖的业务接口
type PermissionService interface {
	Create(ctx context.Context, in service.PermissionInput, lang string) (*models.Permission, error)
	CreateBatch(ctx context.Context, inputs []service.PermissionInput, lang string) ([]models.Permission, error)
	Update(ctx context.Context, id uint, in service.PermissionInput, lang string) (*models.Permission, error)
	Delete(ctx context.Context, id uint) error
	Get(ctx context.Context, id uint, lang string) (*models.Permission, error)
	List(ctx context.Context, opts service.ListOptions, lang string) ([]models.Permission, int64, error)
	NameGet(ctx context.Context, ids []uint, lang string) ([]models.NamePair, error)
	NameSearch(ctx context.Context, query string, limit int, lang string) ([]models.NamePair, error)
	ReplacePartners(ctx context.Context, id uint, partnerIDs []uint, lang string) (*models.Permission, error)
}

// PartnerService 客户处理器依赖的业务接口
type PartnerService interface {
	ListPermissions(ctx context.Context, partnerID uint, lang string) ([]models.Permission, error)
	ReplacePermissions(ctx context.Context, partnerID uint, permissionIDs []uint, lang string) ([]models.Permission, error)
}

// AuthService 认证处理器依赖的业务接口
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *models.User, error)
}
