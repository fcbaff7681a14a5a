package service

import (
	"context"
	"fmt"

	"github.com/myysophia/poa-backend/internal/db/models"
	"github.com/myysophia/poa-backend/internal/repository"
)

// PartnerService 客户权限关联
type PartnerService struct {
	partners    repository.PartnerRepository
	permissions repository.PermissionRepository
}

// NewPartnerService 创建客户服务
func NewPartnerService(partners repository.PartnerRepository, permissions repository.PermissionRepository) *PartnerService {
	return &PartnerService{
		partners:    partners,
		permissions: permissions,
	}
}

// ListPermissions 获取客户已授权的权限
func (s *PartnerService) ListPermissions(ctx context.Context, partnerID uint, lang string) ([]models.Permission, error) {
	if _, err := s.partners.FindByID(ctx, partnerID); err != nil {
		return nil, notFound(err, ResourcePartner, partnerID)
	}

	permissions, err := s.partners.ListPermissions(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	models.FillDisplayNames(permissions, lang)
	return permissions, nil
}

// ReplacePermissions 替换客户的权限集合
func (s *PartnerService) ReplacePermissions(ctx context.Context, partnerID uint, permissionIDs []uint, lang string) ([]models.Permission, error) {
	partner, err := s.partners.FindByID(ctx, partnerID)
	if err != nil {
		return nil, notFound(err, ResourcePartner, partnerID)
	}

	ids := uniqueIDs(permissionIDs)
	permissions, err := s.permissions.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("获取权限失败: %w", err)
	}

	have := make(map[uint]struct{}, len(permissions))
	for _, p := range permissions {
		have[p.ID] = struct{}{}
	}
	if missing := missingIDs(ids, have); len(missing) > 0 {
		return nil, &NotFoundError{Resource: ResourcePermission, IDs: missing}
	}

	if err := s.partners.ReplacePermissions(ctx, partner, permissions); err != nil {
		return nil, err
	}

	models.FillDisplayNames(permissions, lang)
	return permissions, nil
}
