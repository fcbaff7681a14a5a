package repository

import (
	"context"
	"fmt"

	"github.com/myysophia/poa-backend/internal/db/models"
	"gorm.io/gorm"
)

// PartnerRepository 客户仓储
type PartnerRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Partner, error)
	FindByIDs(ctx context.Context, ids []uint) ([]models.Partner, error)
	ListPermissions(ctx context.Context, partnerID uint) ([]models.Permission, error)
	ReplacePermissions(ctx context.Context, partner *models.Partner, permissions []models.Permission) error
}

type partnerRepository struct {
	db *gorm.DB
}

// NewPartnerRepository 创建客户仓储
func NewPartnerRepository(db *gorm.DB) PartnerRepository {
	return &partnerRepository{db: db}
}

func (r *partnerRepository) FindByID(ctx context.Context, id uint) (*models.Partner, error) {
	var partner models.Partner
	if err := r.db.WithContext(ctx).First(&partner, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &partner, nil
}

func (r *partnerRepository) FindByIDs(ctx context.Context, ids []uint) ([]models.Partner, error) {
	var partners []models.Partner
	if len(ids) == 0 {
		return partners, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&partners).Error; err != nil {
		return nil, translateError(err)
	}
	return partners, nil
}

func (r *partnerRepository) ListPermissions(ctx context.Context, partnerID uint) ([]models.Permission, error) {
	var permissions []models.Permission
	err := r.db.WithContext(ctx).
		Joins("JOIN "+models.PermissionPartnerTable+" rel ON rel.permission_id = poa_permissions.id").
		Where("rel.partner_id = ?", partnerID).
		Order("poa_permissions.name_en, poa_permissions.id").
		Find(&permissions).Error
	if err != nil {
		return nil, fmt.Errorf("获取客户权限失败: %w", err)
	}
	return permissions, nil
}

func (r *partnerRepository) ReplacePermissions(ctx context.Context, partner *models.Partner, permissions []models.Permission) error {
	refs := make([]*models.Permission, 0, len(permissions))
	for i := range permissions {
		refs = append(refs, &permissions[i])
	}

	association := r.db.WithContext(ctx).Model(partner).Association("Permissions")
	var err error
	if len(refs) == 0 {
		err = association.Clear()
	} else {
		err = association.Replace(refs)
	}
	if err != nil {
		return fmt.Errorf("更新客户权限失败: %w", err)
	}
	partner.Permissions = refs
	return nil
}
