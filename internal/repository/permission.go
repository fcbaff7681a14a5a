package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/myysophia/poa-backend/internal/db/models"
	"gorm.io/gorm"
)

// 允许参与唯一性检查的列
const (
	ColumnNameEN = "name_en"
	ColumnNameAR = "name_ar"
)

// defaultPermissionOrder 权限默认排序
const defaultPermissionOrder = "name_en, id"

// PermissionFilter 权限列表查询条件
type PermissionFilter struct {
	Query     string
	PartnerID uint
	Offset    int
	Limit     int
}

// PermissionRepository 权限仓储
type PermissionRepository interface {
	Transaction(ctx context.Context, fn func(repo PermissionRepository) error) error
	Create(ctx context.Context, permission *models.Permission) error
	Update(ctx context.Context, permission *models.Permission) error
	Delete(ctx context.Context, permission *models.Permission) error
	FindByID(ctx context.Context, id uint, withPartners bool) (*models.Permission, error)
	FindByIDs(ctx context.Context, ids []uint) ([]models.Permission, error)
	List(ctx context.Context, filter PermissionFilter) ([]models.Permission, int64, error)
	Search(ctx context.Context, query string, limit int) ([]models.Permission, error)
	NameTaken(ctx context.Context, column, value string, excludeID uint) (bool, error)
	ReplacePartners(ctx context.Context, permission *models.Permission, partners []models.Partner) error
}

type permissionRepository struct {
	db *gorm.DB
}

// NewPermissionRepository 创建权限仓储
func NewPermissionRepository(db *gorm.DB) PermissionRepository {
	return &permissionRepository{db: db}
}

func (r *permissionRepository) Transaction(ctx context.Context, fn func(repo PermissionRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&permissionRepository{db: tx})
	})
}

func (r *permissionRepository) Create(ctx context.Context, permission *models.Permission) error {
	// 关联由 ReplacePartners 单独维护
	return translateError(r.db.WithContext(ctx).Omit("Partners").Create(permission).Error)
}

func (r *permissionRepository) Update(ctx context.Context, permission *models.Permission) error {
	// 使用 map 保证空简称也会被写入
	err := r.db.WithContext(ctx).Model(permission).Omit("Partners").Updates(map[string]interface{}{
		"name_en":        permission.NameEN,
		"name_ar":        permission.NameAR,
		"description_en": permission.DescriptionEN,
		"description_ar": permission.DescriptionAR,
	}).Error
	return translateError(err)
}

func (r *permissionRepository) Delete(ctx context.Context, permission *models.Permission) error {
	tx := r.db.WithContext(ctx)
	if err := tx.Model(permission).Association("Partners").Clear(); err != nil {
		return fmt.Errorf("清除客户关联失败: %w", err)
	}
	return translateError(tx.Delete(permission).Error)
}

func (r *permissionRepository) FindByID(ctx context.Context, id uint, withPartners bool) (*models.Permission, error) {
	query := r.db.WithContext(ctx)
	if withPartners {
		query = query.Preload("Partners", func(db *gorm.DB) *gorm.DB {
			return db.Order("name, id")
		})
	}

	var permission models.Permission
	if err := query.First(&permission, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &permission, nil
}

func (r *permissionRepository) FindByIDs(ctx context.Context, ids []uint) ([]models.Permission, error) {
	var permissions []models.Permission
	if len(ids) == 0 {
		return permissions, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&permissions).Error; err != nil {
		return nil, translateError(err)
	}
	return permissions, nil
}

func (r *permissionRepository) List(ctx context.Context, filter PermissionFilter) ([]models.Permission, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Permission{})

	if q := strings.TrimSpace(filter.Query); q != "" {
		query = whereMatches(query, q)
	}
	if filter.PartnerID != 0 {
		query = query.Where("id IN (?)",
			r.db.Table(models.PermissionPartnerTable).Select("permission_id").Where("partner_id = ?", filter.PartnerID))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("获取权限总数失败: %w", err)
	}

	var permissions []models.Permission
	if filter.Limit > 0 {
		query = query.Offset(filter.Offset).Limit(filter.Limit)
	}
	if err := query.Order(defaultPermissionOrder).Find(&permissions).Error; err != nil {
		return nil, 0, fmt.Errorf("获取权限列表失败: %w", err)
	}
	return permissions, total, nil
}

func (r *permissionRepository) Search(ctx context.Context, query string, limit int) ([]models.Permission, error) {
	tx := r.db.WithContext(ctx).Model(&models.Permission{})
	if q := strings.TrimSpace(query); q != "" {
		tx = whereMatches(tx, q)
	}
	if limit > 0 {
		tx = tx.Limit(limit)
	}

	var permissions []models.Permission
	if err := tx.Order(defaultPermissionOrder).Find(&permissions).Error; err != nil {
		return nil, fmt.Errorf("搜索权限失败: %w", err)
	}
	return permissions, nil
}

func (r *permissionRepository) NameTaken(ctx context.Context, column, value string, excludeID uint) (bool, error) {
	if column != ColumnNameEN && column != ColumnNameAR {
		return false, fmt.Errorf("不支持的唯一性字段: %s", column)
	}

	query := r.db.WithContext(ctx).Model(&models.Permission{}).Where(column+" = ?", value)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("检查权限名称失败: %w", err)
	}
	return count > 0, nil
}

func (r *permissionRepository) ReplacePartners(ctx context.Context, permission *models.Permission, partners []models.Partner) error {
	refs := make([]*models.Partner, 0, len(partners))
	for i := range partners {
		refs = append(refs, &partners[i])
	}

	association := r.db.WithContext(ctx).Model(permission).Association("Partners")
	if len(refs) == 0 {
		if err := association.Clear(); err != nil {
			return fmt.Errorf("清除客户关联失败: %w", err)
		}
		permission.Partners = nil
		return nil
	}
	if err := association.Replace(refs); err != nil {
		return fmt.Errorf("更新客户关联失败: %w", err)
	}
	permission.Partners = refs
	return nil
}

// whereMatches 在四个文本字段上做不区分大小写的模糊匹配
func whereMatches(query *gorm.DB, q string) *gorm.DB {
	pattern := "%" + q + "%"
	return query.Where(
		"name_en ILIKE ? OR name_ar ILIKE ? OR description_en ILIKE ? OR description_ar ILIKE ?",
		pattern, pattern, pattern, pattern,
	)
}
