package service

import (
	"context"
	"fmt"

	"github.com/myysophia/poa-backend/internal/db/models"
	"github.com/myysophia/poa-backend/internal/logger"
	"github.com/myysophia/poa-backend/internal/repository"
	"go.uber.org/zap"
)

// DefaultSearchLimit 名称搜索默认返回条数
const DefaultSearchLimit = 8

// PermissionInput 创建或更新权限的字段
type PermissionInput struct {
	NameEN        string
	NameAR        string
	DescriptionEN string
	DescriptionAR string
	// PartnerIDs 为 nil 时不修改关联，空切片表示清空
	PartnerIDs []uint
}

// ListOptions 权限列表参数
type ListOptions struct {
	Query     string
	PartnerID uint
	Page      int
	PageSize  int
}

// PermissionService 权限业务逻辑
type PermissionService struct {
	permissions repository.PermissionRepository
	partners    repository.PartnerRepository
}

// NewPermissionService 创建权限服务
func NewPermissionService(permissions repository.PermissionRepository, partners repository.PartnerRepository) *PermissionService {
	return &PermissionService{
		permissions: permissions,
		partners:    partners,
	}
}

// Create 创建单个权限
func (s *PermissionService) Create(ctx context.Context, in PermissionInput, lang string) (*models.Permission, error) {
	created, err := s.CreateBatch(ctx, []PermissionInput{in}, lang)
	if err != nil {
		return nil, err
	}
	return &created[0], nil
}

// CreateBatch 在一个事务中创建多个权限，任一记录失败则全部不写入
func (s *PermissionService) CreateBatch(ctx context.Context, inputs []PermissionInput, lang string) ([]models.Permission, error) {
	if err := validateDescriptions(inputs); err != nil {
		return nil, err
	}
	if err := checkBatchUniqueness(inputs); err != nil {
		return nil, err
	}

	created := make([]models.Permission, len(inputs))
	err := s.permissions.Transaction(ctx, func(repo repository.PermissionRepository) error {
		for i, in := range inputs {
			if err := s.checkUniqueness(ctx, repo, in, 0); err != nil {
				return err
			}

			permission := models.Permission{
				NameEN:        in.NameEN,
				NameAR:        in.NameAR,
				DescriptionEN: in.DescriptionEN,
				DescriptionAR: in.DescriptionAR,
			}
			if err := repo.Create(ctx, &permission); err != nil {
				return uniqueness(err, in.nameFor)
			}

			if in.PartnerIDs != nil {
				if err := s.replacePartners(ctx, repo, &permission, in.PartnerIDs); err != nil {
					return err
				}
			}
			created[i] = permission
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	models.FillDisplayNames(created, lang)
	logger.Ctx(ctx).Info("创建权限成功", zap.Int("count", len(created)))
	return created, nil
}

// Update 更新权限
func (s *PermissionService) Update(ctx context.Context, id uint, in PermissionInput, lang string) (*models.Permission, error) {
	if err := validateDescriptions([]PermissionInput{in}); err != nil {
		return nil, err
	}

	var permission *models.Permission
	err := s.permissions.Transaction(ctx, func(repo repository.PermissionRepository) error {
		current, err := repo.FindByID(ctx, id, false)
		if err != nil {
			return notFound(err, ResourcePermission, id)
		}

		if err := s.checkUniqueness(ctx, repo, in, id); err != nil {
			return err
		}

		current.NameEN = in.NameEN
		current.NameAR = in.NameAR
		current.DescriptionEN = in.DescriptionEN
		current.DescriptionAR = in.DescriptionAR
		if err := repo.Update(ctx, current); err != nil {
			return uniqueness(err, in.nameFor)
		}

		if in.PartnerIDs != nil {
			if err := s.replacePartners(ctx, repo, current, in.PartnerIDs); err != nil {
				return err
			}
		}
		permission = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	permission.DisplayName = permission.ResolveDisplayName(lang)
	return permission, nil
}

// Delete 删除权限并清除客户关联
func (s *PermissionService) Delete(ctx context.Context, id uint) error {
	return s.permissions.Transaction(ctx, func(repo repository.PermissionRepository) error {
		permission, err := repo.FindByID(ctx, id, false)
		if err != nil {
			return notFound(err, ResourcePermission, id)
		}
		if err := repo.Delete(ctx, permission); err != nil {
			return fmt.Errorf("删除权限失败: %w", err)
		}
		return nil
	})
}

// Get 获取权限详情，包含关联客户
func (s *PermissionService) Get(ctx context.Context, id uint, lang string) (*models.Permission, error) {
	permission, err := s.permissions.FindByID(ctx, id, true)
	if err != nil {
		return nil, notFound(err, ResourcePermission, id)
	}
	permission.DisplayName = permission.ResolveDisplayName(lang)
	return permission, nil
}

// List 分页获取权限
func (s *PermissionService) List(ctx context.Context, opts ListOptions, lang string) ([]models.Permission, int64, error) {
	page, pageSize := opts.Page, opts.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	permissions, total, err := s.permissions.List(ctx, repository.PermissionFilter{
		Query:     opts.Query,
		PartnerID: opts.PartnerID,
		Offset:    (page - 1) * pageSize,
		Limit:     pageSize,
	})
	if err != nil {
		return nil, 0, err
	}

	models.FillDisplayNames(permissions, lang)
	return permissions, total, nil
}

// NameGet 按给定 ID 顺序返回显示名，一次查询取回全部记录
func (s *PermissionService) NameGet(ctx context.Context, ids []uint, lang string) ([]models.NamePair, error) {
	permissions, err := s.permissions.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]models.Permission, len(permissions))
	for _, p := range permissions {
		byID[p.ID] = p
	}

	ordered := make([]models.Permission, 0, len(ids))
	var missing []uint
	for _, id := range ids {
		p, ok := byID[id]
		if !ok {
			missing = append(missing, id)
			continue
		}
		ordered = append(ordered, p)
	}
	if len(missing) > 0 {
		return nil, &NotFoundError{Resource: ResourcePermission, IDs: missing}
	}

	return models.NameGet(ordered, lang), nil
}

// NameSearch 在四个文本字段中搜索并返回显示名
func (s *PermissionService) NameSearch(ctx context.Context, query string, limit int, lang string) ([]models.NamePair, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	permissions, err := s.permissions.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	return models.NameGet(permissions, lang), nil
}

// ReplacePartners 替换权限关联的客户
func (s *PermissionService) ReplacePartners(ctx context.Context, id uint, partnerIDs []uint, lang string) (*models.Permission, error) {
	var permission *models.Permission
	err := s.permissions.Transaction(ctx, func(repo repository.PermissionRepository) error {
		current, err := repo.FindByID(ctx, id, false)
		if err != nil {
			return notFound(err, ResourcePermission, id)
		}
		if err := s.replacePartners(ctx, repo, current, partnerIDs); err != nil {
			return err
		}
		permission = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	permission.DisplayName = permission.ResolveDisplayName(lang)
	return permission, nil
}

func (s *PermissionService) replacePartners(ctx context.Context, repo repository.PermissionRepository, permission *models.Permission, partnerIDs []uint) error {
	ids := uniqueIDs(partnerIDs)
	partners, err := s.partners.FindByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("获取客户失败: %w", err)
	}
	if missing := missingIDs(ids, partnerIDsOf(partners)); len(missing) > 0 {
		return &NotFoundError{Resource: ResourcePartner, IDs: missing}
	}
	return repo.ReplacePartners(ctx, permission, partners)
}

// checkUniqueness 检查非空简称是否已被其它权限使用
func (s *PermissionService) checkUniqueness(ctx context.Context, repo repository.PermissionRepository, in PermissionInput, excludeID uint) error {
	for _, column := range []string{repository.ColumnNameEN, repository.ColumnNameAR} {
		value := in.nameFor(column)
		if value == "" {
			continue
		}
		taken, err := repo.NameTaken(ctx, column, value, excludeID)
		if err != nil {
			return err
		}
		if taken {
			logger.Ctx(ctx).Warn("权限名称重复", zap.String("field", column), zap.String("value", value))
			return &UniquenessViolation{Field: column, Value: value}
		}
	}
	return nil
}

// nameFor 返回唯一性字段对应的值
func (in PermissionInput) nameFor(column string) string {
	if column == repository.ColumnNameAR {
		return in.NameAR
	}
	return in.NameEN
}

// validateDescriptions 检查整批记录的英文、阿拉伯文描述都不为空
func validateDescriptions(inputs []PermissionInput) error {
	var failed []int
	for i, in := range inputs {
		if in.DescriptionEN == "" || in.DescriptionAR == "" {
			failed = append(failed, i)
		}
	}
	if len(failed) > 0 {
		return &ValidationError{Indexes: failed}
	}
	return nil
}

// checkBatchUniqueness 检查同一批次内的简称是否重复
func checkBatchUniqueness(inputs []PermissionInput) error {
	for _, column := range []string{repository.ColumnNameEN, repository.ColumnNameAR} {
		seen := make(map[string]struct{}, len(inputs))
		for _, in := range inputs {
			value := in.nameFor(column)
			if value == "" {
				continue
			}
			if _, ok := seen[value]; ok {
				return &UniquenessViolation{Field: column, Value: value}
			}
			seen[value] = struct{}{}
		}
	}
	return nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func missingIDs(want []uint, have map[uint]struct{}) []uint {
	var missing []uint
	for _, id := range want {
		if _, ok := have[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

func partnerIDsOf(partners []models.Partner) map[uint]struct{} {
	ids := make(map[uint]struct{}, len(partners))
	for _, p := range partners {
		ids[p.ID] = struct{}{}
	}
	return ids
}
