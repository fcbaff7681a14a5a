package mocks

import (
	"context"

	"github.com/myysophia/poa-backend/internal/db/models"
	"github.com/myysophia/poa-backend/internal/repository"
	"github.com/stretchr/testify/mock"
)

// MockPermissionRepository 模拟权限仓储
type MockPermissionRepository struct {
	mock.Mock
}

// Transaction 直接在当前模拟对象上执行 fn
func (m *MockPermissionRepository) Transaction(ctx context.Context, fn func(repo repository.PermissionRepository) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(m)
}

func (m *MockPermissionRepository) Create(ctx context.Context, permission *models.Permission) error {
	args := m.Called(ctx, permission)
	return args.Error(0)
}

func (m *MockPermissionRepository) Update(ctx context.Context, permission *models.Permission) error {
	args := m.Called(ctx, permission)
	return args.Error(0)
}

func (m *MockPermissionRepository) Delete(ctx context.Context, permission *models.Permission) error {
	args := m.Called(ctx, permission)
	return args.Error(0)
}

func (m *MockPermissionRepository) FindByID(ctx context.Context, id uint, withPartners bool) (*models.Permission, error) {
	args := m.Called(ctx, id, withPartners)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Permission), args.Error(1)
}

func (m *MockPermissionRepository) FindByIDs(ctx context.Context, ids []uint) ([]models.Permission, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Permission), args.Error(1)
}

func (m *MockPermissionRepository) List(ctx context.Context, filter repository.PermissionFilter) ([]models.Permission, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Permission), args.Get(1).(int64), args.Error(2)
}

func (m *MockPermissionRepository) Search(ctx context.Context, query string, limit int) ([]models.Permission, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Permission), args.Error(1)
}

func (m *MockPermissionRepository) NameTaken(ctx context.Context, column, value string, excludeID uint) (bool, error) {
	args := m.Called(ctx, column, value, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPermissionRepository) ReplacePartners(ctx context.Context, permission *models.Permission, partners []models.Partner) error {
	args := m.Called(ctx, permission, partners)
	return args.Error(0)
}

// MockPartnerRepository 模拟客户仓储
type MockPartnerRepository struct {
	mock.Mock
}

func (m *MockPartnerRepository) FindByID(ctx context.Context, id uint) (*models.Partner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Partner), args.Error(1)
}

func (m *MockPartnerRepository) FindByIDs(ctx context.Context, ids []uint) ([]models.Partner, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Partner), args.Error(1)
}

func (m *MockPartnerRepository) ListPermissions(ctx context.Context, partnerID uint) ([]models.Permission, error) {
	args := m.Called(ctx, partnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Permission), args.Error(1)
}

func (m *MockPartnerRepository) ReplacePermissions(ctx context.Context, partner *models.Partner, permissions []models.Permission) error {
	args := m.Called(ctx, partner, permissions)
	return args.Error(0)
}

// MockUserRepository 模拟用户仓储
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockAuditLogRepository 模拟审计日志仓储
type MockAuditLogRepository struct {
	mock.Mock
}

func (m *MockAuditLogRepository) Create(ctx context.Context, log *models.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}
