package repository

import (
	"context"

	"github.com/myysophia/poa-backend/internal/db/models"
	"gorm.io/gorm"
)

// AuditLogRepository 审计日志仓储
type AuditLogRepository interface {
	Create(ctx context.Context, log *models.AuditLog) error
}

type auditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository 创建审计日志仓储
func NewAuditLogRepository(db *gorm.DB) AuditLogRepository {
	return &auditLogRepository{db: db}
}

func (r *auditLogRepository) Create(ctx context.Context, log *models.AuditLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}
