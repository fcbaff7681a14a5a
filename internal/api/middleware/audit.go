package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/myysophia/poa-backend/internal/db/models"
	"github.com/myysophia/poa-backend/internal/logger"
	"github.com/myysophia/poa-backend/internal/repository"
	"github.com/myysophia/poa-backend/internal/utils"
	"go.uber.org/zap"
)

// auditTimeout 异步写审计日志的超时
const auditTimeout = 5 * time.Second

// AuditLogMiddleware 审计日志中间件，只记录已登录用户的修改操作
func AuditLogMiddleware(repo repository.AuditLogRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		method := c.Request.Method
		if method == http.MethodGet || method == http.MethodOptions || method == http.MethodHead {
			return
		}

		userID, exists := c.Get(utils.ContextKeyUserID)
		if !exists {
			return
		}

		status := strconv.Itoa(c.Writer.Status())
		details, err := json.Marshal(map[string]interface{}{
			"path":       c.Request.URL.Path,
			"query":      c.Request.URL.RawQuery,
			"method":     method,
			"status":     status,
			"request_id": c.GetString(utils.ContextKeyRequestID),
		})
		if err != nil {
			logger.Error("审计日志详情转JSON失败", zap.Error(err))
			details = []byte("{}")
		}

		auditLog := &models.AuditLog{
			UserID:       userID.(uint),
			Username:     c.GetString(utils.ContextKeyUsername),
			Action:       method,
			ResourceType: getResourceType(c.Request.URL.Path),
			ResourceID:   getResourceID(c.Request.URL.Path),
			Details:      string(details),
			IPAddress:    c.ClientIP(),
			UserAgent:    c.Request.UserAgent(),
			Status:       status,
		}

		// 异步保存审计日志，不阻塞响应
		go func(log *models.AuditLog) {
			ctx, cancel := context.WithTimeout(context.Background(), auditTimeout)
			defer cancel()

			if err := repo.Create(ctx, log); err != nil {
				logger.Error("保存审计日志失败",
					zap.Error(err),
					zap.String("resource_type", log.ResourceType),
					zap.String("resource_id", log.ResourceID),
					zap.String("action", log.Action))
			}
		}(auditLog)
	}
}

// getResourceType 从请求路径中获取资源类型
// /api/v1/permissions/3 => permission
// /api/v1/partners/5/permissions => partner
func getResourceType(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) < 3 {
		return "unknown"
	}

	switch parts[2] {
	case "permissions":
		return "permission"
	case "partners":
		return "partner"
	case "auth":
		return "auth"
	default:
		return "unknown"
	}
}

// getResourceID 从请求路径中获取资源ID
// /api/v1/permissions/3/partners => 3
func getResourceID(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) < 4 {
		return ""
	}
	if _, err := strconv.ParseUint(parts[3], 10, 64); err != nil {
		return ""
	}
	return parts[3]
}
