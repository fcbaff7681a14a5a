package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/myysophia/poa-backend/internal/logger"
	"github.com/myysophia/poa-backend/internal/utils"
	"go.uber.org/zap"
)

// LoggerMiddleware 日志中间件
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.String("ip", c.ClientIP()),
			zap.String("user-agent", c.Request.UserAgent()),
			zap.String("lang", c.GetString(utils.ContextKeyLang)),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
		}

		if userID, exists := c.Get(utils.ContextKeyUserID); exists {
			fields = append(fields,
				zap.Any("user_id", userID),
				zap.String("username", c.GetString(utils.ContextKeyUsername)))
		}

		// 请求 context 中的日志器已带 request_id
		log := logger.Ctx(c.Request.Context())
		if len(c.Errors) > 0 {
			for _, e := range c.Errors {
				fields = append(fields, zap.String("error", e.Error()))
			}
			log.Error("请求处理失败", fields...)
			return
		}

		// 根据状态码决定日志级别
		switch {
		case status >= 500:
			log.Error("服务器错误", fields...)
		case status >= 400:
			log.Warn("客户端错误", fields...)
		default:
			log.Info("请求处理成功", fields...)
		}
	}
}
