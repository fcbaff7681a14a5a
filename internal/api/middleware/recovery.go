package middleware

import (
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/myysophia/poa-backend/internal/logger"
	"github.com/myysophia/poa-backend/internal/utils"
	"go.uber.org/zap"
)

// RecoveryMiddleware 错误恢复中间件
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("服务发生panic",
					zap.Any("error", err),
					zap.String("stack", string(debug.Stack())),
					zap.String("path", c.Request.URL.Path),
					zap.String("method", c.Request.Method),
					zap.String("ip", c.ClientIP()),
					zap.String("request_id", c.GetString(utils.ContextKeyRequestID)),
				)

				utils.ResponseError(c, utils.CodeInternalError, "")
				c.Abort()
			}
		}()
		c.Next()
	}
}
