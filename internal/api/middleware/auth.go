package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/myysophia/poa-backend/internal/auth"
	"github.com/myysophia/poa-backend/internal/config"
	"github.com/myysophia/poa-backend/internal/logger"
	"github.com/myysophia/poa-backend/internal/utils"
	"go.uber.org/zap"
)

// contextKeyUserLang 令牌中携带的用户语言
const contextKeyUserLang = "userLang"

// AuthMiddleware 认证中间件
func AuthMiddleware(jwtConfig *config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ResponseError(c, utils.CodeUnauthorized, "missing bearer token")
			c.Abort()
			return
		}

		// 检查 Authorization 头格式
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			utils.ResponseError(c, utils.CodeUnauthorized, "malformed authorization header")
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(parts[1], jwtConfig)
		if err != nil {
			logger.Warn("解析令牌失败", zap.Error(err))
			utils.ResponseError(c, utils.CodeUnauthorized, "")
			c.Abort()
			return
		}

		c.Set(utils.ContextKeyUserID, claims.UserID)
		c.Set(utils.ContextKeyUsername, claims.Username)
		c.Set(contextKeyUserLang, claims.Lang)

		c.Next()
	}
}
