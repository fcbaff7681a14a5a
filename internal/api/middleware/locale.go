package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/myysophia/poa-backend/internal/config"
	"github.com/myysophia/poa-backend/internal/i18n"
	"github.com/myysophia/poa-backend/internal/logger"
	"github.com/myysophia/poa-backend/internal/repository"
	"github.com/myysophia/poa-backend/internal/utils"
	"go.uber.org/zap"
)

// LocaleMiddleware 解析请求语言
// 顺序：查询参数、用户当前配置的语言、Accept-Language、配置的默认语言
// 需要放在认证中间件之后，才能读取到用户语言；users 为 nil 时只使用令牌中的语言
func LocaleMiddleware(cfg *config.LocaleConfig, users repository.UserRepository) gin.HandlerFunc {
	param := cfg.QueryParam
	if param == "" {
		param = "lang"
	}

	return func(c *gin.Context) {
		fallback := i18n.FromAcceptLanguage(c.GetHeader("Accept-Language"))
		if fallback == "" {
			fallback = cfg.Default
		}

		lang := i18n.Resolve(c.Query(param), userLang(c, users), fallback)
		c.Set(utils.ContextKeyLang, lang)
		c.Header("Content-Language", i18n.Base(lang))

		c.Next()
	}
}

// userLang 读取用户最新的语言配置，查询失败时退回令牌中的语言
func userLang(c *gin.Context, users repository.UserRepository) string {
	claimed := c.GetString(contextKeyUserLang)

	userID := utils.GetUserID(c)
	if users == nil || userID == 0 {
		return claimed
	}

	user, err := users.FindByID(c.Request.Context(), userID)
	if err != nil {
		logger.Ctx(c.Request.Context()).Warn("读取用户语言失败，使用令牌中的语言",
			zap.Uint("user_id", userID),
			zap.Error(err))
		return claimed
	}
	return user.Lang
}
