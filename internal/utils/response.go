package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/myysophia/poa-backend/internal/i18n"
	"github.com/myysophia/poa-backend/internal/logger"
	"go.uber.org/zap"
)

// 上下文中保存的键
const (
	ContextKeyLang      = "lang"
	ContextKeyUserID    = "userID"
	ContextKeyUsername  = "username"
	ContextKeyRequestID = "requestID"
)

// Response 统一响应结构
type Response struct {
	Code      int         `json:"code"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

// 定义状态码
const (
	CodeSuccess       = 200 // 成功
	CodeInvalidParams = 400 // 参数错误
	CodeUnauthorized  = 401 // 未授权
	CodeForbidden     = 403 // 禁止访问
	CodeNotFound      = 404 // 资源不存在
	CodeInternalError = 500 // 服务器内部错误

	// 权限相关状态码
	CodeDuplicateName  = 40901 // 权限简称重复
	CodeValidation     = 42201 // 权限描述缺失
	CodeBadCredentials = 40101 // 用户名或密码错误
)

// 状态码对应的消息键
var codeMsgMap = map[int]string{
	CodeSuccess:        i18n.MsgSuccess,
	CodeInvalidParams:  i18n.MsgInvalidParams,
	CodeUnauthorized:   i18n.MsgUnauthorized,
	CodeForbidden:      i18n.MsgForbidden,
	CodeNotFound:       i18n.MsgNotFound,
	CodeInternalError:  i18n.MsgInternalError,
	CodeDuplicateName:  i18n.MsgNameENUnique,
	CodeValidation:     i18n.MsgDescriptionsRequired,
	CodeBadCredentials: i18n.MsgInvalidCredentials,
}

// HTTPStatus 业务码对应的 HTTP 状态码，五位业务码取前三位
func HTTPStatus(code int) int {
	for code >= 1000 {
		code /= 100
	}
	if code < 100 || code > 599 {
		return http.StatusInternalServerError
	}
	return code
}

// GetLang 获取请求语言
func GetLang(c *gin.Context) string {
	return c.GetString(ContextKeyLang)
}

// codeMessage 返回当前语言下状态码的默认消息
func codeMessage(c *gin.Context, code int) string {
	key, ok := codeMsgMap[code]
	if !ok {
		key = i18n.MsgInternalError
	}
	return i18n.T(GetLang(c), key)
}

// ResponseWithJSON 返回JSON响应
func ResponseWithJSON(c *gin.Context, code int, data interface{}) {
	c.JSON(HTTPStatus(code), Response{
		Code:      code,
		Message:   codeMessage(c, code),
		Data:      data,
		RequestID: c.GetString(ContextKeyRequestID),
	})
}

// ResponseWithData 返回成功响应，包含数据
func ResponseWithData(c *gin.Context, data interface{}) {
	ResponseWithJSON(c, CodeSuccess, data)
}

// ResponseSuccess 返回成功响应，不包含数据
func ResponseSuccess(c *gin.Context) {
	ResponseWithJSON(c, CodeSuccess, nil)
}

// ResponseError 返回错误响应，message 为空时使用状态码的默认消息
func ResponseError(c *gin.Context, code int, message string) {
	if message == "" {
		message = codeMessage(c, code)
	}

	logger.Warn("API错误响应",
		zap.Int("code", code),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("message", message))

	c.JSON(HTTPStatus(code), Response{
		Code:      code,
		Message:   message,
		RequestID: c.GetString(ContextKeyRequestID),
	})
}

// GetUserID 从上下文中获取用户ID
func GetUserID(c *gin.Context) uint {
	userID, exists := c.Get(ContextKeyUserID)
	if !exists {
		return 0
	}

	switch v := userID.(type) {
	case uint:
		return v
	case float64:
		return uint(v)
	case int:
		return uint(v)
	case int64:
		return uint(v)
	default:
		return 0
	}
}
