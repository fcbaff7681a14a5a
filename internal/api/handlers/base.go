package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/myysophia/poa-backend/internal/i18n"
	"github.com/myysophia/poa-backend/internal/logger"
	"github.com/myysophia/poa-backend/internal/service"
	"github.com/myysophia/poa-backend/internal/utils"
	"go.uber.org/zap"
)

// BaseHandler 基础处理器
type BaseHandler struct{}

// NewBaseHandler 创建基础处理器
func NewBaseHandler() *BaseHandler {
	return &BaseHandler{}
}

// Success 成功响应
func (h *BaseHandler) Success(c *gin.Context, data interface{}) {
	utils.ResponseWithData(c, data)
}

// BadRequest 请求参数错误
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	utils.ResponseError(c, utils.CodeInvalidParams, message)
}

// NotFound 资源不存在
func (h *BaseHandler) NotFound(c *gin.Context, message string) {
	utils.ResponseError(c, utils.CodeNotFound, message)
}

// InternalError 内部错误
func (h *BaseHandler) InternalError(c *gin.Context) {
	utils.ResponseError(c, utils.CodeInternalError, "")
}

// HandleError 将业务错误转换为响应
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	lang := utils.GetLang(c)

	var (
		uniqueErr     *service.UniquenessViolation
		validationErr *service.ValidationError
		notFoundErr   *service.NotFoundError
	)

	switch {
	case errors.As(err, &uniqueErr):
		utils.ResponseError(c, utils.CodeDuplicateName, i18n.T(lang, uniqueErr.MessageKey()))
	case errors.As(err, &validationErr):
		utils.ResponseError(c, utils.CodeValidation, i18n.T(lang, validationErr.MessageKey()))
	case errors.As(err, &notFoundErr):
		utils.ResponseError(c, utils.CodeNotFound, i18n.T(lang, notFoundErr.MessageKey(), joinIDs(notFoundErr.IDs)))
	case errors.Is(err, service.ErrInvalidCredentials):
		utils.ResponseError(c, utils.CodeBadCredentials, "")
	default:
		logger.Ctx(c.Request.Context()).Error("请求处理失败",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
		_ = c.Error(err)
		h.InternalError(c)
	}
}

// parseID 解析路径中的 ID 参数
func parseID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %s: %q", name, c.Param(name))
	}
	return uint(id), nil
}

// maxIDList 单次按 ID 查询的最大数量，与批量创建上限一致
const maxIDList = 500

// parseIDList 解析逗号分隔的 ID 列表
func parseIDList(raw string) ([]uint, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errors.New("ids is required")
	}

	parts := strings.Split(raw, ",")
	if len(parts) > maxIDList {
		return nil, fmt.Errorf("too many ids: %d > %d", len(parts), maxIDList)
	}
	ids := make([]uint, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil || id == 0 {
			return nil, fmt.Errorf("invalid id: %q", part)
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}

func joinIDs(ids []uint) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.FormatUint(uint64(id), 10))
	}
	return strings.Join(parts, ", ")
}
