package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/myysophia/poa-backend/internal/utils"
)

// PartnerHandler 客户权限处理器
type PartnerHandler struct {
	*BaseHandler
	service PartnerService
}

// NewPartnerHandler 创建客户权限处理器
func NewPartnerHandler(svc PartnerService) *PartnerHandler {
	return &PartnerHandler{
		BaseHandler: NewBaseHandler(),
		service:     svc,
	}
}

type permissionsRequest struct {
	PermissionIDs []uint `json:"permission_ids" validate:"dive,gt=0"`
}

// ListPermissions 获取客户已授权的权限
func (h *PartnerHandler) ListPermissions(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	permissions, err := h.service.ListPermissions(c.Request.Context(), id, utils.GetLang(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{
		"total": len(permissions),
		"items": permissions,
	})
}

// ReplacePermissions 替换客户的权限集合
func (h *PartnerHandler) ReplacePermissions(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	var req permissionsRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	permissions, err := h.service.ReplacePermissions(c.Request.Context(), id, req.PermissionIDs, utils.GetLang(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{
		"total": len(permissions),
		"items": permissions,
	})
}
