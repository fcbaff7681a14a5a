package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/myysophia/poa-backend/internal/service"
	"github.com/myysophia/poa-backend/internal/utils"
)

// PermissionHandler 权限管理处理器
type PermissionHandler struct {
	*BaseHandler
	service PermissionService
}

// NewPermissionHandler 创建权限管理处理器
func NewPermissionHandler(svc PermissionService) *PermissionHandler {
	return &PermissionHandler{
		BaseHandler: NewBaseHandler(),
		service:     svc,
	}
}

// permissionRequest 创建、更新权限的请求体
// 描述是否为空由服务层统一校验
type permissionRequest struct {
	NameEN        string `json:"name_en" validate:"max=255"`
	NameAR        string `json:"name_ar" validate:"max=255"`
	DescriptionEN string `json:"description_en"`
	DescriptionAR string `json:"description_ar"`
	PartnerIDs    []uint `json:"partner_ids" validate:"omitempty,dive,gt=0"`
}

func (r permissionRequest) input() service.PermissionInput {
	return service.PermissionInput{
		NameEN:        r.NameEN,
		NameAR:        r.NameAR,
		DescriptionEN: r.DescriptionEN,
		DescriptionAR: r.DescriptionAR,
		PartnerIDs:    r.PartnerIDs,
	}
}

type batchRequest struct {
	Items []permissionRequest `json:"items" validate:"required,min=1,max=500,dive"`
}

type listQuery struct {
	Query     string `form:"q" json:"q"`
	PartnerID uint   `form:"partner_id" json:"partner_id"`
	Page      int    `form:"page" json:"page" validate:"omitempty,min=1"`
	PageSize  int    `form:"page_size" json:"page_size" validate:"omitempty,min=1,max=100"`
}

type partnersRequest struct {
	PartnerIDs []uint `json:"partner_ids" validate:"dive,gt=0"`
}

// List 获取权限列表
func (h *PermissionHandler) List(c *gin.Context) {
	var q listQuery
	if err := utils.BindQuery(c, &q); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	pagination := utils.NewPagination(q.Page, q.PageSize)
	opts := service.ListOptions{
		Query:     q.Query,
		PartnerID: q.PartnerID,
		Page:      pagination.CurrentPage,
		PageSize:  pagination.PageSize,
	}
	permissions, total, err := h.service.List(c.Request.Context(), opts, utils.GetLang(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	pagination.SetTotal(total)
	h.Success(c, utils.GetPaginationResult(pagination, permissions))
}

// Create 创建权限
func (h *PermissionHandler) Create(c *gin.Context) {
	var req permissionRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	permission, err := h.service.Create(c.Request.Context(), req.input(), utils.GetLang(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, permission)
}

// CreateBatch 批量创建权限，任一记录失败则全部回滚
func (h *PermissionHandler) CreateBatch(c *gin.Context) {
	var req batchRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	inputs := make([]service.PermissionInput, 0, len(req.Items))
	for _, item := range req.Items {
		inputs = append(inputs, item.input())
	}

	permissions, err := h.service.CreateBatch(c.Request.Context(), inputs, utils.GetLang(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{
		"total": len(permissions),
		"items": permissions,
	})
}

// Get 获取权限详情
func (h *PermissionHandler) Get(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	permission, err := h.service.Get(c.Request.Context(), id, utils.GetLang(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, permission)
}

// Update 更新权限
func (h *PermissionHandler) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	var req permissionRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	permission, err := h.service.Update(c.Request.Context(), id, req.input(), utils.GetLang(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, permission)
}

// Delete 删除权限
func (h *PermissionHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, nil)
}

// NameGet 按 ids 顺序返回 (id, 显示名)
func (h *PermissionHandler) NameGet(c *gin.Context) {
	ids, err := parseIDList(c.Query("ids"))
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	pairs, err := h.service.NameGet(c.Request.Context(), ids, utils.GetLang(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, pairs)
}

// NameSearch 按名称或描述搜索权限
func (h *PermissionHandler) NameSearch(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 || n > 100 {
			h.BadRequest(c, "invalid limit")
			return
		}
		limit = n
	}

	pairs, err := h.service.NameSearch(c.Request.Context(), c.Query("q"), limit, utils.GetLang(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, pairs)
}

// ReplacePartners 替换权限关联的客户
func (h *PermissionHandler) ReplacePartners(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	var req partnersRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	permission, err := h.service.ReplacePartners(c.Request.Context(), id, req.PartnerIDs, utils.GetLang(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, permission)
}
