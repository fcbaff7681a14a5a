package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/myysophia/poa-backend/internal/utils"
)

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthHandler 认证处理器
type AuthHandler struct {
	*BaseHandler
	service AuthService
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(svc AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: NewBaseHandler(),
		service:     svc,
	}
}

// Login 用户登录
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	token, user, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"lang":     user.Lang,
		},
	})
}

// GetCurrentUser 获取当前登录用户
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	h.Success(c, gin.H{
		"id":       utils.GetUserID(c),
		"username": c.GetString(utils.ContextKeyUsername),
		"lang":     utils.GetLang(c),
	})
}
