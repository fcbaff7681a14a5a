package service

import (
	"context"
	"errors"

	"github.com/myysophia/poa-backend/internal/auth"
	"github.com/myysophia/poa-backend/internal/config"
	"github.com/myysophia/poa-backend/internal/db/models"
	"github.com/myysophia/poa-backend/internal/logger"
	"github.com/myysophia/poa-backend/internal/repository"
	"go.uber.org/zap"
)

// AuthService 登录认证
type AuthService struct {
	users     repository.UserRepository
	jwtConfig *config.JWTConfig
}

// NewAuthService 创建认证服务
func NewAuthService(users repository.UserRepository, jwtConfig *config.JWTConfig) *AuthService {
	return &AuthService{
		users:     users,
		jwtConfig: jwtConfig,
	}
}

// Login 校验用户名密码并签发令牌
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !user.Status || !user.CheckPassword(password) {
		logger.Ctx(ctx).Warn("登录失败", zap.String("username", username))
		return "", nil, ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user, s.jwtConfig)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
