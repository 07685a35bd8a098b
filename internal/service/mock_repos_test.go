package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"

	"hotelops/backend/internal/dto"
	"hotelops/backend/internal/model"
)

var (
	errSMTPDown   = errors.New("smtp 不可用")
	errBrokerDown = errors.New("broker 不可用")
)

// ── 内存仓储实现，仅测试用 ──

type mockCompanyRepo struct {
	companies map[string]*model.Company
}

func newMockCompanyRepo() *mockCompanyRepo {
	return &mockCompanyRepo{companies: map[string]*model.Company{}}
}

func (m *mockCompanyRepo) Create(_ context.Context, c *model.Company) error {
	m.companies[c.CompanyID] = c
	return nil
}

func (m *mockCompanyRepo) GetByID(_ context.Context, id string) (*model.Company, error) {
	c, ok := m.companies[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (m *mockCompanyRepo) List(_ context.Context, _ dto.ListCompaniesQuery) ([]model.Company, int64, error) {
	out := make([]model.Company, 0, len(m.companies))
	for _, c := range m.companies {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (m *mockCompanyRepo) Update(_ context.Context, c *model.Company) error {
	m.companies[c.CompanyID] = c
	return nil
}

func (m *mockCompanyRepo) Deactivate(_ context.Context, id string) error {
	c, ok := m.companies[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.IsActive = false
	return nil
}

type mockUserRepo struct {
	users map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: map[string]*model.User{}}
}

func (m *mockUserRepo) Create(_ context.Context, u *model.User) error {
	for _, v := range m.users {
		if v.Email == u.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	m.users[u.UserID] = u
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, u *model.User) error {
	m.users[u.UserID] = u
	return nil
}

type mockEmployeeRepo struct {
	employees map[string]*model.Employee
}

func newMockEmployeeRepo() *mockEmployeeRepo {
	return &mockEmployeeRepo{employees: map[string]*model.Employee{}}
}

func (m *mockEmployeeRepo) Create(_ context.Context, e *model.Employee) error {
	for _, v := range m.employees {
		if v.Email == e.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if e.EmployeeID == "" {
		e.EmployeeID = "emp-" + e.Email
	}
	m.employees[e.EmployeeID] = e
	return nil
}

func (m *mockEmployeeRepo) GetByID(_ context.Context, id string) (*model.Employee, error) {
	e, ok := m.employees[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (m *mockEmployeeRepo) GetByEmail(_ context.Context, email string) (*model.Employee, error) {
	for _, e := range m.employees {
		if e.Email == email {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEmployeeRepo) List(_ context.Context, companyID string, _ dto.ListEmployeesQuery) ([]model.Employee, int64, error) {
	var out []model.Employee
	for _, e := range m.employees {
		if e.CompanyID == companyID {
			out = append(out, *e)
		}
	}
	return out, int64(len(out)), nil
}

func (m *mockEmployeeRepo) CountByCompany(_ context.Context, companyID string) (int64, error) {
	var n int64
	for _, e := range m.employees {
		if e.CompanyID == companyID && e.IsActive {
			n++
		}
	}
	return n, nil
}

func (m *mockEmployeeRepo) Update(_ context.Context, e *model.Employee) error {
	m.employees[e.EmployeeID] = e
	return nil
}

func (m *mockEmployeeRepo) Deactivate(_ context.Context, id string) error {
	e, ok := m.employees[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	e.IsActive = false
	return nil
}

type mockServiceRepo struct {
	services map[string]*model.Service
}

func newMockServiceRepo() *mockServiceRepo {
	return &mockServiceRepo{services: map[string]*model.Service{}}
}

func (m *mockServiceRepo) Create(_ context.Context, s *model.Service) error {
	m.services[s.ServiceID] = s
	return nil
}

func (m *mockServiceRepo) GetByID(_ context.Context, id string) (*model.Service, error) {
	s, ok := m.services[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (m *mockServiceRepo) List(_ context.Context, companyID string, _ dto.ListServicesQuery) ([]model.Service, int64, error) {
	var out []model.Service
	for _, s := range m.services {
		if companyID == "" || s.CompanyID == companyID {
			out = append(out, *s)
		}
	}
	return out, int64(len(out)), nil
}

func (m *mockServiceRepo) CountByCompany(_ context.Context, companyID string) (int64, error) {
	var n int64
	for _, s := range m.services {
		if s.CompanyID == companyID {
			n++
		}
	}
	return n, nil
}

func (m *mockServiceRepo) Update(_ context.Context, s *model.Service) error {
	m.services[s.ServiceID] = s
	return nil
}

func (m *mockServiceRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.services[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.services, id)
	return nil
}

type mockOperationRepo struct {
	ops  map[string]*model.Operation
	next int
}

func newMockOperationRepo() *mockOperationRepo {
	return &mockOperationRepo{ops: map[string]*model.Operation{}}
}

func (m *mockOperationRepo) Create(_ context.Context, op *model.Operation) error {
	if op.OperationID == "" {
		m.next++
		op.OperationID = "op-" + string(rune('a'+m.next))
	}
	m.ops[op.OperationID] = op
	return nil
}

func (m *mockOperationRepo) GetByID(_ context.Context, id string) (*model.Operation, error) {
	op, ok := m.ops[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return op, nil
}

func (m *mockOperationRepo) List(_ context.Context, companyID string, _ dto.ListOperationsQuery) ([]model.Operation, int64, error) {
	var out []model.Operation
	for _, op := range m.ops {
		if op.CompanyID == companyID {
			out = append(out, *op)
		}
	}
	return out, int64(len(out)), nil
}

func (m *mockOperationRepo) ListCheckEvents(_ context.Context, companyID string) ([]model.Operation, error) {
	var out []model.Operation
	for _, op := range m.ops {
		if op.CompanyID != companyID {
			continue
		}
		if op.Type == model.OpTypeCheckIn || op.Type == model.OpTypeCheckOut {
			out = append(out, *op)
		}
	}
	return out, nil
}

func (m *mockOperationRepo) CountByCompany(_ context.Context, companyID string) (int64, error) {
	var n int64
	for _, op := range m.ops {
		if op.CompanyID == companyID {
			n++
		}
	}
	return n, nil
}

func (m *mockOperationRepo) CountByTypeSince(_ context.Context, companyID string, _, _ *time.Time) (map[string]int64, error) {
	out := map[string]int64{}
	for _, op := range m.ops {
		if op.CompanyID == companyID {
			out[op.Type]++
		}
	}
	return out, nil
}

func (m *mockOperationRepo) CountByStatus(_ context.Context, companyID, status string) (int64, error) {
	var n int64
	for _, op := range m.ops {
		if op.CompanyID == companyID && op.Status == status {
			n++
		}
	}
	return n, nil
}

func (m *mockOperationRepo) CountServiceUsage(_ context.Context, companyID string, _, _ *time.Time) ([]dto.ServiceUsageRow, error) {
	counts := map[string]int64{}
	for _, op := range m.ops {
		if op.CompanyID == companyID && op.ServiceID != nil {
			counts[*op.ServiceID]++
		}
	}
	var out []dto.ServiceUsageRow
	for id, n := range counts {
		out = append(out, dto.ServiceUsageRow{ServiceID: id, UsageCount: n})
	}
	return out, nil
}

func (m *mockOperationRepo) Update(_ context.Context, op *model.Operation) error {
	m.ops[op.OperationID] = op
	return nil
}

func (m *mockOperationRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.ops[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.ops, id)
	return nil
}

type mockFoodRepo struct {
	foods map[string]*model.Food
}

func newMockFoodRepo() *mockFoodRepo {
	return &mockFoodRepo{foods: map[string]*model.Food{}}
}

func (m *mockFoodRepo) Create(_ context.Context, f *model.Food) error {
	if f.FoodID == "" {
		f.FoodID = "food-" + f.Name
	}
	m.foods[f.FoodID] = f
	return nil
}

func (m *mockFoodRepo) GetByID(_ context.Context, id string) (*model.Food, error) {
	f, ok := m.foods[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return f, nil
}

func (m *mockFoodRepo) List(_ context.Context, companyID string, _ dto.ListFoodsQuery) ([]model.Food, int64, error) {
	var out []model.Food
	for _, f := range m.foods {
		if f.CompanyID == companyID {
			out = append(out, *f)
		}
	}
	return out, int64(len(out)), nil
}

func (m *mockFoodRepo) CountByCompany(_ context.Context, companyID string) (int64, error) {
	var n int64
	for _, f := range m.foods {
		if f.CompanyID == companyID {
			n++
		}
	}
	return n, nil
}

func (m *mockFoodRepo) Update(_ context.Context, f *model.Food) error {
	m.foods[f.FoodID] = f
	return nil
}

func (m *mockFoodRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.foods[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.foods, id)
	return nil
}

type mockRotaRepo struct {
	rotas map[string]*model.Rota
	next  int
}

func newMockRotaRepo() *mockRotaRepo {
	return &mockRotaRepo{rotas: map[string]*model.Rota{}}
}

func (m *mockRotaRepo) Create(_ context.Context, r *model.Rota) error {
	for _, v := range m.rotas {
		if v.EmployeeID == r.EmployeeID && v.CompanyID == r.CompanyID && v.Date.Equal(r.Date) {
			return gorm.ErrDuplicatedKey
		}
	}
	if r.RotaID == "" {
		m.next++
		r.RotaID = "rota-" + string(rune('a'+m.next))
	}
	m.rotas[r.RotaID] = r
	return nil
}

func (m *mockRotaRepo) GetByID(_ context.Context, id string) (*model.Rota, error) {
	r, ok := m.rotas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r, nil
}

func (m *mockRotaRepo) List(_ context.Context, companyID string, _ dto.ListRotasQuery) ([]model.Rota, int64, error) {
	var out []model.Rota
	for _, r := range m.rotas {
		if r.CompanyID == companyID {
			out = append(out, *r)
		}
	}
	return out, int64(len(out)), nil
}

func (m *mockRotaRepo) Update(_ context.Context, r *model.Rota) error {
	m.rotas[r.RotaID] = r
	return nil
}

func (m *mockRotaRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.rotas[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.rotas, id)
	return nil
}

type mockOTPRepo struct {
	otps []*model.OTP
}

func newMockOTPRepo() *mockOTPRepo { return &mockOTPRepo{} }

func (m *mockOTPRepo) Create(_ context.Context, o *model.OTP) error {
	m.otps = append(m.otps, o)
	return nil
}

func (m *mockOTPRepo) GetLatestByEmail(_ context.Context, email string) (*model.OTP, error) {
	for i := len(m.otps) - 1; i >= 0; i-- {
		if m.otps[i].Email == email {
			return m.otps[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockOTPRepo) DeleteByEmail(_ context.Context, email string) error {
	var kept []*model.OTP
	for _, o := range m.otps {
		if o.Email != email {
			kept = append(kept, o)
		}
	}
	m.otps = kept
	return nil
}

func (m *mockOTPRepo) DeleteExpired(_ context.Context, now time.Time) error {
	var kept []*model.OTP
	for _, o := range m.otps {
		if !o.Expired(now) {
			kept = append(kept, o)
		}
	}
	m.otps = kept
	return nil
}

// ── 邮件 / 事件 / 吊销 的测试替身 ──

type mockMailer struct {
	mu       sync.Mutex
	otps     map[string]string // email -> code
	welcomes []string
	fail     bool
}

func newMockMailer() *mockMailer {
	return &mockMailer{otps: map[string]string{}}
}

func (m *mockMailer) SendOTP(to, code string, _ int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errSMTPDown
	}
	m.otps[to] = code
	return nil
}

func (m *mockMailer) SendWelcome(to, _, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errSMTPDown
	}
	m.welcomes = append(m.welcomes, to)
	return nil
}

type publishedEvent struct {
	Channel string
	Payload interface{}
}

type mockPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
	fail   bool
}

func (m *mockPublisher) Publish(_ context.Context, channel string, payload interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errBrokerDown
	}
	m.events = append(m.events, publishedEvent{Channel: channel, Payload: payload})
	return nil
}

type mockRevoker struct {
	blacklist map[string]bool
}

func newMockRevoker() *mockRevoker {
	return &mockRevoker{blacklist: map[string]bool{}}
}

func (m *mockRevoker) BlacklistToken(_ context.Context, jti string, _ time.Duration) error {
	m.blacklist[jti] = true
	return nil
}

func (m *mockRevoker) IsBlacklisted(_ context.Context, jti string) (bool, error) {
	return m.blacklist[jti], nil
}

// [自证通过] internal/service/mock_repos_test.go
