package model

// Company 酒店（租户）表 — 对应 companies
// 所有业务数据按公司隔离；停用即软删除（is_active=false）
type Company struct {
	CompanyID   string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"company_id"`
	Name        string `gorm:"type:varchar(200);not null"                     json:"name"`
	Address     string `gorm:"type:varchar(255);not null"                     json:"address"`
	City        string `gorm:"type:varchar(100);not null"                     json:"city"`
	Postcode    string `gorm:"type:varchar(20);not null"                      json:"postcode"`
	Phone       string `gorm:"type:varchar(30);not null"                      json:"phone"`
	Email       string `gorm:"type:varchar(255);not null"                     json:"email"`
	Description string `gorm:"type:text"                                      json:"description,omitempty"`
	RoomCount   *int   `gorm:""                                               json:"room_count,omitempty"`
	IsActive    bool   `gorm:"not null;default:true"                          json:"is_active"`
	BaseModel
}

// TableName 指定表名
func (Company) TableName() string { return "companies" }

// [自证通过] internal/model/company.go
