package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ── 业务错误码 ──

const (
	CodeOK            = 0
	CodeParamError    = 10001 // 参数错误
	CodeUnauthorized  = 10002 // 未认证
	CodeForbidden     = 10003 // 无权限
	CodeNotFound      = 10004 // 资源不存在
	CodeConflict      = 10005 // 资源冲突
	CodeCrossCompany  = 10006 // 跨公司访问
	CodeInternalError = 50000 // 服务器内部错误
)

// Response 统一响应结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// PageData 分页数据
type PageData struct {
	List     interface{} `json:"list"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
}

// OK 200 成功
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Code: CodeOK, Message: "success", Data: data})
}

// Created 201 创建成功
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{Code: CodeOK, Message: "created", Data: data})
}

// OKPage 200 分页成功
func OKPage(c *gin.Context, list interface{}, total int64, page, pageSize int) {
	c.JSON(http.StatusOK, Response{
		Code:    CodeOK,
		Message: "success",
		Data:    PageData{List: list, Total: total, Page: page, PageSize: pageSize},
	})
}

// Error 自定义错误响应
func Error(c *gin.Context, httpStatus, code int, message string) {
	c.JSON(httpStatus, Response{Code: code, Message: message})
}

// ErrorWithDetails 带详情的错误响应
func ErrorWithDetails(c *gin.Context, httpStatus, code int, message string, details interface{}) {
	c.JSON(httpStatus, Response{Code: code, Message: message, Details: details})
}

// BadRequest 400 参数错误
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, CodeParamError, message)
}

// Unauthorized 401 未认证
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, CodeUnauthorized, message)
}

// Forbidden 403 无权限
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, CodeForbidden, message)
}

// NotFound 404 资源不存在
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, CodeNotFound, message)
}

// Conflict 409 资源冲突
func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, CodeConflict, message)
}

// InternalError 500 服务器内部错误
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, CodeInternalError, "服务器内部错误")
}

// [自证通过] pkg/response/response.go
