package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"hotelops/backend/internal/dto"
	"hotelops/backend/internal/service"
	"hotelops/backend/pkg/response"
)

// EmployeeAuthHandler 员工移动端 OTP 认证接口
type EmployeeAuthHandler struct {
	auth *service.EmployeeAuthService
}

// NewEmployeeAuthHandler 创建员工认证处理器
func NewEmployeeAuthHandler(auth *service.EmployeeAuthService) *EmployeeAuthHandler {
	return &EmployeeAuthHandler{auth: auth}
}

// RequestOTP POST /auth/employee/otp
func (h *EmployeeAuthHandler) RequestOTP(c *gin.Context) {
	var req dto.OTPRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.auth.RequestOTP(c.Request.Context(), req); err != nil {
		h.handleOTPError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "验证码已发送"})
}

// VerifyOTP POST /auth/employee/verify
func (h *EmployeeAuthHandler) VerifyOTP(c *gin.Context) {
	var req dto.OTPVerifyRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.auth.VerifyOTP(c.Request.Context(), req)
	if err != nil {
		h.handleOTPError(c, err)
		return
	}
	response.OK(c, resp)
}

func (h *EmployeeAuthHandler) handleOTPError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmployeeUnknown):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrEmployeeDisabled):
		response.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrOTPInvalid):
		response.Unauthorized(c, err.Error())
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/employee_auth_handler.go
