package models

import (
	"time"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
)

// RoomResponse ответ с данными переговорной
type RoomResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Floor     int     `json:"floor"`
	Capacity  int     `json:"capacity"`
	Equipment *string `json:"equipment,omitempty"`
	IsActive  bool    `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RoomListResponse ответ со списком переговорных
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// FromDomainRoom конвертирует domain модель в DTO
func FromDomainRoom(r *domain.Room) *RoomResponse {
	if r == nil {
		return nil
	}

	return &RoomResponse{
		ID:        r.ID,
		Name:      r.Name,
		Floor:     r.Floor,
		Capacity:  r.Capacity,
		Equipment: r.Equipment,
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// FromDomainRoomList конвертирует список domain моделей в DTO
func FromDomainRoomList(rooms []*domain.Room) *RoomListResponse {
	if rooms == nil {
		return &RoomListResponse{
			Rooms: []RoomResponse{},
		}
	}

	resp := &RoomListResponse{
		Rooms: make([]RoomResponse, len(rooms)),
	}

	for i, room := range rooms {
		if roomResp := FromDomainRoom(room); roomResp != nil {
			resp.Rooms[i] = *roomResp
		}
	}

	return resp
}
