package get_room_schedule

import (
	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	getRoomSchedule "github.com/m04kA/SMC-MeetingRoomService/internal/usecase/get_room_schedule"
)

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	RoomID   int64      `json:"roomId"`
	RoomName string     `json:"roomName"`
	Date     string     `json:"date"` // "2025-10-15"
	Slots    []SlotView `json:"slots"`
}

// SlotView один слот сетки дня
type SlotView struct {
	Index     int          `json:"index"`
	StartTime string       `json:"startTime"`
	EndTime   string       `json:"endTime"`
	State     string       `json:"state"` // free / occupied_self / occupied_other
	Booking   *BookingView `json:"booking,omitempty"`
}

// BookingView данные бронирования, накрывающего занятый слот
type BookingView struct {
	ID           int64   `json:"id"`
	EmployeeID   int64   `json:"employeeId"`
	EmployeeName *string `json:"employeeName,omitempty"`
	Title        string  `json:"title"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
	Status       string  `json:"status"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getRoomSchedule.Response) *ScheduleResponse {
	out := &ScheduleResponse{
		RoomID:   resp.RoomID,
		RoomName: resp.RoomName,
		Date:     resp.Date.Format(domain.DateFormat),
		Slots:    make([]SlotView, len(resp.Slots)),
	}

	for i, slot := range resp.Slots {
		view := SlotView{
			Index:     slot.Index,
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
			State:     string(slot.State),
		}
		if slot.Booking != nil {
			view.Booking = &BookingView{
				ID:           slot.Booking.ID,
				EmployeeID:   slot.Booking.EmployeeID,
				EmployeeName: slot.Booking.EmployeeName,
				Title:        slot.Booking.Title,
				StartTime:    slot.Booking.StartTime.String(),
				EndTime:      slot.Booking.EndTime.String(),
				Status:       slot.Booking.Status,
			}
		}
		out.Slots[i] = view
	}

	return out
}
