package propose_slot

import (
	proposeSlot "github.com/m04kA/SMC-MeetingRoomService/internal/usecase/propose_slot"
)

// ProposalResponse HTTP response model
//
// action=propose: interval содержит предлагаемый интервал нового бронирования
// action=manage: booking содержит собственное бронирование зрителя
type ProposalResponse struct {
	Action           string        `json:"action"` // propose / manage
	HighlightIndexes []int         `json:"highlightIndexes"`
	Interval         *IntervalView `json:"interval,omitempty"`
	Booking          *BookingView  `json:"booking,omitempty"`
}

// IntervalView предлагаемый интервал
type IntervalView struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// BookingView собственное бронирование зрителя
type BookingView struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Status    string `json:"status"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *proposeSlot.Response) *ProposalResponse {
	out := &ProposalResponse{
		Action:           string(resp.Action),
		HighlightIndexes: resp.HighlightIndexes,
	}
	if out.HighlightIndexes == nil {
		out.HighlightIndexes = []int{}
	}

	if resp.Interval != nil {
		out.Interval = &IntervalView{
			StartTime: resp.Interval.StartTime.String(),
			EndTime:   resp.Interval.EndTime.String(),
		}
	}

	if resp.Booking != nil {
		out.Booking = &BookingView{
			ID:        resp.Booking.ID,
			Title:     resp.Booking.Title,
			StartTime: resp.Booking.StartTime.String(),
			EndTime:   resp.Booking.EndTime.String(),
			Status:    resp.Booking.Status,
		}
	}

	return out
}
