package propose_slot

import (
	"time"

	"github.com/m04kA/SMC-MeetingRoomService/internal/schedule"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/types"
)

// Request модель запроса предложения по слоту
type Request struct {
	ViewerID  *int64    // ID сотрудника (nil для анонимного просмотра)
	RoomID    int64     // ID переговорной
	Date      time.Time // Дата (без времени)
	SlotIndex int       // Индекс слота в канонической сетке дня
}

// Response результат клика/наведения на слот
//
// HighlightIndexes - слоты для подсветки (пара свободных либо весь след
// накрывающего бронирования). Interval заполнен для action=propose,
// Booking - для action=manage
type Response struct {
	Action           schedule.ProposalAction
	HighlightIndexes []int
	Interval         *IntervalView
	Booking          *BookingView
}

// IntervalView предлагаемый интервал нового бронирования
type IntervalView struct {
	StartTime types.TimeString
	EndTime   types.TimeString
}

// BookingView собственное бронирование, по которому предлагается управление
type BookingView struct {
	ID        int64
	Title     string
	StartTime types.TimeString
	EndTime   types.TimeString
	Status    string
}
