package get_room_schedule

import (
	"time"

	"github.com/m04kA/SMC-MeetingRoomService/internal/schedule"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/types"
)

// Request модель запроса расписания переговорной на день
type Request struct {
	ViewerID *int64    // ID сотрудника-наблюдателя (nil для анонимного просмотра)
	RoomID   int64     // ID переговорной
	Date     time.Time // Дата (без времени)
}

// Response модель ответа с классифицированной сеткой дня
type Response struct {
	RoomID   int64      // ID переговорной
	RoomName string     // Название переговорной
	Date     time.Time  // Дата, на которую запрашивалось расписание
	Slots    []SlotView // Слоты в порядке следования, индекс стабилен
}

// SlotView один слот сетки с результатом классификации
type SlotView struct {
	Index     int                     // Стабильный индекс слота в сетке дня
	StartTime types.TimeString        // Начало слота
	EndTime   types.TimeString        // Конец слота (эксклюзивно)
	State     schedule.OccupancyState // free / occupied_self / occupied_other
	Booking   *BookingView            // Накрывающее бронирование, если слот занят
}

// BookingView данные бронирования для отображения в расписании
type BookingView struct {
	ID           int64
	EmployeeID   int64
	EmployeeName *string // nil при деградации EmployeeService
	Title        string
	StartTime    types.TimeString
	EndTime      types.TimeString
	Status       string
}
