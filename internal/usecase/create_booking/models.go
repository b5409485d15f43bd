package create_booking

import (
	"time"

	"github.com/m04kA/SMC-MeetingRoomService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	EmployeeID int64            // ID сотрудника (из X-Employee-ID, нормализован на границе API)
	RoomID     int64            // ID переговорной
	Date       time.Time        // Дата бронирования (без времени)
	StartTime  types.TimeString // Начало интервала, например "10:00"
	EndTime    types.TimeString // Конец интервала (эксклюзивно), например "11:00"
	Title      string           // Тема встречи
	Notes      *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64
	RoomID      int64
	EmployeeID  int64
	BookingDate time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	Title       string
	Status      string
	Notes       *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
