package domain

import (
	"time"

	"github.com/m04kA/SMC-MeetingRoomService/pkg/types"
)

// BookingStatus represents the status of a room booking
type BookingStatus string

const (
	StatusConfirmed           BookingStatus = "confirmed"
	StatusCompleted           BookingStatus = "completed"
	StatusCancelledByEmployee BookingStatus = "cancelled_by_employee"
	StatusCancelledByAdmin    BookingStatus = "cancelled_by_admin"
)

// Booking represents a meeting-room reservation
// StartTime/EndTime задают полуинтервал [start, end) внутри BookingDate
type Booking struct {
	ID          int64
	RoomID      int64
	EmployeeID  int64
	BookingDate time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	Title       string
	Status      BookingStatus

	Notes              *string
	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its time range
func (b *Booking) IsActive() bool {
	return b.Status == StatusConfirmed || b.Status == StatusCompleted
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelledByEmployee || b.Status == StatusCancelledByAdmin
}

// IsOwnedBy returns true if the booking belongs to the given employee
func (b *Booking) IsOwnedBy(employeeID int64) bool {
	return b.EmployeeID == employeeID
}

// RoomBookingsFilter фильтр для получения бронирований переговорной
type RoomBookingsFilter struct {
	RoomID          int64          // Обязательный параметр
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые бронирования
}
