package bookings

import (
	"context"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	"github.com/m04kA/SMC-MeetingRoomService/internal/integrations/employeeservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByEmployeeID(ctx context.Context, employeeID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetByRoomWithFilter(ctx context.Context, filter domain.RoomBookingsFilter) ([]*domain.Booking, error)
	Cancel(ctx context.Context, id int64, status domain.BookingStatus, reason string) error
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

// RoomRepository интерфейс репозитория переговорных
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// EmployeeServiceClient интерфейс клиента для EmployeeService
type EmployeeServiceClient interface {
	GetEmployee(ctx context.Context, employeeID int64) (*employeeservice.Employee, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
