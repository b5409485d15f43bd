package create_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
)

var (
	// ErrRoomNotFound возвращается, когда переговорная не найдена
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrRoomInactive возвращается, когда переговорная выведена из бронирования
	ErrRoomInactive = errors.New("create_booking: room is not bookable")

	// ErrEmployeeNotFound возвращается, когда сотрудник не найден
	ErrEmployeeNotFound = errors.New("create_booking: employee not found")

	// ErrInvalidInterval возвращается при нулевой или отрицательной длительности
	ErrInvalidInterval = errors.New("create_booking: invalid booking interval")

	// ErrPastBooking возвращается, когда начало бронирования уже прошло
	ErrPastBooking = errors.New("create_booking: booking starts in the past")

	// ErrInvalidTimeSlot возвращается, когда интервал не выровнен по сетке
	// или выходит за окно рабочего дня
	ErrInvalidTimeSlot = errors.New("create_booking: interval is not aligned to the slot grid")

	// ErrBookingConflict возвращается, когда интервал пересекается с существующими
	// бронированиями; конкретные конфликты несёт ConflictError
	ErrBookingConflict = errors.New("create_booking: time slot conflicts with existing bookings")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// ConflictError ошибка пересечения с существующими бронированиями
// Несёт полный список конфликтов, чтобы пользователь увидел, с чем именно
// пересекается его интервал, а не просто факт конфликта
type ConflictError struct {
	Conflicts []*domain.Booking
}

// Error реализует error
func (e *ConflictError) Error() string {
	return fmt.Sprintf("%v: %d conflicting booking(s)", ErrBookingConflict, len(e.Conflicts))
}

// Unwrap позволяет распознавать ошибку через errors.Is(err, ErrBookingConflict)
func (e *ConflictError) Unwrap() error {
	return ErrBookingConflict
}
