package schedule

import "errors"

var (
	// ErrInvalidConfiguration возвращается при некорректных параметрах сетки слотов
	ErrInvalidConfiguration = errors.New("schedule: invalid grid configuration")

	// ErrSlotIndexOutOfRange возвращается, когда индекс слота выходит за пределы сетки
	ErrSlotIndexOutOfRange = errors.New("schedule: slot index out of range")

	// ErrInvalidInterval возвращается при нулевой или отрицательной длительности интервала
	ErrInvalidInterval = errors.New("schedule: interval has non-positive duration")

	// ErrPastBooking возвращается, когда начало интервала уже прошло
	ErrPastBooking = errors.New("schedule: interval starts in the past")
)
