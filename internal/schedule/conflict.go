package schedule

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/types"
)

// Candidate кандидат нового бронирования: дата и полуинтервал [Start, End)
type Candidate struct {
	Date  time.Time
	Start types.TimeString
	End   types.TimeString
}

// ConflictReport результат проверки кандидата против снапшота бронирований
// Conflicts содержит ВСЕ пересекающиеся бронирования, чтобы пользователю
// можно было показать полное объяснение, а не первое попавшееся
type ConflictReport struct {
	HasConflict bool
	Conflicts   []*domain.Booking
}

// CheckConflicts проверяет кандидата против снапшота бронирований дня
//
// Валидация (типизированные ошибки, различимые для UI):
//   - ErrInvalidInterval - нулевая или отрицательная длительность;
//   - ErrPastBooking - дата в прошлом, либо дата сегодня и начало раньше now.
//     Будущие даты от проверки "в прошлом" освобождены по построению.
//
// Пересечение считается тем же строгим предикатом, что и Classify.
// Проверка чистая и идемпотентна; это лишь ранняя обратная связь -
// перед записью её обязан повторить create_booking на свежем снапшоте
// внутри сериализуемой транзакции.
func CheckConflicts(candidate Candidate, bookings []*domain.Booking, now time.Time) (ConflictReport, error) {
	if err := candidate.Start.Validate(); err != nil {
		return ConflictReport{}, fmt.Errorf("%w: start: %v", ErrInvalidInterval, err)
	}
	if err := candidate.End.Validate(); err != nil {
		return ConflictReport{}, fmt.Errorf("%w: end: %v", ErrInvalidInterval, err)
	}
	if !candidate.Start.IsBefore(candidate.End) {
		return ConflictReport{}, fmt.Errorf("%w: [%s, %s)", ErrInvalidInterval, candidate.Start, candidate.End)
	}

	if isDateInPast(candidate.Date, now) {
		return ConflictReport{}, fmt.Errorf("%w: date %s", ErrPastBooking, candidate.Date.Format(domain.DateFormat))
	}
	if isSameDay(candidate.Date, now) && candidate.Start.IsBefore(types.NewTimeString(now)) {
		return ConflictReport{}, fmt.Errorf("%w: start %s is before current time", ErrPastBooking, candidate.Start)
	}

	var conflicts []*domain.Booking
	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}
		// Строгие неравенства: граничащие интервалы не конфликтуют
		if candidate.Start.IsBefore(booking.EndTime) && candidate.End.IsAfter(booking.StartTime) {
			conflicts = append(conflicts, booking)
		}
	}

	return ConflictReport{
		HasConflict: len(conflicts) > 0,
		Conflicts:   conflicts,
	}, nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
