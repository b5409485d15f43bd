package schedule

import (
	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
)

// OccupancyState состояние слота относительно наблюдателя
type OccupancyState string

const (
	StateFree          OccupancyState = "free"
	StateOccupiedSelf  OccupancyState = "occupied_self"
	StateOccupiedOther OccupancyState = "occupied_other"
)

// SlotStatus статус одного слота сетки
// Booking заполнен тогда и только тогда, когда State != StateFree
type SlotStatus struct {
	State   OccupancyState
	Booking *domain.Booking
}

// IsFree returns true if the slot is not covered by any active booking
func (s SlotStatus) IsFree() bool {
	return s.State == StateFree
}

// IsOccupied returns true if the slot is covered by an active booking
func (s SlotStatus) IsOccupied() bool {
	return s.State != StateFree
}

// Classify определяет статус слота по снапшоту бронирований
//
// Слот считается занятым бронированием, если интервалы действительно
// пересекаются: начало бронирования СТРОГО раньше конца слота И конец
// бронирования СТРОГО позже начала слота. Бронирование, заканчивающееся
// ровно в начале слота (или начинающееся ровно в его конце), слот НЕ занимает.
//
// Если слот покрывают несколько бронирований (не должно случаться при
// честной проверке конфликтов, но терпим), берётся первое встреченное.
// viewerID == nil означает анонимного наблюдателя: любой занятый слот
// для него - StateOccupiedOther.
func Classify(slot Slot, bookings []*domain.Booking, viewerID *int64) SlotStatus {
	for _, booking := range bookings {
		// Пропускаем отменённые бронирования - они время не занимают
		if !booking.IsActive() {
			continue
		}

		if covers(booking, slot) {
			if viewerID != nil && booking.IsOwnedBy(*viewerID) {
				return SlotStatus{State: StateOccupiedSelf, Booking: booking}
			}
			return SlotStatus{State: StateOccupiedOther, Booking: booking}
		}
	}

	return SlotStatus{State: StateFree}
}

// covers проверяет пересечение бронирования со слотом (строгие неравенства,
// граничные случаи не считаются пересечением)
func covers(booking *domain.Booking, slot Slot) bool {
	return booking.StartTime.IsBefore(slot.End) && booking.EndTime.IsAfter(slot.Start)
}
