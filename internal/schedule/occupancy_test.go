package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/ptr"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/types"
)

// booking конструктор активного бронирования для тестов
func booking(id, employeeID int64, start, end types.TimeString) *domain.Booking {
	return &domain.Booking{
		ID:         id,
		RoomID:     1,
		EmployeeID: employeeID,
		StartTime:  start,
		EndTime:    end,
		Title:      "Встреча",
		Status:     domain.StatusConfirmed,
	}
}

func slot(start, end types.TimeString) Slot {
	return Slot{Start: start, End: end}
}

func TestClassify_FreeSlot(t *testing.T) {
	bookings := []*domain.Booking{booking(1, 7, "10:00", "11:00")}

	status := Classify(slot("09:00", "09:30"), bookings, ptr.Ptr(int64(7)))
	assert.Equal(t, StateFree, status.State)
	assert.Nil(t, status.Booking)
	assert.True(t, status.IsFree())
}

func TestClassify_Ownership(t *testing.T) {
	bookings := []*domain.Booking{booking(1, 7, "10:00", "11:00")}
	covered := slot("10:00", "10:30")

	self := Classify(covered, bookings, ptr.Ptr(int64(7)))
	assert.Equal(t, StateOccupiedSelf, self.State)
	require.NotNil(t, self.Booking)
	assert.Equal(t, int64(1), self.Booking.ID)

	other := Classify(covered, bookings, ptr.Ptr(int64(9)))
	assert.Equal(t, StateOccupiedOther, other.State)

	// Анонимный наблюдатель видит любой занятый слот как чужой
	anon := Classify(covered, bookings, nil)
	assert.Equal(t, StateOccupiedOther, anon.State)
}

func TestClassify_BoundaryExclusive(t *testing.T) {
	// Бронирование 10:00-11:00 НЕ занимает граничащие слоты,
	// но занимает оба накрытых
	bookings := []*domain.Booking{booking(1, 7, "10:00", "11:00")}
	viewer := ptr.Ptr(int64(7))

	assert.Equal(t, StateFree, Classify(slot("09:30", "10:00"), bookings, viewer).State)
	assert.Equal(t, StateFree, Classify(slot("11:00", "11:30"), bookings, viewer).State)
	assert.Equal(t, StateOccupiedSelf, Classify(slot("10:00", "10:30"), bookings, viewer).State)
	assert.Equal(t, StateOccupiedSelf, Classify(slot("10:30", "11:00"), bookings, viewer).State)
}

func TestClassify_PartialOverlap(t *testing.T) {
	// Бронирование, частично заходящее на слот, занимает его
	bookings := []*domain.Booking{booking(1, 7, "11:20", "11:40")}

	status := Classify(slot("11:30", "12:00"), bookings, nil)
	assert.Equal(t, StateOccupiedOther, status.State)
}

func TestClassify_InactiveBookingsSkipped(t *testing.T) {
	cancelled := booking(1, 7, "10:00", "11:00")
	cancelled.Status = domain.StatusCancelledByEmployee

	status := Classify(slot("10:00", "10:30"), []*domain.Booking{cancelled}, ptr.Ptr(int64(7)))
	assert.Equal(t, StateFree, status.State)
}

func TestClassify_DoubleBookingTolerated(t *testing.T) {
	// Двойное бронирование не должно случаться, но классификатор
	// не падает: берётся первое встреченное
	bookings := []*domain.Booking{
		booking(1, 7, "10:00", "11:00"),
		booking(2, 9, "10:00", "11:00"),
	}

	status := Classify(slot("10:00", "10:30"), bookings, ptr.Ptr(int64(9)))
	assert.Equal(t, StateOccupiedOther, status.State)
	require.NotNil(t, status.Booking)
	assert.Equal(t, int64(1), status.Booking.ID)
}

func TestClassify_Idempotent(t *testing.T) {
	bookings := []*domain.Booking{booking(1, 7, "10:00", "11:00")}
	covered := slot("10:00", "10:30")
	viewer := ptr.Ptr(int64(7))

	first := Classify(covered, bookings, viewer)
	second := Classify(covered, bookings, viewer)
	assert.Equal(t, first, second)
}
