package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/ptr"
)

// Фиксированные часы: вторник 14 октября 2025, 12:00
var testNow = time.Date(2025, 10, 14, 12, 0, 0, 0, time.UTC)

func tomorrow() time.Time {
	return testNow.AddDate(0, 0, 1)
}

func TestCheckConflicts_NoConflict(t *testing.T) {
	bookings := []*domain.Booking{booking(1, 7, "10:00", "11:00")}
	candidate := Candidate{Date: tomorrow(), Start: "11:00", End: "12:00"}

	report, err := CheckConflicts(candidate, bookings, testNow)
	require.NoError(t, err)

	// Граничащие интервалы не конфликтуют
	assert.False(t, report.HasConflict)
	assert.Empty(t, report.Conflicts)
}

func TestCheckConflicts_Overlap(t *testing.T) {
	bookings := []*domain.Booking{booking(1, 7, "10:00", "11:00")}
	candidate := Candidate{Date: tomorrow(), Start: "10:15", End: "10:45"}

	report, err := CheckConflicts(candidate, bookings, testNow)
	require.NoError(t, err)

	assert.True(t, report.HasConflict)
	require.Len(t, report.Conflicts, 1)
	assert.Equal(t, int64(1), report.Conflicts[0].ID)
}

func TestCheckConflicts_ReturnsAllConflicts(t *testing.T) {
	bookings := []*domain.Booking{
		booking(1, 7, "09:00", "10:00"),
		booking(2, 8, "10:00", "11:00"),
		booking(3, 9, "12:00", "13:00"),
	}
	candidate := Candidate{Date: tomorrow(), Start: "09:30", End: "10:30"}

	report, err := CheckConflicts(candidate, bookings, testNow)
	require.NoError(t, err)

	require.Len(t, report.Conflicts, 2)
	assert.Equal(t, int64(1), report.Conflicts[0].ID)
	assert.Equal(t, int64(2), report.Conflicts[1].ID)
}

func TestCheckConflicts_CancelledIgnored(t *testing.T) {
	cancelled := booking(1, 7, "10:00", "11:00")
	cancelled.Status = domain.StatusCancelledByAdmin
	candidate := Candidate{Date: tomorrow(), Start: "10:00", End: "11:00"}

	report, err := CheckConflicts(candidate, []*domain.Booking{cancelled}, testNow)
	require.NoError(t, err)
	assert.False(t, report.HasConflict)
}

func TestCheckConflicts_InvalidInterval(t *testing.T) {
	_, err := CheckConflicts(Candidate{Date: tomorrow(), Start: "10:00", End: "10:00"}, nil, testNow)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = CheckConflicts(Candidate{Date: tomorrow(), Start: "11:00", End: "10:00"}, nil, testNow)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = CheckConflicts(Candidate{Date: tomorrow(), Start: "1000", End: "11:00"}, nil, testNow)
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestCheckConflicts_PastBooking(t *testing.T) {
	// Сегодня, начало раньше текущего времени
	_, err := CheckConflicts(Candidate{Date: testNow, Start: "11:00", End: "12:00"}, nil, testNow)
	assert.ErrorIs(t, err, ErrPastBooking)

	// Вчерашняя дата
	_, err = CheckConflicts(Candidate{Date: testNow.AddDate(0, 0, -1), Start: "18:00", End: "19:00"}, nil, testNow)
	assert.ErrorIs(t, err, ErrPastBooking)
}

func TestCheckConflicts_TodayFutureAllowed(t *testing.T) {
	report, err := CheckConflicts(Candidate{Date: testNow, Start: "12:30", End: "13:00"}, nil, testNow)
	require.NoError(t, err)
	assert.False(t, report.HasConflict)
}

func TestCheckConflicts_FutureDateExemptFromClock(t *testing.T) {
	// Завтра в 08:00 - раньше текущего времени суток, но дата будущая
	report, err := CheckConflicts(Candidate{Date: tomorrow(), Start: "08:00", End: "09:00"}, nil, testNow)
	require.NoError(t, err)
	assert.False(t, report.HasConflict)
}

func TestCheckConflicts_Idempotent(t *testing.T) {
	bookings := []*domain.Booking{booking(1, 7, "10:00", "11:00")}
	candidate := Candidate{Date: tomorrow(), Start: "10:15", End: "10:45"}

	first, err := CheckConflicts(candidate, bookings, testNow)
	require.NoError(t, err)
	second, err := CheckConflicts(candidate, bookings, testNow)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// Сквозной сценарий: бронирование 10:00-11:00 сотрудника 7;
// владелец получает управление, чужой - предложение и конфликт
func TestEndToEnd_OwnerAndForeignViewer(t *testing.T) {
	slots := testSlots(t)
	room := []*domain.Booking{booking(1, 7, "10:00", "11:00")}
	idx := slotIndex(t, slots, "10:00")

	// Владелец: управление собственным бронированием
	owner, err := ProposeInterval(slots, idx, room, ptr.Ptr(int64(7)))
	require.NoError(t, err)
	assert.Equal(t, ActionManage, owner.Action)
	assert.Nil(t, owner.Interval)

	// Чужой: предложение ровно на один слот
	foreign, err := ProposeInterval(slots, idx, room, ptr.Ptr(int64(9)))
	require.NoError(t, err)
	require.Equal(t, ActionPropose, foreign.Action)
	assert.Equal(t, &CandidateInterval{Start: "10:00", End: "10:30"}, foreign.Interval)

	// Попытка чужого забронировать внутри занятого времени отклоняется
	report, err := CheckConflicts(Candidate{Date: tomorrow(), Start: "10:15", End: "10:45"}, room, testNow)
	require.NoError(t, err)
	assert.True(t, report.HasConflict)
	require.Len(t, report.Conflicts, 1)
	assert.Equal(t, int64(1), report.Conflicts[0].ID)
}
