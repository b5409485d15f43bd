package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/ptr"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/types"
)

// testSlots сетка текущего деплоя: 08:00-21:00, шаг 30 минут
func testSlots(t *testing.T) []Slot {
	t.Helper()
	grid := Grid{
		DayStartMinutes:    domain.DefaultDayStartMinutes,
		DayEndMinutes:      domain.DefaultDayEndMinutes,
		GranularityMinutes: domain.DefaultGranularityMinutes,
	}
	slots, err := grid.Generate()
	require.NoError(t, err)
	return slots
}

// slotIndex индекс слота с заданным началом
func slotIndex(t *testing.T, slots []Slot, start types.TimeString) int {
	t.Helper()
	for i, s := range slots {
		if s.Start == start {
			return i
		}
	}
	t.Fatalf("no slot starting at %s", start)
	return -1
}

func TestHighlightRun_FreePair(t *testing.T) {
	slots := testSlots(t)
	idx := slotIndex(t, slots, "14:00")

	run, err := HighlightRun(slots, idx, nil, nil)
	require.NoError(t, err)

	// Два свободных слота подряд - подсвечиваем пару (часовой дефолт)
	assert.Equal(t, []int{idx, idx + 1}, run)
}

func TestHighlightRun_FreeBeforeOccupied(t *testing.T) {
	slots := testSlots(t)
	idx := slotIndex(t, slots, "14:00")
	bookings := []*domain.Booking{booking(1, 7, "14:30", "15:00")}

	run, err := HighlightRun(slots, idx, bookings, ptr.Ptr(int64(9)))
	require.NoError(t, err)
	assert.Equal(t, []int{idx}, run)
}

func TestHighlightRun_LastSlotFree(t *testing.T) {
	slots := testSlots(t)
	last := len(slots) - 1

	run, err := HighlightRun(slots, last, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{last}, run)
}

func TestHighlightRun_OccupiedFootprint(t *testing.T) {
	slots := testSlots(t)
	bookings := []*domain.Booking{booking(1, 7, "10:00", "11:30")}
	idx := slotIndex(t, slots, "10:30")

	run, err := HighlightRun(slots, idx, bookings, ptr.Ptr(int64(7)))
	require.NoError(t, err)

	// Подсвечивается весь след бронирования, а не один слот
	first := slotIndex(t, slots, "10:00")
	assert.Equal(t, []int{first, first + 1, first + 2}, run)
}

func TestHighlightRun_SingleSlotBooking(t *testing.T) {
	slots := testSlots(t)
	bookings := []*domain.Booking{booking(1, 7, "09:00", "09:30")}
	idx := slotIndex(t, slots, "09:00")

	run, err := HighlightRun(slots, idx, bookings, ptr.Ptr(int64(7)))
	require.NoError(t, err)
	assert.Equal(t, []int{idx}, run)

	status := Classify(slots[idx], bookings, ptr.Ptr(int64(7)))
	assert.Equal(t, StateOccupiedSelf, status.State)
}

func TestHighlightRun_IndexOutOfRange(t *testing.T) {
	slots := testSlots(t)

	_, err := HighlightRun(slots, -1, nil, nil)
	assert.ErrorIs(t, err, ErrSlotIndexOutOfRange)

	_, err = HighlightRun(slots, len(slots), nil, nil)
	assert.ErrorIs(t, err, ErrSlotIndexOutOfRange)
}

func TestProposeInterval_OneHourBias(t *testing.T) {
	slots := testSlots(t)
	idx := slotIndex(t, slots, "14:00")

	proposal, err := ProposeInterval(slots, idx, nil, nil)
	require.NoError(t, err)

	require.Equal(t, ActionPropose, proposal.Action)
	require.NotNil(t, proposal.Interval)
	assert.Equal(t, types.TimeString("14:00"), proposal.Interval.Start)
	assert.Equal(t, types.TimeString("15:00"), proposal.Interval.End)
}

func TestProposeInterval_ExtensionBlocked(t *testing.T) {
	slots := testSlots(t)
	idx := slotIndex(t, slots, "14:00")
	bookings := []*domain.Booking{booking(1, 7, "14:30", "15:00")}

	proposal, err := ProposeInterval(slots, idx, bookings, ptr.Ptr(int64(9)))
	require.NoError(t, err)

	// Следующий слот занят - предложение сжимается до одного шага сетки
	require.Equal(t, ActionPropose, proposal.Action)
	assert.Equal(t, types.TimeString("14:00"), proposal.Interval.Start)
	assert.Equal(t, types.TimeString("14:30"), proposal.Interval.End)
}

func TestProposeInterval_LastSlot(t *testing.T) {
	slots := testSlots(t)
	last := len(slots) - 1

	proposal, err := ProposeInterval(slots, last, nil, nil)
	require.NoError(t, err)

	require.Equal(t, ActionPropose, proposal.Action)
	assert.Equal(t, types.TimeString("20:30"), proposal.Interval.Start)
	assert.Equal(t, types.TimeString("21:00"), proposal.Interval.End)
}

func TestProposeInterval_OwnBooking(t *testing.T) {
	slots := testSlots(t)
	bookings := []*domain.Booking{booking(1, 7, "10:00", "11:00")}
	idx := slotIndex(t, slots, "10:00")

	proposal, err := ProposeInterval(slots, idx, bookings, ptr.Ptr(int64(7)))
	require.NoError(t, err)

	// Свой слот - управление бронированием, а не новое предложение
	assert.Equal(t, ActionManage, proposal.Action)
	assert.Nil(t, proposal.Interval)
	require.NotNil(t, proposal.Booking)
	assert.Equal(t, int64(1), proposal.Booking.ID)
}

func TestProposeInterval_ForeignBooking(t *testing.T) {
	slots := testSlots(t)
	bookings := []*domain.Booking{booking(1, 7, "10:00", "11:00")}
	idx := slotIndex(t, slots, "10:00")

	proposal, err := ProposeInterval(slots, idx, bookings, ptr.Ptr(int64(9)))
	require.NoError(t, err)

	// Чужой слот: предлагается ровно один слот, конфликт всплывёт при проверке
	require.Equal(t, ActionPropose, proposal.Action)
	assert.Equal(t, types.TimeString("10:00"), proposal.Interval.Start)
	assert.Equal(t, types.TimeString("10:30"), proposal.Interval.End)
}

func TestProposeInterval_IndexOutOfRange(t *testing.T) {
	slots := testSlots(t)

	_, err := ProposeInterval(slots, len(slots), nil, nil)
	assert.ErrorIs(t, err, ErrSlotIndexOutOfRange)
}
