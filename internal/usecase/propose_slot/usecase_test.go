package propose_slot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	roomRepo "github.com/m04kA/SMC-MeetingRoomService/internal/infra/storage/room"
	"github.com/m04kA/SMC-MeetingRoomService/internal/schedule"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/ptr"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/types"
)

var testDate = time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetByRoomAndDate(_ context.Context, _ int64, _ time.Time, _ bool) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakeRoomRepo struct {
	room *domain.Room
	err  error
}

func (f *fakeRoomRepo) GetByID(_ context.Context, _ int64) (*domain.Room, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.room, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func testGrid() schedule.Grid {
	return schedule.Grid{
		DayStartMinutes:    domain.DefaultDayStartMinutes,
		DayEndMinutes:      domain.DefaultDayEndMinutes,
		GranularityMinutes: domain.DefaultGranularityMinutes,
	}
}

func booking(id, employeeID int64, start, end types.TimeString) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		RoomID:      1,
		EmployeeID:  employeeID,
		BookingDate: testDate,
		StartTime:   start,
		EndTime:     end,
		Title:       "Ретроспектива",
		Status:      domain.StatusConfirmed,
	}
}

func newTestUseCase(bookings *fakeBookingRepo, rooms *fakeRoomRepo) *UseCase {
	return NewUseCase(bookings, rooms, testGrid(), noopLogger{})
}

func activeRoom() *domain.Room {
	return &domain.Room{ID: 1, Name: "Переговорная 1", IsActive: true}
}

func request(slotIndex int) *Request {
	return &Request{
		ViewerID:  ptr.Ptr(int64(100)),
		RoomID:    1,
		Date:      testDate,
		SlotIndex: slotIndex,
	}
}

func TestExecute_FreeSlotProposesHour(t *testing.T) {
	// Оба слота свободны - предлагается час [10:00, 11:00) с подсветкой пары
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeRoomRepo{room: activeRoom()})

	resp, err := uc.Execute(context.Background(), request(4))
	require.NoError(t, err)

	assert.Equal(t, schedule.ActionPropose, resp.Action)
	assert.Equal(t, []int{4, 5}, resp.HighlightIndexes)
	require.NotNil(t, resp.Interval)
	assert.Equal(t, types.TimeString("10:00"), resp.Interval.StartTime)
	assert.Equal(t, types.TimeString("11:00"), resp.Interval.EndTime)
	assert.Nil(t, resp.Booking)
}

func TestExecute_NextSlotOccupiedProposesHalfHour(t *testing.T) {
	// Следующий слот занят - предложение сжимается до 30 минут
	bookings := &fakeBookingRepo{
		bookings: []*domain.Booking{booking(7, 200, "10:30", "11:00")},
	}
	uc := newTestUseCase(bookings, &fakeRoomRepo{room: activeRoom()})

	resp, err := uc.Execute(context.Background(), request(4))
	require.NoError(t, err)

	assert.Equal(t, schedule.ActionPropose, resp.Action)
	assert.Equal(t, []int{4}, resp.HighlightIndexes)
	require.NotNil(t, resp.Interval)
	assert.Equal(t, types.TimeString("10:00"), resp.Interval.StartTime)
	assert.Equal(t, types.TimeString("10:30"), resp.Interval.EndTime)
}

func TestExecute_LastSlotProposesHalfHour(t *testing.T) {
	// Последний слот дня [20:30, 21:00) - продлевать некуда
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeRoomRepo{room: activeRoom()})

	resp, err := uc.Execute(context.Background(), request(25))
	require.NoError(t, err)

	assert.Equal(t, schedule.ActionPropose, resp.Action)
	assert.Equal(t, []int{25}, resp.HighlightIndexes)
	require.NotNil(t, resp.Interval)
	assert.Equal(t, types.TimeString("20:30"), resp.Interval.StartTime)
	assert.Equal(t, types.TimeString("21:00"), resp.Interval.EndTime)
}

func TestExecute_OwnBookingProposesManage(t *testing.T) {
	// Клик по собственному бронированию [10:00, 11:30) - подсветка всего следа
	bookings := &fakeBookingRepo{
		bookings: []*domain.Booking{booking(7, 100, "10:00", "11:30")},
	}
	uc := newTestUseCase(bookings, &fakeRoomRepo{room: activeRoom()})

	resp, err := uc.Execute(context.Background(), request(5))
	require.NoError(t, err)

	assert.Equal(t, schedule.ActionManage, resp.Action)
	assert.Equal(t, []int{4, 5, 6}, resp.HighlightIndexes)
	require.NotNil(t, resp.Booking)
	assert.Equal(t, int64(7), resp.Booking.ID)
	assert.Nil(t, resp.Interval)
}

func TestExecute_ForeignBookingHighlightsFootprint(t *testing.T) {
	// Чужое бронирование: подсвечивается след, но управление не предлагается
	bookings := &fakeBookingRepo{
		bookings: []*domain.Booking{booking(7, 200, "10:00", "11:00")},
	}
	uc := newTestUseCase(bookings, &fakeRoomRepo{room: activeRoom()})

	resp, err := uc.Execute(context.Background(), request(4))
	require.NoError(t, err)

	assert.Equal(t, schedule.ActionPropose, resp.Action)
	assert.Equal(t, []int{4, 5}, resp.HighlightIndexes)
	require.NotNil(t, resp.Interval)
	assert.Equal(t, types.TimeString("10:00"), resp.Interval.StartTime)
	assert.Equal(t, types.TimeString("10:30"), resp.Interval.EndTime)
	assert.Nil(t, resp.Booking)
}

func TestExecute_SlotIndexOutOfRange(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeRoomRepo{room: activeRoom()})

	_, err := uc.Execute(context.Background(), request(26))
	assert.ErrorIs(t, err, ErrSlotIndexOutOfRange)
}

func TestExecute_RoomNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeRoomRepo{err: roomRepo.ErrRoomNotFound})

	_, err := uc.Execute(context.Background(), request(0))
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeRoomRepo{room: activeRoom()})

	_, err := uc.Execute(context.Background(), &Request{RoomID: 0, Date: testDate})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{RoomID: 1, Date: testDate, SlotIndex: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
