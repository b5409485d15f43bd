package get_room_schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	roomRepo "github.com/m04kA/SMC-MeetingRoomService/internal/infra/storage/room"
	employeeClient "github.com/m04kA/SMC-MeetingRoomService/internal/integrations/employeeservice"
	"github.com/m04kA/SMC-MeetingRoomService/internal/schedule"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/ptr"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/types"
)

var testDate = time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetByRoomAndDate(_ context.Context, _ int64, _ time.Time, _ bool) ([]*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
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

type fakeEmployeeClient struct {
	employees map[int64]*employeeClient.Employee
}

func (f *fakeEmployeeClient) GetEmployeeWithGracefulDegradation(_ context.Context, employeeID int64) (*employeeClient.Employee, error) {
	employee, ok := f.employees[employeeID]
	if !ok {
		return nil, employeeClient.ErrServiceDegraded
	}
	return employee, nil
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
		Title:       "Встреча",
		Status:      domain.StatusConfirmed,
	}
}

func newTestUseCase(bookings *fakeBookingRepo, rooms *fakeRoomRepo, employees *fakeEmployeeClient) *UseCase {
	return NewUseCase(bookings, rooms, employees, testGrid(), noopLogger{})
}

func activeRoom() *domain.Room {
	return &domain.Room{ID: 1, Name: "Переговорная 1", Floor: 3, Capacity: 8, IsActive: true}
}

func TestExecute_FullGridClassification(t *testing.T) {
	// Бронирование [10:00, 11:00) владельца 200 накрывает слоты 4 и 5
	bookings := &fakeBookingRepo{
		bookings: []*domain.Booking{booking(7, 200, "10:00", "11:00")},
	}
	employees := &fakeEmployeeClient{
		employees: map[int64]*employeeClient.Employee{
			200: {ID: 200, FirstName: "Анна", LastName: "Иванова"},
		},
	}
	uc := newTestUseCase(bookings, &fakeRoomRepo{room: activeRoom()}, employees)

	resp, err := uc.Execute(context.Background(), &Request{
		ViewerID: ptr.Ptr(int64(200)),
		RoomID:   1,
		Date:     testDate,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.RoomID)
	assert.Equal(t, "Переговорная 1", resp.RoomName)
	require.Len(t, resp.Slots, 26)

	// Индексы стабильны и непрерывны
	for i, slot := range resp.Slots {
		assert.Equal(t, i, slot.Index)
	}
	assert.Equal(t, types.TimeString("08:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("21:00"), resp.Slots[25].EndTime)

	// Слоты 4 и 5 заняты зрителем-владельцем, остальные свободны
	for i, slot := range resp.Slots {
		if i == 4 || i == 5 {
			assert.Equal(t, schedule.StateOccupiedSelf, slot.State, "slot %d", i)
			require.NotNil(t, slot.Booking)
			assert.Equal(t, int64(7), slot.Booking.ID)
			require.NotNil(t, slot.Booking.EmployeeName)
			assert.Equal(t, "Анна Иванова", *slot.Booking.EmployeeName)
		} else {
			assert.Equal(t, schedule.StateFree, slot.State, "slot %d", i)
			assert.Nil(t, slot.Booking)
		}
	}
}

func TestExecute_AnonymousViewerSeesOccupiedOther(t *testing.T) {
	bookings := &fakeBookingRepo{
		bookings: []*domain.Booking{booking(7, 200, "10:00", "11:00")},
	}
	uc := newTestUseCase(bookings, &fakeRoomRepo{room: activeRoom()}, &fakeEmployeeClient{})

	resp, err := uc.Execute(context.Background(), &Request{
		ViewerID: nil,
		RoomID:   1,
		Date:     testDate,
	})
	require.NoError(t, err)

	assert.Equal(t, schedule.StateOccupiedOther, resp.Slots[4].State)
	assert.Equal(t, schedule.StateOccupiedOther, resp.Slots[5].State)
}

func TestExecute_EmployeeServiceDegradation(t *testing.T) {
	// EmployeeService недоступен - расписание отдаётся без имён владельцев
	bookings := &fakeBookingRepo{
		bookings: []*domain.Booking{booking(7, 200, "10:00", "11:00")},
	}
	uc := newTestUseCase(bookings, &fakeRoomRepo{room: activeRoom()}, &fakeEmployeeClient{})

	resp, err := uc.Execute(context.Background(), &Request{
		ViewerID: ptr.Ptr(int64(100)),
		RoomID:   1,
		Date:     testDate,
	})
	require.NoError(t, err)

	require.NotNil(t, resp.Slots[4].Booking)
	assert.Nil(t, resp.Slots[4].Booking.EmployeeName)
	assert.Equal(t, int64(200), resp.Slots[4].Booking.EmployeeID)
}

func TestExecute_BoundaryBookingsDoNotLeak(t *testing.T) {
	// Граница эксклюзивна: [10:00, 11:00) не трогает слоты [09:30, 10:00) и [11:00, 11:30)
	bookings := &fakeBookingRepo{
		bookings: []*domain.Booking{booking(7, 200, "10:00", "11:00")},
	}
	uc := newTestUseCase(bookings, &fakeRoomRepo{room: activeRoom()}, &fakeEmployeeClient{})

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 1, Date: testDate})
	require.NoError(t, err)

	assert.Equal(t, schedule.StateFree, resp.Slots[3].State)
	assert.Equal(t, schedule.StateFree, resp.Slots[6].State)
}

func TestExecute_RoomNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeRoomRepo{err: roomRepo.ErrRoomNotFound}, &fakeEmployeeClient{})

	_, err := uc.Execute(context.Background(), &Request{RoomID: 99, Date: testDate})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeRoomRepo{room: activeRoom()}, &fakeEmployeeClient{})

	_, err := uc.Execute(context.Background(), &Request{RoomID: 0, Date: testDate})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{RoomID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
