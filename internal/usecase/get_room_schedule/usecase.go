package get_room_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	roomRepo "github.com/m04kA/SMC-MeetingRoomService/internal/infra/storage/room"
	"github.com/m04kA/SMC-MeetingRoomService/internal/schedule"
)

// UseCase use case получения расписания переговорной на день
//
// Сетка слотов считается заново из параметров на каждый запрос -
// никакого кеширования снапшотов или классификаций (см. internal/schedule)
type UseCase struct {
	bookingRepo    BookingRepository
	roomRepo       RoomRepository
	employeeClient EmployeeServiceClient
	grid           schedule.Grid
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	employeeClient EmployeeServiceClient,
	grid schedule.Grid,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		roomRepo:       roomRepo,
		employeeClient: employeeClient,
		grid:           grid,
		logger:         logger,
	}
}

// Execute выполняет use case получения расписания
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetRoomSchedule: room=%d, date=%s, viewer=%v",
		req.RoomID, req.Date.Format(domain.DateFormat), req.ViewerID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetRoomSchedule: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем переговорную
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("GetRoomSchedule: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("GetRoomSchedule: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 3. Генерируем каноническую сетку дня
	slots, err := uc.grid.Generate()
	if err != nil {
		uc.logger.Error("GetRoomSchedule: failed to generate grid: %v", err)
		return nil, fmt.Errorf("%w: failed to generate grid: %v", ErrInternal, err)
	}

	// 4. Получаем свежий снапшот бронирований дня
	bookings, err := uc.bookingRepo.GetByRoomAndDate(ctx, req.RoomID, req.Date, false)
	if err != nil {
		uc.logger.Error("GetRoomSchedule: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Подтягиваем имена владельцев (с деградацией при недоступности)
	names := uc.resolveEmployeeNames(ctx, bookings)

	// 6. Классифицируем каждый слот для наблюдателя
	views := make([]SlotView, len(slots))
	for i, slot := range slots {
		status := schedule.Classify(slot, bookings, req.ViewerID)

		view := SlotView{
			Index:     i,
			StartTime: slot.Start,
			EndTime:   slot.End,
			State:     status.State,
		}
		if status.Booking != nil {
			view.Booking = toBookingView(status.Booking, names)
		}
		views[i] = view
	}

	uc.logger.Info("GetRoomSchedule: room=%d, date=%s - %d slots, %d bookings",
		req.RoomID, req.Date.Format(domain.DateFormat), len(views), len(bookings))

	return &Response{
		RoomID:   room.ID,
		RoomName: room.Name,
		Date:     req.Date,
		Slots:    views,
	}, nil
}

// resolveEmployeeNames получает имена владельцев бронирований
// EmployeeService недоступен - расписание отдаётся без имён, не падает
func (uc *UseCase) resolveEmployeeNames(ctx context.Context, bookings []*domain.Booking) map[int64]string {
	names := make(map[int64]string)

	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}
		if _, ok := names[booking.EmployeeID]; ok {
			continue
		}

		employee, err := uc.employeeClient.GetEmployeeWithGracefulDegradation(ctx, booking.EmployeeID)
		if err != nil {
			continue
		}
		names[booking.EmployeeID] = employee.DisplayName()
	}

	return names
}

func toBookingView(booking *domain.Booking, names map[int64]string) *BookingView {
	view := &BookingView{
		ID:         booking.ID,
		EmployeeID: booking.EmployeeID,
		Title:      booking.Title,
		StartTime:  booking.StartTime,
		EndTime:    booking.EndTime,
		Status:     string(booking.Status),
	}
	if name, ok := names[booking.EmployeeID]; ok {
		view.EmployeeName = &name
	}
	return view
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}
