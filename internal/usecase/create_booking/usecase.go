package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	roomRepo "github.com/m04kA/SMC-MeetingRoomService/internal/infra/storage/room"
	employeeClient "github.com/m04kA/SMC-MeetingRoomService/internal/integrations/employeeservice"
	"github.com/m04kA/SMC-MeetingRoomService/internal/schedule"
)

// UseCase use case создания бронирования переговорной
//
// Оптимистичная проверка конфликтов на клиенте - только ранняя обратная
// связь; авторитетная проверка происходит здесь, на свежем снапшоте
// (FOR UPDATE) внутри сериализуемой транзакции. Два конкурирующих
// пересекающихся бронирования одной переговорной пройти не могут
type UseCase struct {
	bookingRepo    BookingRepository
	roomRepo       RoomRepository
	employeeClient EmployeeServiceClient
	txManager      TransactionManager
	grid           schedule.Grid
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	employeeClient EmployeeServiceClient,
	txManager TransactionManager,
	grid schedule.Grid,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		roomRepo:       roomRepo,
		employeeClient: employeeClient,
		txManager:      txManager,
		grid:           grid,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: employee=%d, room=%d, date=%s, interval=[%s, %s)",
		req.EmployeeID, req.RoomID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Выравнивание по сетке дня
	if err := validateGridAlignment(req, uc.grid); err != nil {
		uc.logger.Warn("CreateBooking: grid alignment failed: %v", err)
		return nil, err
	}

	// 3. Получаем текущее время
	now := uc.timeProvider.Now()

	// 4. Получаем переговорную
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CreateBooking: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateBooking: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}
	if !room.IsBookable() {
		uc.logger.Warn("CreateBooking: room id=%d is not bookable", req.RoomID)
		return nil, ErrRoomInactive
	}

	// 5. Проверяем существование сотрудника
	if _, err := uc.employeeClient.GetEmployee(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, employeeClient.ErrEmployeeNotFound) {
			uc.logger.Warn("CreateBooking: employee id=%d not found", req.EmployeeID)
			return nil, ErrEmployeeNotFound
		}
		uc.logger.Error("CreateBooking: failed to get employee id=%d: %v", req.EmployeeID, err)
		return nil, fmt.Errorf("%w: failed to get employee: %v", ErrInternal, err)
	}

	var result *domain.Booking

	// 6. Проверка конфликтов и вставка - атомарно, в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Свежий снапшот дня с блокировкой строк
		bookings, err := uc.bookingRepo.GetByRoomAndDate(txCtx, req.RoomID, req.Date, true)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 6.2. Проверка кандидата против снапшота
		candidate := schedule.Candidate{
			Date:  req.Date,
			Start: req.StartTime,
			End:   req.EndTime,
		}

		report, err := schedule.CheckConflicts(candidate, bookings, now)
		if err != nil {
			switch {
			case errors.Is(err, schedule.ErrInvalidInterval):
				uc.logger.Warn("CreateBooking: invalid interval: %v", err)
				return fmt.Errorf("%w: %v", ErrInvalidInterval, err)
			case errors.Is(err, schedule.ErrPastBooking):
				uc.logger.Warn("CreateBooking: past booking: %v", err)
				return fmt.Errorf("%w: %v", ErrPastBooking, err)
			default:
				return fmt.Errorf("%w: conflict check: %v", ErrInternal, err)
			}
		}

		if report.HasConflict {
			uc.logger.Warn("CreateBooking: interval [%s, %s) conflicts with %d booking(s)",
				req.StartTime, req.EndTime, len(report.Conflicts))
			return &ConflictError{Conflicts: report.Conflicts}
		}

		// 6.3. Создаем бронирование
		booking := &domain.Booking{
			RoomID:      req.RoomID,
			EmployeeID:  req.EmployeeID,
			BookingDate: req.Date,
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
			Title:       req.Title,
			Status:      domain.StatusConfirmed,
			Notes:       req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:          result.ID,
		RoomID:      result.RoomID,
		EmployeeID:  result.EmployeeID,
		BookingDate: result.BookingDate,
		StartTime:   result.StartTime,
		EndTime:     result.EndTime,
		Title:       result.Title,
		Status:      string(result.Status),
		Notes:       result.Notes,
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}, nil
}
