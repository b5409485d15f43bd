package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-MeetingRoomService/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/SMC-MeetingRoomService/internal/infra/storage/room"
	employeeClient "github.com/m04kA/SMC-MeetingRoomService/internal/integrations/employeeservice"
	"github.com/m04kA/SMC-MeetingRoomService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями переговорных
type Service struct {
	bookingRepo    BookingRepository
	roomRepo       RoomRepository
	employeeClient EmployeeServiceClient
	logger         Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	employeeClient EmployeeServiceClient,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:    bookingRepo,
		roomRepo:       roomRepo,
		employeeClient: employeeClient,
		logger:         logger,
	}
}

// GetByID получает бронирование по ID
// Проверяет права доступа - сотрудник может видеть только своё бронирование
// или если он администратор
func (s *Service) GetByID(ctx context.Context, id int64, employeeID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for employee=%d", id, employeeID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if err := s.checkEmployeeAccess(ctx, booking, employeeID); err != nil {
		s.logger.Warn("GetByID: access denied for employee=%d to booking id=%d", employeeID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetEmployeeBookings получает историю бронирований сотрудника
// Опционально фильтрует по статусу
func (s *Service) GetEmployeeBookings(ctx context.Context, req *models.GetEmployeeBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetEmployeeBookings: fetching bookings for employee=%d, status=%v", req.EmployeeID, req.Status)

	// Конвертируем статус из строки в domain.BookingStatus
	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetEmployeeBookings: invalid status=%s for employee=%d", *req.Status, req.EmployeeID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByEmployeeID(ctx, req.EmployeeID, domainStatus)
	if err != nil {
		s.logger.Error("GetEmployeeBookings: repository error for employee=%d: %v", req.EmployeeID, err)
		return nil, fmt.Errorf("%w: GetEmployeeBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetEmployeeBookings: successfully fetched %d bookings for employee=%d", len(bookings), req.EmployeeID)
	return models.FromDomainBookingList(bookings), nil
}

// GetRoomBookings получает бронирования переговорной с гибкой фильтрацией
// Поддерживает фильтрацию по периоду, статусу и включению отменённых бронирований
// Доступно только администраторам
//
// Примеры использования:
// - Все активные бронирования: GetRoomBookings(ctx, &GetRoomBookingsRequest{RoomID: 1, EmployeeID: 42})
// - Бронирования на дату: StartDate и EndDate указывают на одну дату
// - Бронирования за период: StartDate и EndDate указывают на разные даты
// - Только подтвержденные: указать Status = "confirmed"
// - Включая отменённые: IncludeInactive = true
func (s *Service) GetRoomBookings(ctx context.Context, req *models.GetRoomBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := fmt.Sprintf("GetRoomBookings: fetching bookings for room=%d, employee=%d", req.RoomID, req.EmployeeID)
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeInactive {
		logMsg += ", includeInactive=true"
	}
	s.logger.Info(logMsg)

	// Проверяем права доступа администратора
	if err := s.checkAdminAccess(ctx, req.EmployeeID); err != nil {
		return nil, err
	}

	// Проверяем существование переговорной
	if _, err := s.roomRepo.GetByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("GetRoomBookings: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetRoomBookings: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: GetRoomBookings - failed to get room: %v", ErrInternal, err)
	}

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetRoomBookings: invalid filter for room=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByRoomWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetRoomBookings: repository error for room=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: GetRoomBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetRoomBookings: successfully fetched %d bookings for room=%d", len(bookings), req.RoomID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Сотрудник может отменить только своё бронирование (cancelled_by_employee)
// Администратор может отменить любое бронирование (cancelled_by_admin)
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by employee=%d", bookingID, req.EmployeeID)

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		s.logger.Warn("Cancel: cancellation reason too long for booking id=%d", bookingID)
		return fmt.Errorf("%w: cancellation reason exceeds %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	// Получаем бронирование
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем, можно ли отменить бронирование
	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	// Определяем статус отмены в зависимости от прав доступа
	var cancelStatus domain.BookingStatus

	if booking.IsOwnedBy(req.EmployeeID) {
		cancelStatus = domain.StatusCancelledByEmployee
	} else {
		if err := s.checkAdminAccess(ctx, req.EmployeeID); err != nil {
			s.logger.Warn("Cancel: access denied for employee=%d to cancel booking id=%d", req.EmployeeID, bookingID)
			return ErrAccessDenied
		}
		cancelStatus = domain.StatusCancelledByAdmin
	}

	// Отменяем бронирование
	if err := s.bookingRepo.Cancel(ctx, bookingID, cancelStatus, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		if errors.Is(err, bookingRepo.ErrCannotCancel) {
			s.logger.Warn("Cancel: booking id=%d already transitioned, cannot cancel", bookingID)
			return ErrCannotCancel
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d with status=%s", bookingID, cancelStatus)
	return nil
}

// Вспомогательные методы

// checkEmployeeAccess проверяет, что сотрудник имеет доступ к бронированию
// Сотрудник может видеть своё бронирование или если он администратор
func (s *Service) checkEmployeeAccess(ctx context.Context, booking *domain.Booking, employeeID int64) error {
	if booking.IsOwnedBy(employeeID) {
		return nil
	}

	if err := s.checkAdminAccess(ctx, employeeID); err != nil {
		// Ошибка уже залогирована в checkAdminAccess
		return ErrAccessDenied
	}

	return nil
}

// checkAdminAccess проверяет, что сотрудник является администратором
func (s *Service) checkAdminAccess(ctx context.Context, employeeID int64) error {
	employee, err := s.employeeClient.GetEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employeeClient.ErrEmployeeNotFound) {
			s.logger.Warn("checkAdminAccess: employee id=%d not found", employeeID)
			return ErrEmployeeNotFound
		}
		s.logger.Error("checkAdminAccess: failed to get employee id=%d: %v", employeeID, err)
		return fmt.Errorf("%w: checkAdminAccess - failed to get employee: %v", ErrInternal, err)
	}

	if !employee.IsAdmin {
		s.logger.Warn("checkAdminAccess: employee id=%d is not an admin", employeeID)
		return ErrAccessDenied
	}

	s.logger.Info("checkAdminAccess: employee id=%d is an admin", employeeID)
	return nil
}
