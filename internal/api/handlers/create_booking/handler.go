package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers"
	"github.com/m04kA/SMC-MeetingRoomService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-MeetingRoomService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingEmployeeID  = "отсутствует ID сотрудника"
	msgInvalidDate        = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgRoomNotFound       = "переговорная не найдена"
	msgRoomInactive       = "переговорная недоступна для бронирования"
	msgEmployeeNotFound   = "сотрудник не найден"
	msgInvalidInterval    = "некорректный интервал бронирования"
	msgPastBooking        = "время начала бронирования уже прошло"
	msgInvalidTimeSlot    = "интервал не выровнен по сетке слотов"
	msgBookingConflict    = "интервал пересекается с существующими бронированиями"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем employeeID из контекста (через middleware Auth)
	employeeID, ok := middleware.GetEmployeeID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing employee ID")
		handlers.RespondUnauthorized(w, msgMissingEmployeeID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(employeeID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		var conflictErr *createBooking.ConflictError

		switch {
		case errors.As(err, &conflictErr):
			h.logger.Warn("POST /bookings - Booking conflict: employee_id=%d, room_id=%d, conflicts=%d",
				employeeID, req.RoomID, len(conflictErr.Conflicts))
			handlers.RespondJSON(w, http.StatusConflict,
				FromConflictError(http.StatusConflict, msgBookingConflict, conflictErr))

		case errors.Is(err, createBooking.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createBooking.ErrRoomInactive):
			h.logger.Warn("POST /bookings - Room inactive: room_id=%d", req.RoomID)
			handlers.RespondError(w, http.StatusConflict, msgRoomInactive)

		case errors.Is(err, createBooking.ErrEmployeeNotFound):
			h.logger.Warn("POST /bookings - Employee not found: employee_id=%d", employeeID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, createBooking.ErrInvalidInterval):
			h.logger.Warn("POST /bookings - Invalid interval: employee_id=%d, room_id=%d", employeeID, req.RoomID)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, createBooking.ErrPastBooking):
			h.logger.Warn("POST /bookings - Past booking: employee_id=%d, room_id=%d", employeeID, req.RoomID)
			handlers.RespondBadRequest(w, msgPastBooking)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: employee_id=%d, room_id=%d", employeeID, req.RoomID)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: employee_id=%d, room_id=%d, error=%v",
				employeeID, req.RoomID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: employee_id=%d, room_id=%d, error=%v",
				employeeID, req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, employee_id=%d, room_id=%d",
		result.ID, employeeID, req.RoomID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
