package get_room_schedule

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers"
	"github.com/m04kA/SMC-MeetingRoomService/internal/api/middleware"
	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	getRoomSchedule "github.com/m04kA/SMC-MeetingRoomService/internal/usecase/get_room_schedule"
)

const (
	msgInvalidRoomID = "некорректный ID переговорной"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingDate   = "отсутствует параметр date"
	msgRoomNotFound  = "переговорная не найдена"
)

type Handler struct {
	useCase GetRoomScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetRoomScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/schedule?date=YYYY-MM-DD
// Маршрут публичный: анонимный зритель видит занятые слоты как чужие
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем roomId из URL
	vars := mux.Vars(r)
	roomIDStr := vars["roomId"]

	roomID, err := strconv.ParseInt(roomIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/schedule - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	// Парсим дату из query
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /rooms/{id}/schedule - Missing date parameter: room_id=%d", roomID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/schedule - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Зритель опционален (через middleware Identify)
	var viewerID *int64
	if employeeID, ok := middleware.GetEmployeeID(r.Context()); ok {
		viewerID = &employeeID
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &getRoomSchedule.Request{
		ViewerID: viewerID,
		RoomID:   roomID,
		Date:     date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getRoomSchedule.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id}/schedule - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, getRoomSchedule.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{id}/schedule - Invalid input: room_id=%d, error=%v", roomID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /rooms/{id}/schedule - Failed to get schedule: room_id=%d, error=%v",
				roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{id}/schedule - Schedule retrieved successfully: room_id=%d, date=%s, slots=%d",
		roomID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
