package propose_slot

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers"
	"github.com/m04kA/SMC-MeetingRoomService/internal/api/middleware"
	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	proposeSlot "github.com/m04kA/SMC-MeetingRoomService/internal/usecase/propose_slot"
)

const (
	msgInvalidRoomID    = "некорректный ID переговорной"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingDate      = "отсутствует параметр date"
	msgInvalidSlotIndex = "некорректный индекс слота"
	msgSlotOutOfRange   = "индекс слота вне сетки дня"
	msgRoomNotFound     = "переговорная не найдена"
)

type Handler struct {
	useCase ProposeSlotUseCase
	logger  Logger
}

func NewHandler(useCase ProposeSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/schedule/proposals?date=YYYY-MM-DD&slotIndex=N
// Маршрут публичный: для анонимного зрителя занятые слоты не предлагают управление
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем roomId из URL
	vars := mux.Vars(r)
	roomIDStr := vars["roomId"]

	roomID, err := strconv.ParseInt(roomIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/schedule/proposals - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	// Парсим дату из query
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /rooms/{id}/schedule/proposals - Missing date parameter: room_id=%d", roomID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/schedule/proposals - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Парсим индекс слота из query
	slotIndex, err := strconv.Atoi(r.URL.Query().Get("slotIndex"))
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/schedule/proposals - Invalid slot index: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotIndex)
		return
	}

	// Зритель опционален (через middleware Identify)
	var viewerID *int64
	if employeeID, ok := middleware.GetEmployeeID(r.Context()); ok {
		viewerID = &employeeID
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &proposeSlot.Request{
		ViewerID:  viewerID,
		RoomID:    roomID,
		Date:      date,
		SlotIndex: slotIndex,
	})
	if err != nil {
		switch {
		case errors.Is(err, proposeSlot.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id}/schedule/proposals - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, proposeSlot.ErrSlotIndexOutOfRange):
			h.logger.Warn("GET /rooms/{id}/schedule/proposals - Slot index out of range: room_id=%d, slot_index=%d",
				roomID, slotIndex)
			handlers.RespondBadRequest(w, msgSlotOutOfRange)

		case errors.Is(err, proposeSlot.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{id}/schedule/proposals - Invalid input: room_id=%d, error=%v", roomID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /rooms/{id}/schedule/proposals - Failed to build proposal: room_id=%d, error=%v",
				roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{id}/schedule/proposals - Proposal built successfully: room_id=%d, slot_index=%d, action=%s",
		roomID, slotIndex, result.Action)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
