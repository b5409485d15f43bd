package get_employee_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers"
	"github.com/m04kA/SMC-MeetingRoomService/internal/service/bookings"
	"github.com/m04kA/SMC-MeetingRoomService/internal/service/bookings/models"
)

const (
	msgInvalidEmployeeID = "некорректный ID сотрудника"
	msgInvalidStatus     = "некорректный статус бронирования"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/employees/{employeeId}/bookings
// Query params: status (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем employeeId из URL
	vars := mux.Vars(r)
	employeeIDStr := vars["employeeId"]

	employeeID, err := strconv.ParseInt(employeeIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /employees/{employeeId}/bookings - Invalid employee ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEmployeeID)
		return
	}

	// Получаем status из query параметров (опционально)
	status := r.URL.Query().Get("status")
	var statusPtr *string
	if status != "" {
		statusPtr = &status
	}

	// Формируем запрос к сервису
	serviceReq := &models.GetEmployeeBookingsRequest{
		EmployeeID: employeeID,
		Status:     statusPtr,
	}

	// Получаем бронирования сотрудника
	result, err := h.service.GetEmployeeBookings(r.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			h.logger.Warn("GET /employees/{employeeId}/bookings - Invalid status: employee_id=%d, status=%s",
				employeeID, status)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /employees/{employeeId}/bookings - Failed to get bookings: employee_id=%d, error=%v",
			employeeID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /employees/{employeeId}/bookings - Bookings retrieved successfully: employee_id=%d, count=%d",
		employeeID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}
