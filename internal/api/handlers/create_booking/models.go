package create_booking

import (
	"time"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	createBooking "github.com/m04kA/SMC-MeetingRoomService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RoomID      int64   `json:"roomId"`
	BookingDate string  `json:"bookingDate"` // "2025-10-15"
	StartTime   string  `json:"startTime"`   // "10:00"
	EndTime     string  `json:"endTime"`     // "11:00", конец эксклюзивен
	Title       string  `json:"title"`
	Notes       *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64   `json:"id"`
	RoomID      int64   `json:"roomId"`
	EmployeeID  int64   `json:"employeeId"`
	BookingDate string  `json:"bookingDate"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	Title       string  `json:"title"`
	Status      string  `json:"status"`
	Notes       *string `json:"notes,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// ConflictResponse HTTP response при пересечении с существующими бронированиями
// Несёт все конфликтующие бронирования, чтобы клиент показал полное объяснение
type ConflictResponse struct {
	Code      int               `json:"code"`
	Message   string            `json:"message"`
	Conflicts []ConflictBooking `json:"conflicts"`
}

// ConflictBooking конфликтующее бронирование в ответе 409
type ConflictBooking struct {
	ID        int64  `json:"id"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Title     string `json:"title"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(employeeID int64) (*createBooking.Request, error) {
	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}
	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		EmployeeID: employeeID,
		RoomID:     r.RoomID,
		Date:       bookingDate,
		StartTime:  startTime,
		EndTime:    endTime,
		Title:      r.Title,
		Notes:      r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		RoomID:      resp.RoomID,
		EmployeeID:  resp.EmployeeID,
		BookingDate: resp.BookingDate.Format(domain.DateFormat),
		StartTime:   resp.StartTime.String(),
		EndTime:     resp.EndTime.String(),
		Title:       resp.Title,
		Status:      resp.Status,
		Notes:       resp.Notes,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}

// FromConflictError конвертирует ConflictError в HTTP response 409
func FromConflictError(code int, message string, conflictErr *createBooking.ConflictError) *ConflictResponse {
	resp := &ConflictResponse{
		Code:      code,
		Message:   message,
		Conflicts: make([]ConflictBooking, 0, len(conflictErr.Conflicts)),
	}

	for _, booking := range conflictErr.Conflicts {
		resp.Conflicts = append(resp.Conflicts, ConflictBooking{
			ID:        booking.ID,
			StartTime: booking.StartTime.String(),
			EndTime:   booking.EndTime.String(),
			Title:     booking.Title,
		})
	}

	return resp
}
