package cancel_booking

import (
	"github.com/m04kA/SMC-MeetingRoomService/internal/service/bookings/models"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest(employeeID int64) *models.CancelBookingRequest {
	return &models.CancelBookingRequest{
		EmployeeID:         employeeID,
		CancellationReason: r.CancellationReason,
	}
}
