package create_booking

import (
	"fmt"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	"github.com/m04kA/SMC-MeetingRoomService/internal/schedule"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.EmployeeID <= 0 {
		return fmt.Errorf("%w: employeeID must be positive", ErrInvalidInput)
	}

	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.EndTime.IsZero() {
		return fmt.Errorf("%w: endTime is required", ErrInvalidInput)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}

	if req.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if len(req.Title) > domain.MaxTitleLength {
		return fmt.Errorf("%w: title exceeds %d characters", ErrInvalidInput, domain.MaxTitleLength)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateGridAlignment проверяет, что интервал лежит в окне дня
// и выровнен по шагу сетки
//
// Предложения UI выровнены по построению, но API принимает произвольные
// значения - бронирование "10:07-10:39" сломало бы классификацию слотов
func validateGridAlignment(req *Request, grid schedule.Grid) error {
	startMinutes, err := req.StartTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	endMinutes, err := req.EndTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if startMinutes < grid.DayStartMinutes || endMinutes > grid.DayEndMinutes {
		return fmt.Errorf("%w: interval [%s, %s) is outside the working day",
			ErrInvalidTimeSlot, req.StartTime, req.EndTime)
	}

	if (startMinutes-grid.DayStartMinutes)%grid.GranularityMinutes != 0 ||
		(endMinutes-grid.DayStartMinutes)%grid.GranularityMinutes != 0 {
		return fmt.Errorf("%w: interval [%s, %s) is not aligned to %d-minute slots",
			ErrInvalidTimeSlot, req.StartTime, req.EndTime, grid.GranularityMinutes)
	}

	return nil
}
