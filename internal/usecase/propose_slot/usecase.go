package propose_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	roomRepo "github.com/m04kA/SMC-MeetingRoomService/internal/infra/storage/room"
	"github.com/m04kA/SMC-MeetingRoomService/internal/schedule"
)

// UseCase use case подсветки и предложения интервала по клику на слот
type UseCase struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	grid        schedule.Grid
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	grid schedule.Grid,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		grid:        grid,
		logger:      logger,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ProposeSlot: room=%d, date=%s, slot=%d, viewer=%v",
		req.RoomID, req.Date.Format(domain.DateFormat), req.SlotIndex, req.ViewerID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ProposeSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование переговорной
	if _, err := uc.roomRepo.GetByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("ProposeSlot: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("ProposeSlot: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 3. Генерируем сетку дня
	slots, err := uc.grid.Generate()
	if err != nil {
		uc.logger.Error("ProposeSlot: failed to generate grid: %v", err)
		return nil, fmt.Errorf("%w: failed to generate grid: %v", ErrInternal, err)
	}

	// 4. Свежий снапшот бронирований дня
	bookings, err := uc.bookingRepo.GetByRoomAndDate(ctx, req.RoomID, req.Date, false)
	if err != nil {
		uc.logger.Error("ProposeSlot: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Подсветка и предложение по одному и тому же снапшоту
	highlight, err := schedule.HighlightRun(slots, req.SlotIndex, bookings, req.ViewerID)
	if err != nil {
		if errors.Is(err, schedule.ErrSlotIndexOutOfRange) {
			uc.logger.Warn("ProposeSlot: slot index %d out of range", req.SlotIndex)
			return nil, fmt.Errorf("%w: index %d", ErrSlotIndexOutOfRange, req.SlotIndex)
		}
		return nil, fmt.Errorf("%w: highlight: %v", ErrInternal, err)
	}

	proposal, err := schedule.ProposeInterval(slots, req.SlotIndex, bookings, req.ViewerID)
	if err != nil {
		return nil, fmt.Errorf("%w: propose: %v", ErrInternal, err)
	}

	resp := &Response{
		Action:           proposal.Action,
		HighlightIndexes: highlight,
	}
	if proposal.Interval != nil {
		resp.Interval = &IntervalView{
			StartTime: proposal.Interval.Start,
			EndTime:   proposal.Interval.End,
		}
	}
	if proposal.Booking != nil {
		resp.Booking = &BookingView{
			ID:        proposal.Booking.ID,
			Title:     proposal.Booking.Title,
			StartTime: proposal.Booking.StartTime,
			EndTime:   proposal.Booking.EndTime,
			Status:    string(proposal.Booking.Status),
		}
	}

	uc.logger.Info("ProposeSlot: room=%d, slot=%d - action=%s, highlight=%v",
		req.RoomID, req.SlotIndex, resp.Action, resp.HighlightIndexes)

	return resp, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.SlotIndex < 0 {
		return fmt.Errorf("%w: slotIndex must be non-negative", ErrInvalidInput)
	}
	return nil
}
