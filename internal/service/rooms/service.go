package rooms

import (
	"context"
	"errors"
	"fmt"

	roomRepo "github.com/m04kA/SMC-MeetingRoomService/internal/infra/storage/room"
	"github.com/m04kA/SMC-MeetingRoomService/internal/service/rooms/models"
)

// Service сервис для работы со справочником переговорных
type Service struct {
	roomRepo RoomRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса переговорных
func NewService(roomRepo RoomRepository, logger Logger) *Service {
	return &Service{
		roomRepo: roomRepo,
		logger:   logger,
	}
}

// GetRoom получает переговорную по ID
func (s *Service) GetRoom(ctx context.Context, id int64) (*models.RoomResponse, error) {
	s.logger.Info("GetRoom: fetching room id=%d", id)

	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("GetRoom: room id=%d not found", id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetRoom: repository error for room id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetRoom - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetRoom: successfully fetched room id=%d", id)
	return models.FromDomainRoom(room), nil
}

// ListRooms получает список переговорных
// По умолчанию возвращает только активные переговорные
func (s *Service) ListRooms(ctx context.Context, includeInactive bool) (*models.RoomListResponse, error) {
	s.logger.Info("ListRooms: fetching rooms, includeInactive=%t", includeInactive)

	rooms, err := s.roomRepo.List(ctx, includeInactive)
	if err != nil {
		s.logger.Error("ListRooms: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListRooms - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListRooms: successfully fetched %d rooms", len(rooms))
	return models.FromDomainRoomList(rooms), nil
}
