package rooms

import (
	"context"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
)

// RoomRepository интерфейс репозитория переговорных
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	List(ctx context.Context, includeInactive bool) ([]*domain.Room, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
