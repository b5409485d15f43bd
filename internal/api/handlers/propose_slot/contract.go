package propose_slot

import (
	"context"

	proposeSlot "github.com/m04kA/SMC-MeetingRoomService/internal/usecase/propose_slot"
)

type ProposeSlotUseCase interface {
	Execute(ctx context.Context, req *proposeSlot.Request) (*proposeSlot.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
