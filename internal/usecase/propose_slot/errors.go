package propose_slot

import "errors"

var (
	// ErrRoomNotFound возвращается, когда переговорная не найдена
	ErrRoomNotFound = errors.New("propose_slot: room not found")

	// ErrSlotIndexOutOfRange возвращается при индексе слота вне сетки дня
	ErrSlotIndexOutOfRange = errors.New("propose_slot: slot index out of range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("propose_slot: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("propose_slot: internal error")
)
