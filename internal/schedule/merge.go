package schedule

import (
	"fmt"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/types"
)

// ProposalAction действие, которое UI должен предпринять по клику на слот
type ProposalAction string

const (
	// ActionPropose предлагает пользователю создать бронирование на Interval
	ActionPropose ProposalAction = "propose"

	// ActionManage открывает управление собственным бронированием (Booking)
	ActionManage ProposalAction = "manage"
)

// CandidateInterval предлагаемый интервал нового бронирования, полуинтервал [Start, End)
type CandidateInterval struct {
	Start types.TimeString
	End   types.TimeString
}

// Proposal результат клика по слоту
// Interval заполнен только для ActionPropose, Booking - только для ActionManage
type Proposal struct {
	Action   ProposalAction
	Interval *CandidateInterval
	Booking  *domain.Booking
}

// HighlightRun возвращает индексы слотов, которые нужно подсветить
// при наведении/выборе слота index
//
// Свободный слот: подсвечивается сам слот и следующий, если тот тоже
// свободен - пара сигнализирует дефолтную часовую бронь. Занятый слот:
// подсвечивается весь след накрывающего бронирования, а не один слот.
func HighlightRun(slots []Slot, index int, bookings []*domain.Booking, viewerID *int64) ([]int, error) {
	if index < 0 || index >= len(slots) {
		return nil, fmt.Errorf("%w: index %d, grid size %d", ErrSlotIndexOutOfRange, index, len(slots))
	}

	status := Classify(slots[index], bookings, viewerID)

	if status.IsFree() {
		run := []int{index}
		if index+1 < len(slots) && Classify(slots[index+1], bookings, viewerID).IsFree() {
			run = append(run, index+1)
		}
		return run, nil
	}

	// Занятый слот: собираем все слоты, накрытые тем же бронированием
	run := make([]int, 0, 4)
	for i, slot := range slots {
		if covers(status.Booking, slot) {
			run = append(run, i)
		}
	}
	return run, nil
}

// ProposeInterval вычисляет предложение по клику на слот index
//
// Чужой занятый слот намеренно возвращает ActionPropose ровно на один слот:
// попытка брони всё равно будет отклонена проверкой конфликтов, и
// пользователь увидит, кем занято время. Свой занятый слот - ActionManage.
// Свободный слот расширяется на следующий, только если тот существует и
// свободен (уклон в типичную часовую встречу без захода на занятое время).
func ProposeInterval(slots []Slot, index int, bookings []*domain.Booking, viewerID *int64) (*Proposal, error) {
	if index < 0 || index >= len(slots) {
		return nil, fmt.Errorf("%w: index %d, grid size %d", ErrSlotIndexOutOfRange, index, len(slots))
	}

	status := Classify(slots[index], bookings, viewerID)

	switch status.State {
	case StateOccupiedSelf:
		return &Proposal{Action: ActionManage, Booking: status.Booking}, nil

	case StateOccupiedOther:
		return &Proposal{
			Action:   ActionPropose,
			Interval: &CandidateInterval{Start: slots[index].Start, End: slots[index].End},
		}, nil
	}

	// Свободный слот
	end := slots[index].End
	if index+1 < len(slots) && Classify(slots[index+1], bookings, viewerID).IsFree() {
		end = slots[index+1].End
	}

	return &Proposal{
		Action:   ActionPropose,
		Interval: &CandidateInterval{Start: slots[index].Start, End: end},
	}, nil
}
