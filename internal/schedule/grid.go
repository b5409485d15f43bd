// Package schedule реализует движок расписания переговорных:
// каноническую сетку слотов дня, классификацию занятости,
// подсветку/предложение интервалов и проверку конфликтов.
//
// Все функции чистые: работают со снапшотом бронирований и параметрами,
// ничего не кешируют и не мутируют. Свежий снапшот + пересчёт — это
// контракт, а не неэффективность; авторитетная защита от гонки
// двух пользователей остаётся за хранилищем (см. usecase create_booking).
package schedule

import (
	"fmt"

	"github.com/m04kA/SMC-MeetingRoomService/pkg/types"
)

// Grid параметры канонической сетки слотов рабочего дня
// Значения в минутах от полуночи; окно дня [DayStartMinutes, DayEndMinutes)
type Grid struct {
	DayStartMinutes    int
	DayEndMinutes      int
	GranularityMinutes int
}

// Slot один слот сетки, полуинтервал [Start, End), End = Start + granularity
type Slot struct {
	Start types.TimeString
	End   types.TimeString
}

// Validate проверяет параметры сетки
func (g Grid) Validate() error {
	if g.DayStartMinutes < 0 || g.DayEndMinutes > types.MinutesPerDay {
		return fmt.Errorf("%w: day window [%d, %d) is outside [0, %d]",
			ErrInvalidConfiguration, g.DayStartMinutes, g.DayEndMinutes, types.MinutesPerDay)
	}
	if g.DayStartMinutes >= g.DayEndMinutes {
		return fmt.Errorf("%w: day start %d is not before day end %d",
			ErrInvalidConfiguration, g.DayStartMinutes, g.DayEndMinutes)
	}
	if g.GranularityMinutes <= 0 {
		return fmt.Errorf("%w: granularity %d must be positive",
			ErrInvalidConfiguration, g.GranularityMinutes)
	}
	// Шаг обязан нацело укладываться в окно дня - молчаливое усечение
	// сломало бы стабильную индексацию слотов на клиенте
	if (g.DayEndMinutes-g.DayStartMinutes)%g.GranularityMinutes != 0 {
		return fmt.Errorf("%w: granularity %d does not evenly divide day window of %d minutes",
			ErrInvalidConfiguration, g.GranularityMinutes, g.DayEndMinutes-g.DayStartMinutes)
	}
	return nil
}

// Generate генерирует упорядоченную последовательность слотов дня
// Слоты непрерывны, не пересекаются; слот i начинается в
// DayStartMinutes + i*GranularityMinutes. Детерминирована и идемпотентна
func (g Grid) Generate() ([]Slot, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	count := (g.DayEndMinutes - g.DayStartMinutes) / g.GranularityMinutes
	slots := make([]Slot, 0, count)

	for i := 0; i < count; i++ {
		startMinutes := g.DayStartMinutes + i*g.GranularityMinutes

		start, err := types.NewTimeStringFromMinutes(startMinutes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
		}
		end, err := types.NewTimeStringFromMinutes(startMinutes + g.GranularityMinutes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
		}

		slots = append(slots, Slot{Start: start, End: end})
	}

	return slots, nil
}
