package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/types"
)

func TestGrid_Generate_CurrentDeployment(t *testing.T) {
	grid := Grid{
		DayStartMinutes:    domain.DefaultDayStartMinutes,
		DayEndMinutes:      domain.DefaultDayEndMinutes,
		GranularityMinutes: domain.DefaultGranularityMinutes,
	}

	slots, err := grid.Generate()
	require.NoError(t, err)

	// 08:00-21:00 с шагом 30 минут - ровно 26 слотов
	require.Len(t, slots, 26)
	assert.Equal(t, types.TimeString("08:00"), slots[0].Start)
	assert.Equal(t, types.TimeString("08:30"), slots[0].End)
	assert.Equal(t, types.TimeString("20:30"), slots[25].Start)
	assert.Equal(t, types.TimeString("21:00"), slots[25].End)
}

func TestGrid_Generate_ContiguousNonOverlapping(t *testing.T) {
	grid := Grid{DayStartMinutes: 540, DayEndMinutes: 1080, GranularityMinutes: 45}

	slots, err := grid.Generate()
	require.NoError(t, err)
	require.Len(t, slots, 12)

	for i := 1; i < len(slots); i++ {
		assert.Equal(t, slots[i-1].End, slots[i].Start, "slot %d must start where slot %d ends", i, i-1)
		assert.True(t, slots[i].Start.IsBefore(slots[i].End))
	}
}

func TestGrid_Generate_Deterministic(t *testing.T) {
	grid := Grid{DayStartMinutes: 480, DayEndMinutes: 1260, GranularityMinutes: 30}

	first, err := grid.Generate()
	require.NoError(t, err)
	second, err := grid.Generate()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGrid_Generate_FullDay(t *testing.T) {
	grid := Grid{DayStartMinutes: 0, DayEndMinutes: 1440, GranularityMinutes: 60}

	slots, err := grid.Generate()
	require.NoError(t, err)
	require.Len(t, slots, 24)
	assert.Equal(t, types.TimeString("24:00"), slots[23].End)
}

func TestGrid_Generate_InvalidConfiguration(t *testing.T) {
	tests := []struct {
		name string
		grid Grid
	}{
		{"granularity does not divide window", Grid{DayStartMinutes: 480, DayEndMinutes: 1260, GranularityMinutes: 50}},
		{"zero granularity", Grid{DayStartMinutes: 480, DayEndMinutes: 1260, GranularityMinutes: 0}},
		{"negative granularity", Grid{DayStartMinutes: 480, DayEndMinutes: 1260, GranularityMinutes: -30}},
		{"start after end", Grid{DayStartMinutes: 1260, DayEndMinutes: 480, GranularityMinutes: 30}},
		{"start equals end", Grid{DayStartMinutes: 480, DayEndMinutes: 480, GranularityMinutes: 30}},
		{"end beyond day", Grid{DayStartMinutes: 480, DayEndMinutes: 1441, GranularityMinutes: 30}},
		{"negative start", Grid{DayStartMinutes: -30, DayEndMinutes: 480, GranularityMinutes: 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.grid.Generate()
			assert.ErrorIs(t, err, ErrInvalidConfiguration)
		})
	}
}
