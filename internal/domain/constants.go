package domain

// Default schedule grid values (current deployment)
const (
	DefaultDayStartMinutes    = 480  // 08:00
	DefaultDayEndMinutes      = 1260 // 21:00
	DefaultGranularityMinutes = 30
)

// Business validation constants
const (
	MaxTitleLength              = 200
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не занимающих время переговорной
// Используется при фильтрации снапшота дня
var InactiveStatuses = []BookingStatus{
	StatusCancelledByEmployee,
	StatusCancelledByAdmin,
}

// ActiveStatuses список статусов, занимающих время переговорной
var ActiveStatuses = []BookingStatus{
	StatusConfirmed,
	StatusCompleted,
}
