package domain

import "time"

// Room represents a bookable meeting room
type Room struct {
	ID        int64
	Name      string
	Floor     int
	Capacity  int
	Equipment *string // Свободное описание оснащения (проектор, ВКС и т.п.)
	IsActive  bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBookable returns true if the room accepts new bookings
func (r *Room) IsBookable() bool {
	return r.IsActive
}
