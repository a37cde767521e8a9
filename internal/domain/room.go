package domain

import "time"

// Room is a long-lived catalog entry. Available is a cached hint maintained
// by booking and cancellation; availability decisions are derived from the
// reservation intervals, not from this flag.
type Room struct {
	ID        int64
	Type      string
	Price     float64
	Available bool
	CreatedAt time.Time
}
