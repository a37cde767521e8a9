package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusBooked    ReservationStatus = "booked"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

// PaymentStatusPaid is the only payment status this system produces: payment
// is recorded as completed synchronously at booking time.
const PaymentStatusPaid = "Paid"

// Reservation holds a room for a half-open [CheckIn, CheckOut) date range.
// TotalCost is frozen at booking time and never recomputed.
type Reservation struct {
	ID            int64
	CustomerName  string
	RoomID        int64
	PaymentStatus string
	Status        ReservationStatus
	CheckIn       time.Time
	CheckOut      time.Time
	TotalCost     float64
	CreatedAt     time.Time
}

// Date normalizes t to midnight UTC so reservation dates compare and
// subtract as whole days.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Nights returns the number of whole nights between two dates.
func Nights(checkIn, checkOut time.Time) int {
	return int(Date(checkOut).Sub(Date(checkIn)) / (24 * time.Hour))
}

// Overlaps reports whether two half-open date ranges share at least one
// night. Back-to-back stays (one checking out the day the other checks in)
// do not overlap.
func Overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return !(!aOut.After(bIn) || !aIn.Before(bOut))
}
