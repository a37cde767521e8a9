package domain

import "errors"

var (
	ErrInvalidID            = errors.New("invalid id")
	ErrInvalidStay          = errors.New("check-out must be after check-in")
	ErrCustomerNameRequired = errors.New("customer name required")
	ErrRoomTypeRequired     = errors.New("room type required")
	ErrInvalidPrice         = errors.New("invalid price")
	ErrRoomNotFound         = errors.New("room not found")
	ErrReservationNotFound  = errors.New("reservation not found")
	ErrDatesUnavailable     = errors.New("room already booked for those dates")
)
