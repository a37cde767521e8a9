package app

import (
	"context"
	"strings"
	"time"

	"github.com/vishnupriyaraya/hotel-reservation/internal/clock"
	"github.com/vishnupriyaraya/hotel-reservation/internal/domain"
)

type BookingRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	GetRoomForUpdate(ctx context.Context, roomID int64) (domain.Room, error)
	HasOverlap(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (bool, error)
	CreateReservation(ctx context.Context, res domain.Reservation) (int64, error)
	GetBookedReservationForUpdate(ctx context.Context, id int64) (domain.Reservation, error)
	UpdateReservationStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
	SetRoomAvailability(ctx context.Context, roomID int64, available bool) error
}

type BookingService struct {
	repo  BookingRepository
	clock clock.Clock
}

func NewBookingService(repo BookingRepository, clk clock.Clock) *BookingService {
	return &BookingService{
		repo:  repo,
		clock: clk,
	}
}

type BookInput struct {
	CustomerName string
	RoomID       int64
	CheckIn      time.Time
	CheckOut     time.Time
}

// Book creates a reservation for the half-open [CheckIn, CheckOut) range.
// The room row is locked, the overlap check runs, and the insert plus the
// availability-flag flip commit as one transaction, so either all of it
// persists or none of it does.
func (s *BookingService) Book(ctx context.Context, in BookInput) (domain.Reservation, error) {
	name := strings.TrimSpace(in.CustomerName)
	if name == "" {
		return domain.Reservation{}, domain.ErrCustomerNameRequired
	}
	if in.RoomID <= 0 {
		return domain.Reservation{}, domain.ErrInvalidID
	}

	checkIn := domain.Date(in.CheckIn)
	checkOut := domain.Date(in.CheckOut)
	if !checkOut.After(checkIn) {
		return domain.Reservation{}, domain.ErrInvalidStay
	}

	var result domain.Reservation

	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		room, err := s.repo.GetRoomForUpdate(txCtx, in.RoomID)
		if err != nil {
			return err
		}

		overlap, err := s.repo.HasOverlap(txCtx, room.ID, checkIn, checkOut)
		if err != nil {
			return err
		}
		if overlap {
			return domain.ErrDatesUnavailable
		}

		nights := domain.Nights(checkIn, checkOut)
		res := domain.Reservation{
			CustomerName:  name,
			RoomID:        room.ID,
			PaymentStatus: domain.PaymentStatusPaid,
			Status:        domain.ReservationStatusBooked,
			CheckIn:       checkIn,
			CheckOut:      checkOut,
			TotalCost:     room.Price * float64(nights),
			CreatedAt:     s.clock.Now(),
		}

		id, err := s.repo.CreateReservation(txCtx, res)
		if err != nil {
			return err
		}
		res.ID = id

		if err := s.repo.SetRoomAvailability(txCtx, room.ID, false); err != nil {
			return err
		}

		result = res
		return nil
	})
	if err != nil {
		return domain.Reservation{}, err
	}

	return result, nil
}

// Cancel marks a booked reservation cancelled and restores the room's
// availability flag in the same transaction. Unknown ids and reservations
// that are already cancelled return ErrReservationNotFound unchanged.
func (s *BookingService) Cancel(ctx context.Context, reservationID int64) error {
	if reservationID <= 0 {
		return domain.ErrInvalidID
	}

	return s.repo.WithTx(ctx, func(txCtx context.Context) error {
		res, err := s.repo.GetBookedReservationForUpdate(txCtx, reservationID)
		if err != nil {
			return err
		}

		if err := s.repo.UpdateReservationStatus(txCtx, res.ID, domain.ReservationStatusCancelled); err != nil {
			return err
		}
		return s.repo.SetRoomAvailability(txCtx, res.RoomID, true)
	})
}
