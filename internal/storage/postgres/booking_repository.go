package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vishnupriyaraya/hotel-reservation/internal/domain"
)

// BookingRepository covers the rooms and reservations rows the booking and
// cancellation transactions touch.
type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

func (r *BookingRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return withTx(ctx, r.pool, fn)
}

// GetRoomForUpdate locks the room row for the rest of the transaction,
// serializing the overlap check against concurrent bookings of the same room.
func (r *BookingRepository) GetRoomForUpdate(ctx context.Context, roomID int64) (domain.Room, error) {
	const query = `
SELECT room_id, type, price, is_available, created_at
FROM rooms
WHERE room_id = $1
FOR UPDATE`

	var room domain.Room
	err := r.queryRow(ctx, query, roomID).
		Scan(&room.ID, &room.Type, &room.Price, &room.Available, &room.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.Room{}, domain.ErrRoomNotFound
		}
		return domain.Room{}, fmt.Errorf("get room: %w", err)
	}
	return room, nil
}

// HasOverlap reports whether any booked reservation for the room intersects
// the half-open [checkIn, checkOut) range. Cancelled rows never block.
func (r *BookingRepository) HasOverlap(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (bool, error) {
	const query = `
SELECT EXISTS (
	SELECT 1 FROM reservations
	WHERE room_id = $1 AND status = 'booked'
	  AND NOT (checkout_date <= $2 OR checkin_date >= $3)
)`

	var overlap bool
	if err := r.queryRow(ctx, query, roomID, checkIn, checkOut).Scan(&overlap); err != nil {
		return false, fmt.Errorf("check overlap: %w", err)
	}
	return overlap, nil
}

func (r *BookingRepository) CreateReservation(ctx context.Context, res domain.Reservation) (int64, error) {
	const stmt = `
INSERT INTO reservations (customer_name, room_id, payment_status, status, checkin_date, checkout_date, total_cost, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`

	var id int64
	err := r.queryRow(ctx, stmt,
		res.CustomerName,
		res.RoomID,
		res.PaymentStatus,
		res.Status,
		res.CheckIn,
		res.CheckOut,
		res.TotalCost,
		res.CreatedAt,
	).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, domain.ErrRoomNotFound
		}
		if isCheckViolation(err) {
			return 0, domain.ErrInvalidStay
		}
		return 0, fmt.Errorf("create reservation: %w", err)
	}
	return id, nil
}

// GetBookedReservationForUpdate locks a reservation that is still booked.
// Unknown ids and already-cancelled reservations both report not found.
func (r *BookingRepository) GetBookedReservationForUpdate(ctx context.Context, id int64) (domain.Reservation, error) {
	const query = `
SELECT id, customer_name, room_id, payment_status, status, checkin_date, checkout_date, total_cost, created_at
FROM reservations
WHERE id = $1 AND status = 'booked'
FOR UPDATE`

	var res domain.Reservation
	var status string
	err := r.queryRow(ctx, query, id).Scan(
		&res.ID,
		&res.CustomerName,
		&res.RoomID,
		&res.PaymentStatus,
		&status,
		&res.CheckIn,
		&res.CheckOut,
		&res.TotalCost,
		&res.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.Reservation{}, domain.ErrReservationNotFound
		}
		return domain.Reservation{}, fmt.Errorf("get reservation: %w", err)
	}
	res.Status = domain.ReservationStatus(status)
	return res, nil
}

func (r *BookingRepository) UpdateReservationStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	const stmt = `UPDATE reservations SET status = $2 WHERE id = $1`

	tag, err := r.exec(ctx, stmt, id, status)
	if err != nil {
		return fmt.Errorf("update reservation status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrReservationNotFound
	}
	return nil
}

func (r *BookingRepository) SetRoomAvailability(ctx context.Context, roomID int64, available bool) error {
	const stmt = `UPDATE rooms SET is_available = $2 WHERE room_id = $1`

	tag, err := r.exec(ctx, stmt, roomID, available)
	if err != nil {
		return fmt.Errorf("set room availability: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRoomNotFound
	}
	return nil
}

func (r *BookingRepository) exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Exec(ctx, sql, args...)
	}
	return r.pool.Exec(ctx, sql, args...)
}

func (r *BookingRepository) queryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if tx := txFromContext(ctx); tx != nil {
		return tx.QueryRow(ctx, sql, args...)
	}
	return r.pool.QueryRow(ctx, sql, args...)
}
