package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vishnupriyaraya/hotel-reservation/internal/domain"
)

// ReportRepository serves the read-only reservation listings.
type ReportRepository struct {
	pool *pgxpool.Pool
}

func NewReportRepository(pool *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{pool: pool}
}

func (r *ReportRepository) ListReservations(ctx context.Context) ([]domain.Reservation, error) {
	const query = `
SELECT id, customer_name, room_id, payment_status, status, checkin_date, checkout_date, total_cost, created_at
FROM reservations
ORDER BY id ASC`

	return r.listReservations(ctx, query)
}

// ListReservationsByRoom returns every reservation for the room, booked and
// cancelled, ordered by check-in date.
func (r *ReportRepository) ListReservationsByRoom(ctx context.Context, roomID int64) ([]domain.Reservation, error) {
	const query = `
SELECT id, customer_name, room_id, payment_status, status, checkin_date, checkout_date, total_cost, created_at
FROM reservations
WHERE room_id = $1
ORDER BY checkin_date ASC, id ASC`

	return r.listReservations(ctx, query, roomID)
}

func (r *ReportRepository) ListRooms(ctx context.Context) ([]domain.Room, error) {
	const query = `
SELECT room_id, type, price, is_available, created_at
FROM rooms
ORDER BY room_id ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()

	var rooms []domain.Room
	for rows.Next() {
		var room domain.Room
		if err := rows.Scan(&room.ID, &room.Type, &room.Price, &room.Available, &room.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		rooms = append(rooms, room)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate rooms: %w", rows.Err())
	}
	return rooms, nil
}

func (r *ReportRepository) listReservations(ctx context.Context, query string, args ...any) ([]domain.Reservation, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	var reservations []domain.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate reservations: %w", rows.Err())
	}
	return reservations, nil
}

func scanReservation(row pgx.Row) (domain.Reservation, error) {
	var res domain.Reservation
	var status string
	err := row.Scan(
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
		return domain.Reservation{}, fmt.Errorf("scan reservation: %w", err)
	}
	res.Status = domain.ReservationStatus(status)
	return res, nil
}
