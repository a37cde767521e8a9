package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vishnupriyaraya/hotel-reservation/internal/domain"
)

// CatalogRepository serves room listings and the per-room availability query.
type CatalogRepository struct {
	pool *pgxpool.Pool
}

func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

func (r *CatalogRepository) ListRooms(ctx context.Context) ([]domain.Room, error) {
	const query = `
SELECT room_id, type, price, is_available, created_at
FROM rooms
ORDER BY room_id ASC`

	return r.listRooms(ctx, query)
}

// ListAvailableRooms returns rooms whose legacy availability flag is set.
func (r *CatalogRepository) ListAvailableRooms(ctx context.Context) ([]domain.Room, error) {
	const query = `
SELECT room_id, type, price, is_available, created_at
FROM rooms
WHERE is_available
ORDER BY room_id ASC`

	return r.listRooms(ctx, query)
}

func (r *CatalogRepository) GetRoom(ctx context.Context, roomID int64) (domain.Room, error) {
	const query = `
SELECT room_id, type, price, is_available, created_at
FROM rooms
WHERE room_id = $1`

	var room domain.Room
	err := r.pool.QueryRow(ctx, query, roomID).
		Scan(&room.ID, &room.Type, &room.Price, &room.Available, &room.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.Room{}, domain.ErrRoomNotFound
		}
		return domain.Room{}, fmt.Errorf("get room: %w", err)
	}
	return room, nil
}

func (r *CatalogRepository) CreateRoom(ctx context.Context, room domain.Room) (int64, error) {
	const stmt = `
INSERT INTO rooms (type, price, is_available)
VALUES ($1, $2, $3)
RETURNING room_id`

	var id int64
	if err := r.pool.QueryRow(ctx, stmt, room.Type, room.Price, room.Available).Scan(&id); err != nil {
		if isCheckViolation(err) {
			return 0, domain.ErrInvalidPrice
		}
		return 0, fmt.Errorf("create room: %w", err)
	}
	return id, nil
}

// HasOverlap mirrors BookingRepository.HasOverlap for read-only availability
// queries outside the booking transaction.
func (r *CatalogRepository) HasOverlap(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (bool, error) {
	const query = `
SELECT EXISTS (
	SELECT 1 FROM reservations
	WHERE room_id = $1 AND status = 'booked'
	  AND NOT (checkout_date <= $2 OR checkin_date >= $3)
)`

	var overlap bool
	if err := r.pool.QueryRow(ctx, query, roomID, checkIn, checkOut).Scan(&overlap); err != nil {
		return false, fmt.Errorf("check overlap: %w", err)
	}
	return overlap, nil
}

func (r *CatalogRepository) listRooms(ctx context.Context, query string) ([]domain.Room, error) {
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
