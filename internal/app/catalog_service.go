package app

import (
	"context"
	"strings"
	"time"

	"github.com/vishnupriyaraya/hotel-reservation/internal/domain"
)

type CatalogRepository interface {
	ListRooms(ctx context.Context) ([]domain.Room, error)
	ListAvailableRooms(ctx context.Context) ([]domain.Room, error)
	GetRoom(ctx context.Context, roomID int64) (domain.Room, error)
	CreateRoom(ctx context.Context, room domain.Room) (int64, error)
	HasOverlap(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (bool, error)
}

type CatalogService struct {
	repo CatalogRepository
}

func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// RoomAvailability pairs a room with whether it is free for a requested
// date range, derived from the overlap check over booked reservations.
type RoomAvailability struct {
	Room domain.Room
	Free bool
}

func (s *CatalogService) ListRooms(ctx context.Context) ([]domain.Room, error) {
	return s.repo.ListRooms(ctx)
}

// ListAvailableRooms returns the legacy flag-based listing of currently
// free rooms.
func (s *CatalogService) ListAvailableRooms(ctx context.Context) ([]domain.Room, error) {
	return s.repo.ListAvailableRooms(ctx)
}

// CheckAvailability reports, for every room in the catalog, whether the
// requested range is free of booked reservations.
func (s *CatalogService) CheckAvailability(ctx context.Context, checkIn, checkOut time.Time) ([]RoomAvailability, error) {
	in, out, err := validateStay(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	rooms, err := s.repo.ListRooms(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]RoomAvailability, 0, len(rooms))
	for _, room := range rooms {
		overlap, err := s.repo.HasOverlap(ctx, room.ID, in, out)
		if err != nil {
			return nil, err
		}
		result = append(result, RoomAvailability{Room: room, Free: !overlap})
	}
	return result, nil
}

// CheckRoom is the single-room variant of CheckAvailability.
func (s *CatalogService) CheckRoom(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (RoomAvailability, error) {
	if roomID <= 0 {
		return RoomAvailability{}, domain.ErrInvalidID
	}
	in, out, err := validateStay(checkIn, checkOut)
	if err != nil {
		return RoomAvailability{}, err
	}

	room, err := s.repo.GetRoom(ctx, roomID)
	if err != nil {
		return RoomAvailability{}, err
	}
	overlap, err := s.repo.HasOverlap(ctx, room.ID, in, out)
	if err != nil {
		return RoomAvailability{}, err
	}
	return RoomAvailability{Room: room, Free: !overlap}, nil
}

type CreateRoomInput struct {
	Type  string
	Price float64
}

// CreateRoom grows the catalog. New rooms start available.
func (s *CatalogService) CreateRoom(ctx context.Context, in CreateRoomInput) (domain.Room, error) {
	roomType := strings.TrimSpace(in.Type)
	if roomType == "" {
		return domain.Room{}, domain.ErrRoomTypeRequired
	}
	if in.Price < 0 {
		return domain.Room{}, domain.ErrInvalidPrice
	}

	room := domain.Room{
		Type:      roomType,
		Price:     in.Price,
		Available: true,
	}
	id, err := s.repo.CreateRoom(ctx, room)
	if err != nil {
		return domain.Room{}, err
	}
	room.ID = id
	return room, nil
}

func validateStay(checkIn, checkOut time.Time) (time.Time, time.Time, error) {
	in := domain.Date(checkIn)
	out := domain.Date(checkOut)
	if !out.After(in) {
		return time.Time{}, time.Time{}, domain.ErrInvalidStay
	}
	return in, out, nil
}
