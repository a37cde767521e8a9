package app

import (
	"context"

	"github.com/vishnupriyaraya/hotel-reservation/internal/domain"
)

type ReportRepository interface {
	ListReservations(ctx context.Context) ([]domain.Reservation, error)
	ListReservationsByRoom(ctx context.Context, roomID int64) ([]domain.Reservation, error)
	ListRooms(ctx context.Context) ([]domain.Room, error)
}

// ReportService derives read-only views of committed state. It never
// mutates anything.
type ReportService struct {
	repo ReportRepository
}

func NewReportService(repo ReportRepository) *ReportService {
	return &ReportService{repo: repo}
}

// ListReservations returns every reservation, booked and cancelled,
// ordered by id.
func (s *ReportService) ListReservations(ctx context.Context) ([]domain.Reservation, error) {
	return s.repo.ListReservations(ctx)
}

// RoomScheduleEntry is one room's booking history ordered by check-in date.
// An empty Reservations slice means the room is available for all dates.
type RoomScheduleEntry struct {
	Room         domain.Room
	Reservations []domain.Reservation
}

func (s *ReportService) RoomSchedule(ctx context.Context) ([]RoomScheduleEntry, error) {
	rooms, err := s.repo.ListRooms(ctx)
	if err != nil {
		return nil, err
	}

	schedule := make([]RoomScheduleEntry, 0, len(rooms))
	for _, room := range rooms {
		reservations, err := s.repo.ListReservationsByRoom(ctx, room.ID)
		if err != nil {
			return nil, err
		}
		schedule = append(schedule, RoomScheduleEntry{
			Room:         room,
			Reservations: reservations,
		})
	}
	return schedule, nil
}
