package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/vishnupriyaraya/hotel-reservation/internal/domain"
	"github.com/vishnupriyaraya/hotel-reservation/internal/testutil"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBookingRepository(t *testing.T) {
	pool := testutil.NewTestPool(t)
	repo := NewBookingRepository(pool)
	testutil.ApplyMigrations(t, context.Background(), pool)

	t.Run("GetRoomForUpdate returns room and ErrRoomNotFound", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		roomID := testutil.InsertRoom(t, ctx, pool, "Standard", 1000)

		err := repo.WithTx(ctx, func(txCtx context.Context) error {
			room, err := repo.GetRoomForUpdate(txCtx, roomID)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if room.ID != roomID || room.Type != "Standard" || room.Price != 1000 {
				t.Fatalf("unexpected room: %+v", room)
			}

			if _, err := repo.GetRoomForUpdate(txCtx, roomID+100); err != domain.ErrRoomNotFound {
				t.Fatalf("expected ErrRoomNotFound, got %v", err)
			}
			return nil
		})
		if err != nil {
			t.Fatalf("tx: %v", err)
		}
	})

	t.Run("HasOverlap follows half-open interval semantics", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		roomID := testutil.InsertRoom(t, ctx, pool, "Standard", 1000)
		testutil.InsertReservation(t, ctx, pool, domain.Reservation{
			CustomerName:  "Alice",
			RoomID:        roomID,
			PaymentStatus: domain.PaymentStatusPaid,
			Status:        domain.ReservationStatusBooked,
			CheckIn:       date(2024, 1, 10),
			CheckOut:      date(2024, 1, 12),
			TotalCost:     2000,
		})

		for _, tc := range []struct {
			name    string
			in, out time.Time
			overlap bool
		}{
			{"identical", date(2024, 1, 10), date(2024, 1, 12), true},
			{"straddles start", date(2024, 1, 9), date(2024, 1, 11), true},
			{"straddles end", date(2024, 1, 11), date(2024, 1, 13), true},
			{"contains", date(2024, 1, 9), date(2024, 1, 13), true},
			{"back-to-back after", date(2024, 1, 12), date(2024, 1, 14), false},
			{"back-to-back before", date(2024, 1, 8), date(2024, 1, 10), false},
			{"disjoint", date(2024, 2, 1), date(2024, 2, 3), false},
		} {
			got, err := repo.HasOverlap(ctx, roomID, tc.in, tc.out)
			if err != nil {
				t.Fatalf("%s: %v", tc.name, err)
			}
			if got != tc.overlap {
				t.Fatalf("%s: expected overlap=%v, got %v", tc.name, tc.overlap, got)
			}
		}
	})

	t.Run("cancelled reservations never overlap", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		roomID := testutil.InsertRoom(t, ctx, pool, "Standard", 1000)
		testutil.InsertReservation(t, ctx, pool, domain.Reservation{
			CustomerName:  "Alice",
			RoomID:        roomID,
			PaymentStatus: domain.PaymentStatusPaid,
			Status:        domain.ReservationStatusCancelled,
			CheckIn:       date(2024, 1, 10),
			CheckOut:      date(2024, 1, 12),
			TotalCost:     2000,
		})

		got, err := repo.HasOverlap(ctx, roomID, date(2024, 1, 10), date(2024, 1, 12))
		if err != nil {
			t.Fatalf("overlap: %v", err)
		}
		if got {
			t.Fatalf("expected no overlap over cancelled reservation")
		}
	})

	t.Run("CreateReservation assigns id and persists dates", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		roomID := testutil.InsertRoom(t, ctx, pool, "Deluxe", 2000)

		var id int64
		err := repo.WithTx(ctx, func(txCtx context.Context) error {
			var err error
			id, err = repo.CreateReservation(txCtx, domain.Reservation{
				CustomerName:  "Bob",
				RoomID:        roomID,
				PaymentStatus: domain.PaymentStatusPaid,
				Status:        domain.ReservationStatusBooked,
				CheckIn:       date(2024, 3, 1),
				CheckOut:      date(2024, 3, 4),
				TotalCost:     6000,
				CreatedAt:     time.Now().UTC(),
			})
			return err
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if id == 0 {
			t.Fatalf("expected assigned id")
		}

		var checkIn, checkOut time.Time
		var total float64
		if err := pool.QueryRow(ctx,
			`SELECT checkin_date, checkout_date, total_cost FROM reservations WHERE id = $1`, id,
		).Scan(&checkIn, &checkOut, &total); err != nil {
			t.Fatalf("query reservation: %v", err)
		}
		if !checkIn.Equal(date(2024, 3, 1)) || !checkOut.Equal(date(2024, 3, 4)) {
			t.Fatalf("unexpected dates %v..%v", checkIn, checkOut)
		}
		if total != 6000 {
			t.Fatalf("expected total 6000, got %v", total)
		}
	})

	t.Run("CreateReservation rejects unknown room", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		err := repo.WithTx(ctx, func(txCtx context.Context) error {
			_, err := repo.CreateReservation(txCtx, domain.Reservation{
				CustomerName:  "Bob",
				RoomID:        999,
				PaymentStatus: domain.PaymentStatusPaid,
				Status:        domain.ReservationStatusBooked,
				CheckIn:       date(2024, 3, 1),
				CheckOut:      date(2024, 3, 4),
				TotalCost:     6000,
				CreatedAt:     time.Now().UTC(),
			})
			return err
		})
		if err != domain.ErrRoomNotFound {
			t.Fatalf("expected ErrRoomNotFound, got %v", err)
		}
	})

	t.Run("cancel flow mutates status and flag", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		roomID := testutil.InsertRoom(t, ctx, pool, "Standard", 1000)
		resID := testutil.InsertReservation(t, ctx, pool, domain.Reservation{
			CustomerName:  "Alice",
			RoomID:        roomID,
			PaymentStatus: domain.PaymentStatusPaid,
			Status:        domain.ReservationStatusBooked,
			CheckIn:       date(2024, 1, 10),
			CheckOut:      date(2024, 1, 12),
			TotalCost:     2000,
		})

		err := repo.WithTx(ctx, func(txCtx context.Context) error {
			res, err := repo.GetBookedReservationForUpdate(txCtx, resID)
			if err != nil {
				t.Fatalf("get reservation: %v", err)
			}
			if res.RoomID != roomID {
				t.Fatalf("unexpected room id %d", res.RoomID)
			}
			if err := repo.UpdateReservationStatus(txCtx, resID, domain.ReservationStatusCancelled); err != nil {
				t.Fatalf("update status: %v", err)
			}
			return repo.SetRoomAvailability(txCtx, roomID, true)
		})
		if err != nil {
			t.Fatalf("tx: %v", err)
		}

		// A cancelled reservation no longer qualifies for the booked lookup.
		err = repo.WithTx(ctx, func(txCtx context.Context) error {
			_, err := repo.GetBookedReservationForUpdate(txCtx, resID)
			return err
		})
		if err != domain.ErrReservationNotFound {
			t.Fatalf("expected ErrReservationNotFound, got %v", err)
		}

		var available bool
		if err := pool.QueryRow(ctx, `SELECT is_available FROM rooms WHERE room_id = $1`, roomID).Scan(&available); err != nil {
			t.Fatalf("query room: %v", err)
		}
		if !available {
			t.Fatalf("expected room flagged available")
		}
	})

	t.Run("rollback leaves no partial state", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		roomID := testutil.InsertRoom(t, ctx, pool, "Standard", 1000)

		wantErr := domain.ErrDatesUnavailable
		err := repo.WithTx(ctx, func(txCtx context.Context) error {
			if _, err := repo.CreateReservation(txCtx, domain.Reservation{
				CustomerName:  "Ghost",
				RoomID:        roomID,
				PaymentStatus: domain.PaymentStatusPaid,
				Status:        domain.ReservationStatusBooked,
				CheckIn:       date(2024, 5, 1),
				CheckOut:      date(2024, 5, 3),
				TotalCost:     2000,
				CreatedAt:     time.Now().UTC(),
			}); err != nil {
				return err
			}
			if err := repo.SetRoomAvailability(txCtx, roomID, false); err != nil {
				return err
			}
			return wantErr
		})
		if err != wantErr {
			t.Fatalf("expected injected error, got %v", err)
		}

		var count int
		if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM reservations`).Scan(&count); err != nil {
			t.Fatalf("count reservations: %v", err)
		}
		if count != 0 {
			t.Fatalf("expected rollback to discard the insert, got %d rows", count)
		}

		var available bool
		if err := pool.QueryRow(ctx, `SELECT is_available FROM rooms WHERE room_id = $1`, roomID).Scan(&available); err != nil {
			t.Fatalf("query room: %v", err)
		}
		if !available {
			t.Fatalf("expected rollback to discard the flag flip")
		}
	})
}
