package postgres

import (
	"context"
	"testing"

	"github.com/vishnupriyaraya/hotel-reservation/internal/domain"
	"github.com/vishnupriyaraya/hotel-reservation/internal/testutil"
)

func TestCatalogRepository(t *testing.T) {
	pool := testutil.NewTestPool(t)
	repo := NewCatalogRepository(pool)
	testutil.ApplyMigrations(t, context.Background(), pool)

	t.Run("ListRooms orders by room id", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		first := testutil.InsertRoom(t, ctx, pool, "Standard", 1000)
		second := testutil.InsertRoom(t, ctx, pool, "Deluxe", 2000)

		rooms, err := repo.ListRooms(ctx)
		if err != nil {
			t.Fatalf("list rooms: %v", err)
		}
		if len(rooms) != 2 {
			t.Fatalf("expected 2 rooms, got %d", len(rooms))
		}
		if rooms[0].ID != first || rooms[1].ID != second {
			t.Fatalf("unexpected order: %+v", rooms)
		}
	})

	t.Run("ListAvailableRooms filters on the flag", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		busy := testutil.InsertRoom(t, ctx, pool, "Standard", 1000)
		free := testutil.InsertRoom(t, ctx, pool, "Deluxe", 2000)
		if _, err := pool.Exec(ctx, `UPDATE rooms SET is_available = FALSE WHERE room_id = $1`, busy); err != nil {
			t.Fatalf("flag room: %v", err)
		}

		rooms, err := repo.ListAvailableRooms(ctx)
		if err != nil {
			t.Fatalf("list available rooms: %v", err)
		}
		if len(rooms) != 1 || rooms[0].ID != free {
			t.Fatalf("expected only room %d, got %+v", free, rooms)
		}
	})

	t.Run("GetRoom and CreateRoom", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		id, err := repo.CreateRoom(ctx, domain.Room{Type: "Suite", Price: 3000, Available: true})
		if err != nil {
			t.Fatalf("create room: %v", err)
		}

		room, err := repo.GetRoom(ctx, id)
		if err != nil {
			t.Fatalf("get room: %v", err)
		}
		if room.Type != "Suite" || room.Price != 3000 || !room.Available {
			t.Fatalf("unexpected room: %+v", room)
		}

		if _, err := repo.GetRoom(ctx, id+100); err != domain.ErrRoomNotFound {
			t.Fatalf("expected ErrRoomNotFound, got %v", err)
		}
	})
}
