package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vishnupriyaraya/hotel-reservation/internal/app"
	"github.com/vishnupriyaraya/hotel-reservation/internal/domain"
)

type fakeCatalog struct {
	rooms     []domain.Room
	available []domain.Room
	created   domain.Room
	err       error
}

func (f *fakeCatalog) ListRooms(_ context.Context) ([]domain.Room, error) {
	return f.rooms, f.err
}

func (f *fakeCatalog) ListAvailableRooms(_ context.Context) ([]domain.Room, error) {
	return f.available, f.err
}

func (f *fakeCatalog) CreateRoom(_ context.Context, in app.CreateRoomInput) (domain.Room, error) {
	if f.err != nil {
		return domain.Room{}, f.err
	}
	f.created = domain.Room{ID: 4, Type: in.Type, Price: in.Price, Available: true}
	return f.created, nil
}

func TestHandleRooms(t *testing.T) {
	t.Parallel()

	catalog := func() *fakeCatalog {
		return &fakeCatalog{
			rooms: []domain.Room{
				{ID: 1, Type: "Standard", Price: 1000, Available: false},
				{ID: 2, Type: "Deluxe", Price: 2000, Available: true},
			},
			available: []domain.Room{
				{ID: 2, Type: "Deluxe", Price: 2000, Available: true},
			},
		}
	}

	t.Run("lists all rooms", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/rooms", nil)
		rec := httptest.NewRecorder()

		HandleRooms(catalog()).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
		var resp []roomResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if len(resp) != 2 {
			t.Fatalf("expected 2 rooms, got %d", len(resp))
		}
	})

	t.Run("lists only flagged-available rooms", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/rooms?available=true", nil)
		rec := httptest.NewRecorder()

		HandleRooms(catalog()).ServeHTTP(rec, req)

		var resp []roomResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if len(resp) != 1 || resp[0].RoomID != 2 {
			t.Fatalf("expected only room 2, got %+v", resp)
		}
	})

	t.Run("creates a room", func(t *testing.T) {
		body := []byte(`{"type":"Suite","price":3000}`)
		req := httptest.NewRequest(http.MethodPost, "/rooms", bytes.NewBuffer(body))
		rec := httptest.NewRecorder()

		HandleRooms(catalog()).ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected status 201, got %d", rec.Code)
		}
		var resp roomResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.Type != "Suite" || !resp.Available {
			t.Fatalf("unexpected room: %+v", resp)
		}
	})

	t.Run("validation errors are 400", func(t *testing.T) {
		svc := catalog()
		svc.err = domain.ErrRoomTypeRequired

		body := []byte(`{"type":"","price":3000}`)
		req := httptest.NewRequest(http.MethodPost, "/rooms", bytes.NewBuffer(body))
		rec := httptest.NewRecorder()

		HandleRooms(svc).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", rec.Code)
		}
	})

	t.Run("delete is method not allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/rooms", nil)
		rec := httptest.NewRecorder()

		HandleRooms(catalog()).ServeHTTP(rec, req)

		if rec.Code != http.StatusMethodNotAllowed {
			t.Fatalf("expected status 405, got %d", rec.Code)
		}
	})
}
