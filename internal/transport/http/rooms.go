package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/vishnupriyaraya/hotel-reservation/internal/app"
	"github.com/vishnupriyaraya/hotel-reservation/internal/domain"
)

// RoomCatalog is the minimal interface needed for the room endpoints.
type RoomCatalog interface {
	ListRooms(ctx context.Context) ([]domain.Room, error)
	ListAvailableRooms(ctx context.Context) ([]domain.Room, error)
	CreateRoom(ctx context.Context, in app.CreateRoomInput) (domain.Room, error)
}

// HandleRooms returns an HTTP handler for listing and creating rooms.
func HandleRooms(svc RoomCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			var rooms []domain.Room
			var err error
			if r.URL.Query().Get("available") == "true" {
				rooms, err = svc.ListAvailableRooms(r.Context())
			} else {
				rooms, err = svc.ListRooms(r.Context())
			}
			if err != nil {
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
				return
			}

			resp := make([]roomResponse, 0, len(rooms))
			for _, room := range rooms {
				resp = append(resp, newRoomResponse(room))
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(resp)
			return
		case http.MethodPost:
			var req createRoomRequest
			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
				return
			}

			room, err := svc.CreateRoom(r.Context(), app.CreateRoomInput{
				Type:  req.Type,
				Price: req.Price,
			})
			if err != nil {
				writeDomainError(w, err)
				return
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(newRoomResponse(room))
			return
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}
	}
}

type createRoomRequest struct {
	Type  string  `json:"type"`
	Price float64 `json:"price"`
}

type roomResponse struct {
	RoomID    int64   `json:"room_id"`
	Type      string  `json:"type"`
	Price     float64 `json:"price"`
	Available bool    `json:"available"`
}

func newRoomResponse(room domain.Room) roomResponse {
	return roomResponse{
		RoomID:    room.ID,
		Type:      room.Type,
		Price:     room.Price,
		Available: room.Available,
	}
}
