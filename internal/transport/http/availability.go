package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/vishnupriyaraya/hotel-reservation/internal/app"
)

// AvailabilityChecker is the minimal interface needed for the availability
// endpoint.
type AvailabilityChecker interface {
	CheckAvailability(ctx context.Context, checkIn, checkOut time.Time) ([]app.RoomAvailability, error)
	CheckRoom(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (app.RoomAvailability, error)
}

// HandleAvailability returns an HTTP handler answering date-range
// availability queries, for the whole catalog or a single room.
func HandleAvailability(svc AvailabilityChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		q := r.URL.Query()
		checkIn, ok := parseDate(q.Get("check_in"))
		if !ok {
			writeError(w, http.StatusBadRequest, codeInvalidDate, "check_in must be YYYY-MM-DD")
			return
		}
		checkOut, ok := parseDate(q.Get("check_out"))
		if !ok {
			writeError(w, http.StatusBadRequest, codeInvalidDate, "check_out must be YYYY-MM-DD")
			return
		}

		var (
			result []app.RoomAvailability
			err    error
		)
		if raw := q.Get("room_id"); raw != "" {
			roomID, parseErr := strconv.ParseInt(raw, 10, 64)
			if parseErr != nil {
				writeError(w, http.StatusBadRequest, codeInvalidID, "room_id must be an integer")
				return
			}
			var one app.RoomAvailability
			one, err = svc.CheckRoom(r.Context(), roomID, checkIn, checkOut)
			result = []app.RoomAvailability{one}
		} else {
			result, err = svc.CheckAvailability(r.Context(), checkIn, checkOut)
		}
		if err != nil {
			writeDomainError(w, err)
			return
		}

		resp := availabilityResponse{
			CheckIn:  formatDate(checkIn),
			CheckOut: formatDate(checkOut),
			Rooms:    make([]roomAvailabilityResponse, 0, len(result)),
		}
		for _, ra := range result {
			resp.Rooms = append(resp.Rooms, roomAvailabilityResponse{
				RoomID:    ra.Room.ID,
				Type:      ra.Room.Type,
				Price:     ra.Room.Price,
				Available: ra.Free,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

type availabilityResponse struct {
	CheckIn  string                     `json:"check_in"`
	CheckOut string                     `json:"check_out"`
	Rooms    []roomAvailabilityResponse `json:"rooms"`
}

type roomAvailabilityResponse struct {
	RoomID    int64   `json:"room_id"`
	Type      string  `json:"type"`
	Price     float64 `json:"price"`
	Available bool    `json:"available"`
}
