package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/vishnupriyaraya/hotel-reservation/internal/app"
)

// ScheduleReporter is the minimal interface needed for the schedule endpoint.
type ScheduleReporter interface {
	RoomSchedule(ctx context.Context) ([]app.RoomScheduleEntry, error)
}

// HandleRoomSchedule returns an HTTP handler for the per-room booking
// schedule report.
func HandleRoomSchedule(svc ScheduleReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		schedule, err := svc.RoomSchedule(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return
		}

		resp := make([]roomScheduleResponse, 0, len(schedule))
		for _, entry := range schedule {
			item := roomScheduleResponse{
				RoomID:       entry.Room.ID,
				Type:         entry.Room.Type,
				Price:        entry.Room.Price,
				Reservations: make([]scheduleReservation, 0, len(entry.Reservations)),
			}
			for _, res := range entry.Reservations {
				item.Reservations = append(item.Reservations, scheduleReservation{
					Status:   string(res.Status),
					CheckIn:  formatDate(res.CheckIn),
					CheckOut: formatDate(res.CheckOut),
				})
			}
			resp = append(resp, item)
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

type roomScheduleResponse struct {
	RoomID       int64                 `json:"room_id"`
	Type         string                `json:"type"`
	Price        float64               `json:"price"`
	Reservations []scheduleReservation `json:"reservations"`
}

type scheduleReservation struct {
	Status   string `json:"status"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}
