package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/vishnupriyaraya/hotel-reservation/internal/app"
	"github.com/vishnupriyaraya/hotel-reservation/internal/domain"
)

// RoomBooker is the minimal interface needed to create a booking.
type RoomBooker interface {
	Book(ctx context.Context, in app.BookInput) (domain.Reservation, error)
}

// BookingCanceller is the minimal interface needed to cancel a booking.
type BookingCanceller interface {
	Cancel(ctx context.Context, reservationID int64) error
}

// ReservationLister is the minimal interface needed to list reservations.
type ReservationLister interface {
	ListReservations(ctx context.Context) ([]domain.Reservation, error)
}

// HandleBookings returns an HTTP handler for creating and listing bookings.
func HandleBookings(booker RoomBooker, lister ReservationLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			reservations, err := lister.ListReservations(r.Context())
			if err != nil {
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
				return
			}
			resp := make([]reservationResponse, 0, len(reservations))
			for _, res := range reservations {
				resp = append(resp, newReservationResponse(res))
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(resp)
			return
		case http.MethodPost:
			var req createBookingRequest
			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
				return
			}

			checkIn, ok := parseDate(req.CheckIn)
			if !ok {
				writeError(w, http.StatusBadRequest, codeInvalidDate, "check_in must be YYYY-MM-DD")
				return
			}
			checkOut, ok := parseDate(req.CheckOut)
			if !ok {
				writeError(w, http.StatusBadRequest, codeInvalidDate, "check_out must be YYYY-MM-DD")
				return
			}

			res, err := booker.Book(r.Context(), app.BookInput{
				CustomerName: req.CustomerName,
				RoomID:       req.RoomID,
				CheckIn:      checkIn,
				CheckOut:     checkOut,
			})
			if err != nil {
				writeDomainError(w, err)
				return
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(newReservationResponse(res))
			return
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}
	}
}

// HandleCancelBooking returns an HTTP handler for POST /bookings/{id}/cancel.
func HandleCancelBooking(svc BookingCanceller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		id, ok := parseCancelBookingPath(r.URL.Path)
		if !ok {
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
			return
		}

		if err := svc.Cancel(r.Context(), id); err != nil {
			writeDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(cancelBookingResponse{
			ReservationID: id,
			Status:        string(domain.ReservationStatusCancelled),
		})
	}
}

func parseCancelBookingPath(path string) (int64, bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 3 {
		return 0, false
	}
	if parts[0] != "bookings" || parts[2] != "cancel" {
		return 0, false
	}
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

type createBookingRequest struct {
	CustomerName string `json:"customer_name"`
	RoomID       int64  `json:"room_id"`
	CheckIn      string `json:"check_in"`
	CheckOut     string `json:"check_out"`
}

type reservationResponse struct {
	ID            int64   `json:"id"`
	CustomerName  string  `json:"customer_name"`
	RoomID        int64   `json:"room_id"`
	PaymentStatus string  `json:"payment_status"`
	Status        string  `json:"status"`
	CheckIn       string  `json:"check_in"`
	CheckOut      string  `json:"check_out"`
	TotalCost     float64 `json:"total_cost"`
}

type cancelBookingResponse struct {
	ReservationID int64  `json:"reservation_id"`
	Status        string `json:"status"`
}

func newReservationResponse(res domain.Reservation) reservationResponse {
	return reservationResponse{
		ID:            res.ID,
		CustomerName:  res.CustomerName,
		RoomID:        res.RoomID,
		PaymentStatus: res.PaymentStatus,
		Status:        string(res.Status),
		CheckIn:       formatDate(res.CheckIn),
		CheckOut:      formatDate(res.CheckOut),
		TotalCost:     res.TotalCost,
	}
}
