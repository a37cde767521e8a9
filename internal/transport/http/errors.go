package http

import (
	"encoding/json"
	"net/http"

	"github.com/vishnupriyaraya/hotel-reservation/internal/domain"
)

const (
	codeMethodNotAllowed     = "method_not_allowed"
	codeNotFound             = "not_found"
	codeInvalidRequestBody   = "invalid_request_body"
	codeInvalidDate          = "invalid_date"
	codeInvalidStay          = "invalid_stay"
	codeInvalidID            = "invalid_id"
	codeInvalidPrice         = "invalid_price"
	codeCustomerNameRequired = "customer_name_required"
	codeRoomTypeRequired     = "room_type_required"
	codeRoomNotFound         = "room_not_found"
	codeReservationNotFound  = "reservation_not_found"
	codeDatesUnavailable     = "dates_unavailable"
	codeTooManyRequests      = "too_many_requests"
	codeForbidden            = "forbidden"
	codeInternalError        = "internal_error"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(errorResponse{
		Error: msg,
		Code:  code,
	})
	if err != nil {
		_, _ = w.Write([]byte(`{"error":"internal error","code":"internal_error"}`))
		return
	}
	_, _ = w.Write(payload)
}

// writeDomainError maps the engine's typed business errors onto HTTP
// statuses: validation 400, not found 404, conflict 409, everything else 500.
func writeDomainError(w http.ResponseWriter, err error) {
	switch err {
	case domain.ErrInvalidID:
		writeError(w, http.StatusBadRequest, codeInvalidID, err.Error())
	case domain.ErrInvalidStay:
		writeError(w, http.StatusBadRequest, codeInvalidStay, err.Error())
	case domain.ErrCustomerNameRequired:
		writeError(w, http.StatusBadRequest, codeCustomerNameRequired, err.Error())
	case domain.ErrRoomTypeRequired:
		writeError(w, http.StatusBadRequest, codeRoomTypeRequired, err.Error())
	case domain.ErrInvalidPrice:
		writeError(w, http.StatusBadRequest, codeInvalidPrice, err.Error())
	case domain.ErrRoomNotFound:
		writeError(w, http.StatusNotFound, codeRoomNotFound, err.Error())
	case domain.ErrReservationNotFound:
		writeError(w, http.StatusNotFound, codeReservationNotFound, err.Error())
	case domain.ErrDatesUnavailable:
		writeError(w, http.StatusConflict, codeDatesUnavailable, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}
