package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Стабильные коды ошибок, отдаваемые клиентам.
// Наружу уходит только пара (kind, message), без стектрейсов
// и внутренних идентификаторов.
const (
	KindInvalidRequest        = "invalid_request"
	KindInvalidDate           = "invalid_date"
	KindInvalidTime           = "invalid_time"
	KindInvalidDuration       = "invalid_duration"
	KindNotFound              = "not_found"
	KindSlotNoLongerAvailable = "slot_no_longer_available"
	KindCalendarUnavailable   = "calendar_unavailable"
	KindGatewayTimeout        = "gateway_timeout"
	KindCalendarWriteFailed   = "calendar_write_failed"
	KindStoreWriteFailed      = "store_write_failed"
	KindCompensationFailed    = "compensation_failed"
	KindInternalError         = "internal_error"
)

// ErrorResponse тело ошибки API
type ErrorResponse struct {
	ErrorKind string `json:"errorKind"`
	Message   string `json:"message"`
}

// DecodeJSON декодирует тело запроса, отклоняя неизвестные поля
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}

// RespondJSON пишет успешный JSON ответ
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// RespondError пишет ошибку со стабильным кодом и человекочитаемым сообщением
func RespondError(w http.ResponseWriter, status int, kind, message string) {
	RespondJSON(w, status, ErrorResponse{ErrorKind: kind, Message: message})
}

// RespondBadRequest пишет 400
func RespondBadRequest(w http.ResponseWriter, kind, message string) {
	RespondError(w, http.StatusBadRequest, kind, message)
}

// RespondNotFound пишет 404
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, KindNotFound, message)
}

// RespondConflict пишет 409
func RespondConflict(w http.ResponseWriter, kind, message string) {
	RespondError(w, http.StatusConflict, kind, message)
}

// RespondBadGateway пишет 502
func RespondBadGateway(w http.ResponseWriter, kind, message string) {
	RespondError(w, http.StatusBadGateway, kind, message)
}

// RespondGatewayTimeout пишет 504
func RespondGatewayTimeout(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusGatewayTimeout, KindGatewayTimeout, message)
}

// RespondInternalError пишет 500 без деталей
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, KindInternalError, "внутренняя ошибка сервиса")
}
