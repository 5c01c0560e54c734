package events

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"log/slog"

	chimw "github.com/go-chi/chi/v5/middleware"

	"eventscout/internal/domain"
	"eventscout/pkg/e"
)

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	switch {
	case errors.Is(err, e.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, e.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, e.ErrDeadline), errors.Is(err, e.ErrCanceled):
		status = http.StatusGatewayTimeout
	case errors.Is(err, e.ErrBackend), errors.Is(err, e.ErrBackendRejected):
		status = http.StatusBadGateway
	default:
		status = http.StatusInternalServerError
	}
	h.log(r).Error("request failed", slog.Int("status", status), slog.Any("error", err))
	h.writeJSON(w, status, map[string]string{"error": err.Error()})
}

// parseObserver reads the optional lat/lng pair. Anything short of a fully
// specified, parseable, in-range pair means "no observer" — never (0,0).
func parseObserver(r *http.Request) *domain.Coordinate {
	rawLat := r.URL.Query().Get("lat")
	rawLng := r.URL.Query().Get("lng")
	if rawLat == "" || rawLng == "" {
		return nil
	}
	lat, err := strconv.ParseFloat(rawLat, 64)
	if err != nil {
		return nil
	}
	lng, err := strconv.ParseFloat(rawLng, 64)
	if err != nil {
		return nil
	}
	c := domain.Coordinate{Lat: lat, Lng: lng}
	if !c.Valid() {
		return nil
	}
	return &c
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("json encode failed", slog.Any("error", err))
	}
}
