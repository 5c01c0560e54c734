package events

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"log/slog"

	"eventscout/internal/domain"
	"eventscout/internal/query"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type EventsService interface {
	Browse(ctx context.Context, observer *domain.Coordinate, f query.Filter) ([]domain.RankedEvent, error)
	Publish(ctx context.Context, draft domain.EventDraft) (string, error)
}

type Handler struct {
	logger *slog.Logger
	Events EventsService
}

func NewHandler(logger *slog.Logger, events EventsService) *Handler {
	return &Handler{
		logger: logger,
		Events: events,
	}
}

// ListEvents serves the discovery list: GET /events?q=&category=&lat=&lng=.
// The observer coordinate is optional; requests without one (or with a
// half-specified or malformed pair) get the backend's order with no
// distances, mirroring a browser that was denied geolocation.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	f := query.Filter{
		Text:     r.URL.Query().Get("q"),
		Category: r.URL.Query().Get("category"),
	}
	if err := f.Validate(); err != nil {
		l.Warn("rejecting unknown category", slog.String("category", f.Category))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown category"})
		return
	}

	observer := parseObserver(r)

	ranked, err := h.Events.Browse(r.Context(), observer, f)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Debug("events listed",
		slog.Int("count", len(ranked)),
		slog.Bool("observer", observer != nil),
	)
	h.writeJSON(w, http.StatusOK, ranked)
}

// CreateEvent accepts a raw, string-typed draft: POST /events. Validation
// failures come back all at once as field-level errors so a form can
// highlight every problem together.
func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var draft domain.EventDraft

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&draft); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	id, err := h.Events.Publish(r.Context(), draft)
	if err != nil {
		var failures domain.ValidationFailures
		if errors.As(err, &failures) {
			l.Info("draft rejected", slog.Int("failures", len(failures)))
			h.writeJSON(w, http.StatusBadRequest, map[string]any{"errors": failures})
			return
		}
		h.handleError(w, r, err)
		return
	}

	l.Info("event created", slog.String("id", id))
	h.writeJSON(w, http.StatusCreated, map[string]string{"_id": id})
}
