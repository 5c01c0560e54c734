package service

import (
	"context"

	"log/slog"

	"eventscout/internal/domain"
	"eventscout/internal/geo"
	"eventscout/internal/metrics"
	"eventscout/internal/query"
	"eventscout/pkg/e"
)

// Browse fetches events matching the filter and returns them ordered by
// distance from the observer. A nil observer yields backend order with no
// distances. The ranking is recomputed on every call; results are never
// cached, so a changed filter or observer can not serve stale order.
func (s *Service) Browse(ctx context.Context, observer *domain.Coordinate, f query.Filter) ([]domain.RankedEvent, error) {
	const op = "service.Browse"

	if err := f.Validate(); err != nil {
		return nil, e.Wrap(op, err)
	}

	events, err := s.backend.List(ctx, f.Params())
	if err != nil {
		s.logger.Error("backend list failed", slog.String("op", op), slog.Any("error", err))
		return nil, err
	}

	ranked := geo.Rank(observer, events)
	metrics.EventsRanked.Add(float64(len(ranked)))

	s.logger.Debug("browse done",
		slog.Int("events", len(ranked)),
		slog.Bool("observer", observer != nil),
		slog.String("text", f.Text),
		slog.String("category", f.Category),
	)
	return ranked, nil
}
