package service

import (
	"context"

	"log/slog"

	"github.com/google/uuid"

	"eventscout/internal/domain"
	"eventscout/internal/metrics"
)

// Publish normalizes a draft and, only if every rule passes, submits it to
// the backend. Validation failures come back as data (domain.
// ValidationFailures satisfies error); nothing partially valid ever reaches
// the backend.
func (s *Service) Publish(ctx context.Context, draft domain.EventDraft) (string, error) {
	const op = "service.Publish"

	attempt := uuid.New()
	l := s.logger.With(slog.String("attempt_id", attempt.String()))

	payload, failures := Normalize(draft)
	if failures != nil {
		for _, f := range failures {
			metrics.ValidationFailures.WithLabelValues(string(f.Code)).Inc()
		}
		l.Info("draft rejected",
			slog.String("op", op),
			slog.Int("failures", len(failures)),
		)
		return "", failures
	}

	id, err := s.backend.Create(ctx, *payload)
	if err != nil {
		l.Error("backend create failed", slog.String("op", op), slog.Any("error", err))
		return "", err
	}

	l.Info("event published",
		slog.String("id", id),
		slog.String("title", payload.Title),
		slog.String("category", string(payload.Category)),
	)
	return id, nil
}
