package service

import (
	"context"
	"log/slog"

	"eventscout/internal/domain"
	"eventscout/internal/query"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// EventsBackend is the external events store. The service consumes it and
// never implements it.
type EventsBackend interface {
	List(ctx context.Context, params map[string]string) ([]domain.EventRecord, error)
	Create(ctx context.Context, payload domain.ValidatedEventPayload) (string, error)
}

// Browser is the read side of the service, split out so the browse watcher
// can be tested against a mock.
type Browser interface {
	Browse(ctx context.Context, observer *domain.Coordinate, f query.Filter) ([]domain.RankedEvent, error)
}

type Service struct {
	backend EventsBackend
	logger  *slog.Logger
}

func NewService(backend EventsBackend, logger *slog.Logger) *Service {
	return &Service{
		backend: backend,
		logger:  logger,
	}
}
