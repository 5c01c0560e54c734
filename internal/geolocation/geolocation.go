// Package geolocation acquires the observer coordinate. Acquisition happens
// once per browse session with a bounded timeout; any failure degrades to "no
// observer" and is never retried automatically.
package geolocation

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"eventscout/internal/domain"
)

var ErrUnavailable = errors.New("geolocation unavailable")

// Provider yields the current observer position or ErrUnavailable.
type Provider interface {
	Current(ctx context.Context) (domain.Coordinate, error)
}

// Static always reports a fixed coordinate. Used for kiosk deployments with
// a configured position and for tests.
type Static struct {
	Coord domain.Coordinate
}

func (s Static) Current(ctx context.Context) (domain.Coordinate, error) {
	if !s.Coord.Valid() {
		return domain.Coordinate{}, ErrUnavailable
	}
	return s.Coord, nil
}

// Unavailable models a user who declined or a device without geolocation.
type Unavailable struct{}

func (Unavailable) Current(ctx context.Context) (domain.Coordinate, error) {
	return domain.Coordinate{}, ErrUnavailable
}

// Resolve asks the provider once, bounded by timeout. Every failure mode —
// error, timeout, invalid coordinate — collapses to a nil observer, which
// downstream ranking treats as passthrough order.
func Resolve(ctx context.Context, p Provider, timeout time.Duration, logger *slog.Logger) *domain.Coordinate {
	if p == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	coord, err := p.Current(ctx)
	if err != nil {
		logger.Info("observer position unavailable, ranking degrades to input order",
			slog.Any("error", err),
		)
		return nil
	}
	if !coord.Valid() {
		logger.Warn("provider returned invalid coordinate, treating as absent",
			slog.Float64("lat", coord.Lat),
			slog.Float64("lng", coord.Lng),
		)
		return nil
	}
	return &coord
}
