// Package client talks to the external events backend. The backend is a
// collaborator, never implemented here: we consume exactly its two endpoints.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"eventscout/internal/config"
	"eventscout/internal/domain"
	"eventscout/internal/metrics"
	"eventscout/pkg/e"
)

type Backend struct {
	baseURL    string
	http       *http.Client
	logger     *slog.Logger
	retryMax   uint64
	retryDelay time.Duration
}

func NewBackend(cfg config.BackendConfig, logger *slog.Logger) *Backend {
	return &Backend{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		http:       &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
		retryMax:   cfg.RetryMax,
		retryDelay: cfg.RetryDelay,
	}
}

// List fetches events matching the query params ("q", "category"). Absent
// params mean unfiltered on that axis. Transient failures (transport errors,
// 5xx) are retried with exponential backoff bounded by ctx; 4xx are not.
func (b *Backend) List(ctx context.Context, params map[string]string) ([]domain.EventRecord, error) {
	const op = "client.Backend.List"

	u, err := url.Parse(b.baseURL + "/api/events")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	q := u.Query()
	for k, v := range params {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()

	start := time.Now()

	var events []domain.EventRecord
	fetch := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		resp, err := b.http.Do(req)
		if err != nil {
			b.logger.Warn("backend list attempt failed", slog.String("op", op), slog.Any("error", err))
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			err := e.WrapStatus(op, resp.StatusCode, strings.TrimSpace(string(body)))
			if resp.StatusCode >= 500 {
				return err
			}
			return backoff.Permanent(err)
		}

		events = events[:0]
		if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
			return backoff.Permanent(fmt.Errorf("%s: decode: %w", op, err))
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = b.retryDelay
	policy := backoff.WithContext(backoff.WithMaxRetries(bo, b.retryMax), ctx)

	if err := backoff.Retry(fetch, policy); err != nil {
		metrics.BackendRequests.WithLabelValues("list", "error").Inc()
		return nil, e.WrapError(ctx, op, err)
	}

	metrics.BackendRequests.WithLabelValues("list", "ok").Inc()
	metrics.BackendDuration.WithLabelValues("list").Observe(time.Since(start).Seconds())

	b.logger.Debug("backend list done",
		slog.Int("events", len(events)),
		slog.Duration("latency", time.Since(start)),
	)
	return events, nil
}

// Create submits a validated payload and returns the id the backend assigned.
// Creates are not idempotent, so there is deliberately no retry here.
func (b *Backend) Create(ctx context.Context, payload domain.ValidatedEventPayload) (string, error) {
	const op = "client.Backend.Create"

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+"/api/events", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := b.http.Do(req)
	if err != nil {
		metrics.BackendRequests.WithLabelValues("create", "error").Inc()
		return "", e.WrapError(ctx, op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.BackendRequests.WithLabelValues("create", "error").Inc()
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", e.WrapStatus(op, resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var created struct {
		ID string `json:"_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		metrics.BackendRequests.WithLabelValues("create", "error").Inc()
		return "", fmt.Errorf("%s: decode: %w", op, err)
	}

	metrics.BackendRequests.WithLabelValues("create", "ok").Inc()
	metrics.BackendDuration.WithLabelValues("create").Observe(time.Since(start).Seconds())

	b.logger.Info("event created",
		slog.String("id", created.ID),
		slog.Duration("latency", time.Since(start)),
	)
	return created.ID, nil
}
