package service

import (
	"context"
	"sync/atomic"
	"time"

	"log/slog"

	"eventscout/internal/domain"
	"eventscout/internal/geolocation"
	"eventscout/internal/metrics"
	"eventscout/internal/query"
)

// BrowseResult is one delivered browse outcome, tagged with the filter that
// produced it.
type BrowseResult struct {
	Filter query.Filter
	Events []domain.RankedEvent
	Err    error
}

// BrowseWatcher drives browsing for one session: each filter update starts a
// fetch and cancels the in-flight one, so a fast sequence of edits never
// queues requests and a stale response for an outdated filter is discarded
// instead of delivered. The observer coordinate is resolved once at startup
// with a bounded timeout; unavailability is final for the session.
type BrowseWatcher struct {
	browser    Browser
	geo        geolocation.Provider
	geoTimeout time.Duration
	logger     *slog.Logger

	updates chan query.Filter
	results chan BrowseResult
	latest  atomic.Int64
}

func NewBrowseWatcher(browser Browser, geo geolocation.Provider, geoTimeout time.Duration, logger *slog.Logger) *BrowseWatcher {
	return &BrowseWatcher{
		browser:    browser,
		geo:        geo,
		geoTimeout: geoTimeout,
		logger:     logger,
		updates:    make(chan query.Filter),
		results:    make(chan BrowseResult, 1),
	}
}

// Update replaces the current filter. The previous fetch, if still running,
// is superseded rather than awaited.
func (w *BrowseWatcher) Update(f query.Filter) {
	w.updates <- f
}

// Results delivers at most the newest outcome; superseded fetches never
// appear here.
func (w *BrowseWatcher) Results() <-chan BrowseResult {
	return w.results
}

// Run blocks until ctx is done.
func (w *BrowseWatcher) Run(ctx context.Context) {
	observer := geolocation.Resolve(ctx, w.geo, w.geoTimeout, w.logger)

	cancel := func() {}
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return
		case f := <-w.updates:
			cancel()
			gen := w.latest.Add(1)

			fetchCtx, c := context.WithCancel(ctx)
			cancel = c
			go w.fetch(fetchCtx, gen, observer, f)
		}
	}
}

func (w *BrowseWatcher) fetch(ctx context.Context, gen int64, observer *domain.Coordinate, f query.Filter) {
	events, err := w.browser.Browse(ctx, observer, f)

	if w.latest.Load() != gen {
		metrics.StaleBrowses.Inc()
		w.logger.Debug("browse superseded, result discarded",
			slog.String("text", f.Text),
			slog.String("category", f.Category),
		)
		return
	}

	select {
	case w.results <- BrowseResult{Filter: f, Events: events, Err: err}:
	case <-ctx.Done():
		metrics.StaleBrowses.Inc()
	}
}
