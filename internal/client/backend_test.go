package client_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventscout/internal/client"
	"eventscout/internal/config"
	"eventscout/internal/domain"
	"eventscout/pkg/e"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func newBackend(t *testing.T, srv *httptest.Server) *client.Backend {
	t.Helper()
	return client.NewBackend(config.BackendConfig{
		BaseURL:    srv.URL,
		Timeout:    2 * time.Second,
		RetryMax:   2,
		RetryDelay: time.Millisecond,
	}, testLogger())
}

func TestList_SendsQueryParams(t *testing.T) {
	t.Parallel()

	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	b := newBackend(t, srv)
	events, err := b.List(context.Background(), map[string]string{"q": "jazz", "category": "Music & Nightlife"})
	require.NoError(t, err)
	assert.Empty(t, events)
	assert.Contains(t, gotQuery, "q=jazz")
	assert.Contains(t, gotQuery, "category=Music+%26+Nightlife")
}

func TestList_NoParams_NoQueryString(t *testing.T) {
	t.Parallel()

	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	b := newBackend(t, srv)
	_, err := b.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, gotQuery)
}

func TestList_DecodesPartialRecords(t *testing.T) {
	t.Parallel()

	// end_time null and a location without coordinates must decode, not fail.
	body := `[
		{"_id":"ev1","title":"Fado night","category":"Music & Nightlife",
		 "start_time":"2026-09-01T20:00:00Z","end_time":null,
		 "location":{"name":"Alfama","city":"Lisbon","lat":38.71,"lng":-9.13}},
		{"_id":"ev2","title":"Mystery walk","category":"Active & Outdoors",
		 "start_time":"2026-09-02T10:00:00Z",
		 "location":{"name":"TBA"}}
	]`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	b := newBackend(t, srv)
	events, err := b.List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, events, 2)

	_, ok := events[0].Location.Coordinate()
	assert.True(t, ok)
	assert.Nil(t, events[0].EndTime)

	_, ok = events[1].Location.Coordinate()
	assert.False(t, ok)
}

func TestList_RetriesServerErrors(t *testing.T) {
	t.Parallel()

	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			http.Error(w, "flaky", http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	b := newBackend(t, srv)
	_, err := b.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestList_DoesNotRetryClientErrors(t *testing.T) {
	t.Parallel()

	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "bad category", http.StatusBadRequest)
	}))
	defer srv.Close()

	b := newBackend(t, srv)
	_, err := b.List(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, e.ErrBackendRejected), "got %v", err)
	assert.Equal(t, 1, calls)
}

func TestCreate_PostsPayloadAndReturnsID(t *testing.T) {
	t.Parallel()

	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &gotBody))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"_id":"abc123"}`))
	}))
	defer srv.Close()

	start := time.Date(2026, 9, 1, 20, 0, 0, 0, time.UTC)
	payload := domain.ValidatedEventPayload{
		Title:          "Fado night",
		Category:       domain.CategoryMusicNightlife,
		StartTime:      start,
		Location:       domain.PayloadLocation{Name: "Alfama", City: "Lisbon", Lat: 38.71, Lng: -9.13},
		OrganizerName:  "Ana",
		OrganizerEmail: "ana@example.com",
	}

	b := newBackend(t, srv)
	id, err := b.Create(context.Background(), payload)
	require.NoError(t, err)
	assert.Equal(t, "abc123", id)

	assert.Equal(t, "Fado night", gotBody["title"])
	assert.Equal(t, "2026-09-01T20:00:00Z", gotBody["start_time"])
	assert.Nil(t, gotBody["end_time"])
	loc, ok := gotBody["location"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 38.71, loc["lat"], 1e-9)
	assert.InDelta(t, -9.13, loc["lng"], 1e-9)
}

func TestCreate_NonOKSurfacesOpaqueBody(t *testing.T) {
	t.Parallel()

	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "duplicate event", http.StatusConflict)
	}))
	defer srv.Close()

	b := newBackend(t, srv)
	_, err := b.Create(context.Background(), domain.ValidatedEventPayload{Title: "x"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, e.ErrBackendRejected), "got %v", err)
	assert.Contains(t, err.Error(), "duplicate event")
	assert.Equal(t, 1, calls, "creates must never retry")
}
