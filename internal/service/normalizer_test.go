package service_test

import (
	"testing"
	"time"

	"eventscout/internal/domain"
	"eventscout/internal/service"
)

func validDraft() domain.EventDraft {
	return domain.EventDraft{
		Title:       "Fado night",
		Description: "  Live fado in Alfama  ",
		Category:    "Music & Nightlife",
		StartTime:   "2026-09-01T20:00",
		EndTime:     "2026-09-01T23:30",
		Location: domain.DraftLocation{
			Name:    "Casa do Fado",
			Address: "Rua dos Remédios 1",
			City:    "Lisbon",
			Lat:     "38.7125",
			Lng:     "-9.1271",
		},
		ImageURL:       "https://example.com/fado.jpg",
		OrganizerName:  "Ana Silva",
		OrganizerEmail: "ana@example.com",
	}
}

func TestNormalize_ValidDraft(t *testing.T) {
	t.Parallel()

	payload, failures := service.Normalize(validDraft())
	if failures != nil {
		t.Fatalf("unexpected failures: %v", failures)
	}

	wantStart := time.Date(2026, 9, 1, 20, 0, 0, 0, time.UTC)
	if !payload.StartTime.Equal(wantStart) {
		t.Fatalf("start: got=%v want=%v", payload.StartTime, wantStart)
	}
	if payload.StartTime.Location() != time.UTC {
		t.Fatalf("start not UTC-normalized: %v", payload.StartTime.Location())
	}
	if payload.EndTime == nil || !payload.EndTime.Equal(time.Date(2026, 9, 1, 23, 30, 0, 0, time.UTC)) {
		t.Fatalf("end: got=%v", payload.EndTime)
	}
	if payload.Location.Lat != 38.7125 || payload.Location.Lng != -9.1271 {
		t.Fatalf("coords: got=%v,%v", payload.Location.Lat, payload.Location.Lng)
	}
	if payload.Category != domain.CategoryMusicNightlife {
		t.Fatalf("category: got=%v", payload.Category)
	}
	if payload.Description != "Live fado in Alfama" {
		t.Fatalf("description not trimmed: %q", payload.Description)
	}
}

func TestNormalize_RFC3339WithOffsetNormalizedToUTC(t *testing.T) {
	t.Parallel()

	draft := validDraft()
	draft.StartTime = "2026-09-01T21:00:00+01:00"
	draft.EndTime = ""

	payload, failures := service.Normalize(draft)
	if failures != nil {
		t.Fatalf("unexpected failures: %v", failures)
	}
	want := time.Date(2026, 9, 1, 20, 0, 0, 0, time.UTC)
	if !payload.StartTime.Equal(want) || payload.StartTime.Location() != time.UTC {
		t.Fatalf("got=%v want=%v", payload.StartTime, want)
	}
}

func TestNormalize_AbsentEndTimeStaysAbsent(t *testing.T) {
	t.Parallel()

	draft := validDraft()
	draft.EndTime = "   "

	payload, failures := service.Normalize(draft)
	if failures != nil {
		t.Fatalf("unexpected failures: %v", failures)
	}
	if payload.EndTime != nil {
		t.Fatalf("expected absent end time, got %v", *payload.EndTime)
	}
}

func TestNormalize_CollectsAllFailures(t *testing.T) {
	t.Parallel()

	draft := validDraft()
	draft.Title = "   "
	draft.Location.Lat = "abc"

	payload, failures := service.Normalize(draft)
	if payload != nil {
		t.Fatalf("expected nil payload, got %+v", payload)
	}
	if len(failures) != 2 {
		t.Fatalf("expected exactly 2 failures, got %d: %v", len(failures), failures)
	}
	if !failures.Has("title", domain.RequiredFieldMissing) {
		t.Fatalf("missing title failure: %v", failures)
	}
	if !failures.Has("location.lat", domain.InvalidNumber) {
		t.Fatalf("missing location.lat failure: %v", failures)
	}
}

func TestNormalize_EndBeforeStart(t *testing.T) {
	t.Parallel()

	draft := validDraft()
	draft.StartTime = "2026-09-01T20:00"
	draft.EndTime = "2026-09-01T19:00"

	_, failures := service.Normalize(draft)
	if !failures.Has("end_time", domain.EndBeforeStart) {
		t.Fatalf("expected EndBeforeStart, got %v", failures)
	}
}

func TestNormalize_EndTimeUnparsable(t *testing.T) {
	t.Parallel()

	draft := validDraft()
	draft.EndTime = "next friday"

	_, failures := service.Normalize(draft)
	if !failures.Has("end_time", domain.InvalidTimestamp) {
		t.Fatalf("expected InvalidTimestamp, got %v", failures)
	}
}

func TestNormalize_StartTimeRequired(t *testing.T) {
	t.Parallel()

	draft := validDraft()
	draft.StartTime = ""

	_, failures := service.Normalize(draft)
	if !failures.Has("start_time", domain.RequiredFieldMissing) {
		t.Fatalf("expected RequiredFieldMissing, got %v", failures)
	}
}

func TestNormalize_EmailFormat(t *testing.T) {
	t.Parallel()

	draft := validDraft()
	draft.OrganizerEmail = "not-an-email"

	_, failures := service.Normalize(draft)
	if !failures.Has("organizer_email", domain.InvalidFormat) {
		t.Fatalf("expected InvalidFormat, got %v", failures)
	}
}

func TestNormalize_CoordinateFailures(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		lat  string
		lng  string
		want []domain.FieldFailure
	}{
		{
			name: "both empty",
			lat:  "",
			lng:  " ",
			want: []domain.FieldFailure{
				{Field: "location.lat", Code: domain.RequiredFieldMissing},
				{Field: "location.lng", Code: domain.RequiredFieldMissing},
			},
		},
		{
			name: "lat out of range",
			lat:  "91.0",
			lng:  "-9.13",
			want: []domain.FieldFailure{
				{Field: "location.lat", Code: domain.OutOfRange},
			},
		},
		{
			name: "lng out of range",
			lat:  "38.7",
			lng:  "-181",
			want: []domain.FieldFailure{
				{Field: "location.lng", Code: domain.OutOfRange},
			},
		},
		{
			name: "infinity is not a place",
			lat:  "Inf",
			lng:  "-9.13",
			want: []domain.FieldFailure{
				{Field: "location.lat", Code: domain.InvalidNumber},
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			draft := validDraft()
			draft.Location.Lat = tc.lat
			draft.Location.Lng = tc.lng

			_, failures := service.Normalize(draft)
			for _, w := range tc.want {
				if !failures.Has(w.Field, w.Code) {
					t.Fatalf("missing %v in %v", w, failures)
				}
			}
		})
	}
}

func TestNormalize_InvalidCategory(t *testing.T) {
	t.Parallel()

	draft := validDraft()
	draft.Category = "Astrology"

	_, failures := service.Normalize(draft)
	if !failures.Has("category", domain.InvalidCategory) {
		t.Fatalf("expected InvalidCategory, got %v", failures)
	}
}
