package service

import (
	"math"
	"strconv"
	"strings"
	"time"

	"eventscout/internal/domain"
	"eventscout/pkg/validator"
)

// instantLayouts covers what the submission form can send: full RFC 3339
// from scripted clients and the zoneless datetime-local variants from a
// browser input. Zoneless times are taken as UTC.
var instantLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// Normalize coerces a raw draft into a backend-ready payload. Every rule is
// evaluated; all failures come back together so a form can highlight every
// broken field at once. A payload is produced only when the failure set is
// empty — there is no partially valid payload.
func Normalize(draft domain.EventDraft) (*domain.ValidatedEventPayload, domain.ValidationFailures) {
	var failures domain.ValidationFailures
	fail := func(field string, code domain.FailureCode) {
		failures = append(failures, domain.FieldFailure{Field: field, Code: code})
	}

	title := strings.TrimSpace(draft.Title)
	if title == "" {
		fail("title", domain.RequiredFieldMissing)
	}

	organizerName := strings.TrimSpace(draft.OrganizerName)
	if organizerName == "" {
		fail("organizer_name", domain.RequiredFieldMissing)
	}

	organizerEmail := strings.TrimSpace(draft.OrganizerEmail)
	if organizerEmail == "" {
		fail("organizer_email", domain.RequiredFieldMissing)
	} else if validator.ValidateVar(organizerEmail, "email") != nil {
		fail("organizer_email", domain.InvalidFormat)
	}

	var start time.Time
	if raw := strings.TrimSpace(draft.StartTime); raw == "" {
		fail("start_time", domain.RequiredFieldMissing)
	} else if ts, err := parseInstant(raw); err != nil {
		fail("start_time", domain.InvalidTimestamp)
	} else {
		start = ts
	}

	// Absent end time stays absent; it is never synthesized. The ordering
	// check only runs against a start time that itself parsed.
	var end *time.Time
	if raw := strings.TrimSpace(draft.EndTime); raw != "" {
		switch ts, err := parseInstant(raw); {
		case err != nil:
			fail("end_time", domain.InvalidTimestamp)
		case !start.IsZero() && ts.Before(start):
			fail("end_time", domain.EndBeforeStart)
		default:
			end = &ts
		}
	}

	lat := parseCoordinate(draft.Location.Lat, "location.lat", "lat", fail)
	lng := parseCoordinate(draft.Location.Lng, "location.lng", "lng", fail)

	category, ok := domain.ParseCategory(strings.TrimSpace(draft.Category))
	if !ok {
		fail("category", domain.InvalidCategory)
	}

	if len(failures) > 0 {
		return nil, failures
	}

	payload := &domain.ValidatedEventPayload{
		Title:       title,
		Description: strings.TrimSpace(draft.Description),
		Category:    category,
		StartTime:   start,
		EndTime:     end,
		Location: domain.PayloadLocation{
			Name:    strings.TrimSpace(draft.Location.Name),
			Address: strings.TrimSpace(draft.Location.Address),
			City:    strings.TrimSpace(draft.Location.City),
			Lat:     lat,
			Lng:     lng,
		},
		ImageURL:       strings.TrimSpace(draft.ImageURL),
		OrganizerName:  organizerName,
		OrganizerEmail: organizerEmail,
	}
	return payload, nil
}

func parseInstant(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range instantLayouts {
		ts, err := time.Parse(layout, raw)
		if err == nil {
			return ts.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// parseCoordinate reports required/number/range failures for one coordinate
// field. The range check rides on the registered lat/lng validators.
func parseCoordinate(raw, field, tag string, fail func(string, domain.FailureCode)) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		fail(field, domain.RequiredFieldMissing)
		return 0
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		fail(field, domain.InvalidNumber)
		return 0
	}
	if validator.ValidateVar(f, tag) != nil {
		fail(field, domain.OutOfRange)
		return 0
	}
	return f
}
