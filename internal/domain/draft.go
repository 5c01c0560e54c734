package domain

import "time"

// DraftLocation mirrors the venue part of the submission form. Every field is
// a raw string, including the coordinates, because that is what text inputs
// produce.
type DraftLocation struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Lat     string `json:"lat"`
	Lng     string `json:"lng"`
}

// EventDraft is one submission attempt, untrusted and string-typed. A draft
// is created fresh per attempt and replaced wholesale on edit, never mutated
// field by field.
type EventDraft struct {
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Category       string        `json:"category"`
	StartTime      string        `json:"start_time"`
	EndTime        string        `json:"end_time"`
	Location       DraftLocation `json:"location"`
	ImageURL       string        `json:"image_url"`
	OrganizerName  string        `json:"organizer_name"`
	OrganizerEmail string        `json:"organizer_email"`
}

// PayloadLocation carries parsed venue coordinates for the backend create
// call.
type PayloadLocation struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	City    string  `json:"city"`
	Lat     float64 `json:"lat" validate:"lat"`
	Lng     float64 `json:"lng" validate:"lng"`
}

// ValidatedEventPayload is the only backend-ready form of a draft. It is
// produced exclusively by the normalizer: timestamps are UTC instants,
// coordinates finite floats, required strings trimmed and non-empty.
type ValidatedEventPayload struct {
	Title          string          `json:"title" validate:"required"`
	Description    string          `json:"description"`
	Category       Category        `json:"category" validate:"category"`
	StartTime      time.Time       `json:"start_time"`
	EndTime        *time.Time      `json:"end_time"`
	Location       PayloadLocation `json:"location"`
	ImageURL       string          `json:"image_url"`
	OrganizerName  string          `json:"organizer_name" validate:"required"`
	OrganizerEmail string          `json:"organizer_email" validate:"required,email"`
}
