package domain

import (
	"math"
	"time"
)

// Coordinate is an immutable geographic point. Absence of a coordinate is a
// nil *Coordinate, never a zero value: (0,0) is a real place in the Gulf of
// Guinea and must not be conflated with "unknown".
type Coordinate struct {
	Lat float64 `json:"lat" validate:"lat"`
	Lng float64 `json:"lng" validate:"lng"`
}

func (c Coordinate) Valid() bool {
	if math.IsNaN(c.Lat) || math.IsInf(c.Lat, 0) || math.IsNaN(c.Lng) || math.IsInf(c.Lng, 0) {
		return false
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// Location is the venue of an event as the backend reports it. Lat/Lng stay
// pointers because backend records may arrive without them; Coordinate()
// derives a usable point or reports that there is none.
type Location struct {
	Name    string   `json:"name"`
	Address string   `json:"address"`
	City    string   `json:"city"`
	Lat     *float64 `json:"lat"`
	Lng     *float64 `json:"lng"`
}

func (l Location) Coordinate() (Coordinate, bool) {
	if l.Lat == nil || l.Lng == nil {
		return Coordinate{}, false
	}
	c := Coordinate{Lat: *l.Lat, Lng: *l.Lng}
	if !c.Valid() {
		return Coordinate{}, false
	}
	return c, true
}

// EventRecord is the backend's read model. The core treats it as immutable
// input and tolerates partial records (missing location, missing end time).
type EventRecord struct {
	ID             string     `json:"_id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Category       Category   `json:"category"`
	StartTime      time.Time  `json:"start_time"`
	EndTime        *time.Time `json:"end_time"`
	Location       Location   `json:"location"`
	ImageURL       string     `json:"image_url,omitempty"`
	OrganizerName  string     `json:"organizer_name"`
	OrganizerEmail string     `json:"organizer_email"`
}

// RankedEvent is an EventRecord annotated with the great-circle distance from
// the observer. DistanceKM is nil when the observer is unknown or the event
// has no usable coordinate.
type RankedEvent struct {
	EventRecord
	DistanceKM *float64 `json:"distance_km,omitempty"`
}
