// Package geo holds the distance ranking core: pure functions, no I/O.
package geo

import (
	"math"
	"sort"

	"eventscout/internal/domain"
)

const earthRadiusKm = 6371.0

// Rank annotates every event with its great-circle distance from the
// observer and returns the events ordered by ascending distance. Events
// without a usable coordinate get a nil distance and sink to the end, keeping
// their relative input order. A nil observer means no sort happens at all:
// the input order comes back unchanged with every distance absent, because
// ordering by a made-up distance would silently promote events near (0,0).
//
// The output always has the same length as the input; filtering is the query
// layer's job, not the ranker's.
func Rank(observer *domain.Coordinate, events []domain.EventRecord) []domain.RankedEvent {
	ranked := make([]domain.RankedEvent, len(events))

	if observer == nil || !observer.Valid() {
		for i, ev := range events {
			ranked[i] = domain.RankedEvent{EventRecord: ev}
		}
		return ranked
	}

	for i, ev := range events {
		ranked[i] = domain.RankedEvent{EventRecord: ev}
		if c, ok := ev.Location.Coordinate(); ok {
			d := haversine(observer.Lat, observer.Lng, c.Lat, c.Lng)
			ranked[i].DistanceKM = &d
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return sortKey(ranked[i]) < sortKey(ranked[j])
	})

	return ranked
}

// sortKey treats a missing distance as +Inf so such events order after every
// finite one.
func sortKey(ev domain.RankedEvent) float64 {
	if ev.DistanceKM == nil {
		return math.Inf(1)
	}
	return *ev.DistanceKM
}

// haversine returns the great-circle distance in kilometers between two
// points given in degrees.
func haversine(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := deg2rad(lat2 - lat1)
	dLng := deg2rad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(lat1))*math.Cos(deg2rad(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
