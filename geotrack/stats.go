package geotrack

import (
	"time"

	"github.com/jftuga/geodist"
)

type Stats struct {
	Samples  int
	From, To time.Time
	LengthKm float64
}

// Duration is the covered time span.
func (s Stats) Duration() time.Duration {
	return s.To.Sub(s.From)
}

// ComputeStats summarizes the track. The length sums haversine distances between consecutive samples in
// arrival order.
func ComputeStats(track Track) Stats {
	stats := Stats{Samples: len(track)}
	if len(track) == 0 {
		return stats
	}

	minTs, maxTs := track[0].TimestampMs, track[0].TimestampMs
	for i, s := range track {
		if s.TimestampMs < minTs {
			minTs = s.TimestampMs
		}
		if s.TimestampMs > maxTs {
			maxTs = s.TimestampMs
		}

		if i > 0 {
			prev := track[i-1]
			_, km := geodist.HaversineDistance(
				geodist.Coord{Lat: prev.Lat, Lon: prev.Lon},
				geodist.Coord{Lat: s.Lat, Lon: s.Lon},
			)
			stats.LengthKm += km
		}
	}

	stats.From = time.UnixMilli(minTs)
	stats.To = time.UnixMilli(maxTs)

	return stats
}

// RouteLengthKm sums haversine distances along the route.
func RouteLengthKm(route Route) float64 {
	total := 0.0
	for i := 1; i < len(route); i++ {
		_, km := geodist.HaversineDistance(
			geodist.Coord{Lat: route[i-1][1], Lon: route[i-1][0]},
			geodist.Coord{Lat: route[i][1], Lon: route[i][0]},
		)
		total += km
	}
	return total
}
