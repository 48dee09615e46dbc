package geotrack

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"
)

// RouteFromTrack derives a route from the track in arrival order, reduced with Douglas-Peucker. The
// threshold is in degrees; zero keeps every sample.
func RouteFromTrack(track Track, threshold float64) Route {
	ls := make(orb.LineString, 0, len(track))
	for _, s := range track {
		ls = append(ls, orb.Point{s.Lon, s.Lat})
	}

	if threshold > 0 && len(ls) > 2 {
		if simplified, ok := simplify.DouglasPeucker(threshold).Simplify(ls).(orb.LineString); ok {
			ls = simplified
		}
	}

	route := make(Route, 0, len(ls))
	for _, p := range ls {
		route = append(route, [2]float64{p[0], p[1]})
	}

	return route
}
