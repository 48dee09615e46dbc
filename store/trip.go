package store

import (
	"fmt"
	"time"

	"github.com/bgraf/trackmap/config"
	"github.com/bgraf/trackmap/data"
	"github.com/bgraf/trackmap/data/trackfile"
	"github.com/bgraf/trackmap/filesystem"
	"github.com/bgraf/trackmap/geotrack"
	"github.com/bgraf/trackmap/render"
	"github.com/paulmach/orb/geojson"
	"github.com/rs/zerolog"
)

// Paths are the resolved input files of a trip.
type Paths struct {
	Track       string
	Captures    string
	Route       string
	Description string
	Photos      string
	Thumbs      string
}

func ResolvePaths(base string, s *config.Settings) Paths {
	return Paths{
		Track:       filesystem.ResolvePath(base, s.Data.Track),
		Captures:    filesystem.ResolvePath(base, s.Data.Captures),
		Route:       filesystem.ResolvePath(base, s.Data.Route),
		Description: filesystem.ResolvePath(base, s.Data.Description),
		Photos:      filesystem.ResolvePath(base, s.Assets.Photos),
		Thumbs:      filesystem.ResolvePath(base, s.Assets.Thumbs),
	}
}

// Inputs lists the files a trip is built from, skipping unset optional ones.
func (p Paths) Inputs() []string {
	inputs := []string{p.Track, p.Captures, p.Route}
	if p.Description != "" {
		inputs = append(inputs, p.Description)
	}
	return inputs
}

// Trip holds everything derived from the inputs. It is computed once and not modified afterwards.
type Trip struct {
	Paths    Paths
	Track    geotrack.Track
	Captures []geotrack.Capture
	Route    geotrack.Route
	Stats    geotrack.Stats

	// Locations and Photos are nil when matching failed; PhotosErr holds the reason.
	Locations []geotrack.InferredLocation
	Offsets   []time.Duration
	Photos    *geojson.FeatureCollection
	PhotosErr error

	RouteFeature *geojson.Feature
	Description  render.Description
}

// Load reads all inputs and runs matching and feature building. Unreadable or malformed inputs are
// errors; an empty track only disables the photographs layer.
func Load(paths Paths, resolve render.AssetResolver, logger zerolog.Logger) (*Trip, error) {
	track, err := trackfile.LoadTrack(paths.Track)
	if err != nil {
		return nil, fmt.Errorf("load track: %w", err)
	}

	captures, err := data.LoadCaptureIndex(paths.Captures)
	if err != nil {
		return nil, fmt.Errorf("load capture index: %w", err)
	}

	route, err := data.LoadRoute(paths.Route)
	if err != nil {
		return nil, fmt.Errorf("load route: %w", err)
	}

	trip := &Trip{
		Paths:        paths,
		Track:        track,
		Captures:     captures,
		Route:        route,
		Stats:        geotrack.ComputeStats(track),
		RouteFeature: geotrack.RouteFeature(route),
	}

	if paths.Description != "" {
		trip.Description, err = render.LoadDescription(paths.Description, resolve)
		if err != nil {
			return nil, fmt.Errorf("load description: %w", err)
		}
	}

	matcher, err := geotrack.NewMatcher(track)
	if err != nil {
		trip.PhotosErr = geotrack.EmptyTrackError{Captures: len(captures)}
		logger.Error().Err(trip.PhotosErr).Str("track", paths.Track).Msg("photographs layer disabled")
		return trip, nil
	}

	trip.Locations = matcher.Match(captures)
	trip.Offsets = make([]time.Duration, len(captures))
	for i, c := range captures {
		_, trip.Offsets[i] = matcher.Nearest(c)
	}
	trip.Photos = geotrack.PhotoFeatures(trip.Locations)

	logger.Info().
		Int("samples", len(track)).
		Int("photos", len(captures)).
		Int("routePoints", len(route)).
		Msg("trip loaded")

	return trip, nil
}

// FarOffsets returns the indices of captures whose matched sample is more than limit away in time.
func (t *Trip) FarOffsets(limit time.Duration) []int {
	var far []int
	for i, d := range t.Offsets {
		if d > limit {
			far = append(far, i)
		}
	}
	return far
}

// WarnFarOffsets logs every capture matched to a sample more than limit away.
func (t *Trip) WarnFarOffsets(limit time.Duration, logger zerolog.Logger) {
	for _, i := range t.FarOffsets(limit) {
		logger.Warn().
			Str("photo", t.Captures[i].Name).
			Dur("offset", t.Offsets[i]).
			Msg("photo taken far from any track sample")
	}
}
