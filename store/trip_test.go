package store

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bgraf/trackmap/config"
	"github.com/bgraf/trackmap/geotrack"
	"github.com/bgraf/trackmap/render"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	rawTrack = `[
		{"time": "1620036000", "alt": "0", "longitude": "-109.56", "latitude": "38.74", "segment": "0"},
		{"time": "1620036060", "alt": "0", "longitude": "-109.57", "latitude": "38.75", "segment": "0"},
		{"time": "1620036120", "alt": "0", "longitude": "-109.58", "latitude": "38.76", "segment": "0"}
	]`
	captureIndex = `[
		{"name": "a.jpg", "time": 1620036050000},
		{"name": "b.jpg", "time": 1620036500000}
	]`
	routeFile = `{"type": "LineString", "coordinates": [[-109.56, 38.74], [-109.57, 38.75], [-109.58, 38.76]]}`
)

func writeTrip(t *testing.T, track string) Paths {
	dir := t.TempDir()
	files := map[string]string{
		"raw.json":   track,
		"times.json": captureIndex,
		"route.json": routeFile,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	return Paths{
		Track:    filepath.Join(dir, "raw.json"),
		Captures: filepath.Join(dir, "times.json"),
		Route:    filepath.Join(dir, "route.json"),
	}
}

func testSettings() *config.Settings {
	s := &config.Settings{}
	s.Map.Center.Lat = 38.74
	s.Map.Center.Lon = -109.56
	s.Map.Zoom = 15
	s.Map.Tiles = "https://tile.example/{z}/{x}/{y}.png"
	s.Map.Locale = "en_US"
	return s
}

func TestLoad(t *testing.T) {
	trip, err := Load(writeTrip(t, rawTrack), nil, zerolog.Nop())
	require.NoError(t, err)

	assert.Len(t, trip.Track, 3)
	assert.Len(t, trip.Route, 3)
	require.NoError(t, trip.PhotosErr)
	require.NotNil(t, trip.Photos)
	assert.Len(t, trip.Photos.Features, 2)

	assert.Equal(t, []geotrack.InferredLocation{
		{Name: "a.jpg", Lon: -109.57, Lat: 38.75},
		{Name: "b.jpg", Lon: -109.58, Lat: 38.76},
	}, trip.Locations)

	assert.Equal(t, 10*time.Second, trip.Offsets[0])
	assert.Equal(t, []int{1}, trip.FarOffsets(120*time.Second))
}

func TestLoad_EmptyTrackDisablesPhotos(t *testing.T) {
	trip, err := Load(writeTrip(t, `[]`), nil, zerolog.Nop())
	require.NoError(t, err)

	assert.Nil(t, trip.Photos)
	assert.True(t, errors.Is(trip.PhotosErr, geotrack.ErrEmptyTrack))
	assert.NotNil(t, trip.RouteFeature)
}

func TestLoad_MissingInput(t *testing.T) {
	paths := writeTrip(t, rawTrack)
	paths.Route = filepath.Join(t.TempDir(), "missing.json")

	_, err := Load(paths, nil, zerolog.Nop())
	assert.Error(t, err)
}

func TestWarnFarOffsets(t *testing.T) {
	trip, err := Load(writeTrip(t, rawTrack), nil, zerolog.Nop())
	require.NoError(t, err)

	var buf bytes.Buffer
	trip.WarnFarOffsets(120*time.Second, zerolog.New(&buf))

	assert.Contains(t, buf.String(), `"photo":"b.jpg"`)
	assert.NotContains(t, buf.String(), `"photo":"a.jpg"`)
}

func TestTrip_Page(t *testing.T) {
	trip, err := Load(writeTrip(t, rawTrack), nil, zerolog.Nop())
	require.NoError(t, err)

	urls := PageURLs{Static: "static", Photos: "photos.geojson", Route: "route.geojson"}
	page, err := trip.Page(testSettings(), urls, render.ConventionResolver("photos", "thumbs"))
	require.NoError(t, err)

	assert.Equal(t, "Trip", page.Title)
	assert.Equal(t, "photos.geojson", page.Map.PhotosURL)
	assert.Len(t, page.Map.RouteColors, 2)
	assert.Equal(t, "photos/a.jpg", page.Map.Assets["a.jpg"].Photo)
	assert.Empty(t, page.Map.SessionsURL)
}

func TestTrip_PageWithoutPhotos(t *testing.T) {
	trip, err := Load(writeTrip(t, `[]`), nil, zerolog.Nop())
	require.NoError(t, err)

	page, err := trip.Page(testSettings(), PageURLs{Photos: "photos.geojson"}, render.ConventionResolver("p", "t"))
	require.NoError(t, err)

	assert.Empty(t, page.Map.PhotosURL)
	assert.Empty(t, page.Map.Assets)
}

func TestPaths_Inputs(t *testing.T) {
	s := testSettings()
	s.Data.Track = "data/raw.json"
	s.Data.Captures = "/abs/times.json"
	s.Data.Route = "data/route.json"

	paths := ResolvePaths("/trip", s)
	assert.Equal(t, []string{"/trip/data/raw.json", "/abs/times.json", "/trip/data/route.json"}, paths.Inputs())

	s.Data.Description = "about.md"
	assert.Contains(t, ResolvePaths("/trip", s).Inputs(), "/trip/about.md")
}
