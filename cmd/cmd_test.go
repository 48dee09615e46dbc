package cmd

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/bgraf/trackmap/geotrack"
	"github.com/bgraf/trackmap/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGatherTargets(t *testing.T) {
	day := time.Date(2021, time.May, 3, 0, 0, 0, 0, time.Local)
	targets := gatherTargets{
		photos: "/trip/images",
		tracks: "/trip/data",
		from:   day,
		to:     day.AddDate(0, 0, 1),
	}

	tests := []struct {
		name string
		path string
		mod  time.Time
		want string
		ok   bool
	}{
		{"photo", "/card/DCIM/IMG_1.JPG", day.Add(10 * time.Hour), filepath.Join("/trip/images", "IMG_1.JPG"), true},
		{"gpx track", "/logger/day.gpx", day.Add(time.Hour), filepath.Join("/trip/data", "day.gpx"), true},
		{"nmea log", "/logger/log.txt", day, filepath.Join("/trip/data", "log.txt"), true},
		{"before from", "/card/IMG_2.jpg", day.Add(-time.Minute), "", false},
		{"after to", "/card/IMG_3.jpg", day.AddDate(0, 0, 1), "", false},
		{"raw log is not gathered", "/card/raw.json", day, "", false},
		{"other file", "/card/clip.mov", day, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := targets.Target(tt.path, tt.mod)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDay(t *testing.T) {
	d, err := parseDay("2021-05-03")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2021, time.May, 3, 0, 0, 0, 0, time.Local), d)

	_, err = parseDay("03.05.2021")
	assert.Error(t, err)
}

func TestWriteLocations(t *testing.T) {
	trip := &store.Trip{
		Locations: []geotrack.InferredLocation{{Name: "a.jpg", Lon: -109.56, Lat: 38.74}},
		Offsets:   []time.Duration{10 * time.Second},
		Stats:     geotrack.Stats{Samples: 2},
	}

	var buf bytes.Buffer
	require.NoError(t, writeLocations(&buf, trip, "en_US"))

	out := buf.String()
	assert.Contains(t, out, "PHOTO")
	assert.Contains(t, out, "a.jpg")
	assert.Contains(t, out, "-109.560000")
	assert.Contains(t, out, "10s")
	assert.Contains(t, out, "2 samples")
}
