package geotrack

import (
	"encoding/json"
	"time"

	"github.com/bgraf/trackmap/util/dates"
)

// Sample is a single timestamped GPS fix of the recorded track.
type Sample struct {
	TimestampMs int64
	Lon, Lat    float64
}

// Time returns the sample's timestamp as time.Time.
func (s Sample) Time() time.Time {
	return dates.FromMillis(s.TimestampMs)
}

func (s Sample) MarshalJSON() ([]byte, error) {
	return json.Marshal([]float64{s.Lon, s.Lat})
}

// Track is a sequence of samples in arrival order. No time ordering is assumed.
type Track []Sample

// Capture pairs a photograph's identifier with the instant it was taken.
type Capture struct {
	Name        string `json:"name" yaml:"name"`
	TimestampMs int64  `json:"time" yaml:"time"`
}

func (c Capture) Time() time.Time {
	return dates.FromMillis(c.TimestampMs)
}

// InferredLocation is the position assigned to a photograph. Its coordinates always equal those of
// some track sample.
type InferredLocation struct {
	Name     string
	Lon, Lat float64
}

// Route is a curated [lon, lat] path, independent of the samples used for matching.
type Route [][2]float64
