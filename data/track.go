package data

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/bgraf/trackmap/geotrack"
)

var errNotFinite = errors.New("not a finite number")

// RawRecord is one entry of the raw track log. Every field is textual; only time, longitude and
// latitude are used.
type RawRecord struct {
	Time      string `json:"time"`
	Alt       string `json:"alt"`
	Longitude string `json:"longitude"`
	Latitude  string `json:"latitude"`
	Segment   string `json:"segment"`
}

// ParseRawTrack converts raw records into samples, keeping their order. Timestamps are Unix seconds and
// become milliseconds.
func ParseRawTrack(source string, records []RawRecord) (geotrack.Track, error) {
	track := make(geotrack.Track, 0, len(records))

	for i, r := range records {
		sample, err := parseRawRecord(r)
		if err != nil {
			err.Source = source
			err.Index = i
			return nil, err
		}

		track = append(track, sample)
	}

	return track, nil
}

func parseRawRecord(r RawRecord) (geotrack.Sample, *MalformedRecordError) {
	secs, err := strconv.ParseInt(strings.TrimSpace(r.Time), 10, 64)
	if err != nil {
		return geotrack.Sample{}, &MalformedRecordError{Field: "time", Value: r.Time, Err: err}
	}

	// Milliseconds must fit into int64.
	if secs > math.MaxInt64/1000 || secs < math.MinInt64/1000 {
		rangeErr := &strconv.NumError{Func: "ParseInt", Num: r.Time, Err: strconv.ErrRange}
		return geotrack.Sample{}, &MalformedRecordError{Field: "time", Value: r.Time, Err: rangeErr}
	}

	lon, err := parseCoordinate(r.Longitude)
	if err != nil {
		return geotrack.Sample{}, &MalformedRecordError{Field: "longitude", Value: r.Longitude, Err: err}
	}

	lat, err := parseCoordinate(r.Latitude)
	if err != nil {
		return geotrack.Sample{}, &MalformedRecordError{Field: "latitude", Value: r.Latitude, Err: err}
	}

	return geotrack.Sample{TimestampMs: secs * 1000, Lon: lon, Lat: lat}, nil
}

func parseCoordinate(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNotFinite
	}

	return v, nil
}

// ReadRawTrack decodes a JSON array of raw records and parses it.
func ReadRawTrack(source string, r io.Reader) (geotrack.Track, error) {
	var records []RawRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode raw track %s: %w", source, err)
	}

	return ParseRawTrack(source, records)
}

func LoadRawTrack(path string) (geotrack.Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadRawTrack(path, f)
}
