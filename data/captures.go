package data

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bgraf/trackmap/geotrack"
	"gopkg.in/yaml.v3"
)

// captureRecord is an entry of the capture index file: photo name and capture time in milliseconds
// since the epoch.
type captureRecord struct {
	Name string      `json:"name" yaml:"name"`
	Time captureTime `json:"time" yaml:"time"`
}

// captureTime keeps the textual number so that parsing errors can be reported per record.
type captureTime string

func (t *captureTime) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = captureTime(s)
		return nil
	}

	*t = captureTime(b)
	return nil
}

func parseMillis(s string) (int64, error) {
	s = strings.TrimSpace(s)
	ms, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		return ms, nil
	}

	// Exponent notation of an integral value, e.g. 1.6e12.
	f, ferr := strconv.ParseFloat(s, 64)
	if ferr != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, err
	}

	// float64(math.MaxInt64) rounds up to 2^63, which no longer fits.
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, &strconv.NumError{Func: "ParseInt", Num: s, Err: strconv.ErrRange}
	}

	return int64(f), nil
}

func parseCaptureRecords(source string, records []captureRecord) ([]geotrack.Capture, error) {
	captures := make([]geotrack.Capture, 0, len(records))
	for i, r := range records {
		ms, err := parseMillis(string(r.Time))
		if err != nil {
			return nil, &MalformedRecordError{Source: source, Index: i, Field: "time", Value: string(r.Time), Err: err}
		}

		captures = append(captures, geotrack.Capture{Name: r.Name, TimestampMs: ms})
	}

	return captures, nil
}

// ParseCaptureIndex parses a JSON capture index.
func ParseCaptureIndex(source string, content []byte) ([]geotrack.Capture, error) {
	var records []captureRecord
	if err := json.Unmarshal(content, &records); err != nil {
		return nil, fmt.Errorf("decode capture index %s: %w", source, err)
	}

	return parseCaptureRecords(source, records)
}

// ParseCaptureIndexYAML parses a YAML sequence of name/time mappings.
func ParseCaptureIndexYAML(source string, content []byte) ([]geotrack.Capture, error) {
	var records []captureRecord
	if err := yaml.Unmarshal(content, &records); err != nil {
		return nil, fmt.Errorf("decode capture index %s: %w", source, err)
	}

	return parseCaptureRecords(source, records)
}

// LoadCaptureIndex reads a capture index, selecting the format by file extension.
func LoadCaptureIndex(path string) ([]geotrack.Capture, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseCaptureIndexYAML(path, content)
	default:
		return ParseCaptureIndex(path, content)
	}
}

// WriteCaptureIndex writes captures as an indented JSON index.
func WriteCaptureIndex(path string, captures []geotrack.Capture) error {
	payload, err := json.MarshalIndent(captures, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, append(payload, '\n'), 0o666)
}
