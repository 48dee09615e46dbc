package data

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bgraf/trackmap/geotrack"
)

// routeFile is the curated route geometry: a GeoJSON-like object with a coordinates array.
type routeFile struct {
	Type        string       `json:"type,omitempty"`
	Coordinates [][2]float64 `json:"coordinates"`
}

func ParseRoute(source string, content []byte) (geotrack.Route, error) {
	var rf routeFile
	if err := json.Unmarshal(content, &rf); err != nil {
		return nil, fmt.Errorf("decode route %s: %w", source, err)
	}

	return geotrack.Route(rf.Coordinates), nil
}

func LoadRoute(path string) (geotrack.Route, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ParseRoute(path, content)
}

func WriteRoute(path string, route geotrack.Route) error {
	payload, err := json.Marshal(routeFile{Type: "LineString", Coordinates: route})
	if err != nil {
		return err
	}

	return os.WriteFile(path, payload, 0o666)
}
