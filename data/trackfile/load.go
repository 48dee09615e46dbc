package trackfile

import (
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/bgraf/trackmap/data"
	"github.com/bgraf/trackmap/geotrack"
)

var (
	gpxExtensions  = []string{".gpx"}
	nmeaExtensions = []string{".nmea", ".txt"}
	rawExtensions  = []string{".json"}
)

// LoadTrack reads a track file. The format follows the extension: raw JSON log, GPX or NMEA.
func LoadTrack(trackFilePath string) (geotrack.Track, error) {
	ext := strings.ToLower(path.Ext(trackFilePath))

	switch {
	case slices.Contains(rawExtensions, ext):
		return data.LoadRawTrack(trackFilePath)
	case slices.Contains(gpxExtensions, ext):
		return loadGPXTrack(trackFilePath)
	case slices.Contains(nmeaExtensions, ext):
		return loadNMEATrack(trackFilePath)
	}

	return nil, fmt.Errorf("unknown track extension '%s'", ext)
}

// IsTrackFile reports whether LoadTrack understands the file's extension.
func IsTrackFile(p string) bool {
	ext := strings.ToLower(path.Ext(p))
	return slices.Contains(rawExtensions, ext) || slices.Contains(gpxExtensions, ext) || slices.Contains(nmeaExtensions, ext)
}
