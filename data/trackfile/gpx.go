package trackfile

import (
	"fmt"

	"github.com/bgraf/trackmap/geotrack"
	"github.com/tkrajina/gpxgo/gpx"
)

func loadGPXTrack(trackFilePath string) (geotrack.Track, error) {
	gpxData, err := gpx.ParseFile(trackFilePath)
	if err != nil {
		return nil, fmt.Errorf("read GPX file: %w", err)
	}

	return readGPXTrack(gpxData), nil
}

func readGPXTrack(gpxData *gpx.GPX) geotrack.Track {
	var track geotrack.Track

	for _, trk := range gpxData.Tracks {
		for _, segment := range trk.Segments {
			for _, p := range segment.Points {
				// Points without time cannot take part in matching.
				if p.Timestamp.IsZero() {
					continue
				}
				track = append(track, geotrack.Sample{
					TimestampMs: p.Timestamp.UnixMilli(),
					Lon:         p.Longitude,
					Lat:         p.Latitude,
				})
			}
		}
	}

	return track
}
