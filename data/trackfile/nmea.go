package trackfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/adrianmo/go-nmea"
	"github.com/bgraf/trackmap/geotrack"
)

func loadNMEATrack(trackFilePath string) (geotrack.Track, error) {
	f, err := os.Open(trackFilePath)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	return readNMEATrack(f)
}

func readNMEATrack(r io.Reader) (geotrack.Track, error) {
	var track geotrack.Track

	scanner := bufio.NewScanner(r)
	line := 0

	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		sentence, err := nmea.Parse(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		rmc, ok := sentence.(nmea.RMC)
		if !ok {
			continue
		}

		// Only fixes with a valid status are of interest.
		if rmc.Validity != nmea.ValidRMC || !rmc.Date.Valid || !rmc.Time.Valid {
			continue
		}

		// RMC carries two-digit years.
		date := time.Date(
			2000+rmc.Date.YY, time.Month(rmc.Date.MM), rmc.Date.DD,
			rmc.Time.Hour, rmc.Time.Minute, rmc.Time.Second, rmc.Time.Millisecond*int(time.Millisecond), time.UTC,
		)

		track = append(track, geotrack.Sample{
			TimestampMs: date.UnixMilli(),
			Lon:         rmc.Longitude,
			Lat:         rmc.Latitude,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return track, nil
}
