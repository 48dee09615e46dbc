package images

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/bgraf/trackmap/filesystem"
	"github.com/bgraf/trackmap/geotrack"
	"github.com/rs/zerolog"
	"github.com/rwcarlsen/goexif/exif"
)

var ErrNoExif = errors.New("no EXIF capture time")

// Extensions lists the photo file extensions considered when scanning directories.
var Extensions = []string{".jpg", ".jpeg"}

// ReadCaptureTime reads DateTimeOriginal from the EXIF data. The camera clock is interpreted in loc.
func ReadCaptureTime(r io.Reader, loc *time.Location) (time.Time, error) {
	x, err := exif.Decode(r)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s", ErrNoExif, err)
	}

	t, err := x.DateTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s", ErrNoExif, err)
	}

	// EXIF times carry no zone; reinterpret the wall clock.
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc), nil
}

func ReadCaptureTimeFromFile(path string, loc *time.Location) (time.Time, error) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, err
	}
	defer f.Close()

	return ReadCaptureTime(f, loc)
}

// ScanCaptures builds a capture index from the photos found in the given roots. Photos without a
// capture time are skipped and logged. The result is ordered by capture time, then name.
func ScanCaptures(roots []string, loc *time.Location, offset time.Duration, logger zerolog.Logger) ([]geotrack.Capture, error) {
	paths, err := filesystem.GatherFiles(roots, Extensions)
	if err != nil {
		return nil, fmt.Errorf("scanning files: %w", err)
	}

	var captures []geotrack.Capture
	for _, p := range paths {
		t, err := ReadCaptureTimeFromFile(p, loc)
		if err != nil {
			logger.Warn().Err(err).Str("photo", p).Msg("skipping photo")
			continue
		}

		captures = append(captures, geotrack.Capture{
			Name:        filepath.Base(p),
			TimestampMs: t.Add(offset).UnixMilli(),
		})
	}

	sort.SliceStable(captures, func(i, j int) bool {
		if captures[i].TimestampMs != captures[j].TimestampMs {
			return captures[i].TimestampMs < captures[j].TimestampMs
		}
		return captures[i].Name < captures[j].Name
	})

	return captures, nil
}
