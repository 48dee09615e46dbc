package trackfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testGPX = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="test" xmlns="http://www.topografix.com/GPX/1/1">
  <trk>
    <trkseg>
      <trkpt lat="38.74" lon="-109.56"><time>2021-05-03T10:00:00Z</time></trkpt>
      <trkpt lat="38.75" lon="-109.57"></trkpt>
      <trkpt lat="38.76" lon="-109.58"><time>2021-05-03T10:00:05Z</time></trkpt>
    </trkseg>
  </trk>
</gpx>
`

const testNMEA = `$GPRMC,123519,A,4807.038,N,01131.000,E,022.4,084.4,230321,003.1,W,A*09
$GPGGA,123519,4807.038,N,01131.000,E,1,08,0.9,545.4,M,46.9,M,,*47
$GPRMC,123619,V,4807.038,N,01131.000,E,022.4,084.4,230321,003.1,W,N*12

$GPRMC,123719,A,4808.000,N,01132.000,E,022.4,084.4,230321,003.1,W,A*0C
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoadTrack_GPX(t *testing.T) {
	track, err := LoadTrack(writeFile(t, "track.gpx", testGPX))
	require.NoError(t, err)
	require.Len(t, track, 2)

	assert.Equal(t, time.Date(2021, 5, 3, 10, 0, 0, 0, time.UTC).UnixMilli(), track[0].TimestampMs)
	assert.Equal(t, -109.56, track[0].Lon)
	assert.Equal(t, 38.74, track[0].Lat)
	assert.Equal(t, int64(5000), track[1].TimestampMs-track[0].TimestampMs)
}

func TestLoadTrack_NMEA(t *testing.T) {
	track, err := LoadTrack(writeFile(t, "log.nmea", testNMEA))
	require.NoError(t, err)
	require.Len(t, track, 2)

	assert.Equal(t, time.Date(2021, 3, 23, 12, 35, 19, 0, time.UTC).UnixMilli(), track[0].TimestampMs)
	assert.InDelta(t, 48.1173, track[0].Lat, 1e-4)
	assert.InDelta(t, 11.51667, track[0].Lon, 1e-4)
	assert.Equal(t, int64(120_000), track[1].TimestampMs-track[0].TimestampMs)
}

func TestReadNMEATrack_BadChecksum(t *testing.T) {
	_, err := readNMEATrack(strings.NewReader("$GPRMC,123519,A,4807.038,N,01131.000,E,022.4,084.4,230321,003.1,W,A*00\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}

func TestLoadTrack_RawJSON(t *testing.T) {
	track, err := LoadTrack(writeFile(t, "raw.json", `[{"time":"10","longitude":"1.5","latitude":"2.5","alt":"0","segment":"0"}]`))
	require.NoError(t, err)
	require.Len(t, track, 1)
	assert.Equal(t, int64(10_000), track[0].TimestampMs)
}

func TestLoadTrack_UnknownExtension(t *testing.T) {
	_, err := LoadTrack("route.kml")
	require.Error(t, err)
	assert.False(t, IsTrackFile("route.kml"))
	assert.True(t, IsTrackFile("TRACK.GPX"))
}
