package data

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/bgraf/trackmap/geotrack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoute(t *testing.T) {
	route, err := ParseRoute("route.json", []byte(`{"coordinates": [[-109.56, 38.74], [-109.57, 38.75]]}`))
	require.NoError(t, err)
	assert.Equal(t, geotrack.Route{{-109.56, 38.74}, {-109.57, 38.75}}, route)

	_, err = ParseRoute("route.json", []byte(`[1,2]`))
	assert.Error(t, err)
}

func TestRoute_WriteAndLoad(t *testing.T) {
	p := filepath.Join(t.TempDir(), "route.json")
	route := geotrack.Route{{1, 2}, {3, 4}}

	require.NoError(t, WriteRoute(p, route))
	loaded, err := LoadRoute(p)
	require.NoError(t, err)
	assert.Equal(t, route, loaded)
}

func TestConvertRawCSV(t *testing.T) {
	input := "time,alt,longitude,latitude,segment\n1620036000,1400,-109.5,38.7,0\n1620036005,1401,-109.6,38.8,0\n"

	var out strings.Builder
	n, err := ConvertRawCSV(strings.NewReader(input), &out)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.JSONEq(t, `[
		{"time":"1620036000","alt":"1400","longitude":"-109.5","latitude":"38.7","segment":"0"},
		{"time":"1620036005","alt":"1401","longitude":"-109.6","latitude":"38.8","segment":"0"}
	]`, out.String())

	track, err := ReadRawTrack("raw.json", strings.NewReader(out.String()))
	require.NoError(t, err)
	assert.Len(t, track, 2)
}

func TestReadRawCSV_ReorderedColumns(t *testing.T) {
	records, err := ReadRawCSV(strings.NewReader("Latitude,Time,Longitude\n1,2,3\n"))
	require.NoError(t, err)
	assert.Equal(t, []RawRecord{{Time: "2", Longitude: "3", Latitude: "1"}}, records)
}
