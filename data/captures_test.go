package data

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/bgraf/trackmap/geotrack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCaptureIndex(t *testing.T) {
	captures, err := ParseCaptureIndex("times.json", []byte(`[
		{"name": "IMG_0001.jpg", "time": 1620036000000},
		{"name": "IMG_0002.jpg", "time": "1620036005000"},
		{"name": "IMG_0003.jpg", "time": 1.620036010e12}
	]`))
	require.NoError(t, err)

	assert.Equal(t, []geotrack.Capture{
		{Name: "IMG_0001.jpg", TimestampMs: 1620036000000},
		{Name: "IMG_0002.jpg", TimestampMs: 1620036005000},
		{Name: "IMG_0003.jpg", TimestampMs: 1620036010000},
	}, captures)
}

func TestParseCaptureIndex_Malformed(t *testing.T) {
	_, err := ParseCaptureIndex("times.json", []byte(`[{"name": "a", "time": 1}, {"name": "b", "time": 1.5}]`))

	var malformed *MalformedRecordError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, 1, malformed.Index)
	assert.Equal(t, "time", malformed.Field)
}

func TestParseCaptureIndex_OutOfRange(t *testing.T) {
	tests := []struct {
		name string
		time string
	}{
		{"above int64", "1e19"},
		{"below int64", "-1e30"},
		{"two to the 63", "9.223372036854775808e18"},
		{"integer literal", "99999999999999999999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCaptureIndex("times.json", []byte(`[{"name": "a", "time": `+tt.time+`}]`))

			var malformed *MalformedRecordError
			require.True(t, errors.As(err, &malformed))
			assert.Equal(t, "time", malformed.Field)
			assert.True(t, errors.Is(err, strconv.ErrRange))
		})
	}
}

func TestParseCaptureIndexYAML(t *testing.T) {
	captures, err := ParseCaptureIndexYAML("times.yaml", []byte("- name: a.jpg\n  time: 1000\n- name: b.jpg\n  time: 2000\n"))
	require.NoError(t, err)
	assert.Equal(t, []geotrack.Capture{{Name: "a.jpg", TimestampMs: 1000}, {Name: "b.jpg", TimestampMs: 2000}}, captures)
}

func TestCaptureIndex_WriteAndLoad(t *testing.T) {
	p := filepath.Join(t.TempDir(), "times.json")
	captures := []geotrack.Capture{{Name: "a.jpg", TimestampMs: 42}}

	require.NoError(t, WriteCaptureIndex(p, captures))

	loaded, err := LoadCaptureIndex(p)
	require.NoError(t, err)
	assert.Equal(t, captures, loaded)

	_, err = LoadCaptureIndex(filepath.Join(t.TempDir(), "missing.json"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
