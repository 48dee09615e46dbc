package res

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapScript(t *testing.T) {
	script, err := Static.ReadFile("static/map.js")
	require.NoError(t, err)

	tests := []struct {
		name    string
		want    []string
		notWant []string
	}{
		{
			name: "events are posted in order",
			want: []string{"queue = queue.then(", "queue = fetch(config.sessionsURL", "event.seq = ++seq"},
		},
		{
			name:    "photo names are inserted as text",
			want:    []string{"label.textContent = name", "layer.bindTooltip(staticTooltip("},
			notWant: []string{"'<img src=\"'"},
		},
		{
			name:    "empty map hover compares against the container",
			want:    []string{"target === container"},
			notWant: []string{"querySelector('.leaflet-container')"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, s := range tt.want {
				assert.Contains(t, string(script), s)
			}
			for _, s := range tt.notWant {
				assert.NotContains(t, string(script), s)
			}
		})
	}
}
