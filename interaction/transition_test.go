package interaction

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bgraf/trackmap/geotrack"
	"github.com/bgraf/trackmap/option"
)

var (
	photoA = Feature{Layer: geotrack.PhotosLayer, Name: "a.jpg"}
	photoB = Feature{Layer: geotrack.PhotosLayer, Name: "b.jpg"}
	route  = Feature{Layer: geotrack.RouteLayer}
	vp     = Viewport{Lat: 38.7, Lon: -109.5, Zoom: 15}
)

func hovering(f Feature, px Pixel) State {
	return State{Mode: Hovering, Hovered: option.Some(f), Location: option.Some(px), Viewport: vp}
}

func overlay(f Feature) State {
	return State{Mode: OverlayOpen, Hovered: option.Some(f), Viewport: vp}
}

// allStates covers every mode so properties can be checked from any state.
func allStates() map[string]State {
	return map[string]State{
		"idle":     Initial(vp),
		"hovering": hovering(photoA, Pixel{X: 3, Y: 4}),
		"overlay":  overlay(photoA),
	}
}

func TestTransition_ViewportChangeAlwaysIdles(t *testing.T) {
	newVP := Viewport{Lat: 1, Lon: 2, Zoom: 3}

	for _, opts := range []Options{{}, {Overlay: true}} {
		for name, s := range allStates() {
			t.Run(name, func(t *testing.T) {
				next, p := Transition(opts, s, ViewportChange{Viewport: newVP})
				assert.Equal(t, Initial(newVP), next)
				assert.Equal(t, Projection{}, p)
			})
		}
	}
}

func TestTransition_HoverWithoutPhotoIdles(t *testing.T) {
	tests := []struct {
		name     string
		features []Feature
	}{
		{"no features", nil},
		{"route only", []Feature{route}},
		{"unknown layer", []Feature{{Layer: "labels", Name: "x"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, s := range []State{Initial(vp), hovering(photoA, Pixel{X: 1, Y: 1})} {
				next, p := Transition(Options{}, s, Hover{Features: tt.features, Pixel: Pixel{X: 9, Y: 9}})
				assert.Equal(t, Initial(vp), next)
				assert.False(t, p.TooltipVisible)
				assert.Nil(t, p.Name)
			}
		})
	}
}

func TestTransition_HoverSelectsFirstPhoto(t *testing.T) {
	px := Pixel{X: 120, Y: 45}
	next, p := Transition(Options{}, Initial(vp), Hover{Features: []Feature{route, photoB, photoA}, Pixel: px})

	assert.Equal(t, hovering(photoB, px), next)
	require.True(t, p.TooltipVisible)
	assert.Equal(t, "b.jpg", *p.Name)
	assert.Equal(t, 120, *p.PixelX)
	assert.Equal(t, 45, *p.PixelY)
}

func TestTransition_HoverMovesTooltip(t *testing.T) {
	s := hovering(photoA, Pixel{X: 1, Y: 1})
	next, _ := Transition(Options{}, s, Hover{Features: []Feature{photoA}, Pixel: Pixel{X: 2, Y: 5}})
	assert.Equal(t, Pixel{X: 2, Y: 5}, next.Location.Get())
}

func TestTransition_ClickWithoutOverlay(t *testing.T) {
	for name, s := range allStates() {
		t.Run(name, func(t *testing.T) {
			next, _ := Transition(Options{}, s, Click{})
			assert.Equal(t, s, next)

			next, _ = Transition(Options{}, s, Dismiss{})
			assert.Equal(t, s, next)
		})
	}
}

func TestTransition_Overlay(t *testing.T) {
	opts := Options{Overlay: true}

	s, p := Transition(opts, hovering(photoA, Pixel{X: 5, Y: 6}), Click{})
	assert.Equal(t, overlay(photoA), s)
	assert.False(t, p.TooltipVisible)
	require.True(t, p.OverlayVisible)
	assert.Equal(t, "a.jpg", *p.OverlayName)

	// Hover updates are suppressed while the overlay is open.
	s, _ = Transition(opts, s, Hover{Features: []Feature{photoB}, Pixel: Pixel{X: 1, Y: 1}})
	assert.Equal(t, overlay(photoA), s)
	s, _ = Transition(opts, s, Hover{})
	assert.Equal(t, overlay(photoA), s)

	// A second click keeps the overlay.
	s, _ = Transition(opts, s, Click{})
	assert.Equal(t, overlay(photoA), s)

	s, p = Transition(opts, s, Dismiss{})
	assert.Equal(t, Initial(vp), s)
	assert.Equal(t, Projection{}, p)
}

func TestTransition_ClickWhileIdleWithOverlay(t *testing.T) {
	next, _ := Transition(Options{Overlay: true}, Initial(vp), Click{})
	assert.Equal(t, Initial(vp), next)
}

func TestProjection_JSON(t *testing.T) {
	payload, err := json.Marshal(Project(hovering(photoA, Pixel{X: 7, Y: 8})))
	require.NoError(t, err)
	assert.JSONEq(t, `{"tooltipVisible":true,"name":"a.jpg","pixelX":7,"pixelY":8,"overlayVisible":false}`, string(payload))

	payload, err = json.Marshal(Project(Initial(vp)))
	require.NoError(t, err)
	assert.JSONEq(t, `{"tooltipVisible":false,"overlayVisible":false}`, string(payload))
}
