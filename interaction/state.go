// Package interaction decides, for every pointer or viewport event raised by the map, whether a photo
// tooltip or detail overlay is visible.
package interaction

import (
	"github.com/bgraf/trackmap/geotrack"
	"github.com/bgraf/trackmap/option"
)

type Mode int

const (
	Idle Mode = iota
	Hovering
	OverlayOpen
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "idle"
	case Hovering:
		return "hovering"
	case OverlayOpen:
		return "overlay"
	}
	return "unknown"
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Feature is a rendered feature reported under the pointer.
type Feature struct {
	Layer string `json:"layer"`
	Name  string `json:"name"`
}

// IsPhoto reports whether the feature belongs to the photographs layer.
func (f Feature) IsPhoto() bool {
	return f.Layer == geotrack.PhotosLayer
}

// Pixel is an offset relative to the map viewport.
type Pixel struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type Viewport struct {
	Lat  float64 `json:"latitude"`
	Lon  float64 `json:"longitude"`
	Zoom float64 `json:"zoom"`
}

// State is the controller's complete interaction state. Hovered and Location are set in Hovering and
// OverlayOpen only.
type State struct {
	Mode     Mode
	Hovered  option.Option[Feature]
	Location option.Option[Pixel]
	Viewport Viewport
}

// Initial returns the Idle state for the given viewport.
func Initial(vp Viewport) State {
	return State{Mode: Idle, Viewport: vp}
}

// Projection is the UI-facing view of a state.
type Projection struct {
	TooltipVisible bool    `json:"tooltipVisible"`
	Name           *string `json:"name,omitempty"`
	PixelX         *int    `json:"pixelX,omitempty"`
	PixelY         *int    `json:"pixelY,omitempty"`
	OverlayVisible bool    `json:"overlayVisible"`
	OverlayName    *string `json:"overlayName,omitempty"`
}

// Project derives the projection of s.
func Project(s State) Projection {
	feature, hasFeature := s.Hovered.Unpack()

	switch s.Mode {
	case Hovering:
		px, hasPixel := s.Location.Unpack()
		if !hasFeature || !hasPixel {
			return Projection{}
		}
		return Projection{
			TooltipVisible: true,
			Name:           &feature.Name,
			PixelX:         &px.X,
			PixelY:         &px.Y,
		}
	case OverlayOpen:
		if !hasFeature {
			return Projection{}
		}
		return Projection{OverlayVisible: true, OverlayName: &feature.Name}
	}

	return Projection{}
}
