package interaction

import (
	"encoding/json"
	"fmt"
)

// Event is one of ViewportChange, Hover, Click or Dismiss.
type Event interface {
	event()
}

// ViewportChange is raised after panning or zooming.
type ViewportChange struct {
	Viewport Viewport
}

// Hover reports the features under the pointer, in the renderer's order, and the pointer offset.
type Hover struct {
	Features []Feature
	Pixel    Pixel
}

type Click struct{}

// Dismiss closes the detail overlay.
type Dismiss struct{}

func (ViewportChange) event() {}
func (Hover) event()          {}
func (Click) event()          {}
func (Dismiss) event()        {}

// envelope is the wire form of an event.
type envelope struct {
	Type     string    `json:"type"`
	Viewport *Viewport `json:"viewport,omitempty"`
	Features []Feature `json:"features,omitempty"`
	X        int       `json:"x"`
	Y        int       `json:"y"`
}

// DecodeEvent parses a JSON event such as {"type":"hover","features":[...],"x":1,"y":2}.
func DecodeEvent(payload []byte) (Event, error) {
	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, fmt.Errorf("decode event: %w", err)
	}

	switch env.Type {
	case "viewport":
		if env.Viewport == nil {
			return nil, fmt.Errorf("viewport event without viewport")
		}
		return ViewportChange{Viewport: *env.Viewport}, nil
	case "hover":
		return Hover{Features: env.Features, Pixel: Pixel{X: env.X, Y: env.Y}}, nil
	case "click":
		return Click{}, nil
	case "dismiss":
		return Dismiss{}, nil
	}

	return nil, fmt.Errorf("unknown event type '%s'", env.Type)
}
