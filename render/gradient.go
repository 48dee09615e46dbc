package render

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	RouteColorStart = "#02c4e9"
	RouteColorEnd   = "#8b02e9"
)

// RouteGradient returns one color per route segment, blending from start to end along the route.
func RouteGradient(start, end string, segments int) ([]string, error) {
	c1, err := colorful.Hex(start)
	if err != nil {
		return nil, fmt.Errorf("gradient start: %w", err)
	}

	c2, err := colorful.Hex(end)
	if err != nil {
		return nil, fmt.Errorf("gradient end: %w", err)
	}

	if segments <= 0 {
		return nil, nil
	}

	colors := make([]string, segments)
	for i := range colors {
		t := 0.0
		if segments > 1 {
			t = float64(i) / float64(segments-1)
		}
		colors[i] = c1.BlendLab(c2, t).Clamped().Hex()
	}

	return colors, nil
}
