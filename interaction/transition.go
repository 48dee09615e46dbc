package interaction

import "github.com/bgraf/trackmap/option"

type Options struct {
	// Overlay enables the detail overlay: a click on a hovered photo opens it and suppresses hover
	// updates until dismissed.
	Overlay bool
}

// Transition computes the successor of s under e. It is total and has no side effects.
func Transition(opts Options, s State, e Event) (State, Projection) {
	next := step(opts, s, e)
	return next, Project(next)
}

func step(opts Options, s State, e Event) State {
	switch ev := e.(type) {
	case ViewportChange:
		return Initial(ev.Viewport)

	case Hover:
		if s.Mode == OverlayOpen {
			return s
		}
		for _, f := range ev.Features {
			if f.IsPhoto() {
				return State{
					Mode:     Hovering,
					Hovered:  option.Some(f),
					Location: option.Some(ev.Pixel),
					Viewport: s.Viewport,
				}
			}
		}
		return Initial(s.Viewport)

	case Click:
		if opts.Overlay && s.Mode == Hovering {
			return State{
				Mode:     OverlayOpen,
				Hovered:  s.Hovered,
				Viewport: s.Viewport,
			}
		}
		return s

	case Dismiss:
		if opts.Overlay && s.Mode == OverlayOpen {
			return Initial(s.Viewport)
		}
		return s
	}

	return s
}
