package interaction

// Controller owns an interaction state and feeds it events one at a time. It is not safe for
// concurrent use.
type Controller struct {
	opts  Options
	state State
}

func NewController(opts Options, vp Viewport) *Controller {
	return &Controller{opts: opts, state: Initial(vp)}
}

// Handle applies e and returns the new projection.
func (c *Controller) Handle(e Event) Projection {
	var p Projection
	c.state, p = Transition(c.opts, c.state, e)
	return p
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) Projection() Projection {
	return Project(c.state)
}
