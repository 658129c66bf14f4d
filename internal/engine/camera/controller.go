package camera

// Movement is the set of held movement keys for one frame.
type Movement struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Up       bool
	Down     bool
}

func (m Movement) axes() (forward, right, up float32) {
	if m.Forward {
		forward++
	}
	if m.Backward {
		forward--
	}
	if m.Right {
		right++
	}
	if m.Left {
		right--
	}
	if m.Up {
		up++
	}
	if m.Down {
		up--
	}
	return forward, right, up
}

// Controller drives a FreeCamera from keyboard movement and mouse drags.
type Controller struct {
	Camera *FreeCamera

	// MoveSpeed is in world units per second.
	MoveSpeed float32
	// RotateSensitivity is radians per pixel of mouse travel.
	RotateSensitivity float32

	// MinHeight, when set, keeps the eye above the ground returned by it.
	MinHeight func(x, z float32) float32

	rotating     bool
	lastX, lastY int32
}

// NewController creates a controller with default speeds.
func NewController(cam *FreeCamera) *Controller {
	return &Controller{
		Camera:            cam,
		MoveSpeed:         30,
		RotateSensitivity: 0.005,
	}
}

// Update applies one frame of input. Rotation follows the mouse only while
// rotate is held; the first frame of a drag just records the position.
func (c *Controller) Update(dt float32, move Movement, mouseX, mouseY int32, rotate bool) {
	if rotate {
		if c.rotating {
			dx := float32(mouseX - c.lastX)
			dy := float32(mouseY - c.lastY)
			c.Camera.Rotate(-dx*c.RotateSensitivity, -dy*c.RotateSensitivity)
		}
		c.lastX, c.lastY = mouseX, mouseY
	}
	c.rotating = rotate

	forward, right, up := move.axes()
	if forward != 0 || right != 0 || up != 0 {
		step := c.MoveSpeed * dt
		c.Camera.Move(forward*step, right*step, up*step)
	}

	if c.MinHeight != nil {
		p := c.Camera.Position()
		if ground := c.MinHeight(p.X, p.Z); p.Y < ground {
			p.Y = ground
			c.Camera.SetPosition(p)
		}
	}
}
