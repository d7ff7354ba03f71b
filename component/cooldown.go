package component

// Cooldown is a simple frame-based cooldown counter. Firing is allowed only
// once Frames has counted down to zero.
type Cooldown struct {
	// Frames remaining for the cooldown (in update ticks)
	Frames int
}

// Tick counts one frame down. Negative values snap back to zero.
func (c *Cooldown) Tick() {
	if c == nil {
		return
	}
	if c.Frames < 0 {
		c.Frames = 0
	} else if c.Frames > 0 {
		c.Frames--
	}
}

// Ready reports whether the cooldown has fully elapsed.
func (c *Cooldown) Ready() bool {
	return c == nil || c.Frames == 0
}

// Start restarts the countdown.
func (c *Cooldown) Start(frames int) {
	if c == nil {
		return
	}
	if frames < 0 {
		frames = 0
	}
	c.Frames = frames
}
