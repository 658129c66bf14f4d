package game

import (
	"fmt"

	"go.uber.org/zap"
)

// TitleSetter is where the counter publishes its status line.
type TitleSetter interface {
	SetTitle(title string)
}

// FrameRateCounter counts drawn frames and publishes the rate once per second.
type FrameRateCounter struct {
	title  TitleSetter
	prefix string
	status func() string
	log    *zap.Logger

	elapsed float32
	frames  int
	rate    int
}

// NewFrameRateCounter creates a counter. status, when non-nil, is appended to
// the title after the rate.
func NewFrameRateCounter(title TitleSetter, prefix string, status func() string, log *zap.Logger) *FrameRateCounter {
	return &FrameRateCounter{
		title:  title,
		prefix: prefix,
		status: status,
		log:    log,
	}
}

// Rate returns the frames drawn during the last full second.
func (c *FrameRateCounter) Rate() int {
	return c.rate
}

// Update implements Renderable.
func (c *FrameRateCounter) Update(dt float32) error {
	c.elapsed += dt
	if c.elapsed < 1 {
		return nil
	}

	c.elapsed -= 1
	if c.elapsed >= 1 {
		// A long stall; don't report a burst of empty seconds.
		c.elapsed = 0
	}
	c.rate = c.frames
	c.frames = 0
	c.publish()
	return nil
}

// Draw implements Renderable.
func (c *FrameRateCounter) Draw(*DrawContext) error {
	c.frames++
	return nil
}

func (c *FrameRateCounter) publish() {
	title := fmt.Sprintf("%s | FPS: %d", c.prefix, c.rate)
	if c.status != nil {
		if s := c.status(); s != "" {
			title += " | " + s
		}
	}
	if c.title != nil {
		c.title.SetTitle(title)
	}
	c.log.Debug("frame rate", zap.Int("fps", c.rate))
}
