// Package game implements the main loop and the water demo it hosts.
package game

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-water/internal/engine/input"
	"github.com/Faultbox/midgard-water/internal/engine/window"
)

// ErrQuit is returned from Update to end the loop without an error.
var ErrQuit = errors.New("quit requested")

// DrawContext is passed to every renderable each frame.
type DrawContext struct {
	Width  int32
	Height int32
	// Frame counts drawn frames, starting at 1.
	Frame uint64
}

// Renderable is one participant of the frame loop. Update runs for every
// renderable before any Draw.
type Renderable interface {
	Update(dt float32) error
	Draw(ctx *DrawContext) error
}

// Resizer is implemented by renderables that track the back-buffer size.
type Resizer interface {
	Resize(width, height int32) error
}

// Config holds window settings for the game.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
}

// Game owns the window, the input and the renderables.
type Game struct {
	window *window.Window
	input  *input.Input
	log    *zap.Logger

	renderables []Renderable
	ctx         DrawContext

	// drawableSize reports the back-buffer size after a resize event.
	drawableSize func() (int32, int32)
}

// New creates the window, GL context and input handler.
func New(cfg Config, log *zap.Logger) (*Game, error) {
	log.Info("initializing game",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
	)

	w, err := window.New(window.Config{
		Title:      cfg.Title,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Fullscreen: cfg.Fullscreen,
		VSync:      cfg.VSync,
	}, log.Named("window"))
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	g := &Game{
		window:       w,
		input:        input.New(),
		log:          log,
		drawableSize: w.DrawableSize,
	}
	g.ctx.Width, g.ctx.Height = w.DrawableSize()

	return g, nil
}

// Add appends renderables; they update and draw in the order added.
func (g *Game) Add(r ...Renderable) {
	g.renderables = append(g.renderables, r...)
}

// Input returns the input state renderables read from.
func (g *Game) Input() *input.Input {
	return g.input
}

// Window returns the game window.
func (g *Game) Window() *window.Window {
	return g.window
}

// Size returns the current back-buffer size.
func (g *Game) Size() (int32, int32) {
	return g.ctx.Width, g.ctx.Height
}

// Run drives the loop until the window closes or a renderable returns ErrQuit.
func (g *Game) Run() error {
	g.log.Info("starting game loop")

	last := time.Now()
	for {
		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now

		if g.input.Update() {
			g.log.Info("window closed")
			return nil
		}

		err := g.frame(dt, g.input.Events(), g.input.Focused)
		if errors.Is(err, ErrQuit) {
			g.log.Info("quit requested")
			return nil
		}
		if err != nil {
			return err
		}

		g.window.SwapBuffers()
	}
}

// frame applies resize events, then updates and draws every renderable.
// Updates are skipped while the window is unfocused.
func (g *Game) frame(dt float32, events []input.Event, focused bool) error {
	for _, e := range events {
		if e.Type != input.EventWindowResize {
			continue
		}
		if err := g.resize(); err != nil {
			return err
		}
	}

	if focused {
		for _, r := range g.renderables {
			if err := r.Update(dt); err != nil {
				return fmt.Errorf("update: %w", err)
			}
		}
	}

	g.ctx.Frame++
	for _, r := range g.renderables {
		if err := r.Draw(&g.ctx); err != nil {
			return fmt.Errorf("draw: %w", err)
		}
	}
	return nil
}

func (g *Game) resize() error {
	width, height := g.drawableSize()
	if width == g.ctx.Width && height == g.ctx.Height {
		return nil
	}
	g.ctx.Width, g.ctx.Height = width, height
	g.log.Debug("resize", zap.Int32("width", width), zap.Int32("height", height))

	for _, r := range g.renderables {
		if rs, ok := r.(Resizer); ok {
			if err := rs.Resize(width, height); err != nil {
				return fmt.Errorf("resize to %dx%d: %w", width, height, err)
			}
		}
	}
	return nil
}

// Close releases renderables that hold resources, then the window.
func (g *Game) Close() {
	g.log.Info("closing game")

	for i := len(g.renderables) - 1; i >= 0; i-- {
		if c, ok := g.renderables[i].(interface{ Close() }); ok {
			c.Close()
		}
	}
	if g.window != nil {
		g.window.Close()
	}
}
