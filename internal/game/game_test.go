package game

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-water/internal/engine/input"
)

// recorder is a Renderable that logs its calls.
type recorder struct {
	name    string
	calls   *[]string
	err     error
	resized [][2]int32
}

func (r *recorder) Update(dt float32) error {
	*r.calls = append(*r.calls, r.name+".update")
	return r.err
}

func (r *recorder) Draw(ctx *DrawContext) error {
	*r.calls = append(*r.calls, r.name+".draw")
	return nil
}

type resizingRecorder struct {
	recorder
}

func (r *resizingRecorder) Resize(w, h int32) error {
	r.resized = append(r.resized, [2]int32{w, h})
	return nil
}

func newTestGame(width, height int32) *Game {
	g := &Game{
		log:          zap.NewNop(),
		drawableSize: func() (int32, int32) { return width, height },
	}
	g.ctx.Width, g.ctx.Height = 800, 600
	return g
}

func TestFrameUpdatesBeforeDraws(t *testing.T) {
	var calls []string
	g := newTestGame(800, 600)
	g.Add(&recorder{name: "a", calls: &calls}, &recorder{name: "b", calls: &calls})

	if err := g.frame(0.016, nil, true); err != nil {
		t.Fatalf("frame: %v", err)
	}

	want := "a.update b.update a.draw b.draw"
	if got := strings.Join(calls, " "); got != want {
		t.Errorf("calls = %q, want %q", got, want)
	}
	if g.ctx.Frame != 1 {
		t.Errorf("frame counter = %d, want 1", g.ctx.Frame)
	}
}

func TestFrameSkipsUpdateWhenUnfocused(t *testing.T) {
	var calls []string
	g := newTestGame(800, 600)
	g.Add(&recorder{name: "a", calls: &calls})

	if err := g.frame(0.016, nil, false); err != nil {
		t.Fatalf("frame: %v", err)
	}
	if got := strings.Join(calls, " "); got != "a.draw" {
		t.Errorf("calls = %q, want only a draw", got)
	}
}

func TestFrameDispatchesResize(t *testing.T) {
	var calls []string
	g := newTestGame(1024, 768)
	r := &resizingRecorder{recorder{name: "a", calls: &calls}}
	g.Add(r)

	events := []input.Event{{Type: input.EventWindowResize, Width: 1024, Height: 768}}
	if err := g.frame(0.016, events, true); err != nil {
		t.Fatalf("frame: %v", err)
	}
	if len(r.resized) != 1 || r.resized[0] != [2]int32{1024, 768} {
		t.Errorf("resized = %v", r.resized)
	}
	if w, h := g.Size(); w != 1024 || h != 768 {
		t.Errorf("Size = %dx%d", w, h)
	}

	// Same size again is not re-dispatched.
	if err := g.frame(0.016, events, true); err != nil {
		t.Fatalf("frame: %v", err)
	}
	if len(r.resized) != 1 {
		t.Errorf("resize dispatched %d times, want 1", len(r.resized))
	}
}

func TestFrameStopsOnQuit(t *testing.T) {
	var calls []string
	g := newTestGame(800, 600)
	g.Add(&recorder{name: "a", calls: &calls, err: ErrQuit}, &recorder{name: "b", calls: &calls})

	err := g.frame(0.016, nil, true)
	if !errors.Is(err, ErrQuit) {
		t.Fatalf("err = %v, want ErrQuit", err)
	}
	if got := strings.Join(calls, " "); got != "a.update" {
		t.Errorf("calls = %q, want loop to stop after the quitting update", got)
	}
}

type titleRecorder struct {
	titles []string
}

func (r *titleRecorder) SetTitle(title string) {
	r.titles = append(r.titles, title)
}

func TestFrameRateCounter(t *testing.T) {
	title := &titleRecorder{}
	c := NewFrameRateCounter(title, "Water", func() string { return "height 20.0" }, zap.NewNop())

	for range 30 {
		if err := c.Update(0.02); err != nil {
			t.Fatal(err)
		}
		c.Draw(nil)
	}
	if c.Rate() != 0 || len(title.titles) != 0 {
		t.Fatalf("published before a full second: rate %d titles %v", c.Rate(), title.titles)
	}

	for range 25 {
		c.Update(0.02)
		c.Draw(nil)
	}

	if c.Rate() != 49 && c.Rate() != 50 {
		t.Errorf("rate = %d, want ~50", c.Rate())
	}
	if len(title.titles) != 1 {
		t.Fatalf("titles = %v", title.titles)
	}
	if !strings.HasPrefix(title.titles[0], "Water | FPS: ") || !strings.HasSuffix(title.titles[0], "| height 20.0") {
		t.Errorf("title = %q", title.titles[0])
	}
}

func TestFrameRateCounterLongStall(t *testing.T) {
	c := NewFrameRateCounter(nil, "Water", nil, zap.NewNop())
	c.Draw(nil)
	c.Update(5)
	if c.Rate() != 1 {
		t.Errorf("rate = %d, want 1", c.Rate())
	}
	if c.elapsed != 0 {
		t.Errorf("elapsed = %v, want reset after stall", c.elapsed)
	}
}
