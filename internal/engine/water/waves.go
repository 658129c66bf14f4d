package water

import "github.com/Faultbox/midgard-water/pkg/math"

// WaveState holds the texture-space scroll offsets of the two wave normal maps.
type WaveState struct {
	Offset0 math.Vec2
	Offset1 math.Vec2
}

// Advance scrolls both offsets by velocity*dt. Each axis that reaches ±1 snaps
// back to 0 on its own; the maps tile so the jump is invisible.
func (w WaveState) Advance(v0, v1 math.Vec2, dt float32) WaveState {
	return WaveState{
		Offset0: wrap(w.Offset0.Add(v0.Scale(dt))),
		Offset1: wrap(w.Offset1.Add(v1.Scale(dt))),
	}
}

func wrap(v math.Vec2) math.Vec2 {
	return math.Vec2{X: wrapAxis(v.X), Y: wrapAxis(v.Y)}
}

func wrapAxis(v float32) float32 {
	if v >= 1 || v <= -1 {
		return 0
	}
	return v
}
