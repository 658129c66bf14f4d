package pipeline

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/Faultbox/midgard-water/internal/engine/camera"
	"github.com/Faultbox/midgard-water/internal/engine/lighting"
	"github.com/Faultbox/midgard-water/internal/engine/water"
	"github.com/Faultbox/midgard-water/pkg/math"
)

// recorder collects every call made by the pipeline in order.
type recorder struct {
	calls   []string
	terrain []TerrainPass
	sky     []SkyPass
	water   []WaterPass
}

type fakeTarget struct {
	name    string
	texture uint32
	rec     *recorder
}

func (t *fakeTarget) Bind()                    { t.rec.calls = append(t.rec.calls, "bind "+t.name) }
func (t *fakeTarget) Unbind()                  { t.rec.calls = append(t.rec.calls, "unbind "+t.name) }
func (t *fakeTarget) Clear(r, g, b, a float32) { t.rec.calls = append(t.rec.calls, "clear "+t.name) }
func (t *fakeTarget) ColorTexture() uint32     { return t.texture }

type fakeScreen struct{ rec *recorder }

func (s *fakeScreen) Bind()                    { s.rec.calls = append(s.rec.calls, "bind screen") }
func (s *fakeScreen) Clear(r, g, b, a float32) { s.rec.calls = append(s.rec.calls, "clear screen") }

type fakeSky struct{ rec *recorder }

func (s *fakeSky) DrawSky(p SkyPass) {
	s.rec.calls = append(s.rec.calls, "sky")
	s.rec.sky = append(s.rec.sky, p)
}

type fakeTerrain struct{ rec *recorder }

func (t *fakeTerrain) DrawTerrain(p TerrainPass) {
	name := "terrain"
	if p.Clip != nil {
		name = fmt.Sprintf("terrain clip=%v", *p.Clip)
	}
	t.rec.calls = append(t.rec.calls, name)
	t.rec.terrain = append(t.rec.terrain, p)
}

type fakeWater struct{ rec *recorder }

func (w *fakeWater) DrawWater(p WaterPass) {
	w.rec.calls = append(w.rec.calls, "water")
	w.rec.water = append(w.rec.water, p)
}

func newTestPipeline() (*Pipeline, *recorder) {
	rec := &recorder{}
	p := New(
		&fakeTarget{name: "refraction", texture: 11, rec: rec},
		&fakeTarget{name: "reflection", texture: 22, rec: rec},
		&fakeScreen{rec: rec},
		&fakeSky{rec: rec},
		&fakeTerrain{rec: rec},
		&fakeWater{rec: rec},
	)
	return p, rec
}

func testFrame(features Features) Frame {
	cam := camera.New(math.Vec3{X: 100, Y: 100, Z: 100}, math.Vec3{X: 101, Y: 90, Z: 101})
	surface := water.NewSurface(20)
	return Frame{
		Features:   features,
		Projection: math.Perspective(0.785398, 16.0/9.0, 1, 10000),
		View:       cam.ViewMatrix(),
		Eye:        cam.Position(),
		Reflected:  water.Reflect(cam.State(), surface.Height),
		Surface:    *surface,
		WaterWorld: water.WorldTransform(0, 0, 256, 256),
		Waves:      water.WaveState{Offset0: math.Vec2{X: 0.25}},
		Water:      WaterParams{Color: math.Vec3{X: 0.5, Y: 0.79, Z: 0.75}, MergeTerm: 0.5, WaveTextureScale: 2.5},
		Light:      lighting.DefaultLight(),
		Sun:        lighting.DefaultSun(),
	}
}

func TestDrawPassOrder(t *testing.T) {
	p, rec := newTestPipeline()
	f := testFrame(DefaultFeatures())

	res := p.Draw(f)

	refr := fmt.Sprintf("terrain clip=%v", f.Surface.Refraction)
	refl := fmt.Sprintf("terrain clip=%v", f.Surface.Reflection)
	want := []string{
		"bind refraction", "clear refraction", "sky", refr, "unbind refraction",
		"bind reflection", "clear reflection", "sky", refl, "unbind reflection",
		"bind screen", "clear screen", "sky", "terrain", "water",
	}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Errorf("calls:\n got %v\nwant %v", rec.calls, want)
	}

	if res.Refraction != 11 || res.Reflection != 22 || !res.WaterDrawn {
		t.Errorf("result = %+v", res)
	}
}

func TestDrawPassesViews(t *testing.T) {
	p, rec := newTestPipeline()
	f := testFrame(DefaultFeatures())
	p.Draw(f)

	if rec.terrain[0].View != f.View {
		t.Error("refraction pass should use the main view")
	}
	if rec.terrain[1].View != f.Reflected.View {
		t.Error("reflection pass should use the reflected view")
	}
	if rec.terrain[2].View != f.View || rec.terrain[2].Clip != nil {
		t.Error("composite terrain should use the main view without clipping")
	}
	if rec.sky[1].View != f.Reflected.View {
		t.Error("reflection sky should use the reflected view")
	}
	for i, s := range rec.sky {
		if s.Eye != f.Eye {
			t.Errorf("sky pass %d centred on %v, want camera eye %v", i, s.Eye, f.Eye)
		}
	}
}

func TestWaterPassReceivesCapturedTextures(t *testing.T) {
	p, rec := newTestPipeline()
	f := testFrame(DefaultFeatures())
	p.Draw(f)

	if len(rec.water) != 1 {
		t.Fatalf("water drawn %d times, want 1", len(rec.water))
	}
	w := rec.water[0]
	if w.Refraction != 11 || w.Reflection != 22 {
		t.Errorf("water textures = (%d, %d), want (11, 22)", w.Refraction, w.Reflection)
	}
	if w.ReflectionView != f.Reflected.View {
		t.Error("water pass should get the reflected view for projective lookup")
	}
	if w.Waves != f.Waves || w.Params != f.Water || w.World != f.WaterWorld {
		t.Error("water pass parameters not forwarded")
	}
}

func TestDrawWaterDisabled(t *testing.T) {
	p, rec := newTestPipeline()
	enabled := DefaultFeatures()
	p.Draw(testFrame(enabled))
	withWater := append([]string(nil), rec.calls...)

	p, rec = newTestPipeline()
	disabled := enabled
	disabled.DrawWater = false
	res := p.Draw(testFrame(disabled))

	if len(rec.water) != 0 {
		t.Error("water drawn with DrawWater off")
	}
	if res.WaterDrawn {
		t.Error("result reports water drawn")
	}
	// Both capture passes are unchanged.
	if !reflect.DeepEqual(rec.calls[:10], withWater[:10]) {
		t.Errorf("capture passes changed:\n got %v\nwant %v", rec.calls[:10], withWater[:10])
	}
	if res.Refraction != 11 || res.Reflection != 22 {
		t.Errorf("captures not produced: %+v", res)
	}
}

func TestCapturesRunWithEverythingOff(t *testing.T) {
	f := Features{} // everything off
	p, rec := newTestPipeline()
	p.Draw(testFrame(f))

	want := []string{
		"bind refraction", "clear refraction",
		"bind reflection", "clear reflection",
		"bind screen", "clear screen",
	}
	var got []string
	for _, c := range rec.calls {
		if c == "sky" || c == "water" {
			t.Errorf("unexpected %q with all features off", c)
		}
		if len(c) > 4 && (c[:4] == "bind" || c[:5] == "clear") {
			got = append(got, c)
		}
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("target usage = %v, want %v", got, want)
	}
	if len(rec.terrain) != 3 {
		t.Errorf("terrain drawn %d times, want 3", len(rec.terrain))
	}
}

func TestFeaturesForwarded(t *testing.T) {
	f := DefaultFeatures()
	f.Lighting = false
	f.Fresnel = false

	p, rec := newTestPipeline()
	p.Draw(testFrame(f))

	for i, tp := range rec.terrain {
		if tp.Lighting {
			t.Errorf("terrain pass %d has lighting on", i)
		}
	}
	if rec.water[0].Features != f {
		t.Errorf("water features = %+v, want %+v", rec.water[0].Features, f)
	}
}

func TestDrawZeroFrame(t *testing.T) {
	p, rec := newTestPipeline()
	res := p.Draw(Frame{})

	if len(rec.terrain) != 3 {
		t.Fatalf("terrain drawn %d times, want 3", len(rec.terrain))
	}
	for i := 0; i < 2; i++ {
		if c := rec.terrain[i].Clip; c == nil || *c != (math.Vec4{}) {
			t.Errorf("capture %d clip = %v, want zero plane", i, c)
		}
	}
	if res.Refraction != 11 || res.Reflection != 22 || res.WaterDrawn {
		t.Errorf("result = %+v", res)
	}
}
