package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/midgard-water/internal/controls"
)

var scancodes = map[sdl.Scancode]controls.Key{
	sdl.SCANCODE_ESCAPE:   controls.KeyEscape,
	sdl.SCANCODE_F1:       controls.KeyF1,
	sdl.SCANCODE_F2:       controls.KeyF2,
	sdl.SCANCODE_F3:       controls.KeyF3,
	sdl.SCANCODE_F4:       controls.KeyF4,
	sdl.SCANCODE_F5:       controls.KeyF5,
	sdl.SCANCODE_F6:       controls.KeyF6,
	sdl.SCANCODE_F7:       controls.KeyF7,
	sdl.SCANCODE_F8:       controls.KeyF8,
	sdl.SCANCODE_F9:       controls.KeyF9,
	sdl.SCANCODE_F10:      controls.KeyF10,
	sdl.SCANCODE_F11:      controls.KeyF11,
	sdl.SCANCODE_F12:      controls.KeyF12,
	sdl.SCANCODE_INSERT:   controls.KeyInsert,
	sdl.SCANCODE_DELETE:   controls.KeyDelete,
	sdl.SCANCODE_HOME:     controls.KeyHome,
	sdl.SCANCODE_END:      controls.KeyEnd,
	sdl.SCANCODE_PAGEUP:   controls.KeyPageUp,
	sdl.SCANCODE_PAGEDOWN: controls.KeyPageDown,
	sdl.SCANCODE_KP_3:     controls.KeyKeypad3,
	sdl.SCANCODE_KP_4:     controls.KeyKeypad4,
	sdl.SCANCODE_KP_5:     controls.KeyKeypad5,
	sdl.SCANCODE_KP_6:     controls.KeyKeypad6,
	sdl.SCANCODE_KP_8:     controls.KeyKeypad8,
	sdl.SCANCODE_KP_9:     controls.KeyKeypad9,
	sdl.SCANCODE_W:        controls.KeyW,
	sdl.SCANCODE_A:        controls.KeyA,
	sdl.SCANCODE_S:        controls.KeyS,
	sdl.SCANCODE_D:        controls.KeyD,
	sdl.SCANCODE_Z:        controls.KeyZ,
	sdl.SCANCODE_X:        controls.KeyX,
	sdl.SCANCODE_C:        controls.KeyC,
	sdl.SCANCODE_V:        controls.KeyV,
	sdl.SCANCODE_N:        controls.KeyN,
	sdl.SCANCODE_B:        controls.KeyB,
	sdl.SCANCODE_UP:       controls.KeyUp,
	sdl.SCANCODE_DOWN:     controls.KeyDown,
}

// KeyFromScancode maps an SDL scancode to a bound key, KeyUnknown if unbound.
func KeyFromScancode(sc sdl.Scancode) controls.Key {
	return scancodes[sc]
}
