// Package controls maps key state to the runtime settings of the water demo.
// It has no SDL dependency; the input package translates scancodes to Key.
package controls

// Key identifies a bound key.
type Key int

// Bound keys.
const (
	KeyUnknown Key = iota
	KeyEscape
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyKeypad3
	KeyKeypad4
	KeyKeypad5
	KeyKeypad6
	KeyKeypad8
	KeyKeypad9
	KeyW
	KeyA
	KeyS
	KeyD
	KeyZ
	KeyX
	KeyC
	KeyV
	KeyN
	KeyB
	KeyUp
	KeyDown
	keyCount
)

// KeyCount is the number of Key values, KeyUnknown included.
const KeyCount = int(keyCount)

// KeyState reports keyboard state for the current frame.
type KeyState interface {
	// Down reports whether the key is held.
	Down(k Key) bool
	// Pressed reports whether the key went down this frame.
	Pressed(k Key) bool
}
