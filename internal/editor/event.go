package editor

import "fmt"

// Key is a toolkit-independent key code. Only keys the editor binds are named.
type Key int

const (
	KeyUnknown Key = iota
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyComma
	KeyPeriod
	KeyLeftShift
	KeyEscape
)

// String returns a short key name.
func (k Key) String() string {
	switch {
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + int(k-KeyA)))
	case k >= Key0 && k <= Key9:
		return string(rune('0' + int(k-Key0)))
	}
	switch k {
	case KeyComma:
		return "Comma"
	case KeyPeriod:
		return "Period"
	case KeyLeftShift:
		return "LeftShift"
	case KeyEscape:
		return "Escape"
	default:
		return fmt.Sprintf("Key(%d)", int(k))
	}
}

// Action is the phase of a key or button event.
type Action int

const (
	Press Action = iota
	Release
	Repeat
)

// Button is a mouse button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
)
