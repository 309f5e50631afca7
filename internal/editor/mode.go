package editor

import "fmt"

// Mode is the active interaction mode.
type Mode int

const (
	ModeDefault Mode = iota
	ModeInsert
	ModeMove
	ModeCamera
	ModeDelete
	ModeLight
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeDefault:
		return "default"
	case ModeInsert:
		return "insert"
	case ModeMove:
		return "move"
	case ModeCamera:
		return "camera"
	case ModeDelete:
		return "delete"
	case ModeLight:
		return "light"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// modeKeys binds the mode-switch keys.
var modeKeys = map[Key]Mode{
	KeyEscape: ModeDefault,
	KeyI:      ModeInsert,
	KeyO:      ModeMove,
	KeyU:      ModeCamera,
	KeyP:      ModeDelete,
	KeyY:      ModeLight,
}
