// Package input translates SDL2 events into editor events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/scene-editor/internal/editor"
	"github.com/Faultbox/scene-editor/internal/engine/picking"
)

// EventType identifies an input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKey
	EventMouseMove
	EventMouseButton
	EventScreenshot
)

// Event is a processed input event. Mouse positions are in normalized device
// coordinates with +Y up.
type Event struct {
	Type   EventType
	Key    editor.Key
	Action editor.Action
	Button editor.Button
	Width  int
	Height int
	X, Y   float32
}

// Input handles all input processing.
type Input struct {
	events []Event
	width  int
	height int
}

// New creates an input handler for a window of the given size.
func New(width, height int) *Input {
	return &Input{
		events: make([]Event, 0, 16),
		width:  width,
		height: height,
	}
}

// Update polls SDL events and converts them to editor events.
// Returns true if the application should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if i.translate(event) {
			quit = true
		}
	}
	return quit
}

// translate appends the editor event for e, if any, and reports a quit request.
func (i *Input) translate(event sdl.Event) bool {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		i.events = append(i.events, Event{Type: EventQuit})
		return true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			i.width, i.height = int(e.Data1), int(e.Data2)
			i.events = append(i.events, Event{
				Type:   EventWindowResize,
				Width:  i.width,
				Height: i.height,
			})
		}

	case *sdl.KeyboardEvent:
		if e.Keysym.Scancode == sdl.SCANCODE_F12 {
			if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
				i.events = append(i.events, Event{Type: EventScreenshot})
			}
			return false
		}
		key := TranslateKey(e.Keysym.Scancode)
		if key == editor.KeyUnknown {
			return false
		}
		action := editor.Press
		switch {
		case e.Type == sdl.KEYUP:
			action = editor.Release
		case e.Repeat != 0:
			action = editor.Repeat
		}
		i.events = append(i.events, Event{Type: EventKey, Key: key, Action: action})

	case *sdl.MouseMotionEvent:
		x, y := i.toNDC(e.X, e.Y)
		i.events = append(i.events, Event{Type: EventMouseMove, X: x, Y: y})

	case *sdl.MouseButtonEvent:
		button, ok := TranslateButton(e.Button)
		if !ok {
			return false
		}
		action := editor.Press
		if e.Type == sdl.MOUSEBUTTONUP {
			action = editor.Release
		}
		x, y := i.toNDC(e.X, e.Y)
		i.events = append(i.events, Event{
			Type:   EventMouseButton,
			Button: button,
			Action: action,
			X:      x,
			Y:      y,
		})
	}
	return false
}

func (i *Input) toNDC(x, y int32) (float32, float32) {
	if i.width == 0 || i.height == 0 {
		return 0, 0
	}
	return picking.ScreenToNDC(float32(x), float32(y), float32(i.width), float32(i.height))
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Dispatch forwards the events from the last Update to the machine.
func (i *Input) Dispatch(m *editor.Machine, ctx *editor.Context) {
	for _, e := range i.events {
		switch e.Type {
		case EventWindowResize:
			m.Resize(ctx, e.Width, e.Height)
		case EventKey:
			m.Key(ctx, e.Key, e.Action)
		case EventMouseMove:
			m.MouseMove(ctx, e.X, e.Y)
		case EventMouseButton:
			m.MouseButton(ctx, e.Button, e.Action, e.X, e.Y)
		}
	}
}

var scancodes = map[sdl.Scancode]editor.Key{
	sdl.SCANCODE_A:      editor.KeyA,
	sdl.SCANCODE_B:      editor.KeyB,
	sdl.SCANCODE_C:      editor.KeyC,
	sdl.SCANCODE_D:      editor.KeyD,
	sdl.SCANCODE_E:      editor.KeyE,
	sdl.SCANCODE_F:      editor.KeyF,
	sdl.SCANCODE_G:      editor.KeyG,
	sdl.SCANCODE_H:      editor.KeyH,
	sdl.SCANCODE_I:      editor.KeyI,
	sdl.SCANCODE_J:      editor.KeyJ,
	sdl.SCANCODE_K:      editor.KeyK,
	sdl.SCANCODE_L:      editor.KeyL,
	sdl.SCANCODE_M:      editor.KeyM,
	sdl.SCANCODE_N:      editor.KeyN,
	sdl.SCANCODE_O:      editor.KeyO,
	sdl.SCANCODE_P:      editor.KeyP,
	sdl.SCANCODE_Q:      editor.KeyQ,
	sdl.SCANCODE_R:      editor.KeyR,
	sdl.SCANCODE_S:      editor.KeyS,
	sdl.SCANCODE_T:      editor.KeyT,
	sdl.SCANCODE_U:      editor.KeyU,
	sdl.SCANCODE_V:      editor.KeyV,
	sdl.SCANCODE_W:      editor.KeyW,
	sdl.SCANCODE_X:      editor.KeyX,
	sdl.SCANCODE_Y:      editor.KeyY,
	sdl.SCANCODE_Z:      editor.KeyZ,
	sdl.SCANCODE_0:      editor.Key0,
	sdl.SCANCODE_1:      editor.Key1,
	sdl.SCANCODE_2:      editor.Key2,
	sdl.SCANCODE_3:      editor.Key3,
	sdl.SCANCODE_4:      editor.Key4,
	sdl.SCANCODE_5:      editor.Key5,
	sdl.SCANCODE_6:      editor.Key6,
	sdl.SCANCODE_7:      editor.Key7,
	sdl.SCANCODE_8:      editor.Key8,
	sdl.SCANCODE_9:      editor.Key9,
	sdl.SCANCODE_COMMA:  editor.KeyComma,
	sdl.SCANCODE_PERIOD: editor.KeyPeriod,
	sdl.SCANCODE_LSHIFT: editor.KeyLeftShift,
	sdl.SCANCODE_ESCAPE: editor.KeyEscape,
}

// TranslateKey maps a physical key to an editor key, or editor.KeyUnknown.
func TranslateKey(code sdl.Scancode) editor.Key {
	return scancodes[code]
}

// TranslateButton maps an SDL mouse button to an editor button.
func TranslateButton(button uint8) (editor.Button, bool) {
	switch button {
	case sdl.BUTTON_LEFT:
		return editor.ButtonLeft, true
	case sdl.BUTTON_MIDDLE:
		return editor.ButtonMiddle, true
	case sdl.BUTTON_RIGHT:
		return editor.ButtonRight, true
	default:
		return 0, false
	}
}
