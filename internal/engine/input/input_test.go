package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/scene-editor/internal/editor"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		code sdl.Scancode
		want editor.Key
	}{
		{sdl.SCANCODE_I, editor.KeyI},
		{sdl.SCANCODE_W, editor.KeyW},
		{sdl.SCANCODE_1, editor.Key1},
		{sdl.SCANCODE_9, editor.Key9},
		{sdl.SCANCODE_COMMA, editor.KeyComma},
		{sdl.SCANCODE_LSHIFT, editor.KeyLeftShift},
		{sdl.SCANCODE_ESCAPE, editor.KeyEscape},
		{sdl.SCANCODE_F1, editor.KeyUnknown},
	}
	for _, tt := range tests {
		if got := TranslateKey(tt.code); got != tt.want {
			t.Errorf("TranslateKey(%d) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestTranslateKeyboardEvents(t *testing.T) {
	in := New(800, 600)
	in.translate(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_O}})
	in.translate(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Repeat: 1, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_O}})
	in.translate(&sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_O}})
	in.translate(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_F12}})

	want := []editor.Action{editor.Press, editor.Repeat, editor.Release}
	events := in.Events()
	if len(events) != len(want) {
		t.Fatalf("got %d events, want %d", len(events), len(want))
	}
	for i, e := range events {
		if e.Type != EventKey || e.Key != editor.KeyO || e.Action != want[i] {
			t.Errorf("event %d = %+v, want key O %v", i, e, want[i])
		}
	}
}

func TestMouseToNDC(t *testing.T) {
	in := New(800, 600)
	in.translate(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_LEFT, X: 400, Y: 300})
	in.translate(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONUP, Button: sdl.BUTTON_LEFT, X: 0, Y: 0})

	events := in.Events()
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if e := events[0]; e.X != 0 || e.Y != 0 || e.Action != editor.Press || e.Button != editor.ButtonLeft {
		t.Errorf("centre press = %+v", e)
	}
	if e := events[1]; e.X != -1 || e.Y != 1 || e.Action != editor.Release {
		t.Errorf("top-left release = %+v, want (-1, 1)", e)
	}
}

func TestResizeUpdatesNDCScale(t *testing.T) {
	in := New(800, 600)
	in.translate(&sdl.WindowEvent{Event: sdl.WINDOWEVENT_SIZE_CHANGED, Data1: 400, Data2: 200})
	in.translate(&sdl.MouseMotionEvent{X: 400, Y: 200})

	events := in.Events()
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if e := events[0]; e.Type != EventWindowResize || e.Width != 400 || e.Height != 200 {
		t.Errorf("resize = %+v", e)
	}
	if e := events[1]; e.X != 1 || e.Y != -1 {
		t.Errorf("bottom-right = (%v, %v), want (1, -1)", e.X, e.Y)
	}
}

func TestScreenshotKey(t *testing.T) {
	in := New(800, 600)
	in.translate(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_F12}})
	in.translate(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Repeat: 1, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_F12}})
	in.translate(&sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_F12}})

	events := in.Events()
	if len(events) != 1 || events[0].Type != EventScreenshot {
		t.Errorf("events = %+v, want one screenshot event", events)
	}
}

func TestQuit(t *testing.T) {
	in := New(800, 600)
	if !in.translate(&sdl.QuitEvent{}) {
		t.Error("quit event not reported")
	}
}
