// Package editor implements the mode-driven interaction state machine that
// turns key, mouse and resize events into scene and camera edits.
package editor

import (
	"go.uber.org/zap"

	"github.com/Faultbox/scene-editor/internal/engine/camera"
	"github.com/Faultbox/scene-editor/internal/scene"
	"github.com/Faultbox/scene-editor/pkg/math"
)

// Context is the state every handler operates on.
type Context struct {
	Scene *scene.Scene
	View  *camera.ViewControl
}

// Steps holds the increments applied per key press.
type Steps struct {
	Translate float32
	Rotate    float32 // Degrees
	Scale     float32
	Camera    float32
	Light     float32
}

// DefaultSteps returns the standard editing increments.
func DefaultSteps() Steps {
	return Steps{
		Translate: 0.1,
		Rotate:    20,
		Scale:     0.1,
		Camera:    0.1,
		Light:     0.1,
	}
}

// PresetColors are bound to keys 1 through 9 in move mode.
var PresetColors = [9]math.Vec3{
	{X: 0.509, Y: 0.223, Z: 0.207},
	{X: 0.537, Y: 0.745, Z: 0.698},
	{X: 0.788, Y: 0.729, Z: 0.513},
	{X: 0.870, Y: 0.827, Z: 0.549},
	{X: 0.870, Y: 0.611, Z: 0.325},
	{X: 0.701, Y: 0.839, Z: 0.431},
	{X: 0.125, Y: 0.141, Z: 0.180},
	{X: 0.360, Y: 0.654, Z: 0.729},
	{X: 0.466, Y: 0.203, Z: 0.376},
}

// displayModeKeys binds move-mode keys to display modes.
var displayModeKeys = map[Key]scene.DisplayMode{
	KeyZ:         scene.ModeWire,
	KeyX:         scene.ModeFlatWire,
	KeyC:         scene.ModePhong,
	KeyV:         scene.ModePhongMirror,
	KeyB:         scene.ModePhongRefract,
	KeyN:         scene.ModeFlatMirror,
	KeyM:         scene.ModeFlatRefract,
	KeyLeftShift: scene.ModePhongMirrorDynamic,
}

// insertKeys binds insert-mode keys to mesh templates.
var insertKeys = map[Key]scene.Template{
	Key1: scene.Cube,
	Key2: scene.BumpyCube,
	Key3: scene.Bunny,
}

// Machine dispatches input to the active mode. It owns only the mode and the
// move-mode selection; the scene and camera arrive with each event.
type Machine struct {
	mode  Mode
	steps Steps
	log   *zap.Logger

	// Move mode selection. held is true while the picking button is down.
	selected scene.ObjectID
	held     bool
}

// New creates a machine in default mode. A nil logger discards output.
func New(steps Steps, log *zap.Logger) *Machine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Machine{
		mode:  ModeDefault,
		steps: steps,
		log:   log,
	}
}

// Mode returns the active mode.
func (m *Machine) Mode() Mode { return m.mode }

// Selected returns the move-mode selection, or scene.NoObject.
func (m *Machine) Selected() scene.ObjectID { return m.selected }

// Highlight returns the object to draw highlighted this frame, or
// scene.NoObject.
func (m *Machine) Highlight() scene.ObjectID {
	if m.mode == ModeMove && m.held {
		return m.selected
	}
	return scene.NoObject
}

// SetMode switches modes. Switching to the active mode is a no-op; leaving a
// mode discards its transient state.
func (m *Machine) SetMode(mode Mode) {
	if mode == m.mode {
		return
	}
	m.selected = scene.NoObject
	m.held = false
	m.mode = mode
	m.log.Info("mode changed", zap.Stringer("mode", mode))
}

// Key handles a key event. Mode-switch keys are applied first; the key is then
// handled by the (possibly new) active mode.
func (m *Machine) Key(ctx *Context, key Key, action Action) {
	if action != Press {
		return
	}
	if mode, ok := modeKeys[key]; ok {
		m.SetMode(mode)
	}

	switch m.mode {
	case ModeInsert:
		m.insertKey(ctx, key)
	case ModeMove:
		m.moveKey(ctx, key)
	case ModeCamera:
		m.cameraKey(ctx, key)
	case ModeLight:
		m.lightKey(ctx, key)
	}
}

// MouseButton handles a button event at normalized device coordinates.
func (m *Machine) MouseButton(ctx *Context, button Button, action Action, x, y float32) {
	if button != ButtonLeft {
		return
	}

	switch m.mode {
	case ModeMove:
		m.moveClick(ctx, action, x, y)
	case ModeDelete:
		m.deleteClick(ctx, action, x, y)
	}
}

// MouseMove handles cursor motion. No mode reacts to it.
func (m *Machine) MouseMove(ctx *Context, x, y float32) {}

// Resize records the new framebuffer size in every mode.
func (m *Machine) Resize(ctx *Context, width, height int) {
	ctx.View.SetScreenSize(width, height)
}

func (m *Machine) insertKey(ctx *Context, key Key) {
	tmpl, ok := insertKeys[key]
	if !ok {
		return
	}
	id, err := ctx.Scene.Add(tmpl)
	if err != nil {
		m.log.Error("insert failed", zap.Stringer("template", tmpl), zap.Error(err))
		return
	}
	m.log.Info("object inserted", zap.Stringer("template", tmpl), zap.Uint64("id", uint64(id)))
}

// pick returns the index of the object under the cursor.
func pick(ctx *Context, x, y float32) (int, bool) {
	ray := ctx.View.ClickRay(x, y)
	return ctx.Scene.IntersectRay(ray, ctx.View.Near(), ctx.View.Far())
}

func (m *Machine) moveClick(ctx *Context, action Action, x, y float32) {
	switch action {
	case Press:
		index, ok := pick(ctx, x, y)
		if !ok {
			m.selected = scene.NoObject
			m.held = false
			return
		}
		m.selected = ctx.Scene.ID(index)
		m.held = true
		m.log.Debug("object selected", zap.Int("index", index), zap.Uint64("id", uint64(m.selected)))
	case Release:
		m.held = false
	}
}

// selection returns the selected object, dropping a selection whose object
// has been deleted.
func (m *Machine) selection(ctx *Context) *scene.Object {
	if m.selected == scene.NoObject {
		return nil
	}
	obj, err := ctx.Scene.Lookup(m.selected)
	if err != nil {
		m.log.Debug("selection dropped", zap.Error(err))
		m.selected = scene.NoObject
		m.held = false
		return nil
	}
	return obj
}

func (m *Machine) moveKey(ctx *Context, key Key) {
	obj := m.selection(ctx)
	if obj == nil {
		return
	}

	t, r, s := m.steps.Translate, m.steps.Rotate, m.steps.Scale
	switch key {
	case KeyW:
		obj.Translate(0, t, 0)
	case KeyS:
		obj.Translate(0, -t, 0)
	case KeyA:
		obj.Translate(-t, 0, 0)
	case KeyD:
		obj.Translate(t, 0, 0)
	case KeyQ:
		obj.Translate(0, 0, t)
	case KeyE:
		obj.Translate(0, 0, -t)
	case KeyF:
		obj.Rotate(r, 0, 0)
	case KeyG:
		obj.Rotate(-r, 0, 0)
	case KeyH:
		obj.Rotate(0, r, 0)
	case KeyJ:
		obj.Rotate(0, -r, 0)
	case KeyK:
		obj.Rotate(0, 0, r)
	case KeyL:
		obj.Rotate(0, 0, -r)
	case KeyComma:
		obj.Scale(s)
	case KeyPeriod:
		obj.Scale(-s)
	default:
		if mode, ok := displayModeKeys[key]; ok {
			obj.SetDisplayMode(mode)
			m.log.Debug("display mode set", zap.Stringer("mode", mode))
		} else if key >= Key1 && key <= Key9 {
			obj.SetColor(PresetColors[key-Key1])
		}
	}
}

func (m *Machine) cameraKey(ctx *Context, key Key) {
	v, step := ctx.View, m.steps.Camera
	switch key {
	case KeyW:
		v.Up(step)
	case KeyS:
		v.Down(step)
	case KeyA:
		v.Left(step)
	case KeyD:
		v.Right(step)
	case KeyQ:
		v.Forward(step)
	case KeyE:
		v.Backward(step)
	case KeyZ:
		v.SetTrackball()
	case KeyX:
		v.SetFree()
	case KeyN:
		v.SetPerspective()
	case KeyM:
		v.SetOrthographic()
	default:
		return
	}
	m.log.Debug("camera updated",
		zap.Stringer("projection", v.Projection()),
		zap.Stringer("movement", v.Movement()))
}

func (m *Machine) deleteClick(ctx *Context, action Action, x, y float32) {
	if action != Press {
		return
	}
	index, ok := pick(ctx, x, y)
	if !ok {
		return
	}
	id := ctx.Scene.ID(index)
	if err := ctx.Scene.Delete(index); err != nil {
		m.log.Error("delete failed", zap.Error(err))
		return
	}
	m.log.Info("object deleted", zap.Int("index", index), zap.Uint64("id", uint64(id)))
}

func (m *Machine) lightKey(ctx *Context, key Key) {
	light, step := ctx.Scene.Light(), m.steps.Light
	switch key {
	case KeyW:
		light.Up(step)
	case KeyS:
		light.Down(step)
	case KeyA:
		light.Left(step)
	case KeyD:
		light.Right(step)
	case KeyQ:
		light.Forward(step)
	case KeyE:
		light.Backward(step)
	case KeyR:
		on := ctx.Scene.ToggleRedShadow()
		m.log.Info("red shadow toggled", zap.Bool("enabled", on))
	}
}
