package scene

import (
	"errors"
	"testing"

	"github.com/Faultbox/scene-editor/internal/engine/camera"
	"github.com/Faultbox/scene-editor/internal/engine/picking"
	"github.com/Faultbox/scene-editor/pkg/math"
)

// cubeSource serves the built-in cube for every mesh template and the
// built-in plane for Plane.
type cubeSource struct{}

func (cubeSource) Mesh(t Template) (*Mesh, error) {
	if t == Plane {
		return Builtin{}.Mesh(Plane)
	}
	return Builtin{}.Mesh(Cube)
}

func newTestScene(t *testing.T) *Scene {
	t.Helper()
	light, err := NewLight(DefaultLightPosition)
	if err != nil {
		t.Fatalf("NewLight: %v", err)
	}
	return New(cubeSource{}, light)
}

func mustAdd(t *testing.T, s *Scene, tmpl Template) ObjectID {
	t.Helper()
	id, err := s.Add(tmpl)
	if err != nil {
		t.Fatalf("Add(%s): %v", tmpl, err)
	}
	return id
}

var towardsOrigin = picking.Ray{Origin: math.Vec3{X: 0.1, Y: -0.2, Z: 5}, Direction: math.Vec3{Z: -1}}

func TestDeleteShiftsLaterObjects(t *testing.T) {
	s := newTestScene(t)
	a := mustAdd(t, s, Cube)
	b := mustAdd(t, s, BumpyCube)
	c := mustAdd(t, s, Bunny)

	if err := s.Delete(1); err != nil {
		t.Fatalf("Delete(1): %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
	if s.ID(0) != a || s.ID(1) != c {
		t.Errorf("ids = [%d %d], want [%d %d]", s.ID(0), s.ID(1), a, c)
	}
	if got := s.IndexOf(b); got != -1 {
		t.Errorf("IndexOf(deleted) = %d, want -1", got)
	}
	if got := s.IndexOf(c); got != 1 {
		t.Errorf("IndexOf(c) = %d, want 1", got)
	}
}

func TestDeleteOutOfRange(t *testing.T) {
	s := newTestScene(t)
	mustAdd(t, s, Cube)

	for _, index := range []int{-1, 1, 5} {
		err := s.Delete(index)
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Delete(%d) = %v, want ErrIndexOutOfRange", index, err)
		}
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
}

func TestIDsAreNotReused(t *testing.T) {
	s := newTestScene(t)
	a := mustAdd(t, s, Cube)
	if err := s.Delete(0); err != nil {
		t.Fatal(err)
	}
	b := mustAdd(t, s, Cube)

	if a == b {
		t.Errorf("new object reused id %d", a)
	}
	if _, err := s.Lookup(a); !errors.Is(err, ErrStaleID) {
		t.Errorf("Lookup(deleted) err = %v, want ErrStaleID", err)
	}
	if _, err := s.Lookup(NoObject); !errors.Is(err, ErrStaleID) {
		t.Errorf("Lookup(NoObject) err = %v, want ErrStaleID", err)
	}
	obj, err := s.Lookup(b)
	if err != nil || obj != s.At(0) {
		t.Errorf("Lookup(b) = %p, %v; want %p", obj, err, s.At(0))
	}
}

func TestAddModes(t *testing.T) {
	s := newTestScene(t)
	mustAdd(t, s, Cube)
	mustAdd(t, s, Plane)

	if got := s.At(0).DisplayMode(); got != ModePhong {
		t.Errorf("cube mode = %v, want %v", got, ModePhong)
	}
	if got := s.At(1).DisplayMode(); got != ModeFlatWire {
		t.Errorf("plane mode = %v, want %v", got, ModeFlatWire)
	}
	// The plane keeps its size.
	if got := s.At(1).Mesh().Bounds().Size().X; got != 4 {
		t.Errorf("plane width = %v, want 4", got)
	}
	if got := s.At(0).Color(); got != DefaultColor {
		t.Errorf("cube color = %v, want %v", got, DefaultColor)
	}
}

func TestAddUnknownTemplate(t *testing.T) {
	light, _ := NewLight(DefaultLightPosition)
	s := New(Builtin{}, light)

	_, err := s.Add(Bunny)
	if !errors.Is(err, ErrUnknownTemplate) {
		t.Errorf("Add(Bunny) err = %v, want ErrUnknownTemplate", err)
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
}

func TestIntersectRayClosest(t *testing.T) {
	s := newTestScene(t)
	mustAdd(t, s, Cube)
	mustAdd(t, s, Cube)
	s.At(1).Translate(0, 0, 2)

	index, ok := s.IntersectRay(towardsOrigin, 0, 100)
	if !ok || index != 1 {
		t.Errorf("IntersectRay = %d, %v; want 1, true", index, ok)
	}

	// Move the front cube out of the way.
	s.At(1).Translate(3, 0, 0)
	index, ok = s.IntersectRay(towardsOrigin, 0, 100)
	if !ok || index != 0 {
		t.Errorf("IntersectRay after move = %d, %v; want 0, true", index, ok)
	}
}

func TestIntersectRayMiss(t *testing.T) {
	s := newTestScene(t)
	if _, ok := s.IntersectRay(towardsOrigin, 0, 100); ok {
		t.Error("empty scene reported a hit")
	}

	mustAdd(t, s, Cube)
	miss := picking.Ray{Origin: math.Vec3{X: 2, Z: 5}, Direction: math.Vec3{Z: -1}}
	if index, ok := s.IntersectRay(miss, 0, 100); ok {
		t.Errorf("IntersectRay = %d, want miss", index)
	}
}

func TestRedShadowToggle(t *testing.T) {
	s := newTestScene(t)
	if s.RedShadow() {
		t.Fatal("red shadow on by default")
	}
	if !s.ToggleRedShadow() || !s.RedShadow() {
		t.Error("first toggle should enable red shadow")
	}
	if s.ToggleRedShadow() || s.RedShadow() {
		t.Error("second toggle should disable red shadow")
	}
}

func TestFrameHighlightIsOverlay(t *testing.T) {
	s := newTestScene(t)
	a := mustAdd(t, s, Cube)
	mustAdd(t, s, Cube)
	s.At(0).SetColor(math.Vec3{X: 0.25, Y: 0.5, Z: 1})

	view := camera.NewViewControl(camera.DefaultConfig())
	f := s.Frame(view, a)

	want := math.Vec3{X: 0.75, Y: 0.5, Z: 0}
	if got := f.Objects[0].Color; got != want {
		t.Errorf("highlighted color = %v, want %v", got, want)
	}
	if got := f.Objects[1].Color; got != DefaultColor {
		t.Errorf("other color = %v, want %v", got, DefaultColor)
	}
	if got := s.At(0).Color(); got != (math.Vec3{X: 0.25, Y: 0.5, Z: 1}) {
		t.Errorf("stored color changed to %v", got)
	}

	if got, want := f.Selection, s.At(0).WorldBounds(); got != want {
		t.Errorf("selection bounds = %v, want %v", got, want)
	}

	f = s.Frame(view, NoObject)
	if got := f.Objects[0].Color; got != s.At(0).Color() {
		t.Errorf("unhighlighted frame color = %v, want %v", got, s.At(0).Color())
	}
	if !f.Selection.IsEmpty() {
		t.Errorf("selection bounds = %v, want empty", f.Selection)
	}
}

func TestFrameContents(t *testing.T) {
	s := newTestScene(t)
	mustAdd(t, s, Cube)
	s.ToggleRedShadow()

	view := camera.NewViewControl(camera.DefaultConfig())
	f := s.Frame(view, NoObject)

	if !f.RedShadow {
		t.Error("frame lost red shadow flag")
	}
	if f.Eye != view.EyePosition() {
		t.Errorf("Eye = %v, want %v", f.Eye, view.EyePosition())
	}
	if d := f.Light.Sub(DefaultLightPosition).Length(); d > 1e-4 {
		t.Errorf("Light = %v, want %v", f.Light, DefaultLightPosition)
	}
	if len(f.Objects) != 1 || f.Objects[0].ID != s.ID(0) {
		t.Fatalf("Objects = %+v", f.Objects)
	}
	if f.Objects[0].Model != s.At(0).ModelMatrix() {
		t.Error("frame model matrix differs from object")
	}
}

func TestLightMotion(t *testing.T) {
	l, err := NewLight(DefaultLightPosition)
	if err != nil {
		t.Fatal(err)
	}
	r := l.Position().Length()

	l.Backward(0.5)
	if got := l.Position().Length(); abs(got-(r+0.5)) > 1e-4 {
		t.Errorf("radius after Backward = %v, want %v", got, r+0.5)
	}

	before := l.Position()
	l.Left(0.1)
	l.Right(0.1)
	if d := l.Position().Sub(before).Length(); d > 1e-4 {
		t.Errorf("Left then Right moved light by %v", d)
	}

	if _, err := NewLight(math.Vec3{}); !errors.Is(err, camera.ErrDegenerate) {
		t.Errorf("NewLight(origin) err = %v, want ErrDegenerate", err)
	}
}
