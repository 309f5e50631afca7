package scene

import (
	"testing"

	"github.com/Faultbox/scene-editor/internal/engine/picking"
	"github.com/Faultbox/scene-editor/pkg/math"
)

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func near(a, b math.Vec3) bool {
	return a.Sub(b).Length() < 1e-4
}

func newCube(t *testing.T) *Object {
	t.Helper()
	m, err := Builtin{}.Mesh(Cube)
	if err != nil {
		t.Fatalf("cube mesh: %v", err)
	}
	return NewObject(m)
}

func TestTransformAccumulates(t *testing.T) {
	o := newCube(t)
	o.Translate(0.1, 0, 0)
	o.Translate(0.1, -0.2, 0.3)
	o.Rotate(20, 0, 0)
	o.Rotate(20, -20, 0)
	o.Scale(0.1)
	o.Scale(0.1)

	tr := o.Transform()
	if !near(tr.Translate, math.Vec3{X: 0.2, Y: -0.2, Z: 0.3}) {
		t.Errorf("Translate = %v", tr.Translate)
	}
	if !near(tr.Rotate, math.Vec3{X: 40, Y: -20}) {
		t.Errorf("Rotate = %v", tr.Rotate)
	}
	if abs(tr.Scale-1.2) > 1e-5 {
		t.Errorf("Scale = %v, want 1.2", tr.Scale)
	}
}

func TestModelMatrixOrder(t *testing.T) {
	o := newCube(t)
	o.Translate(1, 0, 0)
	o.Rotate(0, 90, 0)
	o.Scale(1) // scale 2

	// Scale, then rotate (1,0,0) towards -Z, then translate.
	got := o.ModelMatrix().TransformPoint(math.Vec3{X: 1})
	want := math.Vec3{X: 1, Z: -2}
	if !near(got, want) {
		t.Errorf("model * (1,0,0) = %v, want %v", got, want)
	}
}

func TestNormalMatrixUniformScale(t *testing.T) {
	o := newCube(t)
	o.Scale(1)

	n := o.NormalMatrix().MulVec3(math.Vec3{Y: 1})
	if !near(n, math.Vec3{Y: 0.5}) {
		t.Errorf("normal matrix * +Y = %v, want (0, 0.5, 0)", n)
	}
}

func TestObjectIntersectRay(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(*Object)
		ray    picking.Ray
		wantT  float32
		wantOK bool
	}{
		{
			name:   "front face",
			ray:    picking.Ray{Origin: math.Vec3{X: 0.1, Y: -0.2, Z: 5}, Direction: math.Vec3{Z: -1}},
			wantT:  4.5,
			wantOK: true,
		},
		{
			name:   "translated",
			setup:  func(o *Object) { o.Translate(0, 0, 1) },
			ray:    picking.Ray{Origin: math.Vec3{X: 0.1, Y: -0.2, Z: 5}, Direction: math.Vec3{Z: -1}},
			wantT:  3.5,
			wantOK: true,
		},
		{
			name:   "scaled",
			setup:  func(o *Object) { o.Scale(1) },
			ray:    picking.Ray{Origin: math.Vec3{X: 0.8, Z: 5}, Direction: math.Vec3{Z: -1}},
			wantT:  4,
			wantOK: true,
		},
		{
			name: "beside",
			ray:  picking.Ray{Origin: math.Vec3{X: 0.8, Z: 5}, Direction: math.Vec3{Z: -1}},
		},
		{
			name: "pointing away",
			ray:  picking.Ray{Origin: math.Vec3{Z: 5}, Direction: math.Vec3{Z: 1}},
		},
		{
			name:   "from inside",
			ray:    picking.Ray{Origin: math.Vec3{Y: 0.1, Z: -0.2}, Direction: math.Vec3{X: 1}},
			wantT:  0.5,
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := newCube(t)
			if tt.setup != nil {
				tt.setup(o)
			}
			got, ok := o.IntersectRay(tt.ray, 0, 100)
			if ok != tt.wantOK {
				t.Fatalf("hit = %v, want %v", ok, tt.wantOK)
			}
			if ok && abs(got-tt.wantT) > 1e-4 {
				t.Errorf("t = %v, want %v", got, tt.wantT)
			}
		})
	}
}

func TestSetDisplayModeIgnoresInvalid(t *testing.T) {
	o := newCube(t)
	o.SetDisplayMode(ModePhongMirrorDynamic)
	o.SetDisplayMode(DisplayMode(DisplayModeCount))
	o.SetDisplayMode(-1)

	if got := o.DisplayMode(); got != ModePhongMirrorDynamic {
		t.Errorf("DisplayMode = %v, want %v", got, ModePhongMirrorDynamic)
	}
}

func TestEnvMatricesFollowObject(t *testing.T) {
	o := newCube(t)
	o.Translate(1, 2, 3)

	env := o.EnvMatrices()
	// The +X face looks from the object centre along +X.
	p := env[0].MulVec4(math.Vec4{2, 2, 3, 1}).PerspectiveDivide()
	if abs(p.X) > 1e-4 || abs(p.Y) > 1e-4 {
		t.Errorf("+X face centre projects to %v, want screen centre", p)
	}
}
