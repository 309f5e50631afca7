package picking

import (
	"testing"

	"github.com/Faultbox/scene-editor/pkg/math"
)

var unitTriangle = [3]math.Vec3{{}, {X: 1}, {Y: 1}}

func TestIntersectTriangle(t *testing.T) {
	tests := []struct {
		name   string
		ray    Ray
		near   float32
		far    float32
		wantT  float32
		wantOK bool
	}{
		{
			name:   "inside",
			ray:    Ray{Origin: math.Vec3{X: 0.2, Y: 0.2, Z: -1}, Direction: math.Vec3{Z: 1}},
			far:    10,
			wantT:  1,
			wantOK: true,
		},
		{
			name: "outside hypotenuse",
			ray:  Ray{Origin: math.Vec3{X: 0.8, Y: 0.8, Z: -1}, Direction: math.Vec3{Z: 1}},
			far:  10,
		},
		{
			name: "negative barycentric",
			ray:  Ray{Origin: math.Vec3{X: -0.1, Y: 0.2, Z: -1}, Direction: math.Vec3{Z: 1}},
			far:  10,
		},
		{
			name: "beyond far",
			ray:  Ray{Origin: math.Vec3{X: 0.2, Y: 0.2, Z: -1}, Direction: math.Vec3{Z: 1}},
			far:  0.5,
		},
		{
			name: "before near",
			ray:  Ray{Origin: math.Vec3{X: 0.2, Y: 0.2, Z: -1}, Direction: math.Vec3{Z: 1}},
			near: 2,
			far:  10,
		},
		{
			name: "behind origin",
			ray:  Ray{Origin: math.Vec3{X: 0.2, Y: 0.2, Z: 1}, Direction: math.Vec3{Z: 1}},
			far:  10,
		},
		{
			name: "parallel",
			ray:  Ray{Origin: math.Vec3{X: 0.2, Y: 0.2, Z: 0}, Direction: math.Vec3{X: 1}},
			near: -10,
			far:  10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.ray.IntersectTriangle(unitTriangle[0], unitTriangle[1], unitTriangle[2], tt.near, tt.far)
			if ok != tt.wantOK {
				t.Fatalf("IntersectTriangle() hit = %v, want %v", ok, tt.wantOK)
			}
			if ok && abs(got-tt.wantT) > 1e-5 {
				t.Errorf("IntersectTriangle() t = %f, want %f", got, tt.wantT)
			}
		})
	}
}

func TestUnproject(t *testing.T) {
	view := math.LookAt(math.Vec3{Z: 5}, math.Vec3{}, math.Vec3{Y: 1})
	proj := math.Perspective(math.Radians(45), 1, 0.1, 20)
	inv := proj.Mul(view).Inverse()

	ray := Unproject(0, 0, inv)

	// The center of the screen looks straight down -Z from the near plane.
	if abs(ray.Origin.X) > 1e-4 || abs(ray.Origin.Y) > 1e-4 || abs(ray.Origin.Z-4.9) > 1e-3 {
		t.Errorf("Origin = %v, want (0, 0, 4.9)", ray.Origin)
	}
	if abs(ray.Direction.Z+1) > 1e-4 {
		t.Errorf("Direction = %v, want (0, 0, -1)", ray.Direction)
	}

	// Off-center rays diverge towards the click.
	right := Unproject(0.5, 0, inv)
	if right.Direction.X <= 0 {
		t.Errorf("right click Direction = %v, want positive X", right.Direction)
	}
}

func TestScreenToNDC(t *testing.T) {
	x, y := ScreenToNDC(0, 0, 800, 600)
	if x != -1 || y != 1 {
		t.Errorf("top-left = (%f, %f), want (-1, 1)", x, y)
	}
	x, y = ScreenToNDC(400, 300, 800, 600)
	if x != 0 || y != 0 {
		t.Errorf("center = (%f, %f), want (0, 0)", x, y)
	}
}

func TestIntersectAABB(t *testing.T) {
	box := AABB{Min: math.Splat(-1), Max: math.Splat(1)}

	hitRay := Ray{Origin: math.Vec3{Z: -5}, Direction: math.Vec3{Z: 1}}
	if d, ok := hitRay.IntersectAABB(box); !ok || abs(d-4) > 1e-5 {
		t.Errorf("IntersectAABB() = (%f, %v), want (4, true)", d, ok)
	}

	inside := Ray{Origin: math.Vec3{}, Direction: math.Vec3{X: 1}}
	if d, ok := inside.IntersectAABB(box); !ok || abs(d-1) > 1e-5 {
		t.Errorf("inside IntersectAABB() = (%f, %v), want exit (1, true)", d, ok)
	}

	miss := Ray{Origin: math.Vec3{X: 3, Z: -5}, Direction: math.Vec3{Z: 1}}
	if _, ok := miss.IntersectAABB(box); ok {
		t.Error("expected miss for ray beside the box")
	}
}

func TestAABBTransform(t *testing.T) {
	box := EmptyAABB()
	if !box.IsEmpty() {
		t.Fatal("EmptyAABB should be empty")
	}
	box = box.Extend(math.Splat(-0.5)).Extend(math.Splat(0.5))

	world := box.Transform(math.Translate(2, 0, 0).Mul(math.Scale(2, 2, 2)))
	if world.Min != (math.Vec3{X: 1, Y: -1, Z: -1}) || world.Max != (math.Vec3{X: 3, Y: 1, Z: 1}) {
		t.Errorf("Transform() = %+v", world)
	}
	if c := world.Center(); c != (math.Vec3{X: 2}) {
		t.Errorf("Center() = %v, want (2, 0, 0)", c)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
