package scene

import (
	"fmt"

	"github.com/Faultbox/scene-editor/internal/engine/picking"
	"github.com/Faultbox/scene-editor/internal/engine/shadow"
	"github.com/Faultbox/scene-editor/pkg/math"
)

// DisplayMode selects the shading and lighting technique for an object.
type DisplayMode int

// Display modes, in the order they are bound to keys.
const (
	ModeWire               DisplayMode = iota // wireframe
	ModeFlatWire                              // flat shading + wireframe overlay, Phong lighting
	ModePhong                                 // Phong shading + Phong lighting
	ModePhongMirror                           // Phong shading + skybox reflection
	ModePhongRefract                          // Phong shading + skybox refraction
	ModeFlatMirror                            // flat shading + skybox reflection
	ModeFlatRefract                           // flat shading + skybox refraction
	ModePhongMirrorDynamic                    // Phong shading + dynamic environment map reflection
)

// DisplayModeCount is the number of display modes.
const DisplayModeCount = 8

// String returns a human-readable mode name.
func (m DisplayMode) String() string {
	switch m {
	case ModeWire:
		return "wire"
	case ModeFlatWire:
		return "flat+wire"
	case ModePhong:
		return "phong"
	case ModePhongMirror:
		return "phong+mirror"
	case ModePhongRefract:
		return "phong+refraction"
	case ModeFlatMirror:
		return "flat+mirror"
	case ModeFlatRefract:
		return "flat+refraction"
	case ModePhongMirrorDynamic:
		return "phong+mirror(dynamic)"
	default:
		return fmt.Sprintf("DisplayMode(%d)", int(m))
	}
}

// Valid reports whether m is one of the eight display modes.
func (m DisplayMode) Valid() bool {
	return m >= ModeWire && m < DisplayModeCount
}

// DefaultColor is the color of newly inserted objects.
var DefaultColor = math.Vec3{X: 0.2, Y: 0.2, Z: 0.2}

// envFar is the far plane of the per-object environment cube.
const envFar = 20

// Transform is the accumulated affine state of an object.
type Transform struct {
	Translate math.Vec3
	Rotate    math.Vec3 // Degrees around X, Y, Z
	Scale     float32
}

// Object is a mesh placed in the scene.
type Object struct {
	id        ObjectID
	mesh      *Mesh
	transform Transform
	color     math.Vec3
	mode      DisplayMode
}

// NewObject wraps a mesh with an identity transform, the default color and
// Phong display mode.
func NewObject(mesh *Mesh) *Object {
	return &Object{
		mesh:      mesh,
		transform: Transform{Scale: 1},
		color:     DefaultColor,
		mode:      ModePhong,
	}
}

// ID returns the stable identifier assigned when the object joined a scene.
func (o *Object) ID() ObjectID { return o.id }

// Mesh returns the object's geometry.
func (o *Object) Mesh() *Mesh { return o.mesh }

// Transform returns the accumulated transform.
func (o *Object) Transform() Transform { return o.transform }

// Color returns the persistent object color.
func (o *Object) Color() math.Vec3 { return o.color }

// DisplayMode returns the active display mode.
func (o *Object) DisplayMode() DisplayMode { return o.mode }

// Translate adds to the stored translation.
func (o *Object) Translate(dx, dy, dz float32) {
	o.transform.Translate = o.transform.Translate.Add(math.Vec3{X: dx, Y: dy, Z: dz})
}

// Rotate adds to the stored rotation, in degrees.
func (o *Object) Rotate(dx, dy, dz float32) {
	o.transform.Rotate = o.transform.Rotate.Add(math.Vec3{X: dx, Y: dy, Z: dz})
}

// Scale adds delta to the uniform scale factor.
func (o *Object) Scale(delta float32) {
	o.transform.Scale += delta
}

// SetColor replaces the object color.
func (o *Object) SetColor(c math.Vec3) {
	o.color = c
}

// SetDisplayMode changes the display mode. Unknown modes are ignored.
func (o *Object) SetDisplayMode(m DisplayMode) {
	if m.Valid() {
		o.mode = m
	}
}

// ModelMatrix returns T * Rx * Ry * Rz * S around the local origin.
func (o *Object) ModelMatrix() math.Mat4 {
	tr := o.transform
	return math.Translate(tr.Translate.X, tr.Translate.Y, tr.Translate.Z).
		Mul(math.RotateX(math.Radians(tr.Rotate.X))).
		Mul(math.RotateY(math.Radians(tr.Rotate.Y))).
		Mul(math.RotateZ(math.Radians(tr.Rotate.Z))).
		Mul(math.Scale(tr.Scale, tr.Scale, tr.Scale))
}

// NormalMatrix returns the upper 3x3 of the inverse-transpose model matrix.
func (o *Object) NormalMatrix() math.Mat3 {
	return o.ModelMatrix().Inverse().Transpose().Mat3()
}

// WorldBounds returns the world-space box enclosing the transformed mesh.
func (o *Object) WorldBounds() picking.AABB {
	return o.mesh.Bounds().Transform(o.ModelMatrix())
}

// EnvMatrices returns the six cube face matrices used to render a dynamic
// environment map from the object's position.
func (o *Object) EnvMatrices() [shadow.FaceCount]math.Mat4 {
	return shadow.CubeMatrices(o.transform.Translate, 0.5*o.transform.Scale, envFar)
}

// IntersectRay returns the closest hit of the ray against the object's
// world-space triangles with t in [tNear, tFar].
func (o *Object) IntersectRay(ray picking.Ray, tNear, tFar float32) (float32, bool) {
	if o.mesh == nil || len(o.mesh.Indices) == 0 {
		return 0, false
	}

	model := o.ModelMatrix()

	// Broad phase: any valid triangle hit lies inside the world box.
	if tNear >= 0 {
		box := o.mesh.Bounds().Transform(model)
		if _, ok := ray.IntersectAABB(box.Pad(1e-4 * (1 + box.Size().Length()))); !ok {
			return 0, false
		}
	}

	vs := o.mesh.Vertices
	idx := o.mesh.Indices
	var (
		best float32
		hit  bool
	)
	for i := 0; i+2 < len(idx); i += 3 {
		a := model.TransformPoint(vs[idx[i]])
		b := model.TransformPoint(vs[idx[i+1]])
		c := model.TransformPoint(vs[idx[i+2]])

		t, ok := ray.IntersectTriangle(a, b, c, tNear, tFar)
		if ok && (!hit || t < best) {
			best = t
			hit = true
		}
	}
	return best, hit
}
