// Package shadow provides omnidirectional (cube map) shadow mapping support.
package shadow

import (
	"fmt"

	"github.com/Faultbox/scene-editor/pkg/math"
)

// Face identifies one side of a cube map. The order matches
// GL_TEXTURE_CUBE_MAP_POSITIVE_X + i.
type Face int

// Cube faces in cube map upload order.
const (
	PositiveX Face = iota
	NegativeX
	PositiveY
	NegativeY
	PositiveZ
	NegativeZ
)

// FaceCount is the number of faces in a cube map.
const FaceCount = 6

// FOV is the per-face field of view in degrees.
const FOV = 90

// String returns a short face name like "+X".
func (f Face) String() string {
	switch f {
	case PositiveX:
		return "+X"
	case NegativeX:
		return "-X"
	case PositiveY:
		return "+Y"
	case NegativeY:
		return "-Y"
	case PositiveZ:
		return "+Z"
	case NegativeZ:
		return "-Z"
	default:
		return fmt.Sprintf("Face(%d)", int(f))
	}
}

// faceBasis holds the look direction and up vector of each face, following the
// OpenGL cube map convention.
var faceBasis = [FaceCount]struct {
	dir, up math.Vec3
}{
	PositiveX: {math.Vec3{X: 1}, math.Vec3{Y: -1}},
	NegativeX: {math.Vec3{X: -1}, math.Vec3{Y: -1}},
	PositiveY: {math.Vec3{Y: 1}, math.Vec3{Z: 1}},
	NegativeY: {math.Vec3{Y: -1}, math.Vec3{Z: -1}},
	PositiveZ: {math.Vec3{Z: 1}, math.Vec3{Y: -1}},
	NegativeZ: {math.Vec3{Z: -1}, math.Vec3{Y: -1}},
}

// Direction returns the world-space direction the face looks along.
func (f Face) Direction() math.Vec3 {
	return faceBasis[f].dir
}

// FaceView returns the view matrix looking out of center through face f.
func FaceView(center math.Vec3, f Face) math.Mat4 {
	b := faceBasis[f]
	return math.LookAt(center, center.Add(b.dir), b.up)
}

// CubeMatrices returns projection*view for all six faces around center, using a
// 90 degree square frustum between near and far.
func CubeMatrices(center math.Vec3, near, far float32) [FaceCount]math.Mat4 {
	proj := math.Perspective(math.Radians(FOV), 1, near, far)

	var out [FaceCount]math.Mat4
	for f := PositiveX; f <= NegativeZ; f++ {
		out[f] = proj.Mul(FaceView(center, f))
	}
	return out
}
