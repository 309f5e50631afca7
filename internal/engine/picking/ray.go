// Package picking provides ray casting and object picking utilities.
package picking

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/scene-editor/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // Normalized direction
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// ScreenToNDC converts pixel coordinates (origin top-left) to normalized device
// coordinates in [-1, 1] with +Y up.
func ScreenToNDC(screenX, screenY, viewportW, viewportH float32) (float32, float32) {
	ndcX := 2*screenX/viewportW - 1
	ndcY := 1 - 2*screenY/viewportH // Flip Y
	return ndcX, ndcY
}

// Unproject converts normalized device coordinates to a world-space ray.
// invViewProj is the inverse of the full clip transform. The ray starts on the
// near plane and points at the matching far plane point.
func Unproject(ndcX, ndcY float32, invViewProj math.Mat4) Ray {
	near := invViewProj.MulVec4(math.Vec4{ndcX, ndcY, -1, 1}).PerspectiveDivide()
	far := invViewProj.MulVec4(math.Vec4{ndcX, ndcY, 1, 1}).PerspectiveDivide()

	return Ray{Origin: near, Direction: far.Sub(near).Normalize()}
}

// IntersectTriangle tests the ray against triangle (a, b, c) by solving
//
//	e + t*d = a + beta*(b-a) + gamma*(c-a)
//
// with Cramer's rule. The hit is valid when t is within [tNear, tFar] and the
// barycentric coordinates lie inside the triangle.
func (r Ray) IntersectTriangle(a, b, c math.Vec3, tNear, tFar float32) (float32, bool) {
	ab := a.Sub(b)
	ac := a.Sub(c)
	ae := a.Sub(r.Origin)
	d := r.Direction

	det := math.Mat3FromColumns(ab, ac, d).Determinant()
	if det == 0 {
		return 0, false // Ray parallel to the triangle plane
	}

	t := math.Mat3FromColumns(ab, ac, ae).Determinant() / det
	if t < tNear || t > tFar {
		return 0, false
	}

	gamma := math.Mat3FromColumns(ab, ae, d).Determinant() / det
	if gamma < 0 || gamma > 1 {
		return 0, false
	}

	beta := math.Mat3FromColumns(ae, ac, d).Determinant() / det
	if beta < 0 || beta > 1-gamma {
		return 0, false
	}

	return t, true
}

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min math.Vec3
	Max math.Vec3
}

// EmptyAABB returns a box that contains nothing; Extend grows it.
func EmptyAABB() AABB {
	return AABB{
		Min: math.Splat(math32.MaxFloat32),
		Max: math.Splat(-math32.MaxFloat32),
	}
}

// Extend grows the box to contain p.
func (b AABB) Extend(p math.Vec3) AABB {
	return AABB{Min: b.Min.Min(p), Max: b.Max.Max(p)}
}

// IsEmpty reports whether the box contains no points.
func (b AABB) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Center returns the center point of the box.
func (b AABB) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the extent along each axis.
func (b AABB) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// Pad returns the box grown by eps on every side.
func (b AABB) Pad(eps float32) AABB {
	e := math.Splat(eps)
	return AABB{Min: b.Min.Sub(e), Max: b.Max.Add(e)}
}

// Transform returns the world-space box enclosing all eight corners of b
// transformed by m.
func (b AABB) Transform(m math.Mat4) AABB {
	out := EmptyAABB()
	for i := 0; i < 8; i++ {
		corner := b.Min
		if i&1 != 0 {
			corner.X = b.Max.X
		}
		if i&2 != 0 {
			corner.Y = b.Max.Y
		}
		if i&4 != 0 {
			corner.Z = b.Max.Z
		}
		out = out.Extend(m.TransformPoint(corner))
	}
	return out
}

// IntersectAABB tests ray intersection with an axis-aligned bounding box.
// Returns the distance to intersection (t) and whether intersection occurred.
// If the ray starts inside the box, returns the exit distance.
func (r Ray) IntersectAABB(box AABB) (t float32, hit bool) {
	tmin := float32(-math32.MaxFloat32)
	tmax := float32(math32.MaxFloat32)

	origin := r.Origin.Array()
	dir := r.Direction.Array()
	lo := box.Min.Array()
	hi := box.Max.Array()

	for axis := 0; axis < 3; axis++ {
		if dir[axis] == 0 {
			if origin[axis] < lo[axis] || origin[axis] > hi[axis] {
				return 0, false
			}
			continue
		}
		t1 := (lo[axis] - origin[axis]) / dir[axis]
		t2 := (hi[axis] - origin[axis]) / dir[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}

	// Return entry point, or exit point if starting inside
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}
