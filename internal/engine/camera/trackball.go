// Package camera provides the orbit (trackball) model and the view/projection
// control used for rendering and picking.
package camera

import (
	"errors"

	"github.com/chewxy/math32"

	"github.com/Faultbox/scene-editor/pkg/math"
)

// ErrDegenerate is returned when a position at the origin is converted to
// spherical coordinates.
var ErrDegenerate = errors.New("trackball: position has zero radius")

// poleEpsilon is the sin(beta) below which the azimuth is undefined.
const poleEpsilon = 1e-6

// Trackball orbits a point around the world origin using spherical coordinates.
// Beta is the polar angle measured from +Y and Phi the azimuth measured from +Z
// towards +X, both in degrees.
type Trackball struct {
	Radius float32
	Beta   float32
	Phi    float32
}

// NewTrackball creates a trackball from explicit spherical values.
func NewTrackball(radius, beta, phi float32) Trackball {
	return Trackball{Radius: radius, Beta: beta, Phi: phi}
}

// NewTrackballFromPosition creates a trackball whose position is p.
func NewTrackballFromPosition(p math.Vec3) (Trackball, error) {
	var t Trackball
	err := t.SetPosition(p)
	return t, err
}

// Left rotates the azimuth by the arc length, wrapping around 360.
func (t *Trackball) Left(length float32) {
	t.Phi = math32.Mod(t.Phi-t.lengthToDegree(length)+360, 360)
}

// Right rotates the azimuth by the arc length, wrapping around 360.
func (t *Trackball) Right(length float32) {
	t.Phi = math32.Mod(t.Phi+t.lengthToDegree(length), 360)
}

// Up moves towards the +Y pole. Motion that would reach the pole is dropped.
func (t *Trackball) Up(length float32) {
	if beta := t.Beta - t.lengthToDegree(length); beta > 0 {
		t.Beta = beta
	}
}

// Down moves towards the -Y pole. Motion that would reach the pole is dropped.
func (t *Trackball) Down(length float32) {
	if beta := t.Beta + t.lengthToDegree(length); beta < 180 {
		t.Beta = beta
	}
}

// Forward moves closer to the origin, unless that would collapse the radius.
func (t *Trackball) Forward(length float32) {
	if t.Radius-length > 0 {
		t.Radius -= length
	}
}

// Backward moves away from the origin.
func (t *Trackball) Backward(length float32) {
	t.Radius += length
}

// Position converts the spherical state to a Cartesian point.
func (t Trackball) Position() math.Vec3 {
	sinBeta, cosBeta := math32.Sincos(math.Radians(t.Beta))
	sinPhi, cosPhi := math32.Sincos(math.Radians(t.Phi))
	return math.Vec3{
		X: t.Radius * sinBeta * sinPhi,
		Y: t.Radius * cosBeta,
		Z: t.Radius * sinBeta * cosPhi,
	}
}

// SetPosition recovers the spherical state from a Cartesian point.
// On a pole the azimuth is undefined and keeps its previous value.
// A point at the origin returns ErrDegenerate and leaves t unchanged.
func (t *Trackball) SetPosition(p math.Vec3) error {
	r := p.Length()
	if r == 0 {
		return ErrDegenerate
	}

	beta := math32.Acos(clampUnit(p.Y / r))
	t.Radius = r
	t.Beta = math.Degrees(beta)

	horizontal := r * math32.Sin(beta)
	if horizontal < poleEpsilon*r {
		return nil
	}

	phi := math32.Asin(clampUnit(p.X / horizontal))
	if p.Z/horizontal < 0 {
		phi = math32.Pi - phi
	} else if phi < 0 {
		phi += 2 * math32.Pi
	}
	t.Phi = math.Degrees(phi)
	return nil
}

// lengthToDegree converts an arc length on the orbit sphere to degrees.
func (t Trackball) lengthToDegree(length float32) float32 {
	return math32.Mod(360*(length/(2*math32.Pi*t.Radius)), 360)
}

func clampUnit(x float32) float32 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}
