package camera

import (
	"fmt"

	"github.com/Faultbox/scene-editor/internal/engine/picking"
	"github.com/Faultbox/scene-editor/internal/engine/shadow"
	"github.com/Faultbox/scene-editor/pkg/math"
)

// Projection selects the projection matrix.
type Projection int

const (
	Perspective Projection = iota
	Orthographic
)

// String returns the projection name.
func (p Projection) String() string {
	switch p {
	case Perspective:
		return "perspective"
	case Orthographic:
		return "orthographic"
	default:
		return fmt.Sprintf("Projection(%d)", int(p))
	}
}

// Movement selects how directional motion moves the eye.
type Movement int

const (
	// MoveTrackball orbits the eye around the origin.
	MoveTrackball Movement = iota
	// MoveFree translates the eye along the world axes.
	MoveFree
)

// String returns the movement mode name.
func (m Movement) String() string {
	switch m {
	case MoveTrackball:
		return "trackball"
	case MoveFree:
		return "free"
	default:
		return fmt.Sprintf("Movement(%d)", int(m))
	}
}

// Config holds the initial view parameters.
type Config struct {
	Near, Far float32
	FOV       float32 // Vertical field of view in degrees
	// Orbit is the starting eye position in spherical coordinates.
	Orbit  Trackball
	ViewUp math.Vec3
	Width  int
	Height int
}

// DefaultConfig returns the editor's default camera: five units out on +Z,
// looking at the origin with a 45 degree perspective.
func DefaultConfig() Config {
	return Config{
		Near:   0.1,
		Far:    20,
		FOV:    45,
		Orbit:  NewTrackball(5, 90, 0),
		ViewUp: math.Vec3{Y: 1},
		Width:  800,
		Height: 600,
	}
}

// ViewControl owns the camera state and derives the view, projection and pick
// ray from it. The eye always looks at the world origin.
type ViewControl struct {
	// Orthographic view volume (x and y share the same bounds).
	left, right float32
	near, far   float32
	fov         float32

	width, height int

	eye       math.Vec3
	viewUp    math.Vec3
	trackball Trackball

	projection Projection
	movement   Movement
}

// NewViewControl creates a view control in perspective, trackball mode.
func NewViewControl(cfg Config) *ViewControl {
	v := &ViewControl{
		left:       -1,
		right:      1,
		near:       cfg.Near,
		far:        cfg.Far,
		fov:        cfg.FOV,
		width:      cfg.Width,
		height:     cfg.Height,
		viewUp:     cfg.ViewUp,
		trackball:  cfg.Orbit,
		projection: Perspective,
		movement:   MoveTrackball,
	}
	v.eye = v.trackball.Position()
	return v
}

// ViewMatrix returns the look-at matrix from the eye towards the origin.
func (v *ViewControl) ViewMatrix() math.Mat4 {
	return math.LookAt(v.eye, math.Vec3{}, v.viewUp)
}

// ProjMatrix returns the active projection matrix. Aspect ratio is fixed at 1;
// use AspectRatioMatrix to correct for the viewport shape.
func (v *ViewControl) ProjMatrix() math.Mat4 {
	switch v.projection {
	case Perspective:
		return v.PerspectiveMatrix()
	case Orthographic:
		return v.OrthoMatrix()
	default:
		panic(fmt.Sprintf("camera: invalid projection mode %d", int(v.projection)))
	}
}

// PerspectiveMatrix returns the perspective projection regardless of mode.
func (v *ViewControl) PerspectiveMatrix() math.Mat4 {
	return math.Perspective(math.Radians(v.fov), 1, v.near, v.far)
}

// OrthoMatrix returns the orthographic projection regardless of mode.
func (v *ViewControl) OrthoMatrix() math.Mat4 {
	return math.Ortho(v.left, v.right, v.left, v.right, v.near, v.far)
}

// AspectRatioMatrix scales X by height/width so square NDC maps onto the
// viewport without distortion.
func (v *ViewControl) AspectRatioMatrix() math.Mat4 {
	if v.width == 0 {
		return math.Identity()
	}
	return math.Scale(float32(v.height)/float32(v.width), 1, 1)
}

// ClickRay converts normalized device coordinates in [-1, 1] to a world-space
// ray starting on the near plane.
func (v *ViewControl) ClickRay(x, y float32) picking.Ray {
	vp := v.AspectRatioMatrix().Mul(v.ProjMatrix()).Mul(v.ViewMatrix())
	return picking.Unproject(x, y, vp.Inverse())
}

// WorldFromView maps a point on the orthographic view plane back to world X/Y.
func (v *ViewControl) WorldFromView(x, y float32) (float32, float32) {
	invView := v.ViewMatrix().Inverse()
	p := invView.Mul(v.OrthoMatrix().Inverse()).Mul(invView).MulVec4(math.Vec4{x, y, 0, 1})
	return p[0], p[1]
}

// ShadowMatrices returns the six cube face matrices around the light, in
// +X, -X, +Y, -Y, +Z, -Z order, sharing the camera's depth range.
func (v *ViewControl) ShadowMatrices(light math.Vec3) [shadow.FaceCount]math.Mat4 {
	return shadow.CubeMatrices(light, v.near, v.far)
}

// SetPerspective switches to perspective projection.
func (v *ViewControl) SetPerspective() { v.projection = Perspective }

// SetOrthographic switches to orthographic projection.
func (v *ViewControl) SetOrthographic() { v.projection = Orthographic }

// Projection returns the active projection mode.
func (v *ViewControl) Projection() Projection { return v.projection }

// SetTrackball makes directional motion orbit the origin.
func (v *ViewControl) SetTrackball() { v.movement = MoveTrackball }

// SetFree makes directional motion translate the eye along world axes.
func (v *ViewControl) SetFree() { v.movement = MoveFree }

// Movement returns the active movement mode.
func (v *ViewControl) Movement() Movement { return v.movement }

// Left moves the eye left (trackball azimuth, or -X).
func (v *ViewControl) Left(length float32) {
	v.move(length, (*Trackball).Left, math.Vec3{X: -1})
}

// Right moves the eye right (trackball azimuth, or +X).
func (v *ViewControl) Right(length float32) {
	v.move(length, (*Trackball).Right, math.Vec3{X: 1})
}

// Up moves the eye up (trackball polar angle, or +Y).
func (v *ViewControl) Up(length float32) {
	v.move(length, (*Trackball).Up, math.Vec3{Y: 1})
}

// Down moves the eye down (trackball polar angle, or -Y).
func (v *ViewControl) Down(length float32) {
	v.move(length, (*Trackball).Down, math.Vec3{Y: -1})
}

// Forward moves the eye forward (trackball radius, or -Z).
func (v *ViewControl) Forward(length float32) {
	v.move(length, (*Trackball).Forward, math.Vec3{Z: -1})
}

// Backward moves the eye backward (trackball radius, or +Z).
func (v *ViewControl) Backward(length float32) {
	v.move(length, (*Trackball).Backward, math.Vec3{Z: 1})
}

// move applies one directional step in the active movement mode and keeps the
// eye and trackball in sync, so switching modes never jumps the camera.
func (v *ViewControl) move(length float32, orbit func(*Trackball, float32), axis math.Vec3) {
	if v.movement == MoveTrackball {
		orbit(&v.trackball, length)
		v.eye = v.trackball.Position()
		return
	}

	v.eye = v.eye.Add(axis.Scale(length))
	// At the origin the orbit is undefined; the trackball keeps its last state.
	_ = v.trackball.SetPosition(v.eye)
}

// SetScreenSize records the viewport size in pixels.
func (v *ViewControl) SetScreenSize(width, height int) {
	v.width = width
	v.height = height
}

// ScreenWidth returns the viewport width in pixels.
func (v *ViewControl) ScreenWidth() int { return v.width }

// ScreenHeight returns the viewport height in pixels.
func (v *ViewControl) ScreenHeight() int { return v.height }

// Near returns the near clip distance.
func (v *ViewControl) Near() float32 { return v.near }

// Far returns the far clip distance.
func (v *ViewControl) Far() float32 { return v.far }

// EyePosition returns the current eye position.
func (v *ViewControl) EyePosition() math.Vec3 { return v.eye }

// Trackball returns a copy of the orbit state.
func (v *ViewControl) Trackball() Trackball { return v.trackball }
