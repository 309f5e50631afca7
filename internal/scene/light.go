package scene

import (
	"github.com/Faultbox/scene-editor/internal/engine/camera"
	"github.com/Faultbox/scene-editor/pkg/math"
)

// Light is the scene's single point light. It orbits the origin with the same
// trackball model as the camera.
type Light struct {
	trackball camera.Trackball
}

// NewLight places the light at p. A light at the origin has no orbit and
// returns camera.ErrDegenerate.
func NewLight(p math.Vec3) (*Light, error) {
	tb, err := camera.NewTrackballFromPosition(p)
	if err != nil {
		return nil, err
	}
	return &Light{trackball: tb}, nil
}

// Position returns the light's world position.
func (l *Light) Position() math.Vec3 { return l.trackball.Position() }

// Trackball returns a copy of the orbit state.
func (l *Light) Trackball() camera.Trackball { return l.trackball }

func (l *Light) Left(length float32)     { l.trackball.Left(length) }
func (l *Light) Right(length float32)    { l.trackball.Right(length) }
func (l *Light) Up(length float32)       { l.trackball.Up(length) }
func (l *Light) Down(length float32)     { l.trackball.Down(length) }
func (l *Light) Forward(length float32)  { l.trackball.Forward(length) }
func (l *Light) Backward(length float32) { l.trackball.Backward(length) }
