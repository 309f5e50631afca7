package camera

import (
	"errors"
	"testing"

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

// angleDiff returns the distance between two azimuths in degrees.
func angleDiff(a, b float32) float32 {
	d := abs(a - b)
	if d > 180 {
		d = 360 - d
	}
	return d
}

func TestTrackballPosition(t *testing.T) {
	tests := []struct {
		name string
		tb   Trackball
		want math.Vec3
	}{
		{"front", NewTrackball(5, 90, 0), math.Vec3{Z: 5}},
		{"right", NewTrackball(2, 90, 90), math.Vec3{X: 2}},
		{"top", NewTrackball(3, 0, 0), math.Vec3{Y: 3}},
		{"back", NewTrackball(1, 90, 180), math.Vec3{Z: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tb.Position(); !near(got, tt.want) {
				t.Errorf("Position() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTrackballRoundTrip(t *testing.T) {
	for _, tb := range []Trackball{
		NewTrackball(5, 90, 0),
		NewTrackball(1, 30, 45),
		NewTrackball(2.5, 120, 135),
		NewTrackball(3, 60, 225),
		NewTrackball(0.5, 170, 300),
	} {
		got, err := NewTrackballFromPosition(tb.Position())
		if err != nil {
			t.Fatalf("NewTrackballFromPosition(%v): %v", tb, err)
		}
		if abs(got.Radius-tb.Radius) > 1e-4 || abs(got.Beta-tb.Beta) > 1e-2 || angleDiff(got.Phi, tb.Phi) > 1e-2 {
			t.Errorf("round trip of %+v = %+v", tb, got)
		}
	}
}

func TestTrackballLeftRightInverse(t *testing.T) {
	tb := NewTrackball(5, 90, 10)
	tb.Left(1)
	tb.Right(1)
	if angleDiff(tb.Phi, 10) > 1e-3 {
		t.Errorf("Phi = %v, want 10", tb.Phi)
	}

	// Wraps below zero.
	tb = NewTrackball(1, 90, 0)
	tb.Left(0.1)
	if tb.Phi <= 180 || tb.Phi >= 360 {
		t.Errorf("Phi after Left from 0 = %v, want in (180, 360)", tb.Phi)
	}
}

func TestTrackballArcLength(t *testing.T) {
	// A quarter of the circumference is 90 degrees.
	tb := NewTrackball(2, 90, 0)
	tb.Right(math.Radians(90) * 2)
	if abs(tb.Phi-90) > 1e-3 {
		t.Errorf("Phi = %v, want 90", tb.Phi)
	}
}

func TestTrackballPoles(t *testing.T) {
	tb := NewTrackball(1, 1, 0)
	tb.Up(0.5)
	if tb.Beta != 1 {
		t.Errorf("Up past the pole changed Beta to %v", tb.Beta)
	}

	tb = NewTrackball(1, 179, 0)
	tb.Down(0.5)
	if tb.Beta != 179 {
		t.Errorf("Down past the pole changed Beta to %v", tb.Beta)
	}

	tb = NewTrackball(1, 90, 0)
	tb.Up(0.1)
	if tb.Beta >= 90 {
		t.Errorf("Up did not decrease Beta: %v", tb.Beta)
	}
}

func TestTrackballRadius(t *testing.T) {
	tb := NewTrackball(0.05, 90, 0)
	tb.Forward(0.1)
	if tb.Radius != 0.05 {
		t.Errorf("Forward collapsed radius to %v", tb.Radius)
	}

	tb.Backward(0.1)
	if abs(tb.Radius-0.15) > 1e-6 {
		t.Errorf("Radius = %v, want 0.15", tb.Radius)
	}
}

func TestSetPositionDegenerate(t *testing.T) {
	tb := NewTrackball(5, 90, 30)
	if err := tb.SetPosition(math.Vec3{}); !errors.Is(err, ErrDegenerate) {
		t.Fatalf("SetPosition(origin) = %v, want ErrDegenerate", err)
	}
	if tb != NewTrackball(5, 90, 30) {
		t.Errorf("state changed to %+v", tb)
	}

	// On the pole only the azimuth is kept.
	if err := tb.SetPosition(math.Vec3{Y: 2}); err != nil {
		t.Fatal(err)
	}
	if tb.Phi != 30 || abs(tb.Beta) > 1e-3 || tb.Radius != 2 {
		t.Errorf("pole state = %+v", tb)
	}
}
