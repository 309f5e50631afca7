package scene

import (
	"github.com/Faultbox/scene-editor/internal/engine/camera"
	"github.com/Faultbox/scene-editor/internal/engine/picking"
	"github.com/Faultbox/scene-editor/internal/engine/shadow"
	"github.com/Faultbox/scene-editor/pkg/math"
)

// Frame is a read-only snapshot of everything the renderer needs for one frame.
type Frame struct {
	View        math.Mat4
	Proj        math.Mat4
	AspectRatio math.Mat4
	Eye         math.Vec3
	Light       math.Vec3
	Shadow      [shadow.FaceCount]math.Mat4
	Far         float32
	RedShadow   bool
	// Selection bounds the highlighted object in world space; empty when none.
	Selection picking.AABB
	Objects   []FrameObject
}

// FrameObject is the per-object part of a Frame.
type FrameObject struct {
	ID     ObjectID
	Mesh   *Mesh
	Model  math.Mat4
	Normal math.Mat3
	// Color already includes any selection highlight.
	Color math.Vec3
	Mode  DisplayMode
	Env   [shadow.FaceCount]math.Mat4
}

// HighlightColor returns the inverted color shown for a selected object.
func HighlightColor(c math.Vec3) math.Vec3 {
	return math.Splat(1).Sub(c)
}

// Frame builds the snapshot for view. The object named by highlight, if any, is
// drawn in its inverted color; the stored color is left unchanged.
func (s *Scene) Frame(view *camera.ViewControl, highlight ObjectID) Frame {
	light := s.light.Position()
	f := Frame{
		View:        view.ViewMatrix(),
		Proj:        view.ProjMatrix(),
		AspectRatio: view.AspectRatioMatrix(),
		Eye:         view.EyePosition(),
		Light:       light,
		Shadow:      view.ShadowMatrices(light),
		Far:         view.Far(),
		RedShadow:   s.redShadow,
		Selection:   picking.EmptyAABB(),
		Objects:     make([]FrameObject, 0, len(s.objects)),
	}

	for _, obj := range s.objects {
		color := obj.color
		if highlight != NoObject && obj.id == highlight {
			color = HighlightColor(color)
			f.Selection = obj.WorldBounds()
		}
		f.Objects = append(f.Objects, FrameObject{
			ID:     obj.id,
			Mesh:   obj.mesh,
			Model:  obj.ModelMatrix(),
			Normal: obj.NormalMatrix(),
			Color:  color,
			Mode:   obj.mode,
			Env:    obj.EnvMatrices(),
		})
	}
	return f
}
