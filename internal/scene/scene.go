package scene

import (
	"errors"
	"fmt"

	"github.com/Faultbox/scene-editor/internal/engine/picking"
	"github.com/Faultbox/scene-editor/pkg/math"
)

var (
	// ErrIndexOutOfRange is returned when an object index is not in [0, Len).
	ErrIndexOutOfRange = errors.New("object index out of range")
	// ErrStaleID is returned when an ID refers to a deleted object.
	ErrStaleID = errors.New("object no longer in scene")
)

// ObjectID identifies an object for as long as it stays in the scene. IDs are
// never reused.
type ObjectID uint64

// NoObject is the zero ObjectID; it never names an object.
const NoObject ObjectID = 0

// DefaultLightPosition is where a new scene places its light.
var DefaultLightPosition = math.Vec3{X: 1, Y: 1, Z: 1}

// Scene is the ordered object collection plus the shared light.
type Scene struct {
	objects   []*Object
	nextID    ObjectID
	light     *Light
	redShadow bool
	source    MeshSource
}

// New creates an empty scene drawing template meshes from source.
func New(source MeshSource, light *Light) *Scene {
	return &Scene{
		nextID: 1,
		light:  light,
		source: source,
	}
}

// Add inserts a new object built from the template and returns its ID.
// Plane meshes keep their size and use flat+wire; all others are unitized.
func (s *Scene) Add(t Template) (ObjectID, error) {
	mesh, err := s.source.Mesh(t)
	if err != nil {
		return NoObject, fmt.Errorf("add %s: %w", t, err)
	}

	obj := NewObject(mesh)
	if t == Plane {
		obj.SetDisplayMode(ModeFlatWire)
	} else {
		mesh.Unitize()
	}
	return s.AddObject(obj), nil
}

// AddObject appends obj and assigns it a fresh ID.
func (s *Scene) AddObject(obj *Object) ObjectID {
	obj.id = s.nextID
	s.nextID++
	s.objects = append(s.objects, obj)
	return obj.id
}

// Delete removes the object at index; later objects shift down by one.
func (s *Scene) Delete(index int) error {
	if index < 0 || index >= len(s.objects) {
		return fmt.Errorf("delete %d of %d: %w", index, len(s.objects), ErrIndexOutOfRange)
	}
	copy(s.objects[index:], s.objects[index+1:])
	s.objects[len(s.objects)-1] = nil
	s.objects = s.objects[:len(s.objects)-1]
	return nil
}

// Len returns the number of objects.
func (s *Scene) Len() int { return len(s.objects) }

// At returns the object at index. It panics if index is out of range.
func (s *Scene) At(index int) *Object { return s.objects[index] }

// ID returns the ID of the object at index.
func (s *Scene) ID(index int) ObjectID { return s.objects[index].id }

// IndexOf returns the current index of the object with the given ID, or -1.
func (s *Scene) IndexOf(id ObjectID) int {
	if id == NoObject {
		return -1
	}
	for i, obj := range s.objects {
		if obj.id == id {
			return i
		}
	}
	return -1
}

// Lookup returns the object with the given ID.
func (s *Scene) Lookup(id ObjectID) (*Object, error) {
	i := s.IndexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("object %d: %w", id, ErrStaleID)
	}
	return s.objects[i], nil
}

// IntersectRay returns the index of the object with the closest hit in
// [tNear, tFar].
func (s *Scene) IntersectRay(ray picking.Ray, tNear, tFar float32) (int, bool) {
	var (
		best  float32
		index = -1
	)
	for i, obj := range s.objects {
		t, ok := obj.IntersectRay(ray, tNear, tFar)
		if ok && (index < 0 || t < best) {
			best = t
			index = i
		}
	}
	return index, index >= 0
}

// Light returns the scene light.
func (s *Scene) Light() *Light { return s.light }

// ToggleRedShadow flips the red shadow debug flag and returns the new value.
func (s *Scene) ToggleRedShadow() bool {
	s.redShadow = !s.redShadow
	return s.redShadow
}

// RedShadow reports whether shadows are drawn in red.
func (s *Scene) RedShadow() bool { return s.redShadow }
