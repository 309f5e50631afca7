package scene

import (
	"errors"
	"fmt"

	"github.com/Faultbox/scene-editor/pkg/formats"
	"github.com/Faultbox/scene-editor/pkg/math"
)

// Template names a mesh that can be inserted into the scene.
type Template int

const (
	Cube Template = iota
	BumpyCube
	Bunny
	Plane
)

// ErrUnknownTemplate is returned for templates with no mesh available.
var ErrUnknownTemplate = errors.New("unknown mesh template")

var templateNames = map[Template]string{
	Cube:      "cube",
	BumpyCube: "bumpy_cube",
	Bunny:     "bunny",
	Plane:     "plane",
}

// String returns the template's symbolic name.
func (t Template) String() string {
	if name, ok := templateNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Template(%d)", int(t))
}

// ParseTemplate looks up a template by symbolic name.
func ParseTemplate(name string) (Template, error) {
	for t, n := range templateNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
}

// MeshSource supplies template meshes. Each call returns a mesh the caller may
// modify freely.
type MeshSource interface {
	Mesh(t Template) (*Mesh, error)
}

// Library loads template meshes from OFF files and caches them. Templates
// without a configured path fall back to the built-in cube and plane.
type Library struct {
	paths map[Template]string
	cache map[Template]*Mesh
}

// NewLibrary creates a library reading the given OFF files.
func NewLibrary(paths map[Template]string) *Library {
	return &Library{
		paths: paths,
		cache: make(map[Template]*Mesh),
	}
}

// Mesh returns a private copy of the template mesh.
func (l *Library) Mesh(t Template) (*Mesh, error) {
	m, ok := l.cache[t]
	if !ok {
		var err error
		m, err = l.load(t)
		if err != nil {
			return nil, err
		}
		l.cache[t] = m
	}
	return m.Clone()
}

func (l *Library) load(t Template) (*Mesh, error) {
	path := l.paths[t]
	if path == "" {
		return Builtin{}.Mesh(t)
	}

	off, err := formats.LoadOFF(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s mesh: %w", t, err)
	}
	m, err := MeshFromOFF(off)
	if err != nil {
		return nil, fmt.Errorf("loading %s mesh: %w", t, err)
	}
	return m, nil
}

// Builtin generates the cube and ground plane procedurally.
type Builtin struct{}

// Mesh implements MeshSource.
func (Builtin) Mesh(t Template) (*Mesh, error) {
	switch t {
	case Cube:
		return NewMesh(cubeVertices(), cubeIndices)
	case Plane:
		return NewMesh(planeVertices(), []uint32{0, 1, 2, 0, 2, 3})
	default:
		return nil, fmt.Errorf("%w: no built-in %s mesh", ErrUnknownTemplate, t)
	}
}

func cubeVertices() []math.Vec3 {
	return []math.Vec3{
		{X: -0.5, Y: -0.5, Z: -0.5},
		{X: 0.5, Y: -0.5, Z: -0.5},
		{X: 0.5, Y: 0.5, Z: -0.5},
		{X: -0.5, Y: 0.5, Z: -0.5},
		{X: -0.5, Y: -0.5, Z: 0.5},
		{X: 0.5, Y: -0.5, Z: 0.5},
		{X: 0.5, Y: 0.5, Z: 0.5},
		{X: -0.5, Y: 0.5, Z: 0.5},
	}
}

// Counter-clockwise when seen from outside.
var cubeIndices = []uint32{
	0, 2, 1, 0, 3, 2, // -Z
	4, 5, 6, 4, 6, 7, // +Z
	0, 1, 5, 0, 5, 4, // -Y
	3, 7, 6, 3, 6, 2, // +Y
	0, 4, 7, 0, 7, 3, // -X
	1, 2, 6, 1, 6, 5, // +X
}

// planeVertices is a 4x4 ground quad just below the unit objects.
func planeVertices() []math.Vec3 {
	const y = -0.5
	return []math.Vec3{
		{X: -2, Y: y, Z: -2},
		{X: -2, Y: y, Z: 2},
		{X: 2, Y: y, Z: 2},
		{X: 2, Y: y, Z: -2},
	}
}
