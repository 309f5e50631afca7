// Package scene holds the editable scene: objects with their transforms, the
// point light, and the read-only frame snapshot handed to the renderer.
package scene

import (
	"fmt"

	"github.com/jinzhu/copier"

	"github.com/Faultbox/scene-editor/internal/engine/picking"
	"github.com/Faultbox/scene-editor/pkg/formats"
	"github.com/Faultbox/scene-editor/pkg/math"
)

// Mesh is an indexed triangle mesh with per-vertex normals.
type Mesh struct {
	Vertices []math.Vec3
	Normals  []math.Vec3
	Indices  []uint32 // Triangle list
}

// NewMesh builds a mesh and computes its vertex normals.
func NewMesh(vertices []math.Vec3, indices []uint32) (*Mesh, error) {
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("mesh: %d indices is not a triangle list", len(indices))
	}
	for i, idx := range indices {
		if int(idx) >= len(vertices) {
			return nil, fmt.Errorf("mesh: index %d references vertex %d of %d", i, idx, len(vertices))
		}
	}

	m := &Mesh{Vertices: vertices, Indices: indices}
	m.computeNormals()
	return m, nil
}

// MeshFromOFF converts a parsed OFF file.
func MeshFromOFF(off *formats.OFF) (*Mesh, error) {
	vertices := make([]math.Vec3, len(off.Vertices))
	for i, v := range off.Vertices {
		vertices[i] = math.Vec3{X: v[0], Y: v[1], Z: v[2]}
	}
	return NewMesh(vertices, off.Indices)
}

// computeNormals averages the face normals adjacent to each vertex.
// Vertices not referenced by any triangle keep a zero normal.
func (m *Mesh) computeNormals() {
	m.Normals = make([]math.Vec3, len(m.Vertices))
	count := make([]int, len(m.Vertices))

	for i := 0; i+2 < len(m.Indices); i += 3 {
		ia, ib, ic := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		a, b, c := m.Vertices[ia], m.Vertices[ib], m.Vertices[ic]
		n := b.Sub(a).Cross(c.Sub(b)).Normalize()

		for _, idx := range [3]uint32{ia, ib, ic} {
			m.Normals[idx] = m.Normals[idx].Add(n)
			count[idx]++
		}
	}

	for i, c := range count {
		if c != 0 {
			m.Normals[i] = m.Normals[i].Scale(1 / float32(c))
		}
	}
}

// Bounds returns the local-space bounding box.
func (m *Mesh) Bounds() picking.AABB {
	box := picking.EmptyAABB()
	for _, v := range m.Vertices {
		box = box.Extend(v)
	}
	return box
}

// Unitize recenters the mesh on its bounding box center and scales it so the
// largest extent is 1. A mesh with zero extent is only recentered.
func (m *Mesh) Unitize() {
	if len(m.Vertices) == 0 {
		return
	}

	box := m.Bounds()
	center := box.Center()
	size := box.Size()
	scale := size.X
	if size.Y > scale {
		scale = size.Y
	}
	if size.Z > scale {
		scale = size.Z
	}

	for i, v := range m.Vertices {
		v = v.Sub(center)
		if scale != 0 {
			v = v.Scale(1 / scale)
		}
		m.Vertices[i] = v
	}
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Clone returns a deep copy of the mesh.
func (m *Mesh) Clone() (*Mesh, error) {
	out := &Mesh{}
	if err := copier.CopyWithOption(out, m, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("mesh: clone: %w", err)
	}
	return out, nil
}
