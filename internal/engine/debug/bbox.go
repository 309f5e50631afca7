// Package debug provides debug visualization and capture utilities.
package debug

import "github.com/Faultbox/scene-editor/internal/engine/picking"

// BoxVertexCount is the number of vertices in a box outline (12 edges x 2).
const BoxVertexCount = 24

// SelectionPadding is the gap between a selected object and its outline.
const SelectionPadding = 0.02

// BoxLines returns line-list vertices outlining box grown by padding on every
// side, as [x, y, z] per vertex. An empty box yields nil.
func BoxLines(box picking.AABB, padding float32) []float32 {
	if box.IsEmpty() {
		return nil
	}
	box = box.Pad(padding)
	lo, hi := box.Min, box.Max

	return []float32{
		// Bottom face
		lo.X, lo.Y, lo.Z, hi.X, lo.Y, lo.Z,
		hi.X, lo.Y, lo.Z, hi.X, lo.Y, hi.Z,
		hi.X, lo.Y, hi.Z, lo.X, lo.Y, hi.Z,
		lo.X, lo.Y, hi.Z, lo.X, lo.Y, lo.Z,
		// Top face
		lo.X, hi.Y, lo.Z, hi.X, hi.Y, lo.Z,
		hi.X, hi.Y, lo.Z, hi.X, hi.Y, hi.Z,
		hi.X, hi.Y, hi.Z, lo.X, hi.Y, hi.Z,
		lo.X, hi.Y, hi.Z, lo.X, hi.Y, lo.Z,
		// Vertical edges
		lo.X, lo.Y, lo.Z, lo.X, hi.Y, lo.Z,
		hi.X, lo.Y, lo.Z, hi.X, hi.Y, lo.Z,
		hi.X, lo.Y, hi.Z, hi.X, hi.Y, hi.Z,
		lo.X, lo.Y, hi.Z, lo.X, hi.Y, hi.Z,
	}
}
