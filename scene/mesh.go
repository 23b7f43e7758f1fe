package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Mesh holds per-vertex attributes and triangle connectivity, ready for upload.
type Mesh struct {
	Positions []mgl32.Vec3
	Colors    []mgl32.Vec3
	Indices   []uint32
}

// Triangle returns the single colored triangle drawn by the demo.
func Triangle() *Mesh {
	return &Mesh{
		Positions: []mgl32.Vec3{
			{-0.5, -0.5, 0.0}, // Bottom Left
			{0.5, -0.5, 0.0},  // Bottom Right
			{0.0, 0.5, 0.0},   // Top Center
		},
		Colors: []mgl32.Vec3{
			{1.0, 0.0, 0.0},
			{0.0, 1.0, 0.0},
			{0.0, 0.0, 1.0},
		},
		Indices: []uint32{0, 1, 2},
	}
}

func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// Validate checks that the attribute arrays line up and every index points at a vertex.
func (m *Mesh) Validate() error {
	if len(m.Positions) == 0 {
		return fmt.Errorf("mesh has no vertices")
	}
	if len(m.Colors) != len(m.Positions) {
		return fmt.Errorf("mesh has %d colors for %d vertices", len(m.Colors), len(m.Positions))
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("index count %d is not a multiple of 3", len(m.Indices))
	}
	for i, idx := range m.Indices {
		if int(idx) >= len(m.Positions) {
			return fmt.Errorf("index %d at position %d is out of range (%d vertices)", idx, i, len(m.Positions))
		}
	}
	return nil
}

// PositionData flattens positions into x, y, z triples.
func (m *Mesh) PositionData() []float32 {
	return flatten(m.Positions)
}

// ColorData flattens colors into r, g, b triples.
func (m *Mesh) ColorData() []float32 {
	return flatten(m.Colors)
}

func flatten(vs []mgl32.Vec3) []float32 {
	out := make([]float32, 0, len(vs)*3)
	for _, v := range vs {
		out = append(out, v[0], v[1], v[2])
	}
	return out
}
