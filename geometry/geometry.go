// Package geometry defines the hardcoded house figure: a fixed table of 17
// vertices in normalized device coordinates plus the triangle and line index
// tables that connect them. Panning translates every vertex on the CPU, so
// everything here is pure data transformation.
package geometry

import (
	mgl32 "github.com/go-gl/mathgl/mgl32"
)

// baseVertices is the house at rest, sketched directly in clip space.
var baseVertices = []mgl32.Vec3{
	{-0.81, 0.12, 0.0},
	{-0.81, 0.468, 0.0},
	{-0.632, 0.291, 0.0},
	{-0.557, 0.364, 0.0},
	{-0.557, 0.12, 0.0},
	{-0.557, -0.141, 0.0},
	{-0.81, -0.141, 0.0},
	{-0.557, -0.011, 0.0},
	{-0.04, -0.011, 0.0},
	{0.477, -0.011, 0.0},
	{-0.3, -0.27, 0.0},
	{0.22, -0.27, 0.0},
	{-0.557, -0.526, 0.0},
	{0.477, -0.526, 0.0},
	{0.544, 0.236, 0.0},
	{0.85, 0.408, 0.0},
	{0.792, 0.168, 0.0},
}

// triangleIndices fills the figure with nine triangles into baseVertices.
var triangleIndices = []uint32{
	0, 1, 2,
	0, 3, 4,
	0, 4, 6,
	4, 5, 6,
	7, 8, 12,
	8, 10, 11,
	8, 9, 13,
	9, 14, 16,
	14, 15, 16,
}

// lineIndices traces the outline with nineteen segments over the same vertices.
var lineIndices = []uint32{
	0, 1,
	1, 2,
	0, 3,
	3, 4,
	0, 4,
	0, 6,
	4, 7,
	5, 6,
	7, 12,
	7, 8,
	8, 9,
	8, 12,
	8, 13,
	10, 11,
	9, 13,
	9, 14,
	9, 16,
	14, 15,
	15, 16,
}

// Vertices returns the figure translated by the landslide offset. The z
// component stays zero. Nothing clamps the result; a figure panned far enough
// simply leaves clip space and stops being visible.
func Vertices(landslide mgl32.Vec2) []mgl32.Vec3 {
	offset := mgl32.Vec3{landslide.X(), landslide.Y(), 0.0}
	verts := make([]mgl32.Vec3, len(baseVertices))
	for i, v := range baseVertices {
		verts[i] = v.Add(offset)
	}
	return verts
}

// VertexData flattens vertex positions into the tightly packed x,y,z float32
// layout the vertex buffer stores.
func VertexData(verts []mgl32.Vec3) []float32 {
	data := make([]float32, 0, len(verts)*3)
	for _, v := range verts {
		data = append(data, v.X(), v.Y(), v.Z())
	}
	return data
}

// TriangleIndices returns the index table for the filled triangles.
func TriangleIndices() []uint32 {
	return triangleIndices
}

// LineIndices returns the index table for the wireframe overlay.
func LineIndices() []uint32 {
	return lineIndices
}
