// Package shader holds the GLSL sources for the two programs the figure is
// drawn with. The mesh lives directly in normalized device coordinates and is
// panned CPU-side before upload, so the vertex stage is a plain passthrough.
package shader

// VertexSource forwards each vertex position unchanged. Both programs share it.
const VertexSource = `#version 330 core
layout (location = 0) in vec3 pos;

void main()
{
    gl_Position = vec4(pos.x, pos.y, pos.z, 1.0);
}
`

// TriangleFragmentSource fills the figure's triangles with a solid green.
const TriangleFragmentSource = `#version 330 core
out vec4 FragColor;

void main()
{
    FragColor = vec4(0.0, 0.5, 0.0, 1.0);
}
`

// LineFragmentSource draws the wireframe overlay in black.
const LineFragmentSource = `#version 330 core
out vec4 FragColor;

void main()
{
    FragColor = vec4(0.0, 0.0, 0.0, 1.0);
}
`
