// Package renderer owns the scene's GPU objects and drives the frame loop:
// one shared vertex buffer, a vertex array per index table, and a program per
// pass (green fill, black wireframe).
package renderer

import (
	"fmt"
	"log"
	"sync"

	gl "github.com/go-gl/gl/v3.3-core/gl"
	glfw "github.com/go-gl/glfw/v3.3/glfw"

	geometry "github.com/richinsley/gohouse/geometry"
	"github.com/richinsley/gohouse/glfwcontext"
	glutil "github.com/richinsley/gohouse/glutil"
	settings "github.com/richinsley/gohouse/settings"
	shader "github.com/richinsley/gohouse/shader"
)

var glInitOnce sync.Once

type Renderer struct {
	context  *glfwcontext.Context
	settings *settings.Settings

	vbo         glutil.Buffer
	triangleVAO glutil.VertexArray
	triangleEBO glutil.Buffer
	lineVAO     glutil.VertexArray
	lineEBO     glutil.Buffer

	triangleProgram glutil.Program
	lineProgram     glutil.Program

	triangleCount int32
	lineCount     int32
}

// NewRenderer creates the window with its GL context and loads the bindings.
// The scene itself is built by InitScene.
func NewRenderer(width, height int, title string) (*Renderer, error) {
	ctx, err := glfwcontext.New(glfwcontext.Config{Width: width, Height: height, Title: title})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize glfw context: %w", err)
	}

	var initErr error
	glInitOnce.Do(func() {
		initErr = gl.Init()
	})
	if initErr != nil {
		ctx.Shutdown()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", initErr)
	}
	log.Printf("OpenGL version: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	return &Renderer{
		context:  ctx,
		settings: settings.New(),
	}, nil
}

// InitScene uploads the figure, builds both programs and registers the input
// hooks.
func (r *Renderer) InitScene() error {
	data := geometry.VertexData(geometry.Vertices(r.settings.Landslide))
	triangles := geometry.TriangleIndices()
	lines := geometry.LineIndices()
	r.triangleCount = int32(len(triangles))
	r.lineCount = int32(len(lines))

	vbo, err := glutil.GenBuffer()
	if err != nil {
		return err
	}
	r.vbo = vbo
	r.vbo.Bind(glutil.ArrayBuffer)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)

	if r.triangleVAO, r.triangleEBO, err = newFigureVAO(triangles); err != nil {
		return err
	}
	if r.lineVAO, r.lineEBO, err = newFigureVAO(lines); err != nil {
		return err
	}
	glutil.UnbindVertexArray()

	if r.triangleProgram, err = glutil.BuildProgram(shader.VertexSource, shader.TriangleFragmentSource); err != nil {
		return fmt.Errorf("triangle program: %w", err)
	}
	if r.lineProgram, err = glutil.BuildProgram(shader.VertexSource, shader.LineFragmentSource); err != nil {
		return fmt.Errorf("line program: %w", err)
	}

	gl.ClearColor(0.8, 0.4, 0.0, 1.0)
	gl.LineWidth(3.0)

	fbWidth, fbHeight := r.context.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	r.context.OnFramebufferResize(func(width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
	})

	// Any movement key release drops both axes back to the slow step.
	for _, key := range []glfw.Key{glfw.KeyW, glfw.KeyA, glfw.KeyS, glfw.KeyD} {
		r.context.OnKeyRelease(key, r.settings.Reset)
	}
	return nil
}

// newFigureVAO wires one index table into a fresh vertex array. The shared
// vertex buffer must already be bound to ARRAY_BUFFER; the attribute pointer
// records that binding into the VAO.
func newFigureVAO(indices []uint32) (glutil.VertexArray, glutil.Buffer, error) {
	vao, err := glutil.GenVertexArray()
	if err != nil {
		return 0, 0, err
	}
	vao.Bind()

	ebo, err := glutil.GenBuffer()
	if err != nil {
		vao.Delete()
		return 0, 0, err
	}
	ebo.Bind(glutil.ElementArrayBuffer)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	return vao, ebo, nil
}

// Run drives the frame loop until the window is asked to close.
func (r *Renderer) Run() {
	for !r.context.ShouldClose() {
		r.update(r.pollKeys())
		r.draw()
		r.context.EndFrame()
	}
}

// pollKeys samples the held movement keys once per frame.
func (r *Renderer) pollKeys() settings.KeyState {
	return settings.KeyState{
		Up:    r.context.KeyDown(glfw.KeyW),
		Down:  r.context.KeyDown(glfw.KeyS),
		Left:  r.context.KeyDown(glfw.KeyA),
		Right: r.context.KeyDown(glfw.KeyD),
	}
}

// update applies one frame of held movement keys and re-uploads the vertex
// data when the pan offset actually changed.
func (r *Renderer) update(keys settings.KeyState) {
	before := r.settings.Landslide
	r.settings.Move(keys)
	if r.settings.Landslide == before {
		return
	}

	data := geometry.VertexData(geometry.Vertices(r.settings.Landslide))
	r.vbo.Bind(glutil.ArrayBuffer)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(data)*4, gl.Ptr(data))
}

// draw clears and renders the fill pass, then the wireframe pass on top.
func (r *Renderer) draw() {
	gl.Clear(gl.COLOR_BUFFER_BIT)

	r.triangleProgram.Use()
	r.triangleVAO.Bind()
	gl.DrawElements(gl.TRIANGLES, r.triangleCount, gl.UNSIGNED_INT, gl.PtrOffset(0))

	r.lineProgram.Use()
	r.lineVAO.Bind()
	gl.DrawElements(gl.LINES, r.lineCount, gl.UNSIGNED_INT, gl.PtrOffset(0))

	glutil.UnbindVertexArray()
}

// Shutdown releases every GPU object, then the window. It tolerates a
// partially built scene; zero handles are no-ops to the driver.
func (r *Renderer) Shutdown() {
	r.triangleProgram.Delete()
	r.lineProgram.Delete()
	r.triangleEBO.Delete()
	r.lineEBO.Delete()
	r.vbo.Delete()
	r.triangleVAO.Delete()
	r.lineVAO.Delete()
	if r.context != nil {
		r.context.Shutdown()
	}
}
