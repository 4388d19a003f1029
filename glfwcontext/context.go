// Package glfwcontext owns the GLFW window and its 3.3 core profile context.
// It stays free of GL calls; packages that import the GL bindings register
// hooks for the events they care about.
package glfwcontext

import (
	"fmt"
	"log"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
)

// Config fixes the window geometry and title at build time. The program takes
// no flags, so nothing here comes from the command line.
type Config struct {
	Width  int
	Height int
	Title  string
}

// Context wraps the window and routes its input events. All methods must be
// called from the main OS thread.
type Context struct {
	window *glfw.Window

	// releaseCallbacks run when the matching key's Release event arrives.
	releaseCallbacks map[glfw.Key]func()
	resizeCallback   func(width, height int)
}

// New creates the window, makes its context current and enables vsync.
func New(cfg Config) (*Context, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("glfw.CreateWindow failed: %w", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	c := &Context{
		window:           win,
		releaseCallbacks: make(map[glfw.Key]func()),
	}
	win.SetKeyCallback(c.glfwKeyCallback)
	win.SetFramebufferSizeCallback(c.glfwSizeCallback)
	return c, nil
}

// OnKeyRelease registers a function to run when the given key is released.
func (c *Context) OnKeyRelease(key glfw.Key, f func()) {
	c.releaseCallbacks[key] = f
}

// OnFramebufferResize registers a function to run when the framebuffer
// changes size.
func (c *Context) OnFramebufferResize(f func(width, height int)) {
	c.resizeCallback = f
}

// glfwKeyCallback handles the quit chord and dispatches the release hooks.
// Bare Escape is ignored; closing takes Escape with the Alt modifier held.
func (c *Context) glfwKeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press && mods&glfw.ModAlt != 0 {
		w.SetShouldClose(true)
	}

	if action == glfw.Release {
		if callback, ok := c.releaseCallbacks[key]; ok {
			callback()
		}
	}
}

func (c *Context) glfwSizeCallback(w *glfw.Window, width, height int) {
	if c.resizeCallback != nil {
		c.resizeCallback(width, height)
	}
}

// KeyDown reports whether the key is currently held.
func (c *Context) KeyDown(key glfw.Key) bool {
	return c.window.GetKey(key) == glfw.Press
}

// ShouldClose reports whether the window was asked to close, by the quit
// chord or by the window manager.
func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

// EndFrame presents the frame and pumps the event queue. Key and resize
// callbacks fire here.
func (c *Context) EndFrame() {
	c.window.SwapBuffers()
	glfw.PollEvents()
}

// GetFramebufferSize returns the framebuffer size in pixels, which on HiDPI
// displays differs from the window size.
func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

// Shutdown destroys the window.
func (c *Context) Shutdown() {
	c.window.Destroy()
}

// InitGraphics initializes the graphics subsystem (GLFW). Must be called from
// the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return err
	}
	log.Printf("GLFW Initialized")
	return nil
}

// TerminateGraphics shuts down the graphics subsystem. Must be called from
// the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	log.Printf("GLFW Terminated")
}
