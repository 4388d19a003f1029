package main

import (
	"fmt"
	"log"
	"runtime"

	glfwcontext "github.com/richinsley/gohouse/glfwcontext"
	renderer "github.com/richinsley/gohouse/renderer"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "gohouse"
)

func init() {
	// GLFW and OpenGL calls must stay on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("%v", err)
	}
}

// run owns setup and teardown; errors come back to main for the fatal log
// only after the defers have released whatever was created.
func run() error {
	if err := glfwcontext.InitGraphics(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}
	defer glfwcontext.TerminateGraphics()

	r, err := renderer.NewRenderer(windowWidth, windowHeight, windowTitle)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	defer r.Shutdown()

	if err := r.InitScene(); err != nil {
		return fmt.Errorf("failed to initialize scene: %w", err)
	}

	r.Run()
	return nil
}
