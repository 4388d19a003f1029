package glutil

import (
	"os"
	"runtime"
	"strings"
	"testing"

	gl "github.com/go-gl/gl/v3.3-core/gl"
	glfw "github.com/go-gl/glfw/v3.3/glfw"
)

const probeVertexSrc = `#version 330 core
layout (location = 0) in vec3 pos;
void main()
{
    gl_Position = vec4(pos, 1.0);
}
`

const probeFragmentSrc = `#version 330 core
out vec4 FragColor;
void main()
{
    FragColor = vec4(1.0);
}
`

// brokenFragmentSrc must not compile: frag_color is never declared.
const brokenFragmentSrc = `#version 330 core
void main()
{
    frag_color = vec4(1.0);
}
`

// gpuProbe records what the wrappers did against a live context. GL has to
// stay on the locked main OS thread and test functions do not run there, so
// TestMain performs the calls up front and the tests assert on the results.
type gpuProbe struct {
	err error // context setup failure; when set, every GL test skips

	buffer    Buffer
	bufferErr error
	vao       VertexArray
	vaoErr    error

	goodProgram  Program
	goodBuildErr error

	badProgram  Program
	badBuildErr error

	badShaderErr error
}

var probe gpuProbe

func TestMain(m *testing.M) {
	runtime.LockOSThread()
	runProbe()
	os.Exit(m.Run())
}

func runProbe() {
	if err := glfw.Init(); err != nil {
		probe.err = err
		return
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	win, err := glfw.CreateWindow(64, 64, "glutil probe", nil, nil)
	if err != nil {
		probe.err = err
		return
	}
	defer win.Destroy()
	win.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		probe.err = err
		return
	}

	probe.buffer, probe.bufferErr = GenBuffer()
	if probe.bufferErr == nil {
		probe.buffer.Bind(ArrayBuffer)
		probe.buffer.Delete()
	}

	probe.vao, probe.vaoErr = GenVertexArray()
	if probe.vaoErr == nil {
		probe.vao.Bind()
		UnbindVertexArray()
		probe.vao.Delete()
	}

	probe.goodProgram, probe.goodBuildErr = BuildProgram(probeVertexSrc, probeFragmentSrc)
	if probe.goodBuildErr == nil {
		probe.goodProgram.Use()
		gl.UseProgram(0)
		probe.goodProgram.Delete()
	}

	probe.badProgram, probe.badBuildErr = BuildProgram(probeVertexSrc, brokenFragmentSrc)
	_, probe.badShaderErr = CompileShader(VertexShader, "this is not GLSL")
}

func requireGL(t *testing.T) {
	t.Helper()
	if probe.err != nil {
		t.Skipf("no OpenGL context available: %v", probe.err)
	}
}

func TestGenBuffer(t *testing.T) {
	requireGL(t)
	if probe.bufferErr != nil {
		t.Fatalf("GenBuffer: %v", probe.bufferErr)
	}
	if probe.buffer == 0 {
		t.Fatal("GenBuffer returned the zero handle without an error")
	}
}

func TestGenVertexArray(t *testing.T) {
	requireGL(t)
	if probe.vaoErr != nil {
		t.Fatalf("GenVertexArray: %v", probe.vaoErr)
	}
	if probe.vao == 0 {
		t.Fatal("GenVertexArray returned the zero handle without an error")
	}
}

func TestBuildProgram(t *testing.T) {
	requireGL(t)
	if probe.goodBuildErr != nil {
		t.Fatalf("BuildProgram with valid sources: %v", probe.goodBuildErr)
	}
	if probe.goodProgram == 0 {
		t.Fatal("BuildProgram returned the zero handle without an error")
	}
}

func TestBuildProgramBadFragment(t *testing.T) {
	requireGL(t)
	if probe.badBuildErr == nil {
		t.Fatal("BuildProgram accepted a fragment shader that must not compile")
	}
	if probe.badProgram != 0 {
		t.Errorf("failed build returned handle %d, want 0", probe.badProgram)
	}
	msg := probe.badBuildErr.Error()
	if !strings.Contains(msg, "fragment") {
		t.Errorf("error %q does not identify the fragment stage", msg)
	}
	const prefix = "failed to compile fragment shader: "
	diag := strings.TrimPrefix(msg, prefix)
	if diag == msg || strings.TrimSpace(diag) == "" {
		t.Errorf("error %q carries no driver diagnostics", msg)
	}
}

func TestCompileShaderBadSource(t *testing.T) {
	requireGL(t)
	if probe.badShaderErr == nil {
		t.Fatal("CompileShader accepted source that is not GLSL")
	}
	if !strings.Contains(probe.badShaderErr.Error(), "vertex") {
		t.Errorf("error %q does not identify the vertex stage", probe.badShaderErr)
	}
}

func TestShaderTypeString(t *testing.T) {
	tests := []struct {
		name string
		t    ShaderType
		want string
	}{
		{"vertex", VertexShader, "vertex"},
		{"fragment", FragmentShader, "fragment"},
		{"unknown", ShaderType(0), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.t.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
