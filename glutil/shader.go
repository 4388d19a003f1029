package glutil

import (
	"fmt"
	"strings"

	gl "github.com/go-gl/gl/v3.3-core/gl"
)

// ShaderType distinguishes the programmable stages this program uses.
type ShaderType uint32

const (
	VertexShader   ShaderType = gl.VERTEX_SHADER
	FragmentShader ShaderType = gl.FRAGMENT_SHADER
)

// String names the stage for error messages.
func (t ShaderType) String() string {
	switch t {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	}
	return "unknown"
}

// Shader is a handle to a shader object.
type Shader uint32

// CreateShader allocates an empty shader object for the given stage.
func CreateShader(shaderType ShaderType) (Shader, error) {
	id := gl.CreateShader(uint32(shaderType))
	if id == 0 {
		return 0, fmt.Errorf("%s shader allocation returned the zero handle", shaderType)
	}
	return Shader(id), nil
}

// Source replaces the shader's source code. The terminating NUL the bindings
// require is appended here, callers pass plain Go strings.
func (s Shader) Source(src string) {
	csources, free := gl.Strs(src + "\x00")
	gl.ShaderSource(uint32(s), 1, csources, nil)
	free()
}

// Compile compiles the current source.
func (s Shader) Compile() {
	gl.CompileShader(uint32(s))
}

// CompileOK reports whether the last compile succeeded.
func (s Shader) CompileOK() bool {
	var status int32
	gl.GetShaderiv(uint32(s), gl.COMPILE_STATUS, &status)
	return status == gl.TRUE
}

// InfoLog returns the driver's diagnostics from the last compile.
func (s Shader) InfoLog() string {
	var logLength int32
	gl.GetShaderiv(uint32(s), gl.INFO_LOG_LENGTH, &logLength)
	logText := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(uint32(s), logLength, nil, gl.Str(logText))
	return strings.TrimRight(logText, "\x00")
}

// Delete releases the shader object.
func (s Shader) Delete() {
	gl.DeleteShader(uint32(s))
}

// CompileShader builds a shader of the given stage from source. On a failed
// compile the shader object is released and the driver's log comes back in
// the error.
func CompileShader(shaderType ShaderType, src string) (Shader, error) {
	shader, err := CreateShader(shaderType)
	if err != nil {
		return 0, err
	}
	shader.Source(src)
	shader.Compile()
	if !shader.CompileOK() {
		log := shader.InfoLog()
		shader.Delete()
		return 0, fmt.Errorf("failed to compile %s shader: %v", shaderType, log)
	}
	return shader, nil
}
