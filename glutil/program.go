package glutil

import (
	"errors"
	"fmt"
	"strings"

	gl "github.com/go-gl/gl/v3.3-core/gl"
)

// Program is a handle to a shader program.
type Program uint32

// CreateProgram allocates an empty program object.
func CreateProgram() (Program, error) {
	id := gl.CreateProgram()
	if id == 0 {
		return 0, errors.New("program allocation returned the zero handle")
	}
	return Program(id), nil
}

// Attach adds a compiled shader to the program.
func (p Program) Attach(s Shader) {
	gl.AttachShader(uint32(p), uint32(s))
}

// Link links the attached shaders.
func (p Program) Link() {
	gl.LinkProgram(uint32(p))
}

// LinkOK reports whether the last link succeeded.
func (p Program) LinkOK() bool {
	var status int32
	gl.GetProgramiv(uint32(p), gl.LINK_STATUS, &status)
	return status == gl.TRUE
}

// InfoLog returns the driver's diagnostics from the last link.
func (p Program) InfoLog() string {
	var logLength int32
	gl.GetProgramiv(uint32(p), gl.INFO_LOG_LENGTH, &logLength)
	logText := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(uint32(p), logLength, nil, gl.Str(logText))
	return strings.TrimRight(logText, "\x00")
}

// Use makes the program current for draw calls.
func (p Program) Use() {
	gl.UseProgram(uint32(p))
}

// Delete releases the program object. Deleting the zero handle is a no-op.
func (p Program) Delete() {
	gl.DeleteProgram(uint32(p))
}

// BuildProgram compiles both stages and links them into a program. Every
// object allocated before a failure is released again, and the error names
// the stage that failed: vertex compile, fragment compile, or link.
func BuildProgram(vertexSrc, fragmentSrc string) (Program, error) {
	program, err := CreateProgram()
	if err != nil {
		return 0, err
	}

	vertex, err := CompileShader(VertexShader, vertexSrc)
	if err != nil {
		program.Delete()
		return 0, err
	}
	defer vertex.Delete()

	fragment, err := CompileShader(FragmentShader, fragmentSrc)
	if err != nil {
		program.Delete()
		return 0, err
	}
	defer fragment.Delete()

	program.Attach(vertex)
	program.Attach(fragment)
	program.Link()
	if !program.LinkOK() {
		log := program.InfoLog()
		program.Delete()
		return 0, fmt.Errorf("failed to link program: %v", log)
	}
	return program, nil
}
