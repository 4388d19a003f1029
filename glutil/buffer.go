// Package glutil wraps the raw OpenGL object API in small handle types whose
// allocation failures surface as errors instead of silent zero handles. It
// covers exactly the objects this program renders with: buffers, vertex
// arrays, shaders and programs. All calls must run on the thread that owns
// the GL context.
package glutil

import (
	"errors"

	gl "github.com/go-gl/gl/v3.3-core/gl"
)

// BufferTarget selects the binding point a buffer attaches to.
type BufferTarget uint32

const (
	// ArrayBuffer holds vertex attribute data.
	ArrayBuffer BufferTarget = gl.ARRAY_BUFFER
	// ElementArrayBuffer holds draw indices.
	ElementArrayBuffer BufferTarget = gl.ELEMENT_ARRAY_BUFFER
)

// Buffer is a handle to a GL buffer object.
type Buffer uint32

// GenBuffer allocates a buffer object. The zero handle is reserved, so
// getting one back means the allocation failed.
func GenBuffer() (Buffer, error) {
	var id uint32
	gl.GenBuffers(1, &id)
	if id == 0 {
		return 0, errors.New("buffer allocation returned the zero handle")
	}
	return Buffer(id), nil
}

// Bind attaches the buffer to the given target.
func (b Buffer) Bind(target BufferTarget) {
	gl.BindBuffer(uint32(target), uint32(b))
}

// Delete releases the buffer object. Deleting the zero handle is a no-op.
func (b Buffer) Delete() {
	id := uint32(b)
	gl.DeleteBuffers(1, &id)
}
