package glutil

import (
	"errors"

	gl "github.com/go-gl/gl/v3.3-core/gl"
)

// VertexArray is a handle to a vertex array object.
type VertexArray uint32

// GenVertexArray allocates a vertex array object.
func GenVertexArray() (VertexArray, error) {
	var id uint32
	gl.GenVertexArrays(1, &id)
	if id == 0 {
		return 0, errors.New("vertex array allocation returned the zero handle")
	}
	return VertexArray(id), nil
}

// Bind makes the vertex array current.
func (a VertexArray) Bind() {
	gl.BindVertexArray(uint32(a))
}

// Delete releases the vertex array object. Deleting the zero handle is a no-op.
func (a VertexArray) Delete() {
	id := uint32(a)
	gl.DeleteVertexArrays(1, &id)
}

// UnbindVertexArray clears the current vertex array binding.
func UnbindVertexArray() {
	gl.BindVertexArray(0)
}
