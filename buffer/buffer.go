package buffer

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"
)

// DrawMode is the primitive type passed to the draw calls.
type DrawMode uint32

const (
	Points        DrawMode = gl.POINTS
	Lines         DrawMode = gl.LINES
	LineStrip     DrawMode = gl.LINE_STRIP
	Triangles     DrawMode = gl.TRIANGLES
	TriangleStrip DrawMode = gl.TRIANGLE_STRIP
	TriangleFan   DrawMode = gl.TRIANGLE_FAN
)

// Attribute describes how one vertex attribute is read from its buffer.
type Attribute struct {
	Index      uint32
	Size       int32
	Type       uint32
	Normalized bool
	Stride     int32
	Offset     uintptr
}

// Float3 is a tightly packed vec3 attribute at the given location.
func Float3(index uint32) Attribute {
	return Attribute{Index: index, Size: 3, Type: gl.FLOAT, Stride: 3 * 4}
}

// Buffer is a single GL buffer object.
type Buffer struct {
	id     uint32
	target uint32
}

func newBuffer(target uint32) *Buffer {
	b := &Buffer{target: target}
	gl.GenBuffers(1, &b.id)
	return b
}

func (b *Buffer) Bind() {
	gl.BindBuffer(b.target, b.id)
}

// Data uploads size bytes from data with STATIC_DRAW usage.
func (b *Buffer) Data(size int, data interface{}) {
	b.Bind()
	gl.BufferData(b.target, size, gl.Ptr(data), gl.STATIC_DRAW)
}

func (b *Buffer) Destroy() {
	gl.DeleteBuffers(1, &b.id)
	b.id = 0
}

// Array is a vertex array object with one vertex buffer per attribute group and an element buffer.
// Attributes in layout[i] are sourced from buffer i.
type Array struct {
	vao      uint32
	buffers  []*Buffer
	elements *Buffer
}

// NewArray creates the VAO and its buffers and records the attribute layout.
func NewArray(layout [][]Attribute) (*Array, error) {
	if len(layout) == 0 {
		return nil, fmt.Errorf("buffer array needs at least one attribute group")
	}

	a := &Array{}
	gl.GenVertexArrays(1, &a.vao)
	gl.BindVertexArray(a.vao)

	for i, group := range layout {
		if len(group) == 0 {
			a.Unbind()
			a.Destroy()
			return nil, fmt.Errorf("attribute group %d is empty", i)
		}
		vbo := newBuffer(gl.ARRAY_BUFFER)
		vbo.Bind()
		for _, attr := range group {
			gl.VertexAttribPointerWithOffset(attr.Index, attr.Size, attr.Type, attr.Normalized, attr.Stride, attr.Offset)
			gl.EnableVertexAttribArray(attr.Index)
		}
		a.buffers = append(a.buffers, vbo)
	}

	// The element binding is part of VAO state, so it is bound while the VAO is.
	a.elements = newBuffer(gl.ELEMENT_ARRAY_BUFFER)
	a.elements.Bind()

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return a, nil
}

func (a *Array) Bind() {
	gl.BindVertexArray(a.vao)
}

func (a *Array) Unbind() {
	gl.BindVertexArray(0)
}

// BufferData uploads float data into vertex buffer i.
func (a *Array) BufferData(i int, data []float32) error {
	if i < 0 || i >= len(a.buffers) {
		return fmt.Errorf("buffer index %d out of range (%d buffers)", i, len(a.buffers))
	}
	if len(data) == 0 {
		return fmt.Errorf("no data for buffer %d", i)
	}
	a.buffers[i].Data(len(data)*4, data)
	return nil
}

// BufferElements uploads the index data.
func (a *Array) BufferElements(indices []uint32) error {
	if len(indices) == 0 {
		return fmt.Errorf("no index data")
	}
	a.Bind()
	a.elements.Data(len(indices)*4, indices)
	return nil
}

// DrawArrays draws count vertices starting at first, in buffer order.
func (a *Array) DrawArrays(mode DrawMode, first, count int32) {
	a.Bind()
	gl.DrawArrays(uint32(mode), first, count)
}

// DrawElements draws count indices of the given type starting at byte offset into the element buffer.
func (a *Array) DrawElements(mode DrawMode, count int32, xtype uint32, offset int) {
	a.Bind()
	gl.DrawElements(uint32(mode), count, xtype, gl.PtrOffset(offset))
}

func (a *Array) Destroy() {
	for _, b := range a.buffers {
		b.Destroy()
	}
	if a.elements != nil {
		a.elements.Destroy()
	}
	gl.DeleteVertexArrays(1, &a.vao)
	a.vao = 0
}
