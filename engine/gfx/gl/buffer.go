package glbackend

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/pkg/errors"

	"github.com/hubastard/quadbatch/engine/core"
)

// VertexBuffer is a dynamic GL_ARRAY_BUFFER of fixed size.
type VertexBuffer struct {
	id   uint32
	size int
}

func (d *Device) CreateVertexBuffer(size int) (core.VertexBuffer, error) {
	if size <= 0 {
		return nil, errors.Errorf("glbackend: invalid vertex buffer size %d", size)
	}
	vb := &VertexBuffer{size: size}
	gl.GenBuffers(1, &vb.id)
	gl.BindBuffer(gl.ARRAY_BUFFER, vb.id)
	gl.BufferData(gl.ARRAY_BUFFER, size, nil, gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return vb, nil
}

func (vb *VertexBuffer) SetData(data []byte) error {
	if len(data) > vb.size {
		return errors.Errorf("glbackend: vertex upload of %d bytes exceeds buffer of %d", len(data), vb.size)
	}
	if len(data) == 0 {
		return nil
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, vb.id)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(data), gl.Ptr(data))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return nil
}

func (vb *VertexBuffer) Size() int { return vb.size }

func (vb *VertexBuffer) Release() {
	if vb.id != 0 {
		gl.DeleteBuffers(1, &vb.id)
		vb.id = 0
	}
}

// IndexBuffer is a static GL_ELEMENT_ARRAY_BUFFER of uint32 indices.
type IndexBuffer struct {
	id    uint32
	count int
}

func (d *Device) CreateIndexBuffer(indices []uint32) (core.IndexBuffer, error) {
	if len(indices) == 0 {
		return nil, errors.New("glbackend: empty index buffer")
	}
	ib := &IndexBuffer{count: len(indices)}
	gl.GenBuffers(1, &ib.id)
	// bound through ARRAY_BUFFER so no VAO is required yet
	gl.BindBuffer(gl.ARRAY_BUFFER, ib.id)
	gl.BufferData(gl.ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return ib, nil
}

func (ib *IndexBuffer) Count() int { return ib.count }

func (ib *IndexBuffer) Release() {
	if ib.id != 0 {
		gl.DeleteBuffers(1, &ib.id)
		ib.id = 0
	}
}

// VertexArray records the attribute layout of a vertex buffer and the index
// buffer used to draw it.
type VertexArray struct {
	id uint32
}

func (d *Device) CreateVertexArray(vb core.VertexBuffer, layout core.VertexLayout, ib core.IndexBuffer) (core.VertexArray, error) {
	glvb, ok := vb.(*VertexBuffer)
	if !ok {
		return nil, errors.Errorf("glbackend: foreign vertex buffer %T", vb)
	}
	glib, ok := ib.(*IndexBuffer)
	if !ok {
		return nil, errors.Errorf("glbackend: foreign index buffer %T", ib)
	}
	if len(layout.Attributes) == 0 {
		return nil, errors.New("glbackend: vertex layout has no attributes")
	}

	va := &VertexArray{}
	gl.GenVertexArrays(1, &va.id)
	gl.BindVertexArray(va.id)
	gl.BindBuffer(gl.ARRAY_BUFFER, glvb.id)

	stride := int32(layout.Stride)
	for _, a := range layout.Attributes {
		gl.EnableVertexAttribArray(a.Location)
		n := int32(a.Type.ComponentCount())
		if a.Type.IsInteger() {
			gl.VertexAttribIPointer(a.Location, n, gl.INT, stride, gl.PtrOffset(a.Offset))
			continue
		}
		gl.VertexAttribPointerWithOffset(a.Location, n, gl.FLOAT, a.Normalized, stride, uintptr(a.Offset))
	}

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, glib.id)
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return va, nil
}

func (va *VertexArray) Release() {
	if va.id != 0 {
		gl.DeleteVertexArrays(1, &va.id)
		va.id = 0
	}
}
