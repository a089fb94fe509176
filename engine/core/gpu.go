package core

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/hubastard/quadbatch/engine/colors"
)

// ErrDataSize is returned when a texture upload does not match the texture
// dimensions.
var ErrDataSize = errors.New("data size does not match texture size")

// Device is the GPU buffer/draw submission layer.
type Device interface {
	// CreateVertexBuffer allocates a dynamic vertex buffer of size bytes.
	CreateVertexBuffer(size int) (VertexBuffer, error)
	// CreateIndexBuffer uploads a static index buffer.
	CreateIndexBuffer(indices []uint32) (IndexBuffer, error)
	// CreateVertexArray binds vb (described by layout) and ib together.
	CreateVertexArray(vb VertexBuffer, layout VertexLayout, ib IndexBuffer) (VertexArray, error)
	// CreateTexture allocates an empty RGBA8 texture.
	CreateTexture(width, height int) (Texture, error)
	CreateShader(vertexSrc, fragmentSrc string) (Shader, error)

	// DrawIndexed submits indexCount elements of va as triangles.
	DrawIndexed(va VertexArray, indexCount int)

	SetClearColor(c colors.Color)
	Clear()
	Resize(w, h int)
	Info() GPUInfo
}

type GPUInfo struct {
	Vendor   string
	Renderer string
	Version  string
}

type VertexBuffer interface {
	// SetData uploads data starting at offset 0.
	SetData(data []byte) error
	Size() int
	Release()
}

type IndexBuffer interface {
	Count() int
	Release()
}

type VertexArray interface {
	Release()
}

// TextureID identifies the underlying GPU resource. Two handles that refer to
// the same resource report the same ID.
type TextureID uint32

type Texture interface {
	ID() TextureID
	Width() int
	Height() int
	Bind(slot int)
	// SetData replaces the texture contents. len(data) must be
	// Width*Height*4, otherwise ErrDataSize is returned and nothing is written.
	SetData(data []byte) error
	Release()
}

type Shader interface {
	Bind()
	SetInt(name string, v int32)
	SetIntArray(name string, v []int32)
	SetFloat4(name string, v [4]float32)
	SetMat4(name string, m mgl32.Mat4)
	Release()
}

// HasViewProjection is implemented by anything that can feed a renderer a
// column-major view-projection matrix.
type HasViewProjection interface {
	ViewProjection() mgl32.Mat4
}

// CheckTextureData validates an upload of n bytes against a w x h texture
// with bpp bytes per pixel.
func CheckTextureData(w, h, bpp, n int) error {
	if want := w * h * bpp; n != want {
		return errors.Wrapf(ErrDataSize, "got %d bytes, want %d (%dx%d, %d bpp)", n, want, w, h, bpp)
	}
	return nil
}

// ShaderDataType describes a single vertex attribute type.
type ShaderDataType int

const (
	ShaderDataNone ShaderDataType = iota
	Float
	Float2
	Float3
	Float4
	Int
	Int2
	Int3
	Int4
)

// ComponentCount returns the number of scalar components.
func (t ShaderDataType) ComponentCount() int {
	switch t {
	case Float, Int:
		return 1
	case Float2, Int2:
		return 2
	case Float3, Int3:
		return 3
	case Float4, Int4:
		return 4
	}
	return 0
}

// Size returns the attribute size in bytes.
func (t ShaderDataType) Size() int { return t.ComponentCount() * 4 }

func (t ShaderDataType) IsInteger() bool { return t >= Int && t <= Int4 }

type VertexAttrib struct {
	Name       string
	Type       ShaderDataType
	Location   uint32
	Offset     int
	Normalized bool
}

type VertexLayout struct {
	Stride     int
	Attributes []VertexAttrib
}

// NewVertexLayout assigns locations in declaration order and packs offsets
// tightly.
func NewVertexLayout(attrs ...VertexAttrib) VertexLayout {
	l := VertexLayout{Attributes: make([]VertexAttrib, len(attrs))}
	for i, a := range attrs {
		a.Location = uint32(i)
		a.Offset = l.Stride
		l.Stride += a.Type.Size()
		l.Attributes[i] = a
	}
	return l
}
