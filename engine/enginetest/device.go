// Package enginetest provides in-memory fakes of the GPU device, window and
// camera so renderer code can be exercised without a graphics context.
package enginetest

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/hubastard/quadbatch/engine/colors"
	"github.com/hubastard/quadbatch/engine/core"
)

// ErrInjected is returned by creation calls listed in Device.Fail.
var ErrInjected = errors.New("enginetest: injected failure")

// DrawCall records one DrawIndexed submission.
type DrawCall struct {
	IndexCount int
	// Bytes is the size of the last vertex upload before the draw.
	Bytes int
	// Slots holds the texture bound to each unit since the previous draw.
	Slots []core.TextureID
}

// Device is a recording core.Device.
type Device struct {
	VertexBuffers []*VertexBuffer
	IndexBuffers  []*IndexBuffer
	VertexArrays  []*VertexArray
	Textures      []*Texture
	Shaders       []*Shader
	Draws         []DrawCall

	ClearColor colors.Color
	Clears     int
	Viewport   [2]int

	// Fail names creation calls that should fail ("vertexbuffer",
	// "indexbuffer", "vertexarray", "texture", "shader").
	Fail map[string]bool

	nextID  core.TextureID
	pending []core.TextureID
	upload  int
}

var _ core.Device = (*Device)(nil)

func NewDevice() *Device { return &Device{} }

func (d *Device) fail(what string) error {
	if d.Fail[what] {
		return errors.Wrap(ErrInjected, what)
	}
	return nil
}

func (d *Device) CreateVertexBuffer(size int) (core.VertexBuffer, error) {
	if err := d.fail("vertexbuffer"); err != nil {
		return nil, err
	}
	vb := &VertexBuffer{dev: d, size: size}
	d.VertexBuffers = append(d.VertexBuffers, vb)
	return vb, nil
}

func (d *Device) CreateIndexBuffer(indices []uint32) (core.IndexBuffer, error) {
	if err := d.fail("indexbuffer"); err != nil {
		return nil, err
	}
	ib := &IndexBuffer{Indices: append([]uint32(nil), indices...)}
	d.IndexBuffers = append(d.IndexBuffers, ib)
	return ib, nil
}

func (d *Device) CreateVertexArray(vb core.VertexBuffer, layout core.VertexLayout, ib core.IndexBuffer) (core.VertexArray, error) {
	if err := d.fail("vertexarray"); err != nil {
		return nil, err
	}
	va := &VertexArray{VertexBuffer: vb, Layout: layout, IndexBuffer: ib}
	d.VertexArrays = append(d.VertexArrays, va)
	return va, nil
}

func (d *Device) CreateTexture(width, height int) (core.Texture, error) {
	if err := d.fail("texture"); err != nil {
		return nil, err
	}
	return d.NewTexture(width, height), nil
}

// NewTexture creates a texture with a fresh ID.
func (d *Device) NewTexture(width, height int) *Texture {
	d.nextID++
	t := &Texture{dev: d, id: d.nextID, w: width, h: height}
	d.Textures = append(d.Textures, t)
	return t
}

func (d *Device) CreateShader(vertexSrc, fragmentSrc string) (core.Shader, error) {
	if err := d.fail("shader"); err != nil {
		return nil, err
	}
	s := NewShader()
	s.VertexSource, s.FragmentSource = vertexSrc, fragmentSrc
	d.Shaders = append(d.Shaders, s)
	return s, nil
}

func (d *Device) DrawIndexed(_ core.VertexArray, indexCount int) {
	d.Draws = append(d.Draws, DrawCall{IndexCount: indexCount, Bytes: d.upload, Slots: d.pending})
	d.pending = nil
}

func (d *Device) SetClearColor(c colors.Color) { d.ClearColor = c }
func (d *Device) Clear()                       { d.Clears++ }
func (d *Device) Resize(w, h int)              { d.Viewport = [2]int{w, h} }

func (d *Device) Info() core.GPUInfo {
	return core.GPUInfo{Vendor: "enginetest", Renderer: "fake", Version: "0"}
}

// Uploads returns the total number of vertex uploads across all buffers.
func (d *Device) Uploads() int {
	n := 0
	for _, vb := range d.VertexBuffers {
		n += len(vb.Uploads)
	}
	return n
}

func (d *Device) bind(slot int, id core.TextureID) {
	for len(d.pending) <= slot {
		d.pending = append(d.pending, 0)
	}
	d.pending[slot] = id
}

type VertexBuffer struct {
	dev      *Device
	size     int
	Data     []byte
	Uploads  []int
	Released bool
}

func (vb *VertexBuffer) SetData(data []byte) error {
	if len(data) > vb.size {
		return errors.Errorf("enginetest: upload of %d bytes exceeds buffer of %d", len(data), vb.size)
	}
	vb.Data = append(vb.Data[:0], data...)
	vb.Uploads = append(vb.Uploads, len(data))
	vb.dev.upload = len(data)
	return nil
}

func (vb *VertexBuffer) Size() int { return vb.size }
func (vb *VertexBuffer) Release()  { vb.Released = true }

type IndexBuffer struct {
	Indices  []uint32
	Released bool
}

func (ib *IndexBuffer) Count() int { return len(ib.Indices) }
func (ib *IndexBuffer) Release()   { ib.Released = true }

type VertexArray struct {
	VertexBuffer core.VertexBuffer
	IndexBuffer  core.IndexBuffer
	Layout       core.VertexLayout
	Released     bool
}

func (va *VertexArray) Release() { va.Released = true }

type Texture struct {
	dev      *Device
	id       core.TextureID
	w, h     int
	Data     []byte
	Binds    []int
	Released bool
}

func (t *Texture) ID() core.TextureID { return t.id }
func (t *Texture) Width() int         { return t.w }
func (t *Texture) Height() int        { return t.h }

func (t *Texture) Bind(slot int) {
	t.Binds = append(t.Binds, slot)
	t.dev.bind(slot, t.id)
}

func (t *Texture) SetData(data []byte) error {
	if err := core.CheckTextureData(t.w, t.h, 4, len(data)); err != nil {
		return err
	}
	t.Data = append(t.Data[:0], data...)
	return nil
}

func (t *Texture) Release() { t.Released = true }

// Alias returns a distinct handle to the same underlying texture.
func (t *Texture) Alias() *Texture {
	return &Texture{dev: t.dev, id: t.id, w: t.w, h: t.h}
}

type Shader struct {
	VertexSource   string
	FragmentSource string
	Binds          int
	Ints           map[string]int32
	IntArrays      map[string][]int32
	Float4s        map[string][4]float32
	Mat4s          map[string]mgl32.Mat4
	Released       bool
}

func NewShader() *Shader {
	return &Shader{
		Ints:      map[string]int32{},
		IntArrays: map[string][]int32{},
		Float4s:   map[string][4]float32{},
		Mat4s:     map[string]mgl32.Mat4{},
	}
}

func (s *Shader) Bind()                               { s.Binds++ }
func (s *Shader) SetInt(name string, v int32)         { s.Ints[name] = v }
func (s *Shader) SetIntArray(name string, v []int32)  { s.IntArrays[name] = append([]int32(nil), v...) }
func (s *Shader) SetFloat4(name string, v [4]float32) { s.Float4s[name] = v }
func (s *Shader) SetMat4(name string, m mgl32.Mat4)   { s.Mat4s[name] = m }
func (s *Shader) Release()                            { s.Released = true }

// Camera is a fixed view-projection.
type Camera struct{ VP mgl32.Mat4 }

func (c Camera) ViewProjection() mgl32.Mat4 { return c.VP }
