package renderer2d

import (
	"unsafe"

	"github.com/hubastard/quadbatch/engine/colors"
	"github.com/hubastard/quadbatch/engine/core"
)

const (
	vertsPerQuad = 4
	indsPerQuad  = 6
)

// Vertex is one corner of a quad as laid out in the GPU vertex buffer.
type Vertex struct {
	Position     [3]float32
	Color        colors.Color
	TexCoord     [2]float32
	TexIndex     float32 // integral; indexes u_Textures
	TilingFactor float32
}

const vertexSize = int(unsafe.Sizeof(Vertex{}))

var quadVertexLayout = core.NewVertexLayout(
	core.VertexAttrib{Name: "a_Position", Type: core.Float3},
	core.VertexAttrib{Name: "a_Color", Type: core.Float4},
	core.VertexAttrib{Name: "a_TexCoord", Type: core.Float2},
	core.VertexAttrib{Name: "a_TexIndex", Type: core.Float},
	core.VertexAttrib{Name: "a_TilingFactor", Type: core.Float},
)

// quadIndices returns the {0,1,2,2,3,0} pattern repeated for maxQuads quads.
func quadIndices(maxQuads int) []uint32 {
	inds := make([]uint32, maxQuads*indsPerQuad)
	for q, i := uint32(0), 0; i < len(inds); q, i = q+vertsPerQuad, i+indsPerQuad {
		inds[i+0] = q + 0
		inds[i+1] = q + 1
		inds[i+2] = q + 2
		inds[i+3] = q + 2
		inds[i+4] = q + 3
		inds[i+5] = q + 0
	}
	return inds
}

// GeometryBuffer is a fixed-capacity CPU staging area for quad vertices.
// It is allocated once and never grows; the cursor is reset per batch.
type GeometryBuffer struct {
	verts  []Vertex
	cursor int
}

func newGeometryBuffer(maxQuads int) *GeometryBuffer {
	return &GeometryBuffer{verts: make([]Vertex, maxQuads*vertsPerQuad)}
}

// Reset rewinds the write cursor to the buffer origin.
func (g *GeometryBuffer) Reset() { g.cursor = 0 }

// Len returns the number of vertices written since the last Reset.
func (g *GeometryBuffer) Len() int { return g.cursor }

// Cap returns the vertex capacity.
func (g *GeometryBuffer) Cap() int { return len(g.verts) }

// QuadsLeft reports how many more quads fit.
func (g *GeometryBuffer) QuadsLeft() int { return (len(g.verts) - g.cursor) / vertsPerQuad }

// AppendQuad copies the four corners of q at the cursor. Writing past the
// capacity panics; callers flush first.
func (g *GeometryBuffer) AppendQuad(q *[vertsPerQuad]Vertex) {
	copy(g.verts[g.cursor:g.cursor+vertsPerQuad], q[:])
	g.cursor += vertsPerQuad
}

// Vertices returns the written prefix. Valid until the next Reset.
func (g *GeometryBuffer) Vertices() []Vertex { return g.verts[:g.cursor] }

// Bytes views the written prefix as raw bytes for upload.
func (g *GeometryBuffer) Bytes() []byte {
	if g.cursor == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&g.verts[0])), g.cursor*vertexSize)
}
