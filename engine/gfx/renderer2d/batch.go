package renderer2d

import (
	"github.com/hubastard/quadbatch/engine/core"
)

// batchAccumulator owns the staging geometry and the texture slots of the
// batch being built and decides when it has to be flushed.
type batchAccumulator struct {
	dev        core.Device
	vb         core.VertexBuffer
	va         core.VertexArray
	geometry   *GeometryBuffer
	slots      *TextureSlotTable
	indexCount int
	maxIndices int
	stats      *Stats
}

// begin starts an empty batch.
func (b *batchAccumulator) begin() {
	b.geometry.Reset()
	b.indexCount = 0
	b.slots.Reset()
}

// end uploads and draws the batch if it holds any geometry.
func (b *batchAccumulator) end() {
	data := b.geometry.Bytes()
	if len(data) == 0 {
		return
	}
	if err := b.vb.SetData(data); err != nil {
		panic(err)
	}
	b.slots.BindAll()
	b.dev.DrawIndexed(b.va, b.indexCount)
	b.stats.DrawCalls++
}

func (b *batchAccumulator) flush() {
	b.end()
	b.begin()
}

// reserveQuad makes room for one more quad.
func (b *batchAccumulator) reserveQuad() {
	if b.indexCount >= b.maxIndices {
		b.flush()
	}
}

// textureIndex returns the slot of tex for the current batch, registering it
// (and flushing first when every slot is taken) if needed. Must be called
// before any vertex of the quad is written.
func (b *batchAccumulator) textureIndex(tex core.Texture) float32 {
	if i, ok := b.slots.Find(tex); ok {
		return float32(i)
	}
	if b.slots.Full() {
		b.flush()
	}
	return float32(b.slots.Register(tex))
}

func (b *batchAccumulator) appendQuad(q *[vertsPerQuad]Vertex) {
	b.geometry.AppendQuad(q)
	b.indexCount += indsPerQuad
}
