package renderer2d

import "github.com/hubastard/quadbatch/engine/core"

// MaxTextureSlots is the number of samplers in u_Textures.
const MaxTextureSlots = 32

// whiteSlot always holds the 1x1 white texture.
const whiteSlot = 0

// TextureSlotTable maps the textures of the current batch to sampler units.
// Textures are borrowed: the table never releases them.
type TextureSlotTable struct {
	slots  [MaxTextureSlots]core.Texture
	cursor int
}

func newTextureSlotTable(white core.Texture) *TextureSlotTable {
	t := &TextureSlotTable{}
	t.slots[whiteSlot] = white
	t.cursor = 1
	return t
}

// Reset drops every registered texture except the white one.
func (t *TextureSlotTable) Reset() {
	for i := 1; i < t.cursor; i++ {
		t.slots[i] = nil
	}
	t.cursor = 1
}

// Len returns the number of occupied slots, white included.
func (t *TextureSlotTable) Len() int { return t.cursor }

func (t *TextureSlotTable) Full() bool { return t.cursor >= MaxTextureSlots }

// Find returns the slot holding the same GPU resource as tex.
func (t *TextureSlotTable) Find(tex core.Texture) (int, bool) {
	id := tex.ID()
	for i := 1; i < t.cursor; i++ {
		if t.slots[i].ID() == id {
			return i, true
		}
	}
	return 0, false
}

// Register stores tex in the next free slot. The table must not be full.
func (t *TextureSlotTable) Register(tex core.Texture) int {
	if t.Full() {
		panic("renderer2d: texture slot table overflow")
	}
	i := t.cursor
	t.slots[i] = tex
	t.cursor++
	return i
}

// At returns the texture in slot i, or nil.
func (t *TextureSlotTable) At(i int) core.Texture { return t.slots[i] }

// BindAll binds every occupied slot to its sampler unit.
func (t *TextureSlotTable) BindAll() {
	for i := 0; i < t.cursor; i++ {
		t.slots[i].Bind(i)
	}
}

func (t *TextureSlotTable) clear() {
	t.slots = [MaxTextureSlots]core.Texture{}
	t.cursor = 0
}
