package renderer2d

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/hubastard/quadbatch/engine/colors"
	"github.com/hubastard/quadbatch/engine/core"
)

// SubTexture is a UV sub-rect of a texture, typically a sprite-sheet cell.
// TexCoords follow the quad corner order: bottom-left, bottom-right,
// top-right, top-left.
type SubTexture struct {
	Texture   core.Texture
	TexCoords [vertsPerQuad]mgl32.Vec2
}

// NewSubTexture spans the UV rectangle min..max. min may be greater than max
// on either axis to flip the image.
func NewSubTexture(tex core.Texture, min, max mgl32.Vec2) SubTexture {
	return SubTexture{
		Texture: tex,
		TexCoords: [vertsPerQuad]mgl32.Vec2{
			{min[0], min[1]},
			{max[0], min[1]},
			{max[0], max[1]},
			{min[0], max[1]},
		},
	}
}

// SubTextureFromCoords selects cell coords of a grid of cellSize pixels,
// spanning spriteSize cells.
func SubTextureFromCoords(tex core.Texture, coords, cellSize, spriteSize mgl32.Vec2) SubTexture {
	w, h := float32(tex.Width()), float32(tex.Height())
	min := mgl32.Vec2{coords[0] * cellSize[0] / w, coords[1] * cellSize[1] / h}
	max := mgl32.Vec2{
		(coords[0] + spriteSize[0]) * cellSize[0] / w,
		(coords[1] + spriteSize[1]) * cellSize[1] / h,
	}
	return NewSubTexture(tex, min, max)
}

// SubTextureFromPixels selects the pixel rectangle (x, y, w, h) of tex.
func SubTextureFromPixels(tex core.Texture, x, y, w, h int) SubTexture {
	tw, th := float32(tex.Width()), float32(tex.Height())
	return NewSubTexture(tex,
		mgl32.Vec2{float32(x) / tw, float32(y) / th},
		mgl32.Vec2{float32(x+w) / tw, float32(y+h) / th},
	)
}

// DrawSubTexturedQuad draws a sub-texture; a nil Texture falls back like
// DrawTexturedQuad.
func (r *Renderer2D) DrawSubTexturedQuad(pos mgl32.Vec3, size mgl32.Vec2, rotation float32, sub SubTexture, tint colors.Color) {
	r.drawTextured("DrawSubTexturedQuad", pos, size, rotation, sub.Texture, &sub.TexCoords, 1, tint)
}
