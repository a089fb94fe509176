package text

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/hubastard/quadbatch/engine/colors"
	"github.com/hubastard/quadbatch/engine/gfx/renderer2d"
)

// DrawText draws s with its top-left corner at pos in a Y-up world. scale is
// the world size of one font pixel. Must be called inside a scene.
func DrawText(r2d *renderer2d.Renderer2D, font *FontAtlas, pos mgl32.Vec3, scale float32, s string, color colors.Color) {
	penX := pos[0]
	baseY := pos[1] - font.Ascent*scale
	lineH := font.LineHeight() * scale
	var prev rune = -1

	for _, r := range s {
		if r == '\n' {
			penX = pos[0]
			baseY -= lineH
			prev = -1
			continue
		}

		g, ok := font.Glyphs[r]
		if !ok {
			penX += font.spaceAdvance() * scale
			prev = r
			continue
		}
		if prev >= 0 {
			penX += font.Kern[[2]rune{prev, r}] * scale
		}

		if g.W > 0 && g.H > 0 {
			w, h := float32(g.W)*scale, float32(g.H)*scale
			left := penX + g.BearingX*scale
			top := baseY + g.BearingY*scale
			center := mgl32.Vec3{left + w*0.5, top - h*0.5, pos[2]}
			r2d.DrawSubTexturedQuad(center, mgl32.Vec2{w, h}, 0, g.Sub, color)
		}

		penX += g.Advance * scale
		prev = r
	}
}

// MeasureText returns the size of the block DrawText would cover at scale.
func MeasureText(font *FontAtlas, s string, scale float32) (width, height float32) {
	var lineW float32
	var prev rune = -1
	lineH := font.LineHeight()
	height = lineH

	for _, r := range s {
		if r == '\n' {
			if lineW > width {
				width = lineW
			}
			lineW = 0
			height += lineH
			prev = -1
			continue
		}

		g, ok := font.Glyphs[r]
		if !ok {
			lineW += font.spaceAdvance()
			prev = r
			continue
		}
		if prev >= 0 {
			lineW += font.Kern[[2]rune{prev, r}]
		}
		lineW += g.Advance
		prev = r
	}

	if lineW > width {
		width = lineW
	}
	return width * scale, height * scale
}

func (fa *FontAtlas) spaceAdvance() float32 {
	if sp, ok := fa.Glyphs[' ']; ok {
		return sp.Advance
	}
	return 0
}
