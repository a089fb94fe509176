package text

import (
	"image"
	"image/draw"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/hubastard/quadbatch/engine/core"
	"github.com/hubastard/quadbatch/engine/gfx/renderer2d"
)

const (
	atlasPadding = 2
	atlasMinSize = 256
	atlasMaxSize = 4096
	atlasFaceDPI = 72
)

type Glyph struct {
	Rune     rune
	Advance  float32 // pixels
	BearingX float32 // left bearing in pixels
	BearingY float32 // top bearing in pixels (distance from baseline to glyph top)
	W, H     int     // glyph bitmap size
	// Sub covers the glyph bitmap in the atlas, oriented for Y-up quads.
	// Zero for blank glyphs such as space.
	Sub renderer2d.SubTexture
}

// FontAtlas is a single texture holding white glyphs with alpha coverage, so
// a whole string fits in one texture slot and tints with the quad color.
type FontAtlas struct {
	SizePx                   float32
	Ascent, Descent, LineGap float32 // Descent is negative
	Glyphs                   map[rune]Glyph
	Kern                     map[[2]rune]float32
	Texture                  core.Texture
	AtlasSize                int

	face font.Face
}

// LineHeight is the baseline-to-baseline distance in pixels.
func (fa *FontAtlas) LineHeight() float32 { return fa.Ascent - fa.Descent + fa.LineGap }

// Release frees the atlas texture and the font face.
func (fa *FontAtlas) Release() {
	if fa == nil {
		return
	}
	if fa.Texture != nil {
		fa.Texture.Release()
		fa.Texture = nil
	}
	if fa.face != nil {
		_ = fa.face.Close()
		fa.face = nil
	}
}

// atlasRunes is printable ASCII plus Latin-1.
func atlasRunes() []rune {
	var runes []rune
	for r := rune(32); r <= 126; r++ {
		runes = append(runes, r)
	}
	for r := rune(160); r <= 255; r++ {
		runes = append(runes, r)
	}
	return runes
}

// LoadTTF reads a TrueType/OpenType file and builds its atlas.
func LoadTTF(dev core.Device, path string, sizePx float32) (*FontAtlas, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read font")
	}
	fa, err := ParseTTF(dev, data, sizePx)
	if err != nil {
		return nil, errors.Wrapf(err, "font %q", path)
	}
	return fa, nil
}

// ParseTTF rasterizes the atlas runes at sizePx and uploads the atlas as an
// RGBA texture.
func ParseTTF(dev core.Device, data []byte, sizePx float32) (*FontAtlas, error) {
	if sizePx <= 0 {
		return nil, errors.Errorf("invalid font size %v", sizePx)
	}
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, errors.Wrap(err, "parse font")
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: float64(sizePx), DPI: atlasFaceDPI, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, errors.Wrap(err, "new face")
	}
	fa, err := buildAtlas(dev, face, sizePx)
	if err != nil {
		_ = face.Close()
		return nil, err
	}
	return fa, nil
}

type glyphMetrics struct {
	r      rune
	w, h   int
	adv    float32
	bx, by float32
}

func buildAtlas(dev core.Device, face font.Face, sizePx float32) (*FontAtlas, error) {
	// Metrics in pixels
	m := face.Metrics()
	ascent := float32(m.Ascent.Round())
	descent := float32(-m.Descent.Round())
	lineGap := float32(m.Height.Round()) - ascent + descent

	runes := atlasRunes()
	measure := make([]glyphMetrics, 0, len(runes))
	for _, r := range runes {
		br, adv, ok := face.GlyphBounds(r)
		if !ok {
			continue
		}
		measure = append(measure, glyphMetrics{
			r:   r,
			w:   (br.Max.X - br.Min.X).Ceil(),
			h:   (br.Max.Y - br.Min.Y).Ceil(),
			adv: float32(adv.Round()),
			bx:  float32(br.Min.X.Floor()),
			by:  float32(-br.Min.Y.Floor()), // distance from baseline to top
		})
	}

	size, pos, err := packShelves(measure)
	if err != nil {
		return nil, err
	}

	// White glyphs with alpha coverage on a transparent background
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	drawer := &font.Drawer{Dst: dst, Src: image.White, Face: face}
	for _, g := range measure {
		p, ok := pos[g.r]
		if !ok {
			continue
		}
		// Dot is the baseline origin; clip to the glyph cell so neighbors
		// never bleed into each other.
		cell := image.Rect(p.X, p.Y, p.X+g.w, p.Y+g.h)
		drawer.Dst = clip{dst, cell}
		drawer.Dot = fixed.P(p.X-int(g.bx), p.Y+int(g.by))
		drawer.DrawString(string(g.r))
	}

	tex, err := dev.CreateTexture(size, size)
	if err != nil {
		return nil, errors.Wrap(err, "create atlas texture")
	}
	// Row 0 of the image lands at v=0, so glyph tops have the smaller v.
	if err := tex.SetData(dst.Pix); err != nil {
		tex.Release()
		return nil, errors.Wrap(err, "upload atlas")
	}

	fs := float32(size)
	glyphs := make(map[rune]Glyph, len(measure))
	for _, g := range measure {
		gl := Glyph{
			Rune: g.r, Advance: g.adv,
			BearingX: g.bx, BearingY: g.by,
			W: g.w, H: g.h,
		}
		if p, ok := pos[g.r]; ok {
			gl.Sub = renderer2d.NewSubTexture(tex,
				mgl32.Vec2{float32(p.X) / fs, float32(p.Y+g.h) / fs},
				mgl32.Vec2{float32(p.X+g.w) / fs, float32(p.Y) / fs},
			)
		}
		glyphs[g.r] = gl
	}

	kern := make(map[[2]rune]float32)
	for _, a := range measure {
		for _, b := range measure {
			if dx := face.Kern(a.r, b.r); dx != 0 {
				kern[[2]rune{a.r, b.r}] = float32(dx.Round())
			}
		}
	}

	core.Logger().Debug("font atlas built",
		"sizePx", sizePx, "glyphs", len(glyphs), "atlas", size, "kernPairs", len(kern))

	return &FontAtlas{
		SizePx: sizePx,
		Ascent: ascent, Descent: descent, LineGap: lineGap,
		Glyphs:    glyphs,
		Kern:      kern,
		Texture:   tex,
		AtlasSize: size,
		face:      face,
	}, nil
}

// packShelves places the non-empty glyphs in rows, doubling the square atlas
// until everything fits.
func packShelves(measure []glyphMetrics) (int, map[rune]image.Point, error) {
	for size := atlasMinSize; size <= atlasMaxSize; size *= 2 {
		if pos, ok := tryPack(measure, size); ok {
			return size, pos, nil
		}
	}
	return 0, nil, errors.Errorf("font atlas too large (>%d)", atlasMaxSize)
}

func tryPack(measure []glyphMetrics, size int) (map[rune]image.Point, bool) {
	x, y, rowH := atlasPadding, atlasPadding, 0
	pos := make(map[rune]image.Point, len(measure))
	for _, g := range measure {
		if g.w == 0 || g.h == 0 {
			continue
		}
		if g.w+atlasPadding*2 > size || g.h+atlasPadding*2 > size {
			return nil, false
		}
		if x+g.w+atlasPadding > size {
			x = atlasPadding
			y += rowH + atlasPadding
			rowH = 0
		}
		if y+g.h+atlasPadding > size {
			return nil, false
		}
		pos[g.r] = image.Pt(x, y)
		x += g.w + atlasPadding
		if g.h > rowH {
			rowH = g.h
		}
	}
	return pos, true
}

// clip restricts drawing to r.
type clip struct {
	*image.RGBA
	r image.Rectangle
}

func (c clip) Bounds() image.Rectangle { return c.r.Intersect(c.RGBA.Bounds()) }

var _ draw.Image = clip{}
