package text

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/hubastard/quadbatch/engine/colors"
	"github.com/hubastard/quadbatch/engine/core"
	"github.com/hubastard/quadbatch/engine/enginetest"
	"github.com/hubastard/quadbatch/engine/gfx/renderer2d"
)

func parseMono(t *testing.T, dev *enginetest.Device) *FontAtlas {
	t.Helper()
	fa, err := ParseTTF(dev, gomono.TTF, 16)
	require.NoError(t, err)
	t.Cleanup(fa.Release)
	return fa
}

func TestParseTTF(t *testing.T) {
	dev := enginetest.NewDevice()
	fa := parseMono(t, dev)

	require.Len(t, dev.Textures, 1)
	atlas := dev.Textures[0]
	assert.Equal(t, fa.AtlasSize, atlas.Width())
	assert.Len(t, atlas.Data, fa.AtlasSize*fa.AtlasSize*4)

	assert.Greater(t, fa.Ascent, float32(0))
	assert.Less(t, fa.Descent, float32(0))
	assert.Greater(t, fa.LineHeight(), fa.Ascent)

	a, ok := fa.Glyphs['A']
	require.True(t, ok)
	assert.Greater(t, a.W, 0)
	assert.Greater(t, a.H, 0)
	assert.Equal(t, fa.Texture, a.Sub.Texture)
	// Y-up: the bottom-left corner samples the larger v
	assert.Greater(t, a.Sub.TexCoords[0][1], a.Sub.TexCoords[3][1])

	sp, ok := fa.Glyphs[' ']
	require.True(t, ok)
	assert.Zero(t, sp.W)
	assert.Nil(t, sp.Sub.Texture)

	_, ok = fa.Glyphs['é']
	assert.True(t, ok)

	// some coverage was rasterized
	var opaque int
	for i := 3; i < len(atlas.Data); i += 4 {
		if atlas.Data[i] != 0 {
			opaque++
		}
	}
	assert.Greater(t, opaque, 0)
}

func TestParseTTFErrors(t *testing.T) {
	dev := enginetest.NewDevice()
	_, err := ParseTTF(dev, []byte("not a font"), 16)
	assert.ErrorContains(t, err, "parse font")

	_, err = ParseTTF(dev, gomono.TTF, 0)
	assert.Error(t, err)

	dev.Fail = map[string]bool{"texture": true}
	_, err = ParseTTF(dev, gomono.TTF, 16)
	assert.ErrorIs(t, err, enginetest.ErrInjected)
}

func TestLoadTTF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mono.ttf")
	require.NoError(t, os.WriteFile(path, gomono.TTF, 0o644))

	fa, err := LoadTTF(enginetest.NewDevice(), path, 12)
	require.NoError(t, err)
	fa.Release()
	assert.Nil(t, fa.Texture)

	_, err = LoadTTF(enginetest.NewDevice(), filepath.Join(t.TempDir(), "none.ttf"), 12)
	assert.ErrorContains(t, err, "read font")
}

func TestMeasureText(t *testing.T) {
	fa := parseMono(t, enginetest.NewDevice())
	adv := fa.Glyphs['a'].Advance

	w, h := MeasureText(fa, "abc", 1)
	assert.InDelta(t, 3*adv, w, 1e-4)
	assert.InDelta(t, fa.LineHeight(), h, 1e-4)

	w, h = MeasureText(fa, "ab\nabcd", 0.5)
	assert.InDelta(t, 2*adv, w, 1e-4)
	assert.InDelta(t, fa.LineHeight(), h, 1e-4)

	// runes outside the atlas advance like a space
	w, _ = MeasureText(fa, "a世", 1)
	assert.InDelta(t, adv+fa.Glyphs[' '].Advance, w, 1e-4)
}

func TestDrawText(t *testing.T) {
	dev := enginetest.NewDevice()
	fa := parseMono(t, dev)

	r := renderer2d.New(dev, core.RendererConfig{MaxQuads: 64, DisableCulling: true})
	require.NoError(t, r.Init())
	r.BeginScene(enginetest.Camera{VP: mgl32.Ident4()}, enginetest.NewShader())
	DrawText(r, fa, mgl32.Vec3{0, 0, 0}, 0.01, "Hi there\nok", colors.Yellow)
	r.EndScene()

	// spaces and newlines emit nothing; every glyph shares the atlas slot
	assert.Equal(t, uint32(9), r.Stats().QuadCount)
	require.Len(t, dev.Draws, 1)
	assert.Len(t, dev.Draws[0].Slots, 2)
	assert.Equal(t, fa.Texture.ID(), dev.Draws[0].Slots[1])
}
