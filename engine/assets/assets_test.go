package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/quadbatch/engine/enginetest"
)

// writePNG stores a 2x2 image: red/green on top, blue/white at the bottom.
func writePNG(t *testing.T, root, name string) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.NRGBA{255, 0, 0, 255})
	img.Set(1, 0, color.NRGBA{0, 255, 0, 255})
	img.Set(0, 1, color.NRGBA{0, 0, 255, 255})
	img.Set(1, 1, color.NRGBA{255, 255, 255, 255})

	dir := filepath.Join(root, "textures")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	f, err := os.Create(filepath.Join(dir, name))
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestLoadPNGFlipsRows(t *testing.T) {
	root := t.TempDir()
	writePNG(t, root, "quad.png")

	w, h, pix, err := NewLoader(root).LoadPNG("quad.png")
	require.NoError(t, err)
	assert.Equal(t, 2, w)
	assert.Equal(t, 2, h)
	assert.Equal(t, []byte{
		0, 0, 255, 255, 255, 255, 255, 255, // bottom row first
		255, 0, 0, 255, 0, 255, 0, 255,
	}, pix)
}

func TestLoadPNGErrors(t *testing.T) {
	root := t.TempDir()
	l := NewLoader(root)
	_, _, _, err := l.LoadPNG("missing.png")
	require.Error(t, err)
	assert.True(t, os.IsNotExist(errors.Cause(err)))

	require.NoError(t, os.MkdirAll(filepath.Join(root, "textures"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "textures", "bad.png"), []byte("not a png"), 0o644))
	_, _, _, err = l.LoadPNG("bad.png")
	assert.ErrorContains(t, err, "decode png")
}

func TestLoadTexture(t *testing.T) {
	root := t.TempDir()
	writePNG(t, root, "quad.png")
	dev := enginetest.NewDevice()
	l := NewLoader(root)

	tex, err := l.LoadTexture(dev, "quad.png")
	require.NoError(t, err)
	require.NotNil(t, tex)
	assert.Equal(t, 2, tex.Width())
	assert.Len(t, dev.Textures[0].Data, 16)

	tex, err = l.LoadTexture(dev, "nope.png")
	assert.Error(t, err)
	assert.Nil(t, tex)

	dev.Fail = map[string]bool{"texture": true}
	tex, err = l.LoadTexture(dev, "quad.png")
	assert.True(t, errors.Is(err, enginetest.ErrInjected))
	assert.Nil(t, tex)
}

func TestLoadShader(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "shaders")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "quad.vert"), []byte("vs"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "quad.frag"), []byte("fs"), 0o644))

	dev := enginetest.NewDevice()
	l := NewLoader(root)
	sh, err := l.LoadShader(dev, "quad.vert", "quad.frag")
	require.NoError(t, err)
	require.NotNil(t, sh)
	assert.Equal(t, "vs", dev.Shaders[0].VertexSource)
	assert.Equal(t, "fs", dev.Shaders[0].FragmentSource)

	_, err = l.LoadShader(dev, "quad.vert", "missing.frag")
	assert.ErrorContains(t, err, "missing.frag")

	dev.Fail = map[string]bool{"shader": true}
	_, err = l.LoadShader(dev, "quad.vert", "quad.frag")
	assert.True(t, errors.Is(err, enginetest.ErrInjected))
}
