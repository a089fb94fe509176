package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/quadbatch/engine/core"
	"github.com/hubastard/quadbatch/engine/enginetest"
)

func runHeadless(t *testing.T, app *App, dev *enginetest.Device, frames int) *enginetest.Window {
	t.Helper()
	win := &enginetest.Window{Frames: frames, W: 640, H: 360}
	err := core.Run(app, app.cfg,
		func(core.Config) (core.Window, error) { return win, nil },
		func(core.Window, core.Config) (core.Device, error) { return dev, nil },
	)
	require.NoError(t, err)
	return win
}

func writeTexture(t *testing.T, root, name string, w, h int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{uint8(x * 4), uint8(y * 4), 128, 255})
		}
	}
	dir := filepath.Join(root, "textures")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	f, err := os.Create(filepath.Join(dir, name))
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestSandboxHeadless(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.AssetRoot = t.TempDir() // no textures: magenta fallback
	app := NewApp(cfg)
	dev := enginetest.NewDevice()

	win := runHeadless(t, app, dev, 3)
	require.NoError(t, app.err)
	assert.Equal(t, 3, win.Swaps)

	// built-in shader with the full sampler array
	require.Len(t, dev.Shaders, 1)
	assert.Contains(t, dev.Shaders[0].FragmentSource, "u_Textures[32]")
	assert.True(t, dev.Shaders[0].Released)

	// one scene for the demo and one for the overlay per frame
	assert.GreaterOrEqual(t, len(dev.Draws), 6)
	assert.Greater(t, app.stats.QuadCount, uint32(100))
	assert.GreaterOrEqual(t, app.stats.DrawCalls, uint32(2))
	// the demo grid is mostly off screen at zoom 1
	assert.Less(t, app.stats.QuadCount, uint32(10000))

	assert.Len(t, app.prof.Scopes(), 2)
	assert.True(t, dev.VertexBuffers[0].Released)
}

func TestSandboxTextures(t *testing.T) {
	root := t.TempDir()
	writeTexture(t, root, "checkerboard.png", 8, 8)
	writeTexture(t, root, "spritesheet.png", 64, 32)

	cfg := core.DefaultConfig()
	cfg.AssetRoot = root
	app := NewApp(cfg)
	dev := enginetest.NewDevice()
	runHeadless(t, app, dev, 2)
	require.NoError(t, app.err)

	var loaded []*enginetest.Texture
	for _, tex := range dev.Textures {
		if tex.Width() == 8 || tex.Width() == 64 {
			loaded = append(loaded, tex)
		}
	}
	require.Len(t, loaded, 2)
	for _, tex := range loaded {
		assert.True(t, tex.Released)
	}
	assert.Equal(t, float32(0.25), app.layer.sprite.TexCoords[0][0])
	assert.Equal(t, float32(0.5), app.layer.sprite.TexCoords[0][1])
}

func TestSandboxStartFailure(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.AssetRoot = t.TempDir()
	app := NewApp(cfg)
	dev := enginetest.NewDevice()
	dev.Fail = map[string]bool{"shader": true}

	runHeadless(t, app, dev, 5)
	assert.ErrorIs(t, app.err, enginetest.ErrInjected)
	assert.Nil(t, app.layer)
	assert.Empty(t, dev.Draws)
}
