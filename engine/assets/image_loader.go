package assets

import (
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/hubastard/quadbatch/engine/core"
)

// Loader resolves asset names below Root: textures/ for images and
// shaders/ for GLSL sources.
type Loader struct {
	Root string
}

func NewLoader(root string) *Loader { return &Loader{Root: root} }

func (l *Loader) path(kind, name string) string { return filepath.Join(l.Root, kind, name) }

// LoadPNG returns width, height, and tightly packed RGBA8 pixels. Rows are
// flipped so the first row is the bottom of the image, matching OpenGL's
// bottom-left texture origin.
func (l *Loader) LoadPNG(name string) (w, h int, rgba []byte, err error) {
	path := l.path("textures", name)
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, nil, errors.Wrapf(err, "open %q", path)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return 0, 0, nil, errors.Wrapf(err, "decode png %q", path)
	}

	rgbaImg := imageToRGBA(img)
	w, h = rgbaImg.Bounds().Dx(), rgbaImg.Bounds().Dy()
	return w, h, flipRows(rgbaImg, w, h), nil
}

// LoadTexture decodes a PNG into a new device texture. On failure the error
// is logged and returned with a nil texture; renderers draw nil textures with
// the missing-texture color.
func (l *Loader) LoadTexture(dev core.Device, name string) (core.Texture, error) {
	tex, err := l.loadTexture(dev, name)
	if err != nil {
		core.Logger().Error("texture load failed", "name", name, "err", err)
		return nil, err
	}
	core.Logger().Debug("texture loaded", "name", name, "w", tex.Width(), "h", tex.Height())
	return tex, nil
}

func (l *Loader) loadTexture(dev core.Device, name string) (core.Texture, error) {
	w, h, pix, err := l.LoadPNG(name)
	if err != nil {
		return nil, err
	}
	tex, err := dev.CreateTexture(w, h)
	if err != nil {
		return nil, errors.Wrapf(err, "create texture %q", name)
	}
	if err := tex.SetData(pix); err != nil {
		tex.Release()
		return nil, errors.Wrapf(err, "upload texture %q", name)
	}
	return tex, nil
}

// flipRows repacks m into tight rows (stride == 4*w), bottom row first.
func flipRows(m *image.RGBA, w, h int) []byte {
	out := make([]byte, w*h*4)
	row := w * 4
	for y := 0; y < h; y++ {
		src := m.Pix[y*m.Stride : y*m.Stride+row]
		dst := (h - 1 - y) * row
		copy(out[dst:dst+row], src)
	}
	return out
}

func imageToRGBA(img image.Image) *image.RGBA {
	if m, ok := img.(*image.RGBA); ok && m.Rect.Min == (image.Point{}) {
		return m
	}
	dst := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
	return dst
}
