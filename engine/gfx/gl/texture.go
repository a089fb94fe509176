package glbackend

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/pkg/errors"

	"github.com/hubastard/quadbatch/engine/core"
)

// Texture is an RGBA8 GL_TEXTURE_2D. Linear minification, nearest
// magnification and repeat wrapping so tiling factors work.
type Texture struct {
	id   uint32
	w, h int
}

func (d *Device) CreateTexture(width, height int) (core.Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("glbackend: invalid texture size %dx%d", width, height)
	}
	t := &Texture{w: width, h: height}
	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t, nil
}

func (t *Texture) ID() core.TextureID { return core.TextureID(t.id) }
func (t *Texture) Width() int         { return t.w }
func (t *Texture) Height() int        { return t.h }

func (t *Texture) Bind(slot int) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(slot))
	gl.BindTexture(gl.TEXTURE_2D, t.id)
}

// SetData uploads tightly packed RGBA8 rows, bottom row first. A size
// mismatch leaves the texture untouched.
func (t *Texture) SetData(data []byte) error {
	if err := core.CheckTextureData(t.w, t.h, 4, len(data)); err != nil {
		core.Logger().Warn("texture upload rejected", "texture", t.id, "err", err)
		return err
	}
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(t.w), int32(t.h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(data))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return nil
}

func (t *Texture) Release() {
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}
