// Package glbackend implements core.Device on top of OpenGL 3.3 core.
// Every call must happen on the thread that owns the GL context.
package glbackend

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/pkg/errors"

	"github.com/hubastard/quadbatch/engine/colors"
	"github.com/hubastard/quadbatch/engine/core"
)

type Device struct {
	info core.GPUInfo
}

var _ core.Device = (*Device)(nil)

// NewDevice wraps the current GL context. gl.Init must already have been
// called, see platform.NewGLFWWindow.
func NewDevice() (*Device, error) {
	version := gl.GetString(gl.VERSION)
	if version == nil {
		return nil, errors.New("glbackend: no current OpenGL context")
	}
	d := &Device{info: core.GPUInfo{
		Vendor:   gl.GoStr(gl.GetString(gl.VENDOR)),
		Renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
		Version:  gl.GoStr(version),
	}}

	var units int32
	gl.GetIntegerv(gl.MAX_TEXTURE_IMAGE_UNITS, &units)
	core.Logger().Info("opengl device",
		"vendor", d.info.Vendor, "renderer", d.info.Renderer, "version", d.info.Version,
		"textureUnits", units)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	return d, nil
}

func (d *Device) Info() core.GPUInfo { return d.info }

func (d *Device) SetClearColor(c colors.Color) { gl.ClearColor(c[0], c[1], c[2], c[3]) }

func (d *Device) Clear() { gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT) }

func (d *Device) Resize(w, h int) { gl.Viewport(0, 0, int32(w), int32(h)) }

func (d *Device) DrawIndexed(va core.VertexArray, indexCount int) {
	v := va.(*VertexArray)
	gl.BindVertexArray(v.id)
	gl.DrawElements(gl.TRIANGLES, int32(indexCount), gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}
