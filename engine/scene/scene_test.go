package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/hubastard/quadbatch/engine/core"
)

const tol = 1e-5

func project(c *OrthoCamera2D, x, y float32) mgl32.Vec4 {
	return c.ViewProjection().Mul4x1(mgl32.Vec4{x, y, 0, 1})
}

func TestOrthoCameraProjection(t *testing.T) {
	c := NewOrthoCamera2D(2)
	p := project(c, 2, 1)
	assert.InDelta(t, 1, p[0], tol)
	assert.InDelta(t, 1, p[1], tol)

	c.SetZoom(2)
	p = project(c, 2, 1)
	assert.InDelta(t, 0.5, p[0], tol)
	assert.InDelta(t, 0.5, p[1], tol)

	l, r, b, top := c.Bounds()
	assert.Equal(t, []float32{-4, 4, -2, 2}, []float32{l, r, b, top})
}

func TestOrthoCameraView(t *testing.T) {
	c := NewOrthoCamera2D(1)
	c.SetPosition(mgl32.Vec3{1, 0, 0})
	p := project(c, 1, 0)
	assert.InDelta(t, 0, p[0], tol)
	assert.InDelta(t, 0, p[1], tol)

	c.SetPosition(mgl32.Vec3{})
	c.SetRotation(90)
	// rotating the camera left makes the world's +y appear on the right
	p = project(c, 0, 1)
	assert.InDelta(t, 1, p[0], tol)
	assert.InDelta(t, 0, p[1], tol)
}

func TestOrthoCameraZoomClamp(t *testing.T) {
	c := NewOrthoCamera2D(1)
	c.SetZoom(0)
	assert.Equal(t, float32(minCameraZoom), c.Zoom())
	c.SetProjection(1.5, 3)
	assert.Equal(t, float32(1.5), c.Aspect())
	assert.Equal(t, float32(3), c.Zoom())
}

func newEngine() *core.Engine { return &core.Engine{Input: core.NewInput()} }

func press(e *core.Engine, k core.Key) { e.Input.Handle(core.EventKey{Key: k, Down: true}) }

func TestControllerMove(t *testing.T) {
	e := newEngine()
	cam := NewOrthoCamera2D(1)
	cc := NewOrthoController2D(cam)

	press(e, core.KeyW)
	press(e, core.KeyD)
	cc.Update(e, 0.5)
	assert.InDelta(t, 2.5, cam.Position()[0], tol)
	assert.InDelta(t, 2.5, cam.Position()[1], tol)

	// movement scales with zoom
	cam.SetZoom(2)
	e.Input.Handle(core.EventKey{Key: core.KeyD, Down: false})
	cc.Update(e, 0.5)
	assert.InDelta(t, 2.5, cam.Position()[0], tol)
	assert.InDelta(t, 7.5, cam.Position()[1], tol)
}

func TestControllerRotateAndZoom(t *testing.T) {
	e := newEngine()
	cam := NewOrthoCamera2D(1)
	cc := NewOrthoController2D(cam)

	press(e, core.KeyQ)
	press(e, core.KeyLeftShift)
	cc.Update(e, 0.5)
	assert.InDelta(t, 45, cam.Rotation(), tol)
	assert.InDelta(t, 2, cam.Zoom(), tol)

	e.Input.Handle(core.EventScroll{Yoff: 2})
	e.Input.Handle(core.EventKey{Key: core.KeyLeftShift, Down: false})
	cc.Update(e, 0.5)
	assert.InDelta(t, 1.5, cam.Zoom(), tol)

	e.Input.Handle(core.EventKey{Key: core.KeyQ, Down: false})
	press(e, core.KeyLeftControl)
	cc.Update(e, 10)
	assert.Equal(t, cc.MinZoom, cam.Zoom())
	assert.InDelta(t, 90, cam.Rotation(), tol)
}

func TestControllerResize(t *testing.T) {
	cam := NewOrthoCamera2D(1)
	cc := NewOrthoController2D(cam)
	assert.False(t, cc.HandleEvent(core.EventResize{W: 1280, H: 720}))
	assert.InDelta(t, 1280.0/720.0, cam.Aspect(), tol)

	// minimized windows keep the last aspect
	cc.HandleEvent(core.EventResize{W: 0, H: 0})
	assert.InDelta(t, 1280.0/720.0, cam.Aspect(), tol)
}
