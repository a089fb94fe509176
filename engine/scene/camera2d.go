package scene

import "github.com/go-gl/mathgl/mgl32"

const minCameraZoom = 0.05

// OrthoCamera2D provides an orthographic camera with position, rotation and
// zoom. The visible area spans [-aspect*zoom, aspect*zoom] horizontally and
// [-zoom, zoom] vertically around the camera position, so a larger zoom
// shows more of the world.
type OrthoCamera2D struct {
	aspect   float32
	zoom     float32
	position mgl32.Vec3
	rotation float32 // degrees, counter-clockwise

	proj, view, vp mgl32.Mat4
	dirty          bool
}

func NewOrthoCamera2D(aspect float32) *OrthoCamera2D {
	c := &OrthoCamera2D{aspect: aspect, zoom: 1}
	c.Recalculate()
	return c
}

// SetProjection changes the aspect ratio and zoom level together.
func (c *OrthoCamera2D) SetProjection(aspect, zoom float32) {
	c.aspect = aspect
	c.SetZoom(zoom)
}

func (c *OrthoCamera2D) SetAspect(aspect float32) { c.aspect = aspect; c.dirty = true }

func (c *OrthoCamera2D) SetZoom(z float32) {
	if z < minCameraZoom {
		z = minCameraZoom
	}
	c.zoom = z
	c.dirty = true
}

func (c *OrthoCamera2D) SetPosition(p mgl32.Vec3) { c.position = p; c.dirty = true }
func (c *OrthoCamera2D) Move(dx, dy float32)      { c.position[0] += dx; c.position[1] += dy; c.dirty = true }
func (c *OrthoCamera2D) SetRotation(deg float32)  { c.rotation = deg; c.dirty = true }
func (c *OrthoCamera2D) Rotate(deg float32)       { c.rotation += deg; c.dirty = true }

func (c *OrthoCamera2D) Aspect() float32      { return c.aspect }
func (c *OrthoCamera2D) Zoom() float32        { return c.zoom }
func (c *OrthoCamera2D) Position() mgl32.Vec3 { return c.position }
func (c *OrthoCamera2D) Rotation() float32    { return c.rotation }

// Bounds returns the unrotated extent of the view around the camera position.
func (c *OrthoCamera2D) Bounds() (left, right, bottom, top float32) {
	w := c.aspect * c.zoom
	return c.position[0] - w, c.position[0] + w, c.position[1] - c.zoom, c.position[1] + c.zoom
}

func (c *OrthoCamera2D) Projection() mgl32.Mat4 {
	if c.dirty {
		c.Recalculate()
	}
	return c.proj
}

func (c *OrthoCamera2D) View() mgl32.Mat4 {
	if c.dirty {
		c.Recalculate()
	}
	return c.view
}

// ViewProjection implements core.HasViewProjection.
func (c *OrthoCamera2D) ViewProjection() mgl32.Mat4 {
	if c.dirty {
		c.Recalculate()
	}
	return c.vp
}

func (c *OrthoCamera2D) Recalculate() {
	w := c.aspect * c.zoom
	c.proj = mgl32.Ortho(-w, w, -c.zoom, c.zoom, -1, 1)

	// view = inverse(T(pos) * R(rot)) = R(-rot) * T(-pos)
	c.view = mgl32.HomogRotate3DZ(mgl32.DegToRad(-c.rotation)).
		Mul4(mgl32.Translate3D(-c.position[0], -c.position[1], -c.position[2]))

	c.vp = c.proj.Mul4(c.view)
	c.dirty = false
}
