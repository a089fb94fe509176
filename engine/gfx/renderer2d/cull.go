package renderer2d

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

var clipCorners = [4]mgl32.Vec4{
	{-1, -1, 0, 1},
	{1, -1, 0, 1},
	{1, 1, 0, 1},
	{-1, 1, 0, 1},
}

// CullTester holds the world-space rectangle visible through the camera.
type CullTester struct {
	Min, Max mgl32.Vec2
}

// Update un-projects the clip-space corners through the inverse of vp. A
// singular matrix disables culling for the scene.
func (c *CullTester) Update(vp mgl32.Mat4) {
	if vp.Det() == 0 {
		c.Min = mgl32.Vec2{-math32.MaxFloat32, -math32.MaxFloat32}
		c.Max = mgl32.Vec2{math32.MaxFloat32, math32.MaxFloat32}
		return
	}
	inv := vp.Inv()

	c.Min = mgl32.Vec2{math32.MaxFloat32, math32.MaxFloat32}
	c.Max = mgl32.Vec2{-math32.MaxFloat32, -math32.MaxFloat32}
	for _, corner := range clipCorners {
		p := inv.Mul4x1(corner)
		x, y := p[0]/p[3], p[1]/p[3]
		c.Min[0] = math32.Min(c.Min[0], x)
		c.Min[1] = math32.Min(c.Min[1], y)
		c.Max[0] = math32.Max(c.Max[0], x)
		c.Max[1] = math32.Max(c.Max[1], y)
	}
}

// IsOnScreen reports whether the quad centered at pos with the given size
// overlaps the camera rectangle. Touching edges count as visible.
func (c *CullTester) IsOnScreen(pos, size mgl32.Vec2) bool {
	hw, hh := size[0]*0.5, size[1]*0.5
	if pos[0]+hw < c.Min[0] || pos[0]-hw > c.Max[0] {
		return false
	}
	if pos[1]+hh < c.Min[1] || pos[1]-hh > c.Max[1] {
		return false
	}
	return true
}

// rotatedExtent returns the size of the axis-aligned box enclosing a quad of
// the given size rotated by rad.
func rotatedExtent(size mgl32.Vec2, rad float32) mgl32.Vec2 {
	if rad == 0 {
		return size
	}
	s, c := math32.Sincos(rad)
	s, c = math32.Abs(s), math32.Abs(c)
	return mgl32.Vec2{
		size[0]*c + size[1]*s,
		size[0]*s + size[1]*c,
	}
}
