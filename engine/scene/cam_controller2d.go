package scene

import "github.com/hubastard/quadbatch/engine/core"

// OrthoController2D: WASD move, Q/E rotate, LeftShift/LeftControl or the
// scroll wheel zoom out/in.
type OrthoController2D struct {
	MoveSpeed  float32 // world units per second at zoom 1
	RotSpeed   float32 // degrees per second
	ZoomSpeed  float32 // zoom units per second
	ScrollStep float32 // zoom units per scroll notch
	MinZoom    float32
	Rotation   bool
	Camera     *OrthoCamera2D
}

func NewOrthoController2D(cam *OrthoCamera2D) *OrthoController2D {
	return &OrthoController2D{
		MoveSpeed:  5,
		RotSpeed:   90,
		ZoomSpeed:  2,
		ScrollStep: 0.25,
		MinZoom:    0.25,
		Rotation:   true,
		Camera:     cam,
	}
}

func (cc *OrthoController2D) Update(e *core.Engine, dt float32) {
	in := e.Input
	cam := cc.Camera
	// movement scales with zoom so panning feels the same at every level
	speed := cc.MoveSpeed * dt * cam.Zoom()

	if in.IsKeyDown(core.KeyW) {
		cam.Move(0, speed)
	}
	if in.IsKeyDown(core.KeyS) {
		cam.Move(0, -speed)
	}
	if in.IsKeyDown(core.KeyA) {
		cam.Move(-speed, 0)
	}
	if in.IsKeyDown(core.KeyD) {
		cam.Move(speed, 0)
	}

	if cc.Rotation {
		if in.IsKeyDown(core.KeyQ) {
			cam.Rotate(cc.RotSpeed * dt)
		}
		if in.IsKeyDown(core.KeyE) {
			cam.Rotate(-cc.RotSpeed * dt)
		}
	}

	zoom := cam.Zoom()
	if in.IsKeyDown(core.KeyLeftShift) {
		zoom += cc.ZoomSpeed * dt
	}
	if in.IsKeyDown(core.KeyLeftControl) {
		zoom -= cc.ZoomSpeed * dt
	}
	zoom -= float32(in.ConsumeScroll()) * cc.ScrollStep
	if zoom < cc.MinZoom {
		zoom = cc.MinZoom
	}
	if zoom != cam.Zoom() {
		cam.SetZoom(zoom)
	}
}

// HandleEvent keeps the camera aspect in sync with the framebuffer. It never
// consumes the event.
func (cc *OrthoController2D) HandleEvent(ev core.Event) bool {
	if r, ok := ev.(core.EventResize); ok && r.W > 0 && r.H > 0 {
		cc.Camera.SetAspect(float32(r.W) / float32(r.H))
	}
	return false
}
