package main

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/hubastard/quadbatch/engine/colors"
	"github.com/hubastard/quadbatch/engine/core"
	"github.com/hubastard/quadbatch/engine/gfx/renderer2d"
	"github.com/hubastard/quadbatch/engine/scene"
)

const (
	gridCells = 100 // per axis, 10000 quads
	gridStep  = 0.1
	gridSize  = 0.08
)

var gridColor = colors.Color{0, 0, 1, 0.5}

// ------- The 2D stress-test scene -------
type Layer2D struct {
	app  *App
	cam  *scene.OrthoCamera2D
	ctrl *scene.OrthoController2D

	checker core.Texture // nil when missing: drawn magenta
	sheet   core.Texture
	sprite  renderer2d.SubTexture
	t       float32
}

func (l *Layer2D) OnAttach(e *core.Engine) {
	w, h := e.Window.FramebufferSize()
	aspect := float32(16) / 9
	if w > 0 && h > 0 {
		aspect = float32(w) / float32(h)
	}
	l.cam = scene.NewOrthoCamera2D(aspect)
	l.ctrl = scene.NewOrthoController2D(l.cam)

	// load failures are logged by the loader and degrade to the fallback color
	l.checker, _ = l.app.loader.LoadTexture(e.Device, "checkerboard.png")
	l.sheet, _ = l.app.loader.LoadTexture(e.Device, "spritesheet.png")
	if l.sheet != nil {
		l.sprite = renderer2d.SubTextureFromCoords(l.sheet, mgl32.Vec2{1, 1}, mgl32.Vec2{16, 16}, mgl32.Vec2{1, 1})
	}
}

func (l *Layer2D) OnDetach(e *core.Engine) {
	for _, tex := range []core.Texture{l.checker, l.sheet} {
		if tex != nil {
			tex.Release()
		}
	}
}

func (l *Layer2D) OnUpdate(e *core.Engine, dt float64) {
	l.ctrl.Update(e, float32(dt))
	l.t += float32(dt)

	if e.Input.IsKeyDown(core.KeyEscape) {
		e.Window.RequestClose()
	}
}

func (l *Layer2D) OnRender(e *core.Engine, alpha float64) {
	defer l.app.prof.Start("Layer2D.OnRender")()
	r := l.app.r2d

	r.BeginScene(l.cam, l.app.shader)

	r.DrawQuad(mgl32.Vec2{-0.5, -0.5}, mgl32.Vec2{0.5, 0.5}, colors.Red)
	r.DrawQuad(mgl32.Vec2{0.2, 0.2}, mgl32.Vec2{0.2, 0.3}, colors.Green)

	for i := 0; i < gridCells; i++ {
		x := -5 + float32(i)*gridStep
		for j := 0; j < gridCells; j++ {
			y := -5 + float32(j)*gridStep
			r.DrawQuad(mgl32.Vec2{x, y}, mgl32.Vec2{gridSize, gridSize}, gridColor)
		}
	}

	r.DrawTexturedQuad3(mgl32.Vec3{1, 0, 0.1}, mgl32.Vec2{1, 1}, l.checker, 1, colors.White)
	r.DrawRotatedTexturedQuad3(mgl32.Vec3{-1.5, 1, 0.1}, mgl32.Vec2{1, 1}, l.t*45, l.checker, 4, colors.Cyan)
	r.DrawRotatedQuad3(mgl32.Vec3{1.5, 1, 0.1}, mgl32.Vec2{0.5, 0.5}, -l.t*90, colors.Yellow)
	if l.sheet != nil {
		r.DrawSubTexturedQuad(mgl32.Vec3{0, 1.5, 0.1}, mgl32.Vec2{0.5, 0.5}, 0, l.sprite, colors.White)
	}

	r.EndScene()
}

func (l *Layer2D) OnEvent(e *core.Engine, ev core.Event) bool {
	return l.ctrl.HandleEvent(ev)
}
