package main

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/hubastard/quadbatch/engine/colors"
	"github.com/hubastard/quadbatch/engine/core"
	"github.com/hubastard/quadbatch/engine/profiler"
	"github.com/hubastard/quadbatch/engine/scene"
	"github.com/hubastard/quadbatch/engine/scratch"
	"github.com/hubastard/quadbatch/engine/text"
)

const (
	overlayMargin  = 16
	overlayPadding = 12
	memSampleTicks = 30
)

var overlayPanel = colors.Black.WithAlpha(0.5)

// ------- Stats overlay in pixel space (origin bottom-left) -------
type LayerDebug struct {
	app  *App
	cam  *scene.OrthoCamera2D
	w, h int
	buf  *scratch.Buffer
	mem  profiler.Memory
}

func (l *LayerDebug) OnAttach(e *core.Engine) {
	l.cam = scene.NewOrthoCamera2D(1)
	l.buf = scratch.New(1024)
	l.resize(e.Window.FramebufferSize())
	l.mem = profiler.ReadMemory()
}

// resize maps one world unit to one framebuffer pixel.
func (l *LayerDebug) resize(w, h int) {
	if w < 1 || h < 1 {
		return
	}
	l.w, l.h = w, h
	l.cam.SetProjection(float32(w)/float32(h), float32(h)/2)
	l.cam.SetPosition(mgl32.Vec3{float32(w) / 2, float32(h) / 2, 0})
}

func (l *LayerDebug) OnDetach(e *core.Engine) {}

func (l *LayerDebug) OnUpdate(e *core.Engine, dt float64) {
	if l.app.tick%memSampleTicks == 0 {
		l.mem = profiler.ReadMemory()
	}
}

func (l *LayerDebug) OnRender(e *core.Engine, alpha float64) {
	defer l.app.prof.Start("LayerDebug.OnRender")()
	a := l.app
	font := a.font
	if font == nil || l.w == 0 {
		return
	}

	b := l.buf
	b.Reset()
	b.S("Frame ").I(int64(a.tick)).S("  ").F(float64(a.frameMS), 2).S(" ms\n")
	b.S("Draw calls ").Pad(14).U(uint64(a.stats.DrawCalls)).C('\n')
	b.S("Quads ").Pad(14).U(uint64(a.stats.QuadCount)).C('\n')
	b.S("Vertices ").Pad(14).U(uint64(a.stats.TotalVertexCount())).C('\n')
	b.S("Indices ").Pad(14).U(uint64(a.stats.TotalIndexCount())).C('\n')
	b.S("Heap ").Pad(14).F(float64(l.mem.Alloc)/(1<<20), 2).S(" MB\n")
	b.S("GC ").Pad(14).U(uint64(l.mem.NumGC)).C('\n')
	for _, s := range a.prof.Scopes() {
		b.S(s.Name).C(' ').F(float64(s.Avg.Microseconds())/1000, 3).S(" ms\n")
	}
	info := e.Device.Info()
	b.S(info.Renderer).C('\n').S(info.Version)
	body := b.View()

	title := "Renderer2D"
	tw, th := text.MeasureText(font, title, 1)
	bw, bh := text.MeasureText(font, body, 1)
	if tw > bw {
		bw = tw
	}

	panelW := bw + 2*overlayPadding
	panelH := th + bh + 2*overlayPadding
	left := float32(overlayMargin)
	top := float32(l.h - overlayMargin)

	r := a.r2d
	r.BeginScene(l.cam, a.shader)
	r.DrawQuad(mgl32.Vec2{left + panelW/2, top - panelH/2}, mgl32.Vec2{panelW, panelH}, overlayPanel)
	origin := mgl32.Vec3{left + overlayPadding, top - overlayPadding, 0.5}
	text.DrawText(r, font, origin, 1, title, colors.Yellow)
	origin[1] -= th
	text.DrawText(r, font, origin, 1, body, colors.White)
	r.EndScene()
}

func (l *LayerDebug) OnEvent(e *core.Engine, ev core.Event) bool {
	if v, ok := ev.(core.EventResize); ok {
		l.resize(v.W, v.H)
	}
	return false
}
