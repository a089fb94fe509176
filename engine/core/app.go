package core

import "time"

// App defines the game/application hooks.
type App interface {
	OnStart(e *Engine)                 // called once after window/device init
	OnUpdate(e *Engine, dt float64)    // called at a fixed tick (60Hz by default)
	OnRender(e *Engine, alpha float64) // render with interpolation alpha [0..1]
	OnEvent(e *Engine, ev Event)       // input/window events
	OnShutdown(e *Engine)              // before exit
}

// Engine exposes core services to the App and its layers.
type Engine struct {
	Window Window
	Device Device
	Input  *Input
	Layers LayerStack

	start     time.Time
	minimized bool
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// Minimized reports whether the framebuffer is currently zero-sized.
// Rendering is skipped while minimized.
func (e *Engine) Minimized() bool { return e.minimized }

// PushLayer attaches l below the overlays.
func (e *Engine) PushLayer(l Layer) {
	e.Layers.Push(l)
	l.OnAttach(e)
}

// PushOverlay attaches l on top of every other layer.
func (e *Engine) PushOverlay(l Layer) {
	e.Layers.PushOverlay(l)
	l.OnAttach(e)
}

// Window abstraction.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	RequestClose()
	FramebufferSize() (int, int)
	SetTitle(title string)
	SetEventCallback(cb func(Event))
	Destroy()
}
