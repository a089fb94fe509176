package core

import (
	"runtime"
	"time"
)

// Run wires the platform window + GPU device and executes the main loop.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newDevice func(Window, Config) (Device, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return err
	}
	defer win.Destroy()

	dev, err := newDevice(win, cfg)
	if err != nil {
		return err
	}

	w, h := win.FramebufferSize()
	dev.Resize(w, h)
	dev.SetClearColor(cfg.ClearColor)

	eng := &Engine{Window: win, Device: dev, Input: NewInput(), start: time.Now()}
	eng.minimized = w < 1 || h < 1
	win.SetEventCallback(func(ev Event) { eng.dispatch(app, ev) })

	app.OnStart(eng)

	// Fixed-timestep (60 Hz) with interpolation
	const tick = time.Second / 60
	var (
		accum   time.Duration
		prev    = time.Now()
		maxStep = 10 // prevent spiral of death
	)

	for !win.ShouldClose() {
		now := time.Now()
		accum += now.Sub(prev)
		prev = now

		// Poll OS events (platform will emit via callbacks)
		win.PollEvents()

		steps := 0
		for accum >= tick && steps < maxStep {
			dt := float64(tick) / float64(time.Second)
			app.OnUpdate(eng, dt)
			eng.Layers.ForEach(func(l Layer) { l.OnUpdate(eng, dt) })
			accum -= tick
			steps++
		}
		if steps == maxStep {
			accum = 0
		}
		alpha := float64(accum) / float64(tick)

		if !eng.minimized {
			dev.Clear()
			app.OnRender(eng, alpha)
			eng.Layers.ForEach(func(l Layer) { l.OnRender(eng, alpha) })
		}

		win.SwapBuffers()
	}

	for {
		l, ok := eng.Layers.Pop()
		if !ok {
			break
		}
		l.OnDetach(eng)
	}
	app.OnShutdown(eng)
	Logger().Info("engine exit", "uptime", eng.Uptime())
	return nil
}

func (e *Engine) dispatch(app App, ev Event) {
	e.Input.Handle(ev)
	switch v := ev.(type) {
	case EventResize:
		e.minimized = v.W < 1 || v.H < 1
		if !e.minimized {
			e.Device.Resize(v.W, v.H)
		}
	case EventCloseRequested:
		e.Window.RequestClose()
	}
	app.OnEvent(e, ev)
	e.Layers.ForEachReverse(func(l Layer) bool { return l.OnEvent(e, ev) })
}
