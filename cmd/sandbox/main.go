package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/hubastard/quadbatch/engine/assets"
	"github.com/hubastard/quadbatch/engine/core"
	glbackend "github.com/hubastard/quadbatch/engine/gfx/gl"
	"github.com/hubastard/quadbatch/engine/gfx/renderer2d"
	"github.com/hubastard/quadbatch/engine/platform"
	"github.com/hubastard/quadbatch/engine/profiler"
	"github.com/hubastard/quadbatch/engine/text"
)

const configPath = "sandbox.yaml"

type App struct {
	cfg    core.Config
	loader *assets.Loader
	prof   *profiler.Profiler

	r2d    *renderer2d.Renderer2D
	shader core.Shader
	font   *text.FontAtlas

	// stats of the previous frame, shown by the overlay
	stats     renderer2d.Stats
	lastFrame time.Time
	frameMS   float32
	tick      int

	layer      *Layer2D
	debugLayer *LayerDebug
	err        error
}

func NewApp(cfg core.Config) *App {
	return &App{
		cfg:    cfg,
		loader: assets.NewLoader(cfg.AssetRoot),
		prof:   profiler.New(),
	}
}

func (a *App) OnStart(e *core.Engine) {
	if err := a.start(e); err != nil {
		a.err = err
		core.Logger().Error("sandbox start failed", "err", err)
		e.Window.RequestClose()
		return
	}
	a.layer = &Layer2D{app: a}
	e.PushLayer(a.layer)
	a.debugLayer = &LayerDebug{app: a}
	e.PushOverlay(a.debugLayer)
}

func (a *App) start(e *core.Engine) error {
	a.r2d = renderer2d.New(e.Device, a.cfg.Renderer)
	if err := a.r2d.Init(); err != nil {
		return err
	}

	shader, err := a.loader.LoadShader(e.Device, "quad.vert", "quad.frag")
	if err != nil {
		core.Logger().Info("using built-in quad shader", "reason", err)
		shader, err = e.Device.CreateShader(glbackend.QuadVertexSource, glbackend.QuadFragmentSource(renderer2d.MaxTextureSlots))
		if err != nil {
			return errors.Wrap(err, "built-in quad shader")
		}
	}
	a.shader = shader

	a.font, err = text.ParseTTF(e.Device, gomono.TTF, 18)
	if err != nil {
		return errors.Wrap(err, "overlay font")
	}
	return nil
}

func (a *App) OnUpdate(e *core.Engine, dt float64) { a.tick++ }

func (a *App) OnRender(e *core.Engine, alpha float64) {
	now := time.Now()
	if !a.lastFrame.IsZero() {
		a.frameMS = float32(now.Sub(a.lastFrame).Seconds() * 1000)
	}
	a.lastFrame = now

	// stats are never reset by the renderer itself
	if a.r2d != nil {
		a.stats = a.r2d.Stats()
		a.r2d.ResetStats()
	}
}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {}

func (a *App) OnShutdown(e *core.Engine) {
	a.font.Release()
	if a.shader != nil {
		a.shader.Release()
	}
	if a.r2d != nil {
		if err := a.r2d.Shutdown(); err != nil {
			core.Logger().Warn("renderer shutdown", "err", err)
		}
	}
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	core.SetLogger(logger)

	path := configPath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	cfg, err := core.LoadConfig(path)
	if err != nil {
		logger.Error("config", "err", err)
		os.Exit(1)
	}

	app := NewApp(cfg)
	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg)
	}
	newDevice := func(core.Window, core.Config) (core.Device, error) {
		return glbackend.NewDevice()
	}

	if err := core.Run(app, cfg, newWindow, newDevice); err != nil {
		logger.Error("run", "err", err)
		os.Exit(1)
	}
	if app.err != nil {
		os.Exit(1)
	}
}
