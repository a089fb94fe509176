package core

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/quadbatch/engine/colors"
)

type namedLayer struct {
	name    string
	handles bool
	log     *[]string
}

func (l *namedLayer) OnAttach(*Engine)          {}
func (l *namedLayer) OnDetach(*Engine)          {}
func (l *namedLayer) OnUpdate(*Engine, float64) {}
func (l *namedLayer) OnRender(*Engine, float64) {}
func (l *namedLayer) OnEvent(*Engine, Event) bool {
	*l.log = append(*l.log, l.name)
	return l.handles
}

func TestLayerStackOrder(t *testing.T) {
	var log []string
	var ls LayerStack
	ls.Push(&namedLayer{name: "a", log: &log})
	ls.PushOverlay(&namedLayer{name: "overlay", log: &log})
	ls.Push(&namedLayer{name: "b", log: &log})

	var order []string
	ls.ForEach(func(l Layer) { order = append(order, l.(*namedLayer).name) })
	assert.Equal(t, []string{"a", "b", "overlay"}, order)

	l, ok := ls.Pop()
	require.True(t, ok)
	assert.Equal(t, "overlay", l.(*namedLayer).name)

	ls.Push(&namedLayer{name: "c", log: &log})
	order = order[:0]
	ls.ForEach(func(l Layer) { order = append(order, l.(*namedLayer).name) })
	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Equal(t, 3, ls.Len())
}

func TestLayerStackEventPropagation(t *testing.T) {
	var log []string
	var ls LayerStack
	ls.Push(&namedLayer{name: "bottom", log: &log})
	ls.Push(&namedLayer{name: "middle", handles: true, log: &log})
	ls.PushOverlay(&namedLayer{name: "top", log: &log})

	ls.ForEachReverse(func(l Layer) bool { return l.OnEvent(nil, EventKey{}) })
	assert.Equal(t, []string{"top", "middle"}, log)
}

func TestLayerStackPopEmpty(t *testing.T) {
	var ls LayerStack
	_, ok := ls.Pop()
	assert.False(t, ok)
}

func TestInput(t *testing.T) {
	in := NewInput()
	in.Handle(EventKey{Key: KeyW, Down: true})
	in.Handle(EventMouseMove{X: 3, Y: 4})
	in.Handle(EventScroll{Yoff: 1})
	in.Handle(EventScroll{Yoff: 0.5})

	assert.True(t, in.IsKeyDown(KeyW))
	assert.False(t, in.IsKeyDown(KeyA))
	x, y := in.Mouse()
	assert.Equal(t, 3.0, x)
	assert.Equal(t, 4.0, y)
	assert.Equal(t, 1.5, in.ConsumeScroll())
	assert.Equal(t, 0.0, in.ConsumeScroll())

	in.Handle(EventKey{Key: KeyW, Down: false})
	assert.False(t, in.IsKeyDown(KeyW))
}

func TestNewVertexLayout(t *testing.T) {
	l := NewVertexLayout(
		VertexAttrib{Name: "a_Position", Type: Float3},
		VertexAttrib{Name: "a_Color", Type: Float4},
		VertexAttrib{Name: "a_TexIndex", Type: Float},
	)
	assert.Equal(t, 32, l.Stride)
	require.Len(t, l.Attributes, 3)
	assert.Equal(t, uint32(1), l.Attributes[1].Location)
	assert.Equal(t, 12, l.Attributes[1].Offset)
	assert.Equal(t, 28, l.Attributes[2].Offset)
	assert.False(t, Float4.IsInteger())
	assert.True(t, Int2.IsInteger())
	assert.Equal(t, 0, ShaderDataNone.Size())
}

func TestCheckTextureData(t *testing.T) {
	assert.NoError(t, CheckTextureData(2, 2, 4, 16))
	err := CheckTextureData(2, 2, 4, 15)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDataSize))
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sandbox.yaml")
	src := "title: demo\nwidth: 640\nclear_color: '#000000'\nrenderer:\n  max_quads: 100\n  disable_culling: true\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "demo", cfg.Title)
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 720, cfg.Height, "unset fields keep defaults")
	assert.Equal(t, colors.Black, cfg.ClearColor)
	assert.Equal(t, 100, cfg.Renderer.MaxQuads)
	assert.True(t, cfg.Renderer.DisableCulling)
}

func TestLoadConfigInvalid(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("width: -1\n"), 0o644))
	_, err := LoadConfig(bad)
	assert.Error(t, err)

	garbage := filepath.Join(dir, "garbage.yaml")
	require.NoError(t, os.WriteFile(garbage, []byte("width: [\n"), 0o644))
	_, err = LoadConfig(garbage)
	assert.Error(t, err)
}

func TestRendererConfigDefaults(t *testing.T) {
	assert.Equal(t, DefaultMaxQuads, RendererConfig{}.WithDefaults().MaxQuads)
	assert.Equal(t, 7, RendererConfig{MaxQuads: 7}.WithDefaults().MaxQuads)
}

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	require.NotNil(t, l)
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	Logger().Info("hello")
	assert.Contains(t, buf.String(), "hello")

	SetLogger(nil)
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}
