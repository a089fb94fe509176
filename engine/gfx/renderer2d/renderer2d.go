package renderer2d

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/hubastard/quadbatch/engine/colors"
	"github.com/hubastard/quadbatch/engine/core"
)

const (
	uniformViewProjection = "u_ViewProjection"
	uniformTextures       = "u_Textures"
)

// Unit quad corners, counter-clockwise from bottom-left.
var quadPositions = [vertsPerQuad]mgl32.Vec4{
	{-0.5, -0.5, 0, 1},
	{0.5, -0.5, 0, 1},
	{0.5, 0.5, 0, 1},
	{-0.5, 0.5, 0, 1},
}

var defaultTexCoords = [vertsPerQuad]mgl32.Vec2{
	{0, 0},
	{1, 0},
	{1, 1},
	{0, 1},
}

// Stats captures the counts generated since the last ResetStats.
type Stats struct {
	DrawCalls uint32
	QuadCount uint32
}

// TotalVertexCount reports vertices submitted.
func (s Stats) TotalVertexCount() uint32 { return s.QuadCount * vertsPerQuad }

// TotalIndexCount reports indices submitted.
func (s Stats) TotalIndexCount() uint32 { return s.QuadCount * indsPerQuad }

type state int

const (
	stateUninitialized state = iota
	stateReady
	stateInScene
	stateShutdown
)

func (s state) String() string {
	switch s {
	case stateUninitialized:
		return "uninitialized"
	case stateReady:
		return "ready"
	case stateInScene:
		return "in-scene"
	case stateShutdown:
		return "shutdown"
	}
	return "unknown"
}

// Renderer2D batches colored and textured quads into as few indexed draw
// calls as possible. It is bound to one rendering context and is not safe
// for concurrent use.
type Renderer2D struct {
	dev      core.Device
	maxQuads int
	culling  bool
	state    state

	white core.Texture // 1x1 white (slot 0)
	ib    core.IndexBuffer
	batch batchAccumulator
	cull  CullTester
	stats Stats

	samplers [MaxTextureSlots]int32
}

// New returns an uninitialized renderer drawing through dev.
func New(dev core.Device, cfg core.RendererConfig) *Renderer2D {
	cfg = cfg.WithDefaults()
	r := &Renderer2D{
		dev:      dev,
		maxQuads: cfg.MaxQuads,
		culling:  !cfg.DisableCulling,
	}
	for i := range r.samplers {
		r.samplers[i] = int32(i)
	}
	return r
}

// Init allocates the GPU buffers and the white texture.
func (r *Renderer2D) Init() (err error) {
	switch r.state {
	case stateUninitialized:
	case stateShutdown:
		return &StateError{Op: "Init", State: r.state.String(), Err: ErrShutdown}
	default:
		return &StateError{Op: "Init", State: r.state.String(), Err: ErrInitialized}
	}

	var (
		vb    core.VertexBuffer
		va    core.VertexArray
		ib    core.IndexBuffer
		white core.Texture
	)
	defer func() {
		if err == nil {
			return
		}
		for _, res := range []interface{ Release() }{white, va, ib, vb} {
			if res != nil {
				res.Release()
			}
		}
	}()

	vb, err = r.dev.CreateVertexBuffer(r.maxQuads * vertsPerQuad * vertexSize)
	if err != nil {
		return errors.Wrap(err, "renderer2d: create vertex buffer")
	}
	ib, err = r.dev.CreateIndexBuffer(quadIndices(r.maxQuads))
	if err != nil {
		return errors.Wrap(err, "renderer2d: create index buffer")
	}
	va, err = r.dev.CreateVertexArray(vb, quadVertexLayout, ib)
	if err != nil {
		return errors.Wrap(err, "renderer2d: create vertex array")
	}
	white, err = r.dev.CreateTexture(1, 1)
	if err != nil {
		return errors.Wrap(err, "renderer2d: create white texture")
	}
	pix := colors.White.PackRGBA8()
	if err = white.SetData(pix[:]); err != nil {
		return errors.Wrap(err, "renderer2d: upload white texture")
	}

	r.white, r.ib = white, ib
	r.batch = batchAccumulator{
		dev:        r.dev,
		vb:         vb,
		va:         va,
		geometry:   newGeometryBuffer(r.maxQuads),
		slots:      newTextureSlotTable(white),
		maxIndices: r.maxQuads * indsPerQuad,
		stats:      &r.stats,
	}
	r.state = stateReady
	core.Logger().Debug("renderer2d initialized",
		"maxQuads", r.maxQuads, "vertexBytes", vb.Size(), "culling", r.culling)
	return nil
}

// Shutdown releases every GPU resource owned by the renderer. Borrowed
// textures are left alone.
func (r *Renderer2D) Shutdown() error {
	switch r.state {
	case stateReady:
	case stateUninitialized:
		return &StateError{Op: "Shutdown", State: r.state.String(), Err: ErrNotInitialized}
	case stateInScene:
		return &StateError{Op: "Shutdown", State: r.state.String(), Err: ErrSceneActive}
	case stateShutdown:
		return &StateError{Op: "Shutdown", State: r.state.String(), Err: ErrShutdown}
	}
	r.batch.va.Release()
	r.batch.vb.Release()
	r.ib.Release()
	r.white.Release()
	r.batch.slots.clear()
	r.batch = batchAccumulator{}
	r.white, r.ib = nil, nil
	r.state = stateShutdown
	core.Logger().Debug("renderer2d shut down")
	return nil
}

func (r *Renderer2D) require(op string, want state) {
	if r.state == want {
		return
	}
	var err error
	switch r.state {
	case stateUninitialized:
		err = ErrNotInitialized
	case stateShutdown:
		err = ErrShutdown
	case stateInScene:
		err = ErrSceneActive
	default:
		err = ErrNoScene
	}
	panic(&StateError{Op: op, State: r.state.String(), Err: err})
}

// BeginScene binds shader, uploads the camera matrix and the sampler indices
// and starts a new batch. The camera and shader must outlive the scene.
func (r *Renderer2D) BeginScene(camera core.HasViewProjection, shader core.Shader) {
	r.require("BeginScene", stateReady)

	vp := camera.ViewProjection()
	shader.Bind()
	shader.SetMat4(uniformViewProjection, vp)
	shader.SetIntArray(uniformTextures, r.samplers[:])

	r.cull.Update(vp)
	r.batch.begin()
	r.state = stateInScene
}

// EndScene flushes whatever is left in the batch.
func (r *Renderer2D) EndScene() {
	r.require("EndScene", stateInScene)
	r.batch.end()
	r.state = stateReady
}

// Flush submits the current batch immediately and starts a new one.
func (r *Renderer2D) Flush() {
	r.require("Flush", stateInScene)
	r.batch.flush()
}

// Stats returns the statistics accumulated since the last ResetStats.
func (r *Renderer2D) Stats() Stats { return r.stats }

// ResetStats zeroes the statistics. Scenes never reset them implicitly.
func (r *Renderer2D) ResetStats() { r.stats = Stats{} }

// IsOnScreen tests a centered quad against the current scene's camera bounds.
func (r *Renderer2D) IsOnScreen(pos, size mgl32.Vec2) bool { return r.cull.IsOnScreen(pos, size) }

// CameraBounds returns the world-space rectangle computed by the last BeginScene.
func (r *Renderer2D) CameraBounds() (min, max mgl32.Vec2) { return r.cull.Min, r.cull.Max }

// DrawQuad draws a solid color quad centered at pos.
func (r *Renderer2D) DrawQuad(pos, size mgl32.Vec2, color colors.Color) {
	r.DrawQuad3(pos.Vec3(0), size, color)
}

func (r *Renderer2D) DrawQuad3(pos mgl32.Vec3, size mgl32.Vec2, color colors.Color) {
	r.drawQuad("DrawQuad", pos, size, 0, nil, &defaultTexCoords, 1, color)
}

// DrawTexturedQuad draws tex tinted by tint, repeated tiling times. A zero
// tiling factor means 1. A nil texture draws colors.MissingTexture instead.
func (r *Renderer2D) DrawTexturedQuad(pos, size mgl32.Vec2, tex core.Texture, tiling float32, tint colors.Color) {
	r.DrawTexturedQuad3(pos.Vec3(0), size, tex, tiling, tint)
}

func (r *Renderer2D) DrawTexturedQuad3(pos mgl32.Vec3, size mgl32.Vec2, tex core.Texture, tiling float32, tint colors.Color) {
	r.drawTextured("DrawTexturedQuad", pos, size, 0, tex, &defaultTexCoords, tiling, tint)
}

// DrawRotatedQuad is DrawQuad rotated by rotation degrees counter-clockwise.
func (r *Renderer2D) DrawRotatedQuad(pos, size mgl32.Vec2, rotation float32, color colors.Color) {
	r.DrawRotatedQuad3(pos.Vec3(0), size, rotation, color)
}

func (r *Renderer2D) DrawRotatedQuad3(pos mgl32.Vec3, size mgl32.Vec2, rotation float32, color colors.Color) {
	r.drawQuad("DrawRotatedQuad", pos, size, rotation, nil, &defaultTexCoords, 1, color)
}

func (r *Renderer2D) DrawRotatedTexturedQuad(pos, size mgl32.Vec2, rotation float32, tex core.Texture, tiling float32, tint colors.Color) {
	r.DrawRotatedTexturedQuad3(pos.Vec3(0), size, rotation, tex, tiling, tint)
}

func (r *Renderer2D) DrawRotatedTexturedQuad3(pos mgl32.Vec3, size mgl32.Vec2, rotation float32, tex core.Texture, tiling float32, tint colors.Color) {
	r.drawTextured("DrawRotatedTexturedQuad", pos, size, rotation, tex, &defaultTexCoords, tiling, tint)
}

func (r *Renderer2D) drawTextured(op string, pos mgl32.Vec3, size mgl32.Vec2, rotation float32, tex core.Texture, uv *[vertsPerQuad]mgl32.Vec2, tiling float32, tint colors.Color) {
	if tex == nil {
		r.drawQuad(op, pos, size, rotation, nil, &defaultTexCoords, 1, colors.MissingTexture)
		return
	}
	if tiling == 0 {
		tiling = 1
	}
	r.drawQuad(op, pos, size, rotation, tex, uv, tiling, tint)
}

func (r *Renderer2D) drawQuad(op string, pos mgl32.Vec3, size mgl32.Vec2, rotation float32, tex core.Texture, uv *[vertsPerQuad]mgl32.Vec2, tiling float32, color colors.Color) {
	r.require(op, stateInScene)

	rad := mgl32.DegToRad(rotation)
	if r.culling && !r.cull.IsOnScreen(pos.Vec2(), rotatedExtent(size, rad)) {
		return
	}

	r.batch.reserveQuad()
	var texIndex float32 // white
	if tex != nil {
		texIndex = r.batch.textureIndex(tex)
	}

	transform := mgl32.Translate3D(pos[0], pos[1], pos[2])
	if rad != 0 {
		transform = transform.Mul4(mgl32.HomogRotate3DZ(rad))
	}
	transform = transform.Mul4(mgl32.Scale3D(size[0], size[1], 1))

	var q [vertsPerQuad]Vertex
	for i := range q {
		p := transform.Mul4x1(quadPositions[i])
		q[i] = Vertex{
			Position:     [3]float32{p[0], p[1], p[2]},
			Color:        color,
			TexCoord:     uv[i],
			TexIndex:     texIndex,
			TilingFactor: tiling,
		}
	}
	r.batch.appendQuad(&q)
	r.stats.QuadCount++
}
