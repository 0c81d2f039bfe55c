package engine

import (
	"bytes"
	"context"
	"errors"
	"image"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/spaghettifunk/gllabs/engine/containers"
	"github.com/spaghettifunk/gllabs/engine/core"
	"github.com/spaghettifunk/gllabs/engine/math"
	"github.com/spaghettifunk/gllabs/engine/renderer"
	"github.com/spaghettifunk/gllabs/engine/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePlatform struct {
	// events[i] is recorded during the i-th pump.
	events      [][]core.InputEvent
	pumps       int
	closeAfter  int
	shouldClose bool
	swaps       int
	titles      []string
	width       int
	height      int
	started     bool
	stopped     bool
	// onPump runs after the n-th pump, counted from 1.
	onPump func(p *fakePlatform, n int)
}

func (p *fakePlatform) Startup(name string, x, y, width, height int) error {
	p.started = true
	if p.width == 0 {
		p.width, p.height = width, height
	}
	return nil
}

func (p *fakePlatform) Shutdown() error {
	p.stopped = true
	return nil
}

func (p *fakePlatform) PumpMessages(queue *containers.RingQueue[core.InputEvent]) {
	if p.pumps < len(p.events) {
		for _, ev := range p.events[p.pumps] {
			_ = queue.Enqueue(ev)
		}
	}
	p.pumps++
	if p.closeAfter > 0 && p.pumps >= p.closeAfter {
		p.shouldClose = true
	}
	if p.onPump != nil {
		p.onPump(p, p.pumps)
	}
}

func (p *fakePlatform) ShouldClose() bool { return p.shouldClose }
func (p *fakePlatform) SetShouldClose(value bool) { p.shouldClose = value }
func (p *fakePlatform) SwapBuffers() { p.swaps++ }
func (p *fakePlatform) FramebufferSize() (int, int) { return p.width, p.height }
func (p *fakePlatform) SetTitle(title string) { p.titles = append(p.titles, title) }

type fakeBackend struct {
	resized   [][2]int
	frames    int
	uploaded  int
	shutdown  bool
	reloads   atomic.Int32
	reloadErr error
}

func (b *fakeBackend) Initialize(renderer.ShaderSources) error { return nil }
func (b *fakeBackend) Shutdown() error { b.shutdown = true; return nil }
func (b *fakeBackend) Resized(width, height int) {
	b.resized = append(b.resized, [2]int{width, height})
}
func (b *fakeBackend) BeginFrame(math.Vec4) { b.frames++ }
func (b *fakeBackend) EndFrame() {}
func (b *fakeBackend) UploadMesh(math.Mesh) (renderer.GeometryID, error) {
	b.uploaded++
	return uuid.New(), nil
}
func (b *fakeBackend) DestroyGeometry(renderer.GeometryID) {}
func (b *fakeBackend) UseGeometry(renderer.GeometryID) error { return nil }
func (b *fakeBackend) SetModel(math.Mat4) {}
func (b *fakeBackend) SetView(math.Mat4) {}
func (b *fakeBackend) SetProjection(math.Mat4) {}
func (b *fakeBackend) SetRenderAsBlack(bool) {}
func (b *fakeBackend) SetLineWidth(float32) {}
func (b *fakeBackend) SetPointSize(float32) {}
func (b *fakeBackend) Draw(systems.SceneObject) {}
func (b *fakeBackend) DrawOverlay(*image.RGBA) {}
func (b *fakeBackend) ReloadShaders(renderer.ShaderSources) error {
	b.reloads.Add(1)
	return b.reloadErr
}
func (b *fakeBackend) Info() renderer.DeviceInfo { return renderer.DeviceInfo{} }

type recorder struct {
	calls   []string
	updates int
	resizes [][2]int
}

func testGame(t *testing.T, rec *recorder) *Game {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shader_vertex.glsl"), []byte("void main() {}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shader_fragment.glsl"), []byte("void main() {}"), 0o644))

	cfg := DefaultConfig("test", 320, 240)
	cfg.Shaders.Dir = dir
	cfg.Overlay.Show = false

	step := time.Unix(0, 0)
	g := &Game{
		ApplicationConfig: &cfg,
		Clock: core.NewClockWithSource(func() time.Time {
			step = step.Add(10 * time.Millisecond)
			return step
		}),
	}
	g.FnInitialize = func() error {
		rec.calls = append(rec.calls, "initialize")
		return nil
	}
	g.FnUpdate = func(time.Duration) error {
		rec.updates++
		return nil
	}
	g.FnRender = func(time.Duration) error { return nil }
	g.FnOnResize = func(w, h int) error {
		rec.calls = append(rec.calls, "resize")
		rec.resizes = append(rec.resizes, [2]int{w, h})
		return nil
	}
	g.FnShutdown = func() error {
		rec.calls = append(rec.calls, "shutdown")
		return nil
	}
	return g
}

func TestEngineMissingShaders(t *testing.T) {
	rec := &recorder{}
	g := testGame(t, rec)
	g.ApplicationConfig.Shaders.Dir = t.TempDir()
	p := &fakePlatform{}

	e, err := New(g, p, &fakeBackend{})
	require.NoError(t, err)
	require.ErrorIs(t, e.Initialize(), core.ErrShaderMissing)
	assert.False(t, p.started)
	assert.Empty(t, rec.calls)
}

func TestEngineRunsFrames(t *testing.T) {
	rec := &recorder{}
	g := testGame(t, rec)
	p := &fakePlatform{closeAfter: 4}
	b := &fakeBackend{}

	e, err := New(g, p, b)
	require.NoError(t, err)
	require.NotNil(t, g.Renderer)
	require.NotNil(t, g.SystemManager)

	require.NoError(t, e.Initialize())
	assert.Equal(t, EngineStageInitialized, e.Stage())
	assert.Equal(t, []string{"initialize", "resize"}, rec.calls)
	assert.Equal(t, [][2]int{{320, 240}}, rec.resizes)
	assert.True(t, g.SystemManager.SceneSystem.Frozen())

	require.NoError(t, e.Run(context.Background()))
	assert.Equal(t, 3, rec.updates)
	assert.Equal(t, 3, p.swaps)
	assert.Equal(t, 3, b.frames)

	require.NoError(t, e.Shutdown())
	assert.Equal(t, "shutdown", rec.calls[len(rec.calls)-1])
	assert.True(t, b.shutdown)
	assert.True(t, p.stopped)
}

func TestEngineEscapeQuits(t *testing.T) {
	rec := &recorder{}
	g := testGame(t, rec)
	p := &fakePlatform{events: [][]core.InputEvent{
		nil,
		{{Kind: core.InputKey, Key: core.KEY_ESCAPE, Pressed: true}},
	}}

	e, err := New(g, p, &fakeBackend{})
	require.NoError(t, err)
	require.NoError(t, e.Initialize())
	require.NoError(t, e.Run(context.Background()))

	assert.Equal(t, 1, rec.updates)
	assert.True(t, p.shouldClose)
}

func TestEngineResizeAndMinimize(t *testing.T) {
	rec := &recorder{}
	g := testGame(t, rec)
	p := &fakePlatform{
		closeAfter: 4,
		events: [][]core.InputEvent{
			{{Kind: core.InputResize, Width: 0, Height: 0}},
			nil,
			{{Kind: core.InputResize, Width: 640, Height: 480}},
		},
	}
	b := &fakeBackend{}

	e, err := New(g, p, b)
	require.NoError(t, err)
	require.NoError(t, e.Initialize())
	require.NoError(t, e.Run(context.Background()))

	// Two suspended frames, then one after the restore.
	assert.Equal(t, 1, rec.updates)
	assert.Equal(t, [][2]int{{320, 240}, {640, 480}}, rec.resizes)
	assert.Equal(t, [][2]int{{320, 240}, {640, 480}}, b.resized)
	w, h := e.GetFramebufferSize()
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
	assert.InDelta(t, 640.0/480.0, g.Renderer.AspectRatio(), 1e-6)
}

func TestEngineCancelledContext(t *testing.T) {
	rec := &recorder{}
	g := testGame(t, rec)
	p := &fakePlatform{}

	e, err := New(g, p, &fakeBackend{})
	require.NoError(t, err)
	require.NoError(t, e.Initialize())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, e.Run(ctx))
	assert.Zero(t, rec.updates)
	assert.True(t, p.shouldClose)
}

func TestEngineUpdateFailureStops(t *testing.T) {
	rec := &recorder{}
	g := testGame(t, rec)
	boom := errors.New("boom")
	g.FnUpdate = func(time.Duration) error { return boom }
	p := &fakePlatform{}

	e, err := New(g, p, &fakeBackend{})
	require.NoError(t, err)
	require.NoError(t, e.Initialize())
	assert.ErrorIs(t, e.Run(context.Background()), boom)
	assert.Zero(t, p.swaps)
}

func TestEngineDrivesCamera(t *testing.T) {
	rec := &recorder{}
	g := testGame(t, rec)
	g.SystemConfig = systems.SystemManagerConfig{
		Position: math.NewPoint(0, 0, 0),
		Distance: 2.5,
	}
	p := &fakePlatform{
		closeAfter: 3,
		events: [][]core.InputEvent{
			{{Kind: core.InputKey, Key: core.KEY_W, Pressed: true}},
		},
	}

	e, err := New(g, p, &fakeBackend{})
	require.NoError(t, err)
	require.NoError(t, e.Initialize())
	require.NoError(t, e.Run(context.Background()))

	// W held for two frames moves the camera along its view vector.
	cam := g.SystemManager.CameraSystem.GetDefault()
	assert.NotEqual(t, math.NewPoint(0, 0, 0), cam.Position)
}

func TestEngineRejectsInvalidConfig(t *testing.T) {
	_, err := New(&Game{}, &fakePlatform{}, &fakeBackend{})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	rec := &recorder{}
	g := testGame(t, rec)
	g.ApplicationConfig.LogLevel = "chatty"
	_, err = New(g, &fakePlatform{}, &fakeBackend{})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestStart(t *testing.T) {
	rec := &recorder{}
	g := testGame(t, rec)
	p := &fakePlatform{closeAfter: 3}
	b := &fakeBackend{}

	require.NoError(t, Start(context.Background(), g, p, b))
	assert.Equal(t, 2, rec.updates)
	assert.Equal(t, "shutdown", rec.calls[len(rec.calls)-1])
	assert.True(t, p.stopped)
	assert.True(t, b.shutdown)
}

func TestStartShutsDownAfterFailedInitialize(t *testing.T) {
	rec := &recorder{}
	g := testGame(t, rec)
	g.FnInitialize = func() error { return core.ErrContextInit }
	p := &fakePlatform{}

	assert.ErrorIs(t, Start(context.Background(), g, p, &fakeBackend{}), core.ErrContextInit)
	assert.True(t, p.started)
	assert.True(t, p.stopped)
	assert.Zero(t, rec.updates)
}

func TestEngineKeepsRunningAfterFailedShaderReload(t *testing.T) {
	var buf bytes.Buffer
	core.SetLogOutput(&buf)
	defer func() {
		core.SetLogOutput(os.Stderr)
		_ = core.SetLogLevel("info")
	}()

	rec := &recorder{}
	g := testGame(t, rec)
	g.ApplicationConfig.LogLevel = "debug"
	g.ApplicationConfig.Shaders.Watch = true
	vertex := filepath.Join(g.ApplicationConfig.Shaders.Dir, "shader_vertex.glsl")

	b := &fakeBackend{reloadErr: errors.New("compile failed")}
	deadline := time.Now().Add(5 * time.Second)
	p := &fakePlatform{onPump: func(p *fakePlatform, n int) {
		if n == 2 {
			require.NoError(t, os.WriteFile(vertex, []byte("void main() { }"), 0o644))
		}
		if b.reloads.Load() > 0 || time.Now().After(deadline) {
			p.shouldClose = true
		}
	}}

	require.NoError(t, Start(context.Background(), g, p, b))
	require.GreaterOrEqual(t, b.reloads.Load(), int32(1))
	assert.Contains(t, buf.String(), "keeping the previous program")
	assert.Greater(t, rec.updates, 1)
}
