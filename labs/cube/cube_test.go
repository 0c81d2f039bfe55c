package cube

import (
	"image/color"
	"testing"

	"github.com/spaghettifunk/gllabs/engine/core"
	"github.com/spaghettifunk/gllabs/engine/math"
	"github.com/spaghettifunk/gllabs/engine/renderer"
	"github.com/spaghettifunk/gllabs/engine/renderer/renderertest"
	"github.com/spaghettifunk/gllabs/engine/renderer/text"
	"github.com/spaghettifunk/gllabs/engine/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-5

func TestStateHandleKey(t *testing.T) {
	tests := []struct {
		name        string
		keys        []core.KeyCode
		mods        core.Mods
		x, y, z     float32
		perspective bool
		showInfo    bool
	}{
		{"x", []core.KeyCode{core.KEY_X}, 0, EulerStep, 0, 0, true, true},
		{"shift x", []core.KeyCode{core.KEY_X}, core.ModShift, -EulerStep, 0, 0, true, true},
		{"y twice", []core.KeyCode{core.KEY_Y, core.KEY_Y}, 0, 0, 2 * EulerStep, 0, true, true},
		{"shift control z", []core.KeyCode{core.KEY_Z}, core.ModShift | core.ModControl, 0, 0, -EulerStep, true, true},
		{"space resets", []core.KeyCode{core.KEY_X, core.KEY_Z, core.KEY_SPACE}, 0, 0, 0, 0, true, true},
		{"orthographic", []core.KeyCode{core.KEY_O}, 0, 0, 0, 0, false, true},
		{"back to perspective", []core.KeyCode{core.KEY_O, core.KEY_P}, 0, 0, 0, 0, true, true},
		{"hide info", []core.KeyCode{core.KEY_H}, 0, 0, 0, 0, true, false},
		{"show info again", []core.KeyCode{core.KEY_H, core.KEY_H}, 0, 0, 0, 0, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState()
			for _, k := range tt.keys {
				assert.True(t, s.HandleKey(k, tt.mods))
			}
			assert.InDelta(t, tt.x, s.AngleX, tolerance)
			assert.InDelta(t, tt.y, s.AngleY, tolerance)
			assert.InDelta(t, tt.z, s.AngleZ, tolerance)
			assert.Equal(t, tt.perspective, s.Perspective)
			assert.Equal(t, tt.showInfo, s.ShowInfo)
		})
	}

	assert.False(t, NewState().HandleKey(core.KEY_Q, 0))
}

func TestStateProjection(t *testing.T) {
	s := NewState()

	t.Run("perspective maps the near plane to -1", func(t *testing.T) {
		p := s.Projection(2.5, 1).MulVec4(math.NewPoint(0, 0, NearPlane)).DivW()
		assert.InDelta(t, -1, p.Z, tolerance)
		f := s.Projection(2.5, 1).MulVec4(math.NewPoint(0, 0, FarPlane)).DivW()
		assert.InDelta(t, 1, f.Z, tolerance)
	})

	t.Run("orthographic box follows the distance", func(t *testing.T) {
		s.Perspective = false
		// t = 1.5 * 5 / 2.5 = 3, r = 3 * 2 = 6
		p := s.Projection(5, 2).MulVec4(math.NewPoint(6, 3, NearPlane))
		assert.True(t, p.Compare(math.NewPoint(1, 1, -1), tolerance), "got %v", p)
	})
}

func TestStateInstances(t *testing.T) {
	s := NewState()
	instances := s.Instances()

	assert.True(t, instances[0].Compare(math.NewMat4Identity(), 0))

	got := instances[1].MulVec4(ProbePoint)
	want := math.NewPoint(0.9619398, 0.4347369, -1.8966767)
	assert.True(t, got.Compare(want, tolerance), "got %v", got)

	s.AngleZ = math.HalfPi
	got = s.Instances()[2].MulVec4(math.NewPoint(1, 0, 0))
	assert.True(t, got.Compare(math.NewPoint(-2, 1, 0), tolerance), "got %v", got)
}

func newTestGame(t *testing.T) (*CubeGame, *renderertest.Backend) {
	t.Helper()
	cfg := DefaultConfig()
	g := NewGame(&cfg)

	sm, err := systems.NewSystemManager(g.SystemConfig)
	require.NoError(t, err)
	backend := renderertest.NewBackend()
	g.SystemManager = sm
	g.Events = core.NewEventBus()
	g.Metrics = core.NewMetrics()
	g.Renderer = renderer.New(backend, sm.SceneSystem, text.NewRasterizer(text.NewBasicFace(color.Black)))
	g.Renderer.OnResize(Width, Height)

	require.NoError(t, g.Initialize())
	sm.SceneSystem.Freeze()
	return g, backend
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.True(t, cfg.DepthTest)
	assert.Equal(t, Width, cfg.Window.Width)
	assert.True(t, cfg.Overlay.Show)
}

func TestRenderDrawSequence(t *testing.T) {
	g, backend := newTestGame(t)

	backend.BeginFrame(math.Vec4{})
	require.NoError(t, g.Render(0))

	cube := []string{"cube faces", "axes", "cube edges"}
	var want []string
	want = append(want, cube...)
	want = append(want, cube...)
	want = append(want, cube...)
	want = append(want, "cube corner", "axes")
	assert.Equal(t, want, backend.Drawn())

	// Faces in colour, edges in black.
	assert.False(t, backend.Draws[0].RenderAsBlack)
	assert.Equal(t, AxesLineWidth, backend.Draws[1].LineWidth)
	assert.True(t, backend.Draws[2].RenderAsBlack)

	corner := backend.Draws[9]
	assert.Equal(t, CornerPointSize, corner.PointSize)
	assert.Equal(t, uint32(66), corner.Object.FirstIndex)

	world := backend.Draws[10]
	assert.True(t, world.Model.Compare(math.NewMat4Identity(), 0))
	assert.Equal(t, WorldAxesLineWidth, world.LineWidth)
	assert.False(t, world.RenderAsBlack)

	require.Len(t, backend.Overlays, 1)
	assert.Equal(t, Width, backend.Overlays[0].Rect.Dx())
}

func TestRenderUsesTheCamera(t *testing.T) {
	g, backend := newTestGame(t)
	cam := g.SystemManager.ActiveCamera()
	assert.NotSame(t, g.SystemManager.CameraSystem.GetDefault(), cam)
	assert.Equal(t, uint16(1), g.SystemManager.CameraSystem.Lookup[WorldCameraName].ReferenceCount)

	backend.BeginFrame(math.Vec4{})
	require.NoError(t, g.Render(0))
	// The camera sits at the origin of camera space.
	eye := backend.Draws[0].View.MulVec4(FirstCameraPosition)
	assert.True(t, eye.Compare(math.NewPoint(0, 0, 0), tolerance), "got %v", eye)
	assert.InDelta(t, FirstCameraDistance, cam.Distance, tolerance)
}

func TestKeyEventsDriveTheState(t *testing.T) {
	g, backend := newTestGame(t)

	g.Events.Fire(core.EVENT_CODE_KEY_PRESSED, nil, core.EventContext{Key: core.KEY_Y, Mods: core.ModShift})
	g.Events.Fire(core.EVENT_CODE_KEY_PRESSED, nil, core.EventContext{Key: core.KEY_O})
	g.Events.Fire(core.EVENT_CODE_KEY_PRESSED, nil, core.EventContext{Key: core.KEY_H})

	state := g.State.(*gameState)
	assert.InDelta(t, -EulerStep, state.AngleY, tolerance)
	assert.False(t, state.Perspective)

	backend.BeginFrame(math.Vec4{})
	require.NoError(t, g.Render(0))
	assert.Empty(t, backend.Overlays)

	require.NoError(t, g.Shutdown())
	assert.NotContains(t, g.SystemManager.CameraSystem.Lookup, WorldCameraName)
	g.Events.Fire(core.EVENT_CODE_KEY_PRESSED, nil, core.EventContext{Key: core.KEY_X})
	assert.Zero(t, state.AngleX)
}
