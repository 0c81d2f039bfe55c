package digits

import (
	"testing"
	"time"

	"github.com/spaghettifunk/gllabs/engine/core"
	"github.com/spaghettifunk/gllabs/engine/math"
	"github.com/spaghettifunk/gllabs/engine/renderer"
	"github.com/spaghettifunk/gllabs/engine/renderer/renderertest"
	"github.com/spaghettifunk/gllabs/engine/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateTick(t *testing.T) {
	tests := []struct {
		name    string
		elapsed int64
		want    []string
	}{
		{"zero", 0, []string{"digit zero", "digit zero", "digit zero", "digit zero"}},
		{"five", 5, []string{"digit zero", "digit one", "digit zero", "digit one"}},
		{"fifteen", 15, []string{"digit one", "digit one", "digit one", "digit one"}},
		{"sixteen wraps the display", 16, []string{"digit zero", "digit zero", "digit zero", "digit zero"}},
		{"only the low byte counts", 256 + 9, []string{"digit one", "digit zero", "digit zero", "digit one"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s State
			s.Tick(tt.elapsed)
			got := make([]string, len(s.Ones))
			for i := range s.Ones {
				got[i] = s.Glyph(i).String()
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestModel(t *testing.T) {
	mdl := Model()
	require.NoError(t, mdl.Validate())
	require.Len(t, mdl.Parts, 2)

	zero, one := mdl.Parts[0].Object, mdl.Parts[1].Object
	assert.Equal(t, uint32(2*(ZeroSides+1)), zero.IndexCount)
	assert.Equal(t, zero.IndexCount, one.FirstIndex)
	assert.Equal(t, uint32(6), one.IndexCount)
	assert.Equal(t, math.TopologyTriangleStrip, one.Topology)

	// The one is appended after both rings of the zero.
	assert.Equal(t, uint32(2*ZeroSides), mdl.Mesh.Indices[one.FirstIndex])
}

func TestRenderPlacesEveryDigit(t *testing.T) {
	cfg := DefaultConfig()
	g := NewGame(&cfg)
	sm, err := systems.NewSystemManager(systems.SystemManagerConfig{})
	require.NoError(t, err)
	backend := renderertest.NewBackend()
	g.SystemManager = sm
	g.Renderer = renderer.New(backend, sm.SceneSystem, nil)

	now := time.Unix(0, 0)
	g.Clock = core.NewClockWithSource(func() time.Time { return now })
	g.Clock.Start()

	require.NoError(t, g.Initialize())
	sm.SceneSystem.Freeze()

	now = now.Add(6*time.Second + 500*time.Millisecond)
	g.Clock.Update()
	require.NoError(t, g.Update(0))
	assert.Equal(t, uint8(6), g.State.(*State).Seconds)

	backend.BeginFrame(math.Vec4{})
	require.NoError(t, g.Render(0))
	assert.Equal(t, []string{"digit zero", "digit one", "digit one", "digit zero"}, backend.Drawn())

	for i, call := range backend.Draws {
		origin := call.Model.MulVec4(math.NewPoint(0, 0, 0))
		assert.InDelta(t, -0.75+0.5*float64(i), origin.X, 1e-6)
		assert.False(t, call.RenderAsBlack)
	}
}
