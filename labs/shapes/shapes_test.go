package shapes

import (
	"testing"

	"github.com/spaghettifunk/gllabs/engine/math"
	"github.com/spaghettifunk/gllabs/engine/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertVec4(t *testing.T, want, got math.Vec4) {
	t.Helper()
	assert.True(t, want.Compare(got, 1e-5), "want %v, got %v", want, got)
}

func TestDigitZero(t *testing.T) {
	const sides = 16
	mesh := DigitZero(sides, -0.75, 0)

	require.Len(t, mesh.Positions, 2*sides)
	require.Len(t, mesh.Colours, 2*sides)
	require.Len(t, mesh.Indices, 2*(sides+1))

	assertVec4(t, math.NewPoint(-0.54, 0, 0), mesh.Positions[0])
	assertVec4(t, math.NewPoint(-0.75, 0.3, 0), mesh.Positions[sides/4])
	assertVec4(t, math.NewPoint(-0.59, 0, 0), mesh.Positions[sides])
	assertVec4(t, math.NewPoint(-0.75, 0.25, 0), mesh.Positions[sides+sides/4])

	for _, c := range mesh.Colours {
		assert.Equal(t, Red, c)
	}
	assert.Equal(t, []uint32{0, 16, 1, 17}, mesh.Indices[:4])
	assert.Equal(t, []uint32{0, 16}, mesh.Indices[32:])
}

func TestDigitOne(t *testing.T) {
	mesh := DigitOne(0.25, 0)

	require.Len(t, mesh.Positions, 6)
	assertVec4(t, math.NewPoint(0.25-0.018, -0.3, 0), mesh.Positions[0])
	assertVec4(t, math.NewPoint(0.25+0.042, 0.3, 0), mesh.Positions[3])
	assertVec4(t, math.NewPoint(0.25-0.12, 0.15, 0), mesh.Positions[5])
	assert.Equal(t, []uint32{0, 1, 2, 3, 4, 5}, mesh.Indices)
	for _, c := range mesh.Colours {
		assert.Equal(t, Blue, c)
	}
}

func TestBinaryDigits(t *testing.T) {
	tests := []struct {
		seconds uint8
		want    [DigitCount]bool
	}{
		{0, [4]bool{false, false, false, false}},
		{1, [4]bool{false, false, false, true}},
		{2, [4]bool{false, false, true, false}},
		{8, [4]bool{true, false, false, false}},
		{13, [4]bool{true, true, false, true}},
		{15, [4]bool{true, true, true, true}},
		{16, [4]bool{false, false, false, false}},
		{255, [4]bool{true, true, true, true}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BinaryDigits(tt.seconds), "seconds=%d", tt.seconds)
	}

	assert.Equal(t, float32(-0.75), DigitX(0))
	assert.Equal(t, float32(0.75), DigitX(3))
}

func TestCircleFan(t *testing.T) {
	mesh := CircleFan(16, 0.7)

	require.Len(t, mesh.Positions, 17)
	assert.Equal(t, Red, mesh.Colours[0])
	assert.Equal(t, Blue, mesh.Colours[16])
	assert.Len(t, mesh.Indices, 18)
}

func TestCube(t *testing.T) {
	cube := Cube()
	require.NoError(t, cube.Validate())

	require.Len(t, cube.Mesh.Positions, 14)
	require.Len(t, cube.Mesh.Indices, 67)
	assertVec4(t, math.NewPoint(0.5, 0.5, 0.5), cube.Mesh.Positions[CornerVertex])

	scene := systems.NewSceneSystem()
	require.NoError(t, cube.Register(scene))
	scene.Freeze()

	tests := []struct {
		id       systems.ObjectID
		first    uint32
		count    uint32
		topology math.Topology
	}{
		{systems.ObjectCubeFaces, 0, 36, math.TopologyTriangles},
		{systems.ObjectCubeEdges, 36, 24, math.TopologyLines},
		{systems.ObjectAxes, 60, 6, math.TopologyLines},
		{systems.ObjectCubeCorner, 66, 1, math.TopologyPoints},
	}
	for _, tt := range tests {
		t.Run(tt.id.String(), func(t *testing.T) {
			obj := scene.MustGet(tt.id)
			assert.Equal(t, tt.first, obj.FirstIndex)
			assert.Equal(t, tt.count, obj.IndexCount)
			assert.Equal(t, tt.topology, obj.Topology)
		})
	}
	assert.Equal(t, CornerVertex, cube.Mesh.Indices[66])

	// Every face triangle uses corner vertices only.
	for _, idx := range cube.Mesh.Indices[:36] {
		assert.Less(t, idx, uint32(8))
	}
}

func TestModelAddMesh(t *testing.T) {
	var mdl Model
	mdl.AddMesh(systems.ObjectDigitZero, DigitZero(8, 0, 0), math.TopologyTriangleStrip)
	mdl.AddMesh(systems.ObjectDigitOne, DigitOne(0, 0), math.TopologyTriangleStrip)
	require.NoError(t, mdl.Validate())

	require.Len(t, mdl.Parts, 2)
	one := mdl.Parts[1].Object
	assert.Equal(t, uint32(18), one.FirstIndex)
	assert.Equal(t, uint32(6), one.IndexCount)
	assert.Equal(t, uint32(16), mdl.Mesh.Indices[one.FirstIndex])

	mdl.Mesh.Indices = append(mdl.Mesh.Indices, 99)
	assert.Error(t, mdl.Validate())
}
