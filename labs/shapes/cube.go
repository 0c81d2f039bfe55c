package shapes

import (
	"github.com/spaghettifunk/gllabs/engine/math"
	"github.com/spaghettifunk/gllabs/engine/systems"
)

// CornerVertex is the cube vertex at model coordinates (0.5, 0.5, 0.5).
const CornerVertex uint32 = 3

var cubeFaces = []uint32{
	0, 1, 2, // front
	7, 6, 5, // back
	3, 2, 6, // right
	4, 0, 3, // top
	4, 5, 1, // left
	1, 5, 6, // bottom
	0, 2, 3, // front
	7, 5, 4, // back
	3, 6, 7, // right
	4, 3, 7, // top
	4, 1, 0, // left
	1, 6, 2, // bottom
}

var cubeEdges = []uint32{
	0, 1,
	1, 2,
	2, 3,
	3, 0,
	0, 4,
	4, 7,
	7, 6,
	6, 2,
	6, 5,
	5, 4,
	5, 1,
	7, 3,
}

var axesLines = []uint32{8, 9, 10, 11, 12, 13}

/**
 * @brief The unit cube centred on the origin plus the model axes, in one
 * vertex array of 14 vertices: 8 corners then the endpoints of the x, y and
 * z axes. Parts: faces (36 indices, triangles), edges (24, lines), axes (6,
 * lines) and the corner point on CornerVertex.
 */
func Cube() Model {
	positions := []math.Vec4{
		math.NewPoint(-0.5, 0.5, 0.5),
		math.NewPoint(-0.5, -0.5, 0.5),
		math.NewPoint(0.5, -0.5, 0.5),
		math.NewPoint(0.5, 0.5, 0.5),
		math.NewPoint(-0.5, 0.5, -0.5),
		math.NewPoint(-0.5, -0.5, -0.5),
		math.NewPoint(0.5, -0.5, -0.5),
		math.NewPoint(0.5, 0.5, -0.5),
		math.NewPoint(0, 0, 0),
		math.NewPoint(1, 0, 0),
		math.NewPoint(0, 0, 0),
		math.NewPoint(0, 1, 0),
		math.NewPoint(0, 0, 0),
		math.NewPoint(0, 0, 1),
	}
	colours := []math.Vec4{
		Orange, Orange, Sky, Sky,
		Orange, Orange, Sky, Sky,
		Red, Red,
		Green, Green,
		Blue, Blue,
	}

	mdl := Model{Mesh: math.Mesh{Positions: positions, Colours: colours}}
	mdl.AddRange(systems.ObjectCubeFaces, cubeFaces, math.TopologyTriangles)
	mdl.AddRange(systems.ObjectCubeEdges, cubeEdges, math.TopologyLines)
	mdl.AddRange(systems.ObjectAxes, axesLines, math.TopologyLines)
	mdl.AddRange(systems.ObjectCubeCorner, []uint32{CornerVertex}, math.TopologyPoints)
	return mdl
}
