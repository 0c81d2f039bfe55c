package shapes

import (
	"github.com/spaghettifunk/gllabs/engine/math"
)

var (
	Red    = math.NewVec4(1, 0, 0, 1)
	Green  = math.NewVec4(0, 1, 0, 1)
	Blue   = math.NewVec4(0, 0, 1, 1)
	Black  = math.NewVec4(0, 0, 0, 1)
	White  = math.NewVec4(1, 1, 1, 1)
	Orange = math.NewVec4(1, 0.5, 0, 1)
	Sky    = math.NewVec4(0, 0.5, 1, 1)
)

/**
 * @brief A filled circle for a triangle fan: red centre fading to a blue rim.
 */
func CircleFan(sides int, radius float32) math.Mesh {
	positions := math.Fan(sides, radius)
	colours := solid(len(positions), Blue)
	colours[0] = Red
	return math.Mesh{
		Positions: positions,
		Colours:   colours,
		Indices:   math.FanIndices(sides),
	}
}
