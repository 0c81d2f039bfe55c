package shapes

import (
	"github.com/spaghettifunk/gllabs/engine/math"
)

const (
	// DigitHeight is half the height of a glyph.
	DigitHeight float32 = 0.3
	// DigitThickness is the stroke width of the zero.
	DigitThickness float32 = 0.05
	// DigitCount is the number of digits of the binary clock.
	DigitCount = 4
	// DigitStartX is the centre of the leftmost digit.
	DigitStartX float32 = -0.75
	// DigitSpacing separates two digit centres.
	DigitSpacing float32 = 0.5
)

/**
 * @brief A zero drawn as a triangle strip between two ellipses centred on
 * (cx, cy). The outer ellipse has radii (0.21, 0.3), the inner one is thinner
 * by DigitThickness on both axes. Outer ring vertices come first.
 */
func DigitZero(sides int, cx, cy float32) math.Mesh {
	width := DigitHeight * 0.7
	outer := math.Ellipse(sides, width, DigitHeight, cx, cy)
	inner := math.Ellipse(sides, width-DigitThickness, DigitHeight-DigitThickness, cx, cy)

	positions := append(outer, inner...)
	return math.Mesh{
		Positions: positions,
		Colours:   solid(len(positions), Red),
		Indices:   math.RingStripIndices(sides),
	}
}

/**
 * @brief A one drawn as a six vertex triangle strip: the stem and a flag
 * leaning to the left, centred on (cx, cy).
 */
func DigitOne(cx, cy float32) math.Mesh {
	l := DigitHeight * 0.2
	h := DigitHeight

	positions := []math.Vec4{
		math.NewPoint(-0.3*l+cx, -h+cy, 0),
		math.NewPoint(0.7*l+cx, -h+cy, 0),
		math.NewPoint(-0.3*l+cx, 0.7*h+cy, 0),
		math.NewPoint(0.7*l+cx, h+cy, 0),
		math.NewPoint(-0.3*l+cx, h+cy, 0),
		math.NewPoint(-2*l+cx, 0.5*h+cy, 0),
	}
	return math.Mesh{
		Positions: positions,
		Colours:   solid(len(positions), Blue),
		Indices:   sequence(len(positions)),
	}
}

/**
 * @brief Decodes the low four bits of seconds, most significant bit on the
 * left: digit i shows a one when bit 3-i is set.
 */
func BinaryDigits(seconds uint8) [DigitCount]bool {
	var out [DigitCount]bool
	for i := 0; i < DigitCount; i++ {
		out[i] = math.Bit(seconds, uint(DigitCount-1-i))
	}
	return out
}

// DigitX returns the horizontal centre of digit i.
func DigitX(i int) float32 {
	return DigitStartX + float32(i)*DigitSpacing
}
