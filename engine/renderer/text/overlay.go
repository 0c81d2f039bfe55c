package text

import (
	"fmt"
	"strings"

	"github.com/spaghettifunk/gllabs/engine/math"
)

// Anchor is the window corner an Item is laid out from.
type Anchor uint8

const (
	TopLeft Anchor = iota
	TopRight
	BottomLeft
	BottomRight
)

/**
 * @brief One line of overlay text. Line counts rows away from the anchor
 * corner, starting at 0. Right anchored items start Columns character cells from the right
 * edge; zero means one more than the text length.
 */
type Item struct {
	Text    string
	Anchor  Anchor
	Line    int
	Columns int
}

func (it Item) columns() int {
	if it.Columns > 0 {
		return it.Columns
	}
	return len(it.Text) + 1
}

type numberFormat struct {
	matrix string
	vector string
}

var (
	shortDigits = numberFormat{matrix: "%+0.2f", vector: "%+0.2f"}
	moreDigits  = numberFormat{matrix: "%+0.2f", vector: "%+7.1f"}
)

func formatRow(format string, vs ...float32) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmt.Sprintf(format, v)
	}
	return "[ " + strings.Join(parts, "  ") + " ]"
}

func components(v math.Vec4) [4]float32 {
	return [4]float32{v.X, v.Y, v.Z, v.W}
}

func product(mt math.Mat4, v math.Vec4, nf numberFormat, divW bool) []string {
	res := mt.MulVec4(v)
	in, out := components(v), components(res)
	ndc := components(res.DivW())

	lines := make([]string, 4)
	for r := 0; r < 4; r++ {
		row := mt.Row(r)
		eq, arrow := "   ", "    "
		if r == 1 {
			eq, arrow = " = ", " => "
		}
		line := formatRow(nf.matrix, row.X, row.Y, row.Z, row.W) +
			formatRow(nf.matrix, in[r]) + eq + formatRow(nf.vector, out[r])
		if divW {
			line += arrow + formatRow(nf.matrix, ndc[r])
		}
		lines[r] = line
	}
	return lines
}

/**
 * @brief Formats the matrix-vector product M*v over four rows, the way the
 * overlay prints each stage of the vertex pipeline.
 */
func MatrixVectorProduct(mt math.Mat4, v math.Vec4) []string {
	return product(mt, v, shortDigits, false)
}

// MatrixVectorProductMoreDigits prints the result with room for pixel values.
func MatrixVectorProductMoreDigits(mt math.Mat4, v math.Vec4) []string {
	return product(mt, v, moreDigits, false)
}

// MatrixVectorProductDivW appends the result divided by its w.
func MatrixVectorProductDivW(mt math.Mat4, v math.Vec4) []string {
	return product(mt, v, shortDigits, true)
}

var arrowShort = []string{
	"                                        |  ",
	"                            .-----------'  ",
	"                            V              ",
}

var arrowLong = []string{
	"                                                       |  ",
	"                            .--------------------------'  ",
	"                            V                           ",
}

func block(start int, lines ...string) []Item {
	out := make([]Item, len(lines))
	for i, l := range lines {
		out[i] = Item{Text: l, Anchor: TopLeft, Line: start + i}
	}
	return out
}

/**
 * @brief Lays out the model, world, camera, NDC and pixel coordinates of
 * pModel. width and height are the framebuffer size in pixels.
 */
func ModelViewProjection(projection, view, model math.Mat4, pModel math.Vec4, width, height int) []Item {
	pWorld := model.MulVec4(pModel)
	pCamera := view.MulVec4(pWorld)
	pNDC := projection.MulVec4(pCamera).DivW()

	viewport := math.NewMat4Viewport(
		math.NewVec2(-1, -1), math.NewVec2(1, 1),
		math.NewVec2(0, 0), math.NewVec2(float32(width), float32(height)),
	)

	var items []Item
	items = append(items, block(0, " Model matrix             Model     In World Coords.")...)
	items = append(items, block(1, MatrixVectorProduct(model, pModel)...)...)
	items = append(items, block(5, arrowShort...)...)

	items = append(items, block(8, " View matrix              World     In Camera Coords.")...)
	items = append(items, block(9, MatrixVectorProduct(view, pWorld)...)...)
	items = append(items, block(13, arrowShort...)...)

	items = append(items, block(16, " Projection matrix        Camera                    In NDC")...)
	items = append(items, block(17, MatrixVectorProductDivW(projection, pCamera)...)...)
	items = append(items, block(21, arrowLong...)...)

	items = append(items, block(24, " Viewport matrix           NDC      In Pixel Coords.")...)
	items = append(items, block(25, MatrixVectorProductMoreDigits(viewport, pNDC)...)...)
	return items
}

// EulerAngles names the rotation applied to the animated cube.
func EulerAngles(x, y, z float32) Item {
	return Item{
		Text:   fmt.Sprintf("Euler Angles rotation matrix = Z(%.2f)*Y(%.2f)*X(%.2f)", z, y, x),
		Anchor: BottomLeft,
	}
}

// ProjectionName shows which projection is active.
func ProjectionName(perspective bool) Item {
	name := "Orthographic"
	if perspective {
		name = "Perspective"
	}
	return Item{Text: name, Anchor: BottomRight, Columns: 13}
}

// FramesPerSecond shows a preformatted rate in the top right corner.
func FramesPerSecond(label string) Item {
	return Item{Text: label, Anchor: TopRight}
}
