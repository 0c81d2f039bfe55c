package math

/**
 * @brief Generates `sides` points on an axis-aligned ellipse centred on (cx, cy)
 * in the z = 0 plane. Point i sits at the angle i * 360/sides degrees, measured
 * counter-clockwise from +x. The first point is not repeated at the end.
 *
 * @param sides The number of points, must be positive.
 * @param radiusH The horizontal radius.
 * @param radiusV The vertical radius.
 */
func Ellipse(sides int, radiusH, radiusV, cx, cy float32) []Vec4 {
	if sides <= 0 {
		return nil
	}
	step := 360.0 / float32(sides)
	out := make([]Vec4, sides)
	for i := 0; i < sides; i++ {
		theta := DegToRad(float32(i) * step)
		out[i] = NewPoint(kcos(theta)*radiusH+cx, ksin(theta)*radiusV+cy, 0)
	}
	return out
}

// Ring is a circle of the given radius around (cx, cy).
func Ring(sides int, radius, cx, cy float32) []Vec4 {
	return Ellipse(sides, radius, radius, cx, cy)
}

/**
 * @brief Generates the vertices of a filled circle drawn as a triangle fan: the
 * origin followed by `sides` rim points.
 */
func Fan(sides int, radius float32) []Vec4 {
	out := make([]Vec4, 0, max(sides, 0)+1)
	out = append(out, NewPoint(0, 0, 0))
	return append(out, Ring(sides, radius, 0, 0)...)
}

/**
 * @brief Index list for a vertex array produced by Fan. The centre comes first,
 * then every rim vertex, then the first rim vertex again to close the disc.
 * There are sides+2 indices, or none when sides <= 0.
 */
func FanIndices(sides int) []uint32 {
	if sides <= 0 {
		return nil
	}
	out := make([]uint32, 0, sides+2)
	for i := 0; i <= sides; i++ {
		out = append(out, uint32(i))
	}
	return append(out, 1)
}

/**
 * @brief Index list for a triangle strip joining two rings of `sides` vertices
 * each, stored back to back (outer ring first). Vertex j of the outer ring is
 * paired with vertex j of the inner ring; the strip is closed by repeating the
 * first pair. There are 2*(sides+1) indices.
 */
func RingStripIndices(sides int) []uint32 {
	n := uint32(sides)
	out := make([]uint32, 0, 2*(sides+1))
	for j := uint32(0); j < n; j++ {
		out = append(out, j, n+j)
	}
	return append(out, 0, n)
}
