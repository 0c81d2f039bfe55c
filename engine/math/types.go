package math

// Vec2 represents a 2D vector
type Vec2 struct {
	X, Y float32
}

// Vec4 represents a 4D vector in homogeneous coordinates.
// Points carry W = 1 and directions W = 0.
type Vec4 struct {
	X, Y, Z, W float32
}

/**
 * @brief a 4x4 matrix, used for model, view, projection and viewport transforms.
 * Elements are stored column-major, the same layout OpenGL expects when a
 * uniform is uploaded without transposition: the element on row r and
 * column c lives at Data[c*4+r].
 */
type Mat4 struct {
	/** @brief The matrix elements */
	Data [16]float32
}

// Topology is the primitive assembly mode used to interpret an index range.
type Topology uint8

const (
	TopologyTriangles Topology = iota
	TopologyTriangleStrip
	TopologyTriangleFan
	TopologyLines
	TopologyPoints
)

func (t Topology) String() string {
	switch t {
	case TopologyTriangles:
		return "triangles"
	case TopologyTriangleStrip:
		return "triangle strip"
	case TopologyTriangleFan:
		return "triangle fan"
	case TopologyLines:
		return "lines"
	case TopologyPoints:
		return "points"
	default:
		return "unknown"
	}
}

/**
 * @brief Vertex and index data ready to be uploaded to the GPU. Positions and
 * Colours are parallel arrays, one entry per vertex.
 */
type Mesh struct {
	Positions []Vec4
	Colours   []Vec4
	Indices   []uint32
}

// Flatten returns the components of vs laid out as x, y, z, w tuples.
func Flatten(vs []Vec4) []float32 {
	out := make([]float32, 0, len(vs)*4)
	for _, v := range vs {
		out = append(out, v.X, v.Y, v.Z, v.W)
	}
	return out
}
