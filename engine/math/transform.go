package math

/**
 * @brief An ordered list of elementary transforms building a model matrix.
 * Transforms are appended in the order they are applied to a vertex, so
 * Scale then Rotate then Translate yields T * R * S.
 *
 * The zero value is an empty chain whose matrix is the identity.
 */
type Transform struct {
	steps []Mat4
}

// NewTransform starts an empty chain.
func NewTransform() *Transform {
	return &Transform{}
}

// Then appends an arbitrary matrix applied after the current chain.
func (t *Transform) Then(mt Mat4) *Transform {
	t.steps = append(t.steps, mt)
	return t
}

func (t *Transform) Scale(sx, sy, sz float32) *Transform {
	return t.Then(NewMat4Scale(sx, sy, sz))
}

func (t *Transform) Translate(dx, dy, dz float32) *Transform {
	return t.Then(NewMat4Translation(dx, dy, dz))
}

func (t *Transform) RotateX(angleRadians float32) *Transform {
	return t.Then(NewMat4RotateX(angleRadians))
}

func (t *Transform) RotateY(angleRadians float32) *Transform {
	return t.Then(NewMat4RotateY(angleRadians))
}

func (t *Transform) RotateZ(angleRadians float32) *Transform {
	return t.Then(NewMat4RotateZ(angleRadians))
}

// Rotate appends a rotation around an arbitrary axis.
func (t *Transform) Rotate(angleRadians float32, axis Vec4) *Transform {
	return t.Then(NewMat4RotateAxis(angleRadians, axis))
}

/**
 * @brief Appends the Euler rotation X first, then Y, then Z; the resulting
 * matrix is Z(z) * Y(y) * X(x).
 */
func (t *Transform) Euler(x, y, z float32) *Transform {
	return t.RotateX(x).RotateY(y).RotateZ(z)
}

// Len returns the number of elementary transforms in the chain.
func (t *Transform) Len() int {
	return len(t.steps)
}

/**
 * @brief Returns the product of the chain, last appended step on the left.
 */
func (t *Transform) Matrix() Mat4 {
	out := NewMat4Identity()
	for _, s := range t.steps {
		out = s.Mul(out)
	}
	return out
}

// Apply transforms v by the chain.
func (t *Transform) Apply(v Vec4) Vec4 {
	return t.Matrix().MulVec4(v)
}
