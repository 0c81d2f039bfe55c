package shapes

import (
	"fmt"

	"github.com/spaghettifunk/gllabs/engine/math"
	"github.com/spaghettifunk/gllabs/engine/systems"
)

// Part is one named index range of a Model.
type Part struct {
	ID     systems.ObjectID
	Object systems.SceneObject
}

/**
 * @brief Geometry for a single vertex array plus the scene objects drawn
 * from it. Parts are recorded in the order their indices were appended.
 */
type Model struct {
	Mesh  math.Mesh
	Parts []Part
}

/**
 * @brief Appends a mesh as a new part. The mesh indices are local to it and
 * get offset by the number of vertices already in the model.
 */
func (mdl *Model) AddMesh(id systems.ObjectID, mesh math.Mesh, topology math.Topology) {
	base := uint32(len(mdl.Mesh.Positions))
	mdl.Mesh.Positions = append(mdl.Mesh.Positions, mesh.Positions...)
	mdl.Mesh.Colours = append(mdl.Mesh.Colours, mesh.Colours...)

	indices := make([]uint32, len(mesh.Indices))
	for i, idx := range mesh.Indices {
		indices[i] = base + idx
	}
	mdl.AddRange(id, indices, topology)
}

/**
 * @brief Appends a part whose indices address vertices already in the model.
 */
func (mdl *Model) AddRange(id systems.ObjectID, indices []uint32, topology math.Topology) {
	mdl.Parts = append(mdl.Parts, Part{
		ID: id,
		Object: systems.SceneObject{
			Name:       id.String(),
			FirstIndex: uint32(len(mdl.Mesh.Indices)),
			IndexCount: uint32(len(indices)),
			Topology:   topology,
		},
	})
	mdl.Mesh.Indices = append(mdl.Mesh.Indices, indices...)
}

// Validate checks that parallel arrays match and every index is in range.
func (mdl *Model) Validate() error {
	if len(mdl.Mesh.Positions) != len(mdl.Mesh.Colours) {
		return fmt.Errorf("model has %d positions but %d colours", len(mdl.Mesh.Positions), len(mdl.Mesh.Colours))
	}
	n := uint32(len(mdl.Mesh.Positions))
	for i, idx := range mdl.Mesh.Indices {
		if idx >= n {
			return fmt.Errorf("index %d at position %d is out of range for %d vertices", idx, i, n)
		}
	}
	return nil
}

// Register records every part in the scene.
func (mdl *Model) Register(scene *systems.SceneSystem) error {
	for _, p := range mdl.Parts {
		if err := scene.Register(p.ID, p.Object); err != nil {
			return err
		}
	}
	return nil
}

func solid(n int, c math.Vec4) []math.Vec4 {
	out := make([]math.Vec4, n)
	for i := range out {
		out[i] = c
	}
	return out
}

func sequence(n int) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		out[i] = uint32(i)
	}
	return out
}
