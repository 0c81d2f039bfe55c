package systems

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spaghettifunk/gllabs/engine/math"
)

// ObjectID names a drawable range of the uploaded index buffer.
type ObjectID uint8

const (
	ObjectCubeFaces ObjectID = iota
	ObjectCubeEdges
	ObjectAxes
	ObjectCubeCorner
	ObjectFan
	ObjectDigitZero
	ObjectDigitOne
	MaxObjectID
)

var objectNames = [...]string{
	ObjectCubeFaces:  "cube faces",
	ObjectCubeEdges:  "cube edges",
	ObjectAxes:       "axes",
	ObjectCubeCorner: "cube corner",
	ObjectFan:        "fan",
	ObjectDigitZero:  "digit zero",
	ObjectDigitOne:   "digit one",
}

func (id ObjectID) String() string {
	if id < MaxObjectID {
		return objectNames[id]
	}
	return fmt.Sprintf("object(%d)", uint8(id))
}

var (
	ErrSceneFrozen     = errors.New("scene is frozen")
	ErrDuplicateObject = errors.New("scene object already registered")
	ErrUnknownObject   = errors.New("unknown scene object")
	ErrInvalidObject   = errors.New("invalid scene object")
)

/**
 * @brief Describes a contiguous range of the index buffer drawn with one
 * primitive topology. FirstIndex counts indices, not bytes.
 */
type SceneObject struct {
	Name       string
	FirstIndex uint32
	IndexCount uint32
	Topology   math.Topology
}

// ByteOffset is the offset of the first index in a uint32 element buffer.
func (o SceneObject) ByteOffset() int {
	return int(o.FirstIndex) * 4
}

/**
 * @brief Registry of scene objects. Objects are registered while geometry is
 * uploaded; after Freeze the registry is read-only.
 */
type SceneSystem struct {
	objects map[ObjectID]SceneObject
	frozen  bool
}

func NewSceneSystem() *SceneSystem {
	return &SceneSystem{
		objects: make(map[ObjectID]SceneObject),
	}
}

// Register adds obj under id. An empty name defaults to the id's name.
func (s *SceneSystem) Register(id ObjectID, obj SceneObject) error {
	if s.frozen {
		return fmt.Errorf("register %s: %w", id, ErrSceneFrozen)
	}
	if _, ok := s.objects[id]; ok {
		return fmt.Errorf("register %s: %w", id, ErrDuplicateObject)
	}
	if obj.IndexCount == 0 {
		return fmt.Errorf("register %s: empty index range: %w", id, ErrInvalidObject)
	}
	if obj.Name == "" {
		obj.Name = id.String()
	}
	s.objects[id] = obj
	return nil
}

// Freeze makes the registry read-only.
func (s *SceneSystem) Freeze() {
	s.frozen = true
}

func (s *SceneSystem) Frozen() bool {
	return s.frozen
}

func (s *SceneSystem) Get(id ObjectID) (SceneObject, error) {
	obj, ok := s.objects[id]
	if !ok {
		return SceneObject{}, fmt.Errorf("%s: %w", id, ErrUnknownObject)
	}
	return obj, nil
}

// MustGet is Get for draw code, where a missing object is a programming error.
func (s *SceneSystem) MustGet(id ObjectID) SceneObject {
	obj, err := s.Get(id)
	if err != nil {
		panic(err)
	}
	return obj
}

// IDs returns the registered ids in ascending order.
func (s *SceneSystem) IDs() []ObjectID {
	ids := make([]ObjectID, 0, len(s.objects))
	for id := range s.objects {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (s *SceneSystem) Len() int {
	return len(s.objects)
}
