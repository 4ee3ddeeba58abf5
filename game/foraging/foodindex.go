package foraging

import (
	"github.com/bytearena/ecs"
	"github.com/dhconnelly/rtreego"

	"github.com/Photon1c/ForagingTheoryv2/common/utils/vector"
)

// FoodIndex answers nearest-available-food queries for the seeking
// system. Ordering of insertions matters: when two items are exactly
// equidistant the index must return the one inserted first. The linear
// index honors that contract literally; the r-tree variant trades it
// for scan time on large food counts, where randomized positions make
// exact ties a non-concern.
type FoodIndex interface {
	Insert(id ecs.EntityID, position vector.Vector3)
	Remove(id ecs.EntityID)
	Nearest(from vector.Vector3) (ecs.EntityID, bool)
}

///////////////////////////////////////////////////////////////////////
// Linear scan index
///////////////////////////////////////////////////////////////////////

type linearFoodEntry struct {
	id       ecs.EntityID
	position vector.Vector3
	removed  bool
}

type LinearFoodIndex struct {
	entries []*linearFoodEntry
	byId    map[ecs.EntityID]*linearFoodEntry
}

func NewLinearFoodIndex() *LinearFoodIndex {
	return &LinearFoodIndex{
		entries: make([]*linearFoodEntry, 0),
		byId:    make(map[ecs.EntityID]*linearFoodEntry),
	}
}

func (index *LinearFoodIndex) Insert(id ecs.EntityID, position vector.Vector3) {
	entry := &linearFoodEntry{
		id:       id,
		position: position,
	}
	index.entries = append(index.entries, entry)
	index.byId[id] = entry
}

func (index *LinearFoodIndex) Remove(id ecs.EntityID) {
	if entry, ok := index.byId[id]; ok {
		entry.removed = true
		delete(index.byId, id)
	}
}

func (index *LinearFoodIndex) Nearest(from vector.Vector3) (ecs.EntityID, bool) {
	found := false
	var nearest ecs.EntityID
	var nearestDistSq float64

	for _, entry := range index.entries {
		if entry.removed {
			continue
		}

		// strict < keeps the first minimum encountered: insertion
		// order is the tie-break
		distSq := from.DistanceSqTo(entry.position)
		if !found || distSq < nearestDistSq {
			found = true
			nearest = entry.id
			nearestDistSq = distSq
		}
	}

	return nearest, found
}

///////////////////////////////////////////////////////////////////////
// R-tree index
///////////////////////////////////////////////////////////////////////

// rects are point-sized: NearestNeighbor ranks by distance to the
// rect, and a degenerate rect makes that ordering coincide with the
// distance to the food position itself.
const foodRectTolerance = 1e-9

type foodSpatial struct {
	id     ecs.EntityID
	bounds rtreego.Rect
}

func (spatial *foodSpatial) Bounds() rtreego.Rect {
	return spatial.bounds
}

func foodSpatialComparator(obj1, obj2 rtreego.Spatial) bool {
	sp1 := obj1.(*foodSpatial)
	sp2 := obj2.(*foodSpatial)

	return sp1.id == sp2.id
}

type RtreeFoodIndex struct {
	tree *rtreego.Rtree
	byId map[ecs.EntityID]*foodSpatial
}

func NewRtreeFoodIndex() *RtreeFoodIndex {
	return &RtreeFoodIndex{
		tree: rtreego.NewTree(3, 25, 50),
		byId: make(map[ecs.EntityID]*foodSpatial),
	}
}

func (index *RtreeFoodIndex) Insert(id ecs.EntityID, position vector.Vector3) {
	x, y, z := position.Get()
	spatial := &foodSpatial{
		id:     id,
		bounds: rtreego.Point{x, y, z}.ToRect(foodRectTolerance),
	}

	index.tree.Insert(spatial)
	index.byId[id] = spatial
}

func (index *RtreeFoodIndex) Remove(id ecs.EntityID) {
	if spatial, ok := index.byId[id]; ok {
		index.tree.DeleteWithComparator(spatial, foodSpatialComparator)
		delete(index.byId, id)
	}
}

func (index *RtreeFoodIndex) Nearest(from vector.Vector3) (ecs.EntityID, bool) {
	x, y, z := from.Get()
	spatial := index.tree.NearestNeighbor(rtreego.Point{x, y, z})

	if spatial == nil {
		return 0, false
	}

	return spatial.(*foodSpatial).id, true
}
