package foraging

import (
	"github.com/Photon1c/ForagingTheoryv2/common/utils/vector"
)

// Food is a single-use point resource. Consumption is its only
// mutation; consumed items stay in the collection and are filtered out
// everywhere instead of being disposed.
type Food struct {
	kind  string
	color string

	consumed bool

	// hyper mode keeps the full 4D coordinate around; the projected
	// 3D position lives in the physical body and is what every
	// distance comparison and render read-back uses
	hyper         bool
	hyperPosition vector.Vector4
}

func (game *ForagingGame) CastFood(data interface{}) *Food {
	return data.(*Food)
}

func (f Food) GetKind() string {
	return f.kind
}

func (f Food) GetColor() string {
	return f.color
}

func (f Food) IsConsumed() bool {
	return f.consumed
}

// MarkConsumed is irreversible; there is no way to unset it.
func (f *Food) MarkConsumed() *Food {
	f.consumed = true
	return f
}

func (f Food) IsHyper() bool {
	return f.hyper
}

func (f Food) GetHyperPosition() vector.Vector4 {
	return f.hyperPosition
}
