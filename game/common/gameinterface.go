package common

import (
	"github.com/Photon1c/ForagingTheoryv2/common/types"
)

// GameInterface is what the arena server drives once per tick and
// reads back for the viz boundary.
type GameInterface interface {
	ImplementsGameInterface()
	Step(ticknum int, dt float64)
	FoodRemaining() int
	Scores() []types.VizMessageScore
	ProduceVizMessage() types.VizMessage
}
