package types

import (
	"github.com/Photon1c/ForagingTheoryv2/common/utils/vector"
)

// VizMessage is the frame read-back pushed to watchers once per tick.
// Positions are always the projected 3D coordinates: the renderer sees
// exactly what the foraging AI saw when it made its decisions.
type VizMessage struct {
	GameID        string
	Objects       []VizMessageObject
	Scores        []VizMessageScore
	FoodRemaining int
	TimeLeft      int
	GameOver      bool
}

type VizMessageObject struct {
	Id          string
	Type        string
	Kind        string `json:",omitempty"`
	Position    vector.Vector3
	Velocity    vector.Vector3
	Orientation vector.Quaternion
	Radius      float64
}

// VizMessageScore entries are ordered by agent id.
type VizMessageScore struct {
	AgentId string
	Name    string
	Score   int
}
