package arenaserver

import (
	"github.com/Photon1c/ForagingTheoryv2/common/types"
)

type TearDownCallback func() error

// EndReason describes why a run reached its terminal state.
type EndReason string

const (
	EndReasonDepleted EndReason = "depleted"
	EndReasonExpired  EndReason = "expired"
)

// GameResult is the payload published on the game:ended notification.
// It is emitted exactly once per run.
type GameResult struct {
	GameID        string                  `json:"gameid"`
	Reason        EndReason               `json:"reason"`
	Scores        []types.VizMessageScore `json:"scores"`
	FoodRemaining int                     `json:"foodremaining"`
	Ticks         int                     `json:"ticks"`
}
