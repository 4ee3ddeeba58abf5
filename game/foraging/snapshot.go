package foraging

import (
	"github.com/Photon1c/ForagingTheoryv2/common/utils/vector"
)

// AgentSnapshot is a value copy of one agent's state; callers may keep
// snapshots from previous ticks around, nothing in here aliases live
// world state.
type AgentSnapshot struct {
	Id               int
	Position         vector.Vector3
	Velocity         vector.Vector3
	Orientation      vector.Quaternion
	Score            int
	Jumping          bool
	VerticalVelocity float64
}

type FoodSnapshot struct {
	Id       int
	Position vector.Vector3
	Kind     string
	Consumed bool
}

// AgentSnapshots returns the agents in id order.
func (game *ForagingGame) AgentSnapshots() []AgentSnapshot {
	snapshots := make([]AgentSnapshot, 0)

	for _, entityresult := range game.agentsInOrder() {
		physicalAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])
		playerAspect := game.CastPlayer(entityresult.Components[game.playerComponent])

		snapshots = append(snapshots, AgentSnapshot{
			Id:               int(entityresult.Entity.GetID()),
			Position:         physicalAspect.GetPosition(),
			Velocity:         physicalAspect.GetVelocity(),
			Orientation:      physicalAspect.GetOrientation(),
			Score:            playerAspect.Score,
			Jumping:          physicalAspect.IsJumping(),
			VerticalVelocity: physicalAspect.GetVerticalVelocity(),
		})
	}

	return snapshots
}

// FoodSnapshots returns every food item, consumed ones included, in id
// order; positions are the projected 3D coordinates.
func (game *ForagingGame) FoodSnapshots() []FoodSnapshot {
	snapshots := make([]FoodSnapshot, 0)

	for _, entityresult := range game.foodsInOrder() {
		physicalAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])
		foodAspect := game.CastFood(entityresult.Components[game.foodComponent])

		snapshots = append(snapshots, FoodSnapshot{
			Id:       int(entityresult.Entity.GetID()),
			Position: physicalAspect.GetPosition(),
			Kind:     foodAspect.GetKind(),
			Consumed: foodAspect.IsConsumed(),
		})
	}

	return snapshots
}
