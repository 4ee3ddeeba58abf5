package foraging

import (
	"strconv"

	"github.com/bytearena/ecs"

	"github.com/Photon1c/ForagingTheoryv2/common/utils/vector"
)

// NewEntityAgent spawns an agent at rest: grounded at position, facing
// the given direction, zero velocity, zero score.
func (game *ForagingGame) NewEntityAgent(position vector.Vector3, facing vector.Vector3) *ecs.Entity {

	agent := game.manager.NewEntity()

	return agent.
		AddComponent(game.physicalBodyComponent, &PhysicalBody{
			position:    position.Flatten(RestingHeight),
			velocity:    vector.MakeNullVector3(),
			orientation: vector.MakeQuaternionLookAtFlat(facing),
			radius:      agentBodyRadius,
		}).
		AddComponent(game.playerComponent, &Player{
			Name: "player-" + strconv.Itoa(int(agent.GetID())),
		}).
		AddComponent(game.steeringComponent, &Steering{}).
		AddComponent(game.renderComponent, &Render{
			type_:  "agent",
			static: false,
		})
}
