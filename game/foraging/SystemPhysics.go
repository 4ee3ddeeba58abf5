package foraging

import (
	"github.com/bytearena/ecs"

	"github.com/Photon1c/ForagingTheoryv2/common/utils/number"
	"github.com/Photon1c/ForagingTheoryv2/common/utils/vector"
)

// systemPhysics integrates one tick of motion: the jump arc on the
// vertical axis, the seeking velocity on the horizontal plane, then the
// arena-bounds clamp. It runs even for idle agents so an in-flight jump
// always comes back down.
func systemPhysics(game *ForagingGame, entityresult *ecs.QueryResult, dt float64) {

	physicalAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])
	playerAspect := game.CastPlayer(entityresult.Components[game.playerComponent])

	position := physicalAspect.GetPosition()

	if physicalAspect.IsJumping() {
		verticalVelocity := physicalAspect.GetVerticalVelocity() - gravity*dt
		height := position.GetY() + verticalVelocity*dt

		if height <= RestingHeight {
			// touched down
			height = RestingHeight
			physicalAspect.
				SetJumping(false).
				SetVerticalVelocity(0)
		} else {
			physicalAspect.SetVerticalVelocity(verticalVelocity)
		}

		position = position.SetY(height)
	} else {
		position = position.SetY(RestingHeight)
	}

	velocity := physicalAspect.GetVelocity()
	step := vector.MakeVector3(velocity.GetX()*dt, 0, velocity.GetZ()*dt)
	position = position.Add(step)

	mapSize := game.gameDescription.GetMapSize()
	position = position.
		SetX(number.ClampFloat(position.GetX(), -mapSize, mapSize)).
		SetZ(number.ClampFloat(position.GetZ(), -mapSize, mapSize))

	playerAspect.Stats.distanceTravelled += step.Mag()

	physicalAspect.SetPosition(position)
}
