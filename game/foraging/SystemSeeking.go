package foraging

import (
	"github.com/bytearena/ecs"

	commontypes "github.com/Photon1c/ForagingTheoryv2/common/types"
	"github.com/Photon1c/ForagingTheoryv2/common/utils/vector"
)

// systemSeeking picks the agent's target and sets its horizontal
// velocity and orientation for this tick. Vertical motion is the
// business of systemPhysics; consumption of systemConsumption.
func systemSeeking(game *ForagingGame, entityresult *ecs.QueryResult, dt float64) {

	physicalAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])
	steeringAspect := game.CastSteering(entityresult.Components[game.steeringComponent])
	playerAspect := game.CastPlayer(entityresult.Components[game.playerComponent])

	position := physicalAspect.GetPosition()

	targetId, ok := game.foodIndex.Nearest(position)
	if !ok {
		// nothing left to forage; the agent idles where it stands
		physicalAspect.SetVelocity(vector.MakeNullVector3())
		steeringAspect.ClearTarget()
		return
	}

	steeringAspect.SetTarget(targetId)

	targetResult := game.getEntity(targetId, game.physicalBodyComponent)
	if targetResult == nil {
		physicalAspect.SetVelocity(vector.MakeNullVector3())
		steeringAspect.ClearTarget()
		return
	}

	targetPosition := game.foodPosition(targetResult)
	direction := targetPosition.Sub(position)

	if direction.MagSq() < seekEpsilonSq {
		// effectively on top of the target already; hold still, the
		// consumption check still runs this tick
		physicalAspect.SetVelocity(vector.MakeNullVector3())
		return
	}

	if game.gameDescription.GetMode() == commontypes.GameModeGround {
		maybeTriggerJump(physicalAspect, playerAspect, position, targetPosition)
	}

	speed := baseSpeed + game.rng.Float64()*speedJitter
	heading := direction.Normalize()

	physicalAspect.SetVelocity(vector.MakeVector3(
		heading.GetX()*speed,
		0,
		heading.GetZ()*speed,
	))

	// turn toward the travel direction, a fixed fraction per tick,
	// always flat: the look target sits at the agent's own height
	flatDirection := direction.Flatten(0)
	if !flatDirection.IsNull() {
		physicalAspect.SetOrientation(
			physicalAspect.GetOrientation().Slerp(
				vector.MakeQuaternionLookAtFlat(direction),
				orientationSlerpFactor,
			),
		)
	}
}

func maybeTriggerJump(physicalAspect *PhysicalBody, playerAspect *Player, position vector.Vector3, targetPosition vector.Vector3) {

	if physicalAspect.IsJumping() {
		return
	}

	vertical := targetPosition.GetY() - position.GetY()
	if vertical <= jumpTriggerHeight {
		return
	}

	horizontalSq := targetPosition.Flatten(position.GetY()).DistanceSqTo(position)
	if horizontalSq >= jumpTriggerRadius*jumpTriggerRadius {
		return
	}

	physicalAspect.
		SetJumping(true).
		SetVerticalVelocity(jumpLaunchVelocity)

	playerAspect.Stats.nbJumps++
}
