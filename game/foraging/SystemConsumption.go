package foraging

import (
	"github.com/bytearena/ecs"
)

// systemConsumption lets the agent claim its target if the tick's
// movement brought it within the consumption radius.
func systemConsumption(game *ForagingGame, entityresult *ecs.QueryResult) {

	physicalAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])
	steeringAspect := game.CastSteering(entityresult.Components[game.steeringComponent])
	playerAspect := game.CastPlayer(entityresult.Components[game.playerComponent])

	targetId, ok := steeringAspect.GetTarget()
	if !ok {
		return
	}

	foodResult := game.getEntity(targetId, game.foodComponent, game.physicalBodyComponent)
	if foodResult == nil {
		return
	}

	foodAspect := game.CastFood(foodResult.Components[game.foodComponent])
	foodPhysicalAspect := game.CastPhysicalBody(foodResult.Components[game.physicalBodyComponent])

	distSq := physicalAspect.GetPosition().DistanceSqTo(foodPhysicalAspect.GetPosition())
	if distSq > ConsumptionRadius*ConsumptionRadius {
		return
	}

	// the claim is re-checked at commit; an agent earlier in this
	// tick's order may have taken the item since it was targeted
	if foodAspect.IsConsumed() {
		return
	}

	foodAspect.MarkConsumed()
	game.foodIndex.Remove(targetId)
	game.foodRemaining--

	playerAspect.Score++
}
