package foraging

import (
	"github.com/bytearena/ecs"

	"github.com/Photon1c/ForagingTheoryv2/common/utils/vector"
)

// NewEntityFood spawns a ground-mode food item at the given position.
func (game *ForagingGame) NewEntityFood(position vector.Vector3, kind string, color string) *ecs.Entity {

	food := game.manager.NewEntity()

	food.
		AddComponent(game.physicalBodyComponent, &PhysicalBody{
			position:    position,
			velocity:    vector.MakeNullVector3(),
			orientation: vector.MakeQuaternionIdentity(),
			radius:      foodBodyRadius,
		}).
		AddComponent(game.foodComponent, &Food{
			kind:  kind,
			color: color,
		}).
		AddComponent(game.renderComponent, &Render{
			type_:  "food",
			static: true,
		})

	game.foodIndex.Insert(food.GetID(), position)
	game.foodRemaining++

	return food
}

// NewEntityFoodHyper spawns a hyperspace-mode food item at a 4D coordinate.
// The projection to render space happens here, once: food never moves,
// so the cached projected position is what the seeking distance checks
// and the viz read-back both see.
func (game *ForagingGame) NewEntityFoodHyper(position vector.Vector4, kind string, color string) *ecs.Entity {

	projected := position.Project3D(HyperFocal)

	food := game.manager.NewEntity()

	food.
		AddComponent(game.physicalBodyComponent, &PhysicalBody{
			position:    projected,
			velocity:    vector.MakeNullVector3(),
			orientation: vector.MakeQuaternionIdentity(),
			radius:      foodBodyRadius,
		}).
		AddComponent(game.foodComponent, &Food{
			kind:          kind,
			color:         color,
			hyper:         true,
			hyperPosition: position,
		}).
		AddComponent(game.renderComponent, &Render{
			type_:  "food",
			static: true,
		})

	game.foodIndex.Insert(food.GetID(), projected)
	game.foodRemaining++

	return food
}

func (game *ForagingGame) foodPosition(qr *ecs.QueryResult) vector.Vector3 {
	return game.CastPhysicalBody(qr.Components[game.physicalBodyComponent]).GetPosition()
}
