package foraging

import (
	"math"
	"math/rand"
	"sort"

	"github.com/bytearena/ecs"

	commontypes "github.com/Photon1c/ForagingTheoryv2/common/types"
	"github.com/Photon1c/ForagingTheoryv2/common/utils"
	"github.com/Photon1c/ForagingTheoryv2/common/utils/vector"
)

const debug = false

// ForagingGame owns the whole world state of one run: agents, food,
// tick counter. All mutation goes through Step; everything handed to
// observers (snapshots, scores, viz frames) is a value copy.
type ForagingGame struct {
	ticknum int

	gameDescription commontypes.GameDescriptionInterface
	manager         *ecs.Manager

	// injected so tests can pin trajectories with a fixed seed
	rng *rand.Rand

	physicalBodyComponent *ecs.Component
	playerComponent       *ecs.Component
	steeringComponent     *ecs.Component
	foodComponent         *ecs.Component
	renderComponent       *ecs.Component

	agentsView     *ecs.View
	foodsView      *ecs.View
	renderableView *ecs.View

	foodIndex     FoodIndex
	foodRemaining int
}

func NewForagingGame(gameDescription commontypes.GameDescriptionInterface, rng *rand.Rand) *ForagingGame {
	game := makeForagingGame(gameDescription, rng)

	game.spawnAgents()
	game.spawnFood()

	return game
}

func makeForagingGame(gameDescription commontypes.GameDescriptionInterface, rng *rand.Rand) *ForagingGame {
	manager := ecs.NewManager()

	game := &ForagingGame{
		gameDescription: gameDescription,
		manager:         manager,
		rng:             rng,

		physicalBodyComponent: manager.NewComponent(),
		playerComponent:       manager.NewComponent(),
		steeringComponent:     manager.NewComponent(),
		foodComponent:         manager.NewComponent(),
		renderComponent:       manager.NewComponent(),
	}

	game.agentsView = manager.CreateView(
		game.playerComponent,
		game.steeringComponent,
		game.physicalBodyComponent,
	)

	game.foodsView = manager.CreateView(
		game.foodComponent,
		game.physicalBodyComponent,
	)

	game.renderableView = manager.CreateView(
		game.renderComponent,
		game.physicalBodyComponent,
	)

	if gameDescription.GetFoodCount() >= rtreeIndexThreshold {
		game.foodIndex = NewRtreeFoodIndex()
	} else {
		game.foodIndex = NewLinearFoodIndex()
	}

	return game
}

func (game *ForagingGame) getEntity(id ecs.EntityID, tagelements ...interface{}) *ecs.QueryResult {
	return game.manager.GetEntityByID(id, tagelements...)
}

func (game *ForagingGame) spawnAgents() {
	count := game.gameDescription.GetAgentCount()
	center := vector.MakeVector3(0, RestingHeight, 0)

	for i := 0; i < count; i++ {
		angle := float64(i) / float64(count) * 2.0 * math.Pi
		position := vector.MakeVector3(
			math.Cos(angle)*spawnCircleRadius,
			RestingHeight,
			math.Sin(angle)*spawnCircleRadius,
		)

		game.NewEntityAgent(position, center.Sub(position))
	}
}

func (game *ForagingGame) spawnFood() {
	count := game.gameDescription.GetFoodCount()
	hyper := game.gameDescription.GetMode() == commontypes.GameModeHyper

	for i := 0; i < count; i++ {
		kind := FoodKinds[game.rng.Intn(len(FoodKinds))]
		color := FoodColors[game.rng.Intn(len(FoodColors))]
		position := game.randomFoodPosition(hyper)

		if hyper {
			// pick the render-space position first, then lift it into
			// hyperspace so the projection lands exactly where intended
			depth := hyperDepthMin + game.rng.Float64()*(hyperDepthMax-hyperDepthMin)
			scale := HyperFocal / (HyperFocal + depth)
			x, y, z := position.Get()

			game.NewEntityFoodHyper(vector.MakeVector4(x/scale, y/scale, z/scale, depth), kind, color)
		} else {
			game.NewEntityFood(position, kind, color)
		}
	}
}

func (game *ForagingGame) randomFoodPosition(hyper bool) vector.Vector3 {
	extent := game.gameDescription.GetMapSize() - foodSpawnMargin

	height := RestingHeight
	if !hyper && game.rng.Float64() < hangingFoodChance {
		height += hangingFoodMinHeight + game.rng.Float64()*(hangingFoodMaxHeight-hangingFoodMinHeight)
	}

	return vector.MakeVector3(
		(game.rng.Float64()*2.0-1.0)*extent,
		height,
		(game.rng.Float64()*2.0-1.0)*extent,
	)
}

// <GameInterface>

func (game *ForagingGame) ImplementsGameInterface() {}

// Step advances the world by dt seconds. Agents are processed one at a
// time in id order, each running the full seek/move/consume pipeline
// before the next agent is looked at: an earlier agent claiming a
// contested food item does so before a later agent picks its target.
func (game *ForagingGame) Step(ticknum int, dt float64) {

	watch := utils.MakeStopwatch("foraging::Step()")
	watch.Start("Step")

	game.ticknum = ticknum

	for _, entityresult := range game.agentsInOrder() {
		systemSeeking(game, entityresult, dt)
		systemPhysics(game, entityresult, dt)
		systemConsumption(game, entityresult)
	}

	watch.Stop("Step")
	if debug {
		utils.Debug("foraging", watch.String())
	}
}

func (game *ForagingGame) FoodRemaining() int {
	return game.foodRemaining
}

func (game *ForagingGame) Scores() []commontypes.VizMessageScore {
	scores := make([]commontypes.VizMessageScore, 0)

	for _, entityresult := range game.agentsInOrder() {
		playerAspect := game.CastPlayer(entityresult.Components[game.playerComponent])

		scores = append(scores, commontypes.VizMessageScore{
			AgentId: entityresult.Entity.GetID().String(),
			Name:    playerAspect.Name,
			Score:   playerAspect.Score,
		})
	}

	return scores
}

func (game *ForagingGame) ProduceVizMessage() commontypes.VizMessage {
	msg := commontypes.VizMessage{
		GameID:        game.gameDescription.GetId(),
		Objects:       []commontypes.VizMessageObject{},
		Scores:        game.Scores(),
		FoodRemaining: game.foodRemaining,
	}

	for _, entityresult := range game.renderableView.Get() {

		renderAspect := game.CastRender(entityresult.Components[game.renderComponent])
		physicalBodyAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])

		kind := ""
		if foodResult := game.getEntity(entityresult.Entity.GetID(), game.foodComponent); foodResult != nil {
			foodAspect := game.CastFood(foodResult.Components[game.foodComponent])
			if foodAspect.IsConsumed() {
				continue
			}
			kind = foodAspect.GetKind()
		}

		msg.Objects = append(msg.Objects, commontypes.VizMessageObject{
			Id:          entityresult.Entity.GetID().String(),
			Type:        renderAspect.GetType(),
			Kind:        kind,
			Position:    physicalBodyAspect.GetPosition(),
			Velocity:    physicalBodyAspect.GetVelocity(),
			Orientation: physicalBodyAspect.GetOrientation(),
			Radius:      physicalBodyAspect.GetRadius(),
		})
	}

	return msg
}

// </GameInterface>

// agentsInOrder returns the agents sorted by entity id; ids are handed
// out monotonically at spawn, so this is creation order.
func (game *ForagingGame) agentsInOrder() []*ecs.QueryResult {
	results := game.agentsView.Get()

	sorted := make([]*ecs.QueryResult, len(results))
	copy(sorted, results)

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Entity.GetID() < sorted[j].Entity.GetID()
	})

	return sorted
}

func (game *ForagingGame) foodsInOrder() []*ecs.QueryResult {
	results := game.foodsView.Get()

	sorted := make([]*ecs.QueryResult, len(results))
	copy(sorted, results)

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Entity.GetID() < sorted[j].Entity.GetID()
	})

	return sorted
}
