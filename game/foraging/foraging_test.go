package foraging

import (
	"math"
	"math/rand"
	"testing"

	commontypes "github.com/Photon1c/ForagingTheoryv2/common/types"
	"github.com/Photon1c/ForagingTheoryv2/common/utils/vector"
)

func testDescription(mode commontypes.GameMode, agents int, food int) commontypes.GameDescriptionInterface {
	return commontypes.NewGameDescription("test-run", 20, mode, agents, food, 10, MapSize)
}

// bare world, no spawning; scenarios place entities themselves
func makeBareGame() *ForagingGame {
	return makeForagingGame(testDescription(commontypes.GameModeGround, 1, 1), rand.New(rand.NewSource(42)))
}

func consumedCount(game *ForagingGame) int {
	count := 0
	for _, food := range game.FoodSnapshots() {
		if food.Consumed {
			count++
		}
	}
	return count
}

func scoreSum(game *ForagingGame) int {
	sum := 0
	for _, score := range game.Scores() {
		sum += score.Score
	}
	return sum
}

func TestAdjacentFoodConsumedInASingleTick(t *testing.T) {
	game := makeBareGame()

	game.NewEntityAgent(vector.MakeVector3(0, RestingHeight, 0), vector.MakeVector3(0, 0, 1))
	game.NewEntityFood(vector.MakeVector3(0, RestingHeight, 0.1), "cube", "#3cb44b")

	game.Step(1, 1.0)

	foods := game.FoodSnapshots()
	if !foods[0].Consumed {
		t.Fatalf("food 0.1 away must be consumed after one tick of delta=1")
	}

	agents := game.AgentSnapshots()
	if agents[0].Score != 1 {
		t.Fatalf("score after consumption: got %d, want 1", agents[0].Score)
	}

	if game.FoodRemaining() != 0 {
		t.Fatalf("food remaining: got %d, want 0", game.FoodRemaining())
	}
}

func TestDistantFoodApproachIsMonotonicAndBounded(t *testing.T) {
	game := makeBareGame()

	game.NewEntityAgent(vector.MakeVector3(0, RestingHeight, 0), vector.MakeVector3(1, 0, 0))
	game.NewEntityFood(vector.MakeVector3(10, RestingHeight, 0), "sphere", "#4363d8")

	previousX := 0.0

	for tick := 1; tick <= 2000; tick++ {
		game.Step(tick, 0.1)

		agent := game.AgentSnapshots()[0]

		if agent.Position.GetX() > MapSize {
			t.Fatalf("tick %d: agent escaped the arena at x=%f", tick, agent.Position.GetX())
		}

		if game.FoodRemaining() == 0 {
			if agent.Score != 1 {
				t.Fatalf("score after reaching the food: got %d, want 1", agent.Score)
			}
			return
		}

		if agent.Position.GetX() <= previousX {
			t.Fatalf("tick %d: x must strictly increase while seeking: %f -> %f", tick, previousX, agent.Position.GetX())
		}
		previousX = agent.Position.GetX()
	}

	t.Fatalf("agent never reached food 10 units away in 2000 ticks")
}

func TestScoreConservationOverAFullRun(t *testing.T) {
	game := NewForagingGame(testDescription(commontypes.GameModeGround, 3, 40), rand.New(rand.NewSource(7)))

	previousScores := make(map[string]int)

	for tick := 1; tick <= 20000; tick++ {
		game.Step(tick, 0.05)

		if got, want := scoreSum(game), consumedCount(game); got != want {
			t.Fatalf("tick %d: score sum %d != consumed food %d", tick, got, want)
		}

		for _, score := range game.Scores() {
			if score.Score < previousScores[score.AgentId] {
				t.Fatalf("tick %d: score of %s decreased", tick, score.AgentId)
			}
			previousScores[score.AgentId] = score.Score
		}

		if game.FoodRemaining() == 0 {
			if got := scoreSum(game); got != 40 {
				t.Fatalf("final score sum: got %d, want 40", got)
			}
			return
		}
	}

	t.Fatalf("3 agents did not deplete 40 food items in 20000 ticks; %d left", game.FoodRemaining())
}

func TestBoundsInvariantHolds(t *testing.T) {
	game := NewForagingGame(testDescription(commontypes.GameModeGround, 8, 30), rand.New(rand.NewSource(3)))

	for tick := 1; tick <= 500; tick++ {
		game.Step(tick, 0.2)

		for _, agent := range game.AgentSnapshots() {
			x := agent.Position.GetX()
			z := agent.Position.GetZ()
			if x < -MapSize || x > MapSize || z < -MapSize || z > MapSize {
				t.Fatalf("tick %d: agent %d out of bounds at (%f, %f)", tick, agent.Id, x, z)
			}
		}
	}
}

func TestGroundClampWhenNotAirborne(t *testing.T) {
	game := NewForagingGame(testDescription(commontypes.GameModeGround, 2, 25), rand.New(rand.NewSource(11)))

	for tick := 1; tick <= 400; tick++ {
		game.Step(tick, 0.05)

		for _, agent := range game.AgentSnapshots() {
			if !agent.Jumping && agent.Position.GetY() != RestingHeight {
				t.Fatalf("tick %d: grounded agent %d at height %f, want exactly %f", tick, agent.Id, agent.Position.GetY(), RestingHeight)
			}
			if agent.Position.GetY() < RestingHeight {
				t.Fatalf("tick %d: agent %d below ground at %f", tick, agent.Id, agent.Position.GetY())
			}
		}
	}
}

func TestIdleAfterDepletionIsIdempotent(t *testing.T) {
	game := makeBareGame()

	game.NewEntityAgent(vector.MakeVector3(2, RestingHeight, 0), vector.MakeVector3(-1, 0, 0))
	game.NewEntityFood(vector.MakeVector3(0, RestingHeight, 0), "triangle", "#ffe119")

	tick := 0
	for game.FoodRemaining() > 0 {
		tick++
		if tick > 1000 {
			t.Fatalf("setup failed to deplete food")
		}
		game.Step(tick, 0.1)
	}

	settled := game.AgentSnapshots()

	for i := 0; i < 10; i++ {
		tick++
		game.Step(tick, 0.1)
	}

	after := game.AgentSnapshots()

	if !after[0].Position.Equals(settled[0].Position) {
		t.Fatalf("idle agent drifted from %s to %s", settled[0].Position, after[0].Position)
	}
	if !after[0].Velocity.IsNull() {
		t.Fatalf("idle agent kept velocity %s", after[0].Velocity)
	}
	if after[0].Score != settled[0].Score {
		t.Fatalf("idle agent score changed from %d to %d", settled[0].Score, after[0].Score)
	}
}

func TestJumpArcFollowsConstantGravity(t *testing.T) {
	game := makeBareGame()

	game.NewEntityAgent(vector.MakeVector3(0, RestingHeight, 0), vector.MakeVector3(0, 0, 1))
	game.NewEntityFood(vector.MakeVector3(0, RestingHeight+1, 0), "cube", "#e6194b")

	dt := 0.05

	game.Step(1, dt)

	agent := game.AgentSnapshots()[0]
	if !agent.Jumping {
		t.Fatalf("food hanging 1 unit overhead must trigger a jump")
	}

	// first airborne tick: launch velocity minus one tick of gravity
	wantVertical := jumpLaunchVelocity - gravity*dt
	if math.Abs(agent.VerticalVelocity-wantVertical) > 1e-9 {
		t.Fatalf("vertical velocity after launch: got %f, want %f", agent.VerticalVelocity, wantVertical)
	}

	previousVertical := agent.VerticalVelocity

	for tick := 2; tick <= 1000; tick++ {
		game.Step(tick, dt)
		agent = game.AgentSnapshots()[0]

		if agent.Position.GetY() < RestingHeight {
			t.Fatalf("tick %d: agent dipped below resting height: %f", tick, agent.Position.GetY())
		}

		if !agent.Jumping {
			if agent.Position.GetY() != RestingHeight {
				t.Fatalf("landed agent must rest at exactly %f, got %f", RestingHeight, agent.Position.GetY())
			}
			if agent.VerticalVelocity != 0 {
				t.Fatalf("landed agent must have zero vertical velocity, got %f", agent.VerticalVelocity)
			}
			return
		}

		wantVertical := previousVertical - gravity*dt
		if math.Abs(agent.VerticalVelocity-wantVertical) > 1e-9 {
			t.Fatalf("tick %d: vertical velocity %f, want %f (constant-gravity integration)", tick, agent.VerticalVelocity, wantVertical)
		}
		previousVertical = agent.VerticalVelocity
	}

	t.Fatalf("agent never landed")
}

func TestContestedFoodGoesToFirstAgentInOrder(t *testing.T) {
	game := makeBareGame()

	// both spawn within the consumption radius of the same item
	game.NewEntityAgent(vector.MakeVector3(-1, RestingHeight, 0), vector.MakeVector3(1, 0, 0))
	game.NewEntityAgent(vector.MakeVector3(1, RestingHeight, 0), vector.MakeVector3(-1, 0, 0))
	game.NewEntityFood(vector.MakeVector3(0, RestingHeight, 0), "sphere", "#911eb4")

	game.Step(1, 0.01)

	agents := game.AgentSnapshots()
	if agents[0].Score != 1 {
		t.Fatalf("first agent in list order must claim the contested item; got score %d", agents[0].Score)
	}
	if agents[1].Score != 0 {
		t.Fatalf("second agent must not double-claim; got score %d", agents[1].Score)
	}
	if got := consumedCount(game); got != 1 {
		t.Fatalf("exactly one consumption expected, got %d", got)
	}
}

func TestZeroDeltaProducesNoMotion(t *testing.T) {
	game := makeBareGame()

	game.NewEntityAgent(vector.MakeVector3(0, RestingHeight, 0), vector.MakeVector3(1, 0, 0))
	game.NewEntityFood(vector.MakeVector3(10, RestingHeight, 0), "cube", "#46f0f0")

	before := game.AgentSnapshots()[0]

	game.Step(1, 0)

	after := game.AgentSnapshots()[0]

	if !after.Position.Equals(before.Position) {
		t.Fatalf("delta=0 moved the agent from %s to %s", before.Position, after.Position)
	}
	if after.Score != 0 {
		t.Fatalf("delta=0 tick consumed distant food")
	}
}

func TestSpawnLayout(t *testing.T) {
	game := NewForagingGame(testDescription(commontypes.GameModeGround, 4, 60), rand.New(rand.NewSource(5)))

	agents := game.AgentSnapshots()
	if len(agents) != 4 {
		t.Fatalf("agent count: got %d, want 4", len(agents))
	}

	for _, agent := range agents {
		radius := agent.Position.Flatten(0).Mag()
		if math.Abs(radius-spawnCircleRadius) > 1e-9 {
			t.Fatalf("agent %d spawned off the circle: radius %f, want %f", agent.Id, radius, spawnCircleRadius)
		}
		if !agent.Velocity.IsNull() {
			t.Fatalf("agent %d spawned moving", agent.Id)
		}
		if agent.Score != 0 {
			t.Fatalf("agent %d spawned with score %d", agent.Id, agent.Score)
		}
		if agent.Position.GetY() != RestingHeight {
			t.Fatalf("agent %d spawned at height %f", agent.Id, agent.Position.GetY())
		}
	}

	foods := game.FoodSnapshots()
	if len(foods) != 60 {
		t.Fatalf("food count: got %d, want 60", len(foods))
	}

	inset := MapSize - foodSpawnMargin
	for _, food := range foods {
		if food.Consumed {
			t.Fatalf("food %d spawned consumed", food.Id)
		}
		x := food.Position.GetX()
		z := food.Position.GetZ()
		if x < -inset || x > inset || z < -inset || z > inset {
			t.Fatalf("food %d spawned outside the inset bounds at (%f, %f)", food.Id, x, z)
		}
	}
}

func TestHyperModeProjectsFoodIntoReach(t *testing.T) {
	game := NewForagingGame(testDescription(commontypes.GameModeHyper, 2, 5000), rand.New(rand.NewSource(9)))

	foods := game.FoodSnapshots()
	if len(foods) != commontypes.HyperFoodCount {
		t.Fatalf("hyper mode food count: got %d, want %d", len(foods), commontypes.HyperFoodCount)
	}

	inset := MapSize - foodSpawnMargin
	for _, food := range foods {
		if math.Abs(food.Position.GetY()-RestingHeight) > 1e-9 {
			t.Fatalf("projected food %d at height %f, want %f", food.Id, food.Position.GetY(), RestingHeight)
		}
		x := food.Position.GetX()
		z := food.Position.GetZ()
		if x < -inset || x > inset || z < -inset || z > inset {
			t.Fatalf("projected food %d outside bounds at (%f, %f)", food.Id, x, z)
		}
	}

	// the cached 3D position must be the projection of the stored 4D
	// coordinate, at a depth inside the spawn range
	for _, entityresult := range game.foodsInOrder() {
		foodAspect := game.CastFood(entityresult.Components[game.foodComponent])
		if !foodAspect.IsHyper() {
			t.Fatalf("food %s not flagged as hyperspace", entityresult.Entity.GetID().String())
		}

		hyperPosition := foodAspect.GetHyperPosition()
		if w := hyperPosition.GetW(); w < hyperDepthMin || w > hyperDepthMax {
			t.Fatalf("food %s depth %f outside [%f, %f]", entityresult.Entity.GetID().String(), w, hyperDepthMin, hyperDepthMax)
		}

		cached := game.foodPosition(entityresult)
		if cached.Sub(hyperPosition.Project3D(HyperFocal)).Mag() > 1e-9 {
			t.Fatalf("food %s cached position diverges from its projection", entityresult.Entity.GetID().String())
		}
	}
}

func TestHyperModeRunDepletes(t *testing.T) {
	game := NewForagingGame(testDescription(commontypes.GameModeHyper, 4, 0), rand.New(rand.NewSource(13)))

	for tick := 1; tick <= 50000; tick++ {
		game.Step(tick, 0.05)
		if game.FoodRemaining() == 0 {
			if got := scoreSum(game); got != commontypes.HyperFoodCount {
				t.Fatalf("final scores sum to %d, want %d", got, commontypes.HyperFoodCount)
			}
			return
		}
	}

	t.Fatalf("hyper run never depleted; %d left", game.FoodRemaining())
}
