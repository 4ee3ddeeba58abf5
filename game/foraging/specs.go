package foraging

// Tuning constants of the foraging arena. World units are meters,
// durations are seconds.
const (
	// MapSize is the arena half-extent: the footprint spans
	// [-MapSize, +MapSize] on both horizontal axes.
	MapSize = 20.0

	// food never spawns closer than this to a wall
	foodSpawnMargin = 2.0

	// agents spawn evenly spaced on a circle of this radius, facing
	// the center
	spawnCircleRadius = MapSize * 0.5

	// RestingHeight is the ground-level height of an agent's body
	// center; position.y equals this exactly whenever the agent is
	// not airborne.
	RestingHeight = 0.75

	// ConsumptionRadius is the distance within which an agent claims
	// a food item.
	ConsumptionRadius = 1.2

	// horizontal speed is re-rolled every tick: base plus a random
	// jitter, which gives the swarm its organic, non-ballistic look
	baseSpeed   = 0.75
	speedJitter = 0.5

	// fraction of the way the orientation turns toward the movement
	// direction each tick
	orientationSlerpFactor = 0.15

	// an agent closer than this (squared) to its target holds still
	seekEpsilonSq = 1e-6

	// jump trigger: food hanging higher than this above the agent,
	// within this horizontal radius
	jumpTriggerHeight  = 0.5
	jumpTriggerRadius  = 1.5
	jumpLaunchVelocity = 5.0
	gravity            = 9.8

	// hanging food spawns between these heights above resting height;
	// the upper bound stays under the jump apex (launch²/2g ≈ 1.28)
	hangingFoodChance    = 0.2
	hangingFoodMinHeight = 0.8
	hangingFoodMaxHeight = 1.2

	// HyperFocal is the focal constant of the hyperspace projection.
	HyperFocal = 5.0

	// hyperspace food depth range; kept well clear of -HyperFocal
	hyperDepthMin = -2.0
	hyperDepthMax = 2.0

	agentBodyRadius = 0.5
	foodBodyRadius  = 0.3

	// above this many food items the nearest-food scan goes through
	// the r-tree index instead of the linear one
	rtreeIndexThreshold = 512
)

// FoodKinds are the cosmetic shapes a food item can take. They have no
// gameplay effect.
var FoodKinds = []string{"cube", "sphere", "triangle"}

// FoodColors is the cosmetic palette food items are drawn from.
var FoodColors = []string{"#e6194b", "#3cb44b", "#ffe119", "#4363d8", "#f58231", "#911eb4", "#46f0f0"}
