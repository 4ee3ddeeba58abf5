package types

import (
	uuid "github.com/satori/go.uuid"

	"github.com/Photon1c/ForagingTheoryv2/common/utils/number"
)

type GameMode string

const (
	// GameModeGround navigates food placed on (or hanging just above)
	// the ground plane; agents can jump for the hanging items.
	GameModeGround GameMode = "ground"

	// GameModeHyper is the legacy variant: food carries a fourth
	// coordinate and is perspective-projected into render space.
	GameModeHyper GameMode = "hyper"
)

// Configuration clamp boundaries. Out-of-range values are normalized,
// never rejected.
const (
	MinAgents = 1
	MaxAgents = 8

	MinFood = 1
	MaxFood = 20000

	// the legacy hyper mode always runs with this many food items
	HyperFoodCount = 100

	MinDurationMinutes = 1
	MaxDurationMinutes = 720
)

type GameDescriptionInterface interface {
	GetId() string
	GetName() string
	GetTps() int
	GetMode() GameMode
	GetAgentCount() int
	GetFoodCount() int
	GetDurationSeconds() int
	GetMapSize() float64
}

type GameDescription struct {
	id              string
	name            string
	tps             int
	mode            GameMode
	agentCount      int
	foodCount       int
	durationMinutes int
	mapSize         float64
}

// NewGameDescription normalizes the raw configuration into a run
// description; every numeric input is clamped into its legal range.
func NewGameDescription(name string, tps int, mode GameMode, agentCount int, foodCount int, durationMinutes int, mapSize float64) *GameDescription {

	if mode != GameModeHyper {
		mode = GameModeGround
	}

	foodCount = number.ClampInt(foodCount, MinFood, MaxFood)
	if mode == GameModeHyper {
		foodCount = HyperFoodCount
	}

	return &GameDescription{
		id:              uuid.NewV4().String(),
		name:            name,
		tps:             number.ClampInt(tps, 1, 120),
		mode:            mode,
		agentCount:      number.ClampInt(agentCount, MinAgents, MaxAgents),
		foodCount:       foodCount,
		durationMinutes: number.ClampInt(durationMinutes, MinDurationMinutes, MaxDurationMinutes),
		mapSize:         mapSize,
	}
}

func (game *GameDescription) GetId() string {
	return game.id
}

func (game *GameDescription) GetName() string {
	return game.name
}

func (game *GameDescription) GetTps() int {
	return game.tps
}

func (game *GameDescription) GetMode() GameMode {
	return game.mode
}

func (game *GameDescription) GetAgentCount() int {
	return game.agentCount
}

func (game *GameDescription) GetFoodCount() int {
	return game.foodCount
}

func (game *GameDescription) GetDurationSeconds() int {
	return game.durationMinutes * 60
}

func (game *GameDescription) GetMapSize() float64 {
	return game.mapSize
}
