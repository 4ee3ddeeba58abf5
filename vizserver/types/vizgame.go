package types

import (
	commontypes "github.com/Photon1c/ForagingTheoryv2/common/types"
	"github.com/Photon1c/ForagingTheoryv2/common/utils"
)

type VizGame struct {
	gameDescription commontypes.GameDescriptionInterface
	pool            *WatcherMap
}

func NewVizGame(gameDescription commontypes.GameDescriptionInterface) *VizGame {
	return &VizGame{
		pool:            NewWatcherMap(),
		gameDescription: gameDescription,
	}
}

func (vizgame *VizGame) GetGame() commontypes.GameDescriptionInterface {
	return vizgame.gameDescription
}

func (vizgame *VizGame) SetGame(gameDescription commontypes.GameDescriptionInterface) {
	vizgame.gameDescription = gameDescription
}

func (vizgame *VizGame) GetTps() int {
	return vizgame.gameDescription.GetTps()
}

// VizInitMessageData is sent once to a freshly connected watcher; the
// webclient uses it to size the arena floor and the HUD before the
// first framebatch arrives.
type VizInitMessageData struct {
	Id              string               `json:"id"`
	Name            string               `json:"name"`
	Tps             int                  `json:"tps"`
	Mode            commontypes.GameMode `json:"mode"`
	MapSize         float64              `json:"mapsize"`
	AgentCount      int                  `json:"agentcount"`
	FoodCount       int                  `json:"foodcount"`
	DurationSeconds int                  `json:"durationseconds"`
}

type VizInitMessage struct {
	Type string             `json:"type"`
	Data VizInitMessageData `json:"data"`
}

func (vizgame *VizGame) SetWatcher(watcher *Watcher) {
	vizgame.pool.Set(watcher.GetId(), watcher)

	gameDescription := vizgame.gameDescription

	initMsg := VizInitMessage{
		Type: "init",
		Data: VizInitMessageData{
			Id:              gameDescription.GetId(),
			Name:            gameDescription.GetName(),
			Tps:             gameDescription.GetTps(),
			Mode:            gameDescription.GetMode(),
			MapSize:         gameDescription.GetMapSize(),
			AgentCount:      gameDescription.GetAgentCount(),
			FoodCount:       gameDescription.GetFoodCount(),
			DurationSeconds: gameDescription.GetDurationSeconds(),
		},
	}

	err := watcher.WriteJSON(initMsg)
	if err != nil {
		utils.Debug("viz-server", "Could not send VizInitMessage JSON;"+err.Error())
	}
}

func (vizgame *VizGame) RemoveWatcher(watcherid string) {
	vizgame.pool.Remove(watcherid)
}

func (vizgame *VizGame) GetNumberWatchers() int {
	return vizgame.pool.Size()
}
