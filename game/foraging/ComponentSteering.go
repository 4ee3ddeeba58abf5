package foraging

import (
	"github.com/bytearena/ecs"
)

// Steering carries the per-tick seeking decision from systemSeeking to
// systemConsumption: which food item the agent is currently after.
type Steering struct {
	hasTarget  bool
	targetFood ecs.EntityID
}

func (game *ForagingGame) CastSteering(data interface{}) *Steering {
	return data.(*Steering)
}

func (s Steering) GetTarget() (ecs.EntityID, bool) {
	return s.targetFood, s.hasTarget
}

func (s *Steering) SetTarget(id ecs.EntityID) *Steering {
	s.targetFood = id
	s.hasTarget = true
	return s
}

func (s *Steering) ClearTarget() *Steering {
	s.hasTarget = false
	return s
}
