package foraging

type stats struct {

	// Distance travelled by the agent in meters since the beginning of the game
	distanceTravelled float64

	nbJumps uint
}

type Player struct {
	Name string

	// Number of food items consumed by this agent; incremented by
	// systemConsumption, never decremented.
	Score int

	Stats stats
}

func (game *ForagingGame) CastPlayer(data interface{}) *Player {
	return data.(*Player)
}
