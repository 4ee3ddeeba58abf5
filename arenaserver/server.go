package arenaserver

import (
	"strconv"
	"sync"

	commontypes "github.com/Photon1c/ForagingTheoryv2/common/types"
	gamecommon "github.com/Photon1c/ForagingTheoryv2/game/common"
)

const debug = false

// Server drives one run: it owns the tick loop advancing the world and
// the wall-clock countdown ending it. The two are deliberately
// independent clocks; changing the speed multiplier scales the
// simulated delta per tick, never the remaining real time.
type Server struct {
	game            gamecommon.GameInterface
	gameDescription commontypes.GameDescriptionInterface

	tickspersec int
	speed       float64

	ticknum      int
	ticknummutex *sync.Mutex

	secondsLeft      int
	secondsLeftmutex *sync.Mutex

	stopticking   chan struct{}
	stoptickinged bool

	ended     bool
	endedonce *sync.Once
	endmutex  *sync.Mutex

	stateobservers         []chan commontypes.VizMessage
	stateobserversmutex    *sync.Mutex
	tearDownCallbacks      []TearDownCallback
	tearDownCallbacksMutex *sync.Mutex
}

func NewServer(game gamecommon.GameInterface, gameDescription commontypes.GameDescriptionInterface, speed float64) *Server {

	if speed <= 0 {
		speed = 1.0
	}

	return &Server{
		game:            game,
		gameDescription: gameDescription,

		tickspersec: gameDescription.GetTps(),
		speed:       speed,

		ticknummutex: &sync.Mutex{},

		secondsLeft:      gameDescription.GetDurationSeconds(),
		secondsLeftmutex: &sync.Mutex{},

		stopticking: make(chan struct{}),

		endedonce: &sync.Once{},
		endmutex:  &sync.Mutex{},

		stateobservers:         make([]chan commontypes.VizMessage, 0),
		stateobserversmutex:    &sync.Mutex{},
		tearDownCallbacks:      make([]TearDownCallback, 0),
		tearDownCallbacksMutex: &sync.Mutex{},
	}
}

func (server *Server) GetGame() gamecommon.GameInterface {
	return server.game
}

func (server *Server) GetGameDescription() commontypes.GameDescriptionInterface {
	return server.gameDescription
}

func (server *Server) GetTicksPerSecond() int {
	return server.tickspersec
}

// TickDelta is the simulated time advanced by one tick, in seconds.
func (server *Server) TickDelta() float64 {
	return server.speed / float64(server.tickspersec)
}

func (server *Server) getTicknum() int {
	server.ticknummutex.Lock()
	res := server.ticknum
	server.ticknummutex.Unlock()
	return res
}

func (server *Server) nextTicknum() int {
	server.ticknummutex.Lock()
	server.ticknum++
	res := server.ticknum
	server.ticknummutex.Unlock()
	return res
}

func (server *Server) GetSecondsLeft() int {
	server.secondsLeftmutex.Lock()
	res := server.secondsLeft
	server.secondsLeftmutex.Unlock()
	return res
}

func (server *Server) HasEnded() bool {
	server.endmutex.Lock()
	res := server.ended
	server.endmutex.Unlock()
	return res
}

func (server *Server) SubscribeStateObservation() chan commontypes.VizMessage {
	ch := make(chan commontypes.VizMessage)
	server.stateobserversmutex.Lock()
	server.stateobservers = append(server.stateobservers, ch)
	server.stateobserversmutex.Unlock()
	return ch
}

func (server *Server) AddTearDownCall(fn TearDownCallback) {
	server.tearDownCallbacksMutex.Lock()
	defer server.tearDownCallbacksMutex.Unlock()

	server.tearDownCallbacks = append(server.tearDownCallbacks, fn)
}

func (server *Server) publishState(msg commontypes.VizMessage) {
	server.stateobserversmutex.Lock()
	observers := make([]chan commontypes.VizMessage, len(server.stateobservers))
	copy(observers, server.stateobservers)
	server.stateobserversmutex.Unlock()

	for _, subscriber := range observers {
		go func(s chan commontypes.VizMessage) {
			s <- msg
		}(subscriber)
	}
}

func (server *Server) dolog(ticknum int) bool {
	return (ticknum % server.tickspersec) == 0
}

func tickLabel(ticknum int) string {
	return "tick " + strconv.Itoa(ticknum)
}
