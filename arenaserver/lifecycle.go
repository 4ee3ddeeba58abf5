package arenaserver

import (
	"encoding/json"
	"time"

	notify "github.com/bitly/go-notify"

	"github.com/Photon1c/ForagingTheoryv2/common/utils"
)

func (server *Server) Start() (chan interface{}, error) {

	utils.Debug("arena", "Starting run "+server.gameDescription.GetId())

	block := make(chan interface{})
	notify.Start("app:stopticking", block)

	server.startCountdown()
	server.startTicking()

	return block, nil
}

func (server *Server) Stop() {
	utils.Debug("arena", "TearDown from stop")
	server.TearDown()
}

func (server *Server) startTicking() {

	tickduration := time.Duration((1000000 / time.Duration(server.tickspersec)) * time.Microsecond)
	ticker := time.Tick(tickduration)

	server.AddTearDownCall(func() error {
		server.endmutex.Lock()
		if !server.stoptickinged {
			server.stoptickinged = true
			close(server.stopticking)
		}
		server.endmutex.Unlock()

		return nil
	})

	go func() {
		for {
			select {
			case <-server.stopticking:
				{
					utils.Debug("core-loop", "Received stop ticking signal")
					notify.Post("app:stopticking", nil)
					return
				}
			case <-ticker:
				{
					server.doTick()
				}
			}
		}
	}()
}

// startCountdown runs the wall-clock countdown on its own 1-second
// ticker, decoupled from the simulation ticker.
func (server *Server) startCountdown() {

	ticker := time.Tick(time.Second)

	go func() {
		for {
			select {
			case <-server.stopticking:
				{
					return
				}
			case <-ticker:
				{
					server.countdownTick()
				}
			}
		}
	}()
}

func (server *Server) countdownTick() {
	server.secondsLeftmutex.Lock()
	if server.secondsLeft > 0 {
		server.secondsLeft--
	}
	secondsLeft := server.secondsLeft
	server.secondsLeftmutex.Unlock()

	if secondsLeft <= 0 {
		server.endGame(EndReasonExpired)
	}
}

func (server *Server) doTick() {

	if server.HasEnded() {
		return
	}

	ticknum := server.nextTicknum()

	if server.dolog(ticknum) {
		utils.Debug("core-loop", "######## Tick ######## "+tickLabel(ticknum))
	}

	server.game.Step(ticknum, server.TickDelta())

	///////////////////////////////////////////////////////////////////////////
	// Pushing updated state to viz
	///////////////////////////////////////////////////////////////////////////

	msg := server.game.ProduceVizMessage()
	msg.TimeLeft = server.GetSecondsLeft()
	msg.GameOver = server.HasEnded()

	server.publishState(msg)

	msgJson, err := json.Marshal(msg)
	if err == nil {
		notify.PostTimeout("viz:message:"+server.gameDescription.GetId(), string(msgJson), time.Millisecond)
	}

	if server.game.FoodRemaining() == 0 {
		server.endGame(EndReasonDepleted)
	}
}

// endGame publishes the terminal game:ended notification; concurrent
// callers (countdown expiry racing food depletion) collapse into a
// single emission.
func (server *Server) endGame(reason EndReason) {

	server.endedonce.Do(func() {
		server.endmutex.Lock()
		server.ended = true
		server.endmutex.Unlock()

		result := GameResult{
			GameID:        server.gameDescription.GetId(),
			Reason:        reason,
			Scores:        server.game.Scores(),
			FoodRemaining: server.game.FoodRemaining(),
			Ticks:         server.getTicknum(),
		}

		resultJson, _ := json.Marshal(result)
		utils.Debug("arena", "Game ended: "+string(resultJson))

		notify.Post("game:ended", result)
		notify.Post("game:ended:"+server.gameDescription.GetId(), result)

		// one last frame so viewers see the terminal state; ended
		// runs publish nothing from the tick loop
		msg := server.game.ProduceVizMessage()
		msg.TimeLeft = server.GetSecondsLeft()
		msg.GameOver = true

		server.publishState(msg)

		msgJson, err := json.Marshal(msg)
		if err == nil {
			notify.PostTimeout("viz:message:"+server.gameDescription.GetId(), string(msgJson), time.Millisecond)
		}

		go server.Stop()
	})
}

func (server *Server) TearDown() {
	utils.Debug("arena", "teardown")

	server.tearDownCallbacksMutex.Lock()

	for i := len(server.tearDownCallbacks) - 1; i >= 0; i-- {
		utils.Debug("teardown", "Executing TearDownCallback")
		server.tearDownCallbacks[i]()
	}

	// Reset to avoid calling teardown callbacks multiple times
	server.tearDownCallbacks = make([]TearDownCallback, 0)

	server.tearDownCallbacksMutex.Unlock()
}
