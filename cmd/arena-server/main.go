package main

import (
	"flag"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	notify "github.com/bitly/go-notify"
	"github.com/skratchdot/open-golang/open"
	bettererrors "github.com/xtuc/better-errors"

	"github.com/Photon1c/ForagingTheoryv2/arenaserver"
	"github.com/Photon1c/ForagingTheoryv2/common"
	"github.com/Photon1c/ForagingTheoryv2/common/types"
	"github.com/Photon1c/ForagingTheoryv2/common/utils"
	"github.com/Photon1c/ForagingTheoryv2/game/foraging"
	"github.com/Photon1c/ForagingTheoryv2/vizserver"
	viztypes "github.com/Photon1c/ForagingTheoryv2/vizserver/types"
)

const (
	TIME_BEFORE_FORCE_QUIT = 10 * time.Second
)

func main() {

	port := flag.Int("port", 8080, "Port of the viz server")
	healthport := flag.Int("health-port", 0, "Port of the health check server; 0 disables it")
	name := flag.String("name", "Foraging run", "Display name of the run")
	agents := flag.Int("agents", 4, "Number of foraging agents (1 to 8)")
	food := flag.Int("food", 200, "Number of food items (1 to 20000)")
	minutes := flag.Int("minutes", 10, "Duration of the run in minutes (1 to 720)")
	tps := flag.Int("tps", 20, "Ticks per second")
	mode := flag.String("mode", "ground", "Run mode: ground or hyper")
	speed := flag.Float64("speed", 1.0, "Simulation speed multiplier")
	seed := flag.Int64("seed", 0, "Random seed; 0 seeds from the clock")
	nobrowser := flag.Bool("no-browser", false, "Do not open the viz in the browser")

	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	gameDescription := types.NewGameDescription(
		*name,
		*tps,
		types.GameMode(*mode),
		*agents,
		*food,
		*minutes,
		foraging.MapSize,
	)

	utils.Debug("arena-server", "Foraging Server "+utils.GetVersion()+"; run "+gameDescription.GetId())

	game := foraging.NewForagingGame(gameDescription, rng)

	srv := arenaserver.NewServer(game, gameDescription, *speed)

	if *healthport > 0 {
		go StartHealthCheck(srv, strconv.Itoa(*healthport))
	}

	vizgames := make([]*viztypes.VizGame, 1)
	vizgames[0] = viztypes.NewVizGame(gameDescription)

	webclientpath := utils.GetExecutableDir() + "/webclient/"
	vizservice := vizserver.NewVizService(
		"0.0.0.0:"+strconv.Itoa(*port),
		webclientpath,
		func() ([]*viztypes.VizGame, error) { return vizgames, nil },
	)

	vizservice.Start()

	gameEnded := make(chan interface{})
	notify.Start("game:ended:"+gameDescription.GetId(), gameEnded)

	serverChan, startErr := srv.Start()
	if startErr != nil {
		utils.FailWith(bettererrors.NewFromErr(startErr))
	}

	shutdownChan := make(chan bool)
	go func() {
		<-common.SignalHandler()
		shutdownChan <- true
	}()

	url := "http://localhost:" + strconv.Itoa(*port) + "/game/" + gameDescription.GetId()

	if !*nobrowser {
		open.Run(url)
	}

	fmt.Println("\033[0;34m\nRun live at " + url + "\033[0m\n")

	select {
	case raw := <-gameEnded:
		{
			if result, ok := raw.(arenaserver.GameResult); ok {
				fmt.Println("Run over (" + string(result.Reason) + "); final scores:")
				for _, score := range result.Scores {
					fmt.Println("  " + score.Name + ": " + strconv.Itoa(score.Score))
				}
			}
		}
	case <-serverChan:
	case <-shutdownChan:
	}

	// Force quit if the programs didn't exit
	go func() {
		<-time.After(TIME_BEFORE_FORCE_QUIT)

		berror := bettererrors.New("Forced shutdown")

		utils.FailWith(berror)
	}()

	srv.Stop()
	vizservice.Stop()
}
