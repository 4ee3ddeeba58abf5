package vizserver

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/Photon1c/ForagingTheoryv2/common/utils"
	apphandler "github.com/Photon1c/ForagingTheoryv2/vizserver/handler"
	"github.com/Photon1c/ForagingTheoryv2/vizserver/types"
)

type FetchVizGamesCbk func() ([]*types.VizGame, error)

// VizService exposes the viz webclient and the per-game websocket
// relaying frames to connected watchers.
type VizService struct {
	addr          string
	webclientpath string
	fetchVizGames FetchVizGamesCbk
	listener      *http.Server
}

func NewVizService(addr string, webclientpath string, fetchVizGames FetchVizGamesCbk) *VizService {
	return &VizService{
		addr:          addr,
		webclientpath: webclientpath,
		fetchVizGames: fetchVizGames,
	}
}

func (viz *VizService) Start() chan struct{} {

	logger := os.Stdout
	router := mux.NewRouter()

	router.Handle("/", handlers.CombinedLoggingHandler(logger,
		http.HandlerFunc(apphandler.Home(viz.fetchVizGames)),
	)).Methods("GET")

	router.Handle("/game/{id:[a-zA-Z0-9\\-]+}", handlers.CombinedLoggingHandler(logger,
		http.HandlerFunc(apphandler.Game(viz.fetchVizGames, viz.webclientpath)),
	)).Methods("GET")

	router.Handle("/game/{id:[a-zA-Z0-9\\-]+}/ws", handlers.CombinedLoggingHandler(logger,
		http.HandlerFunc(apphandler.Websocket(viz.fetchVizGames)),
	)).Methods("GET")

	// viz assets (js, models, textures)
	router.PathPrefix("/lib/").Handler(http.FileServer(http.Dir(viz.webclientpath)))
	router.PathPrefix("/res/").Handler(http.FileServer(http.Dir(viz.webclientpath)))

	viz.listener = &http.Server{
		Addr:    viz.addr,
		Handler: router,
	}

	utils.Debug("viz-server", "VIZ Listening on "+viz.addr)

	block := make(chan struct{})

	go func() {
		err := viz.listener.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			utils.Debug("viz-server", "Listen error; "+err.Error())
		}
		close(block)
	}()

	return block
}

func (viz *VizService) Stop() error {
	if viz.listener == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return viz.listener.Shutdown(ctx)
}
