package handler

import (
	"html/template"
	"io/ioutil"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"

	"github.com/Photon1c/ForagingTheoryv2/vizserver/types"
)

func Game(fetchVizGames func() ([]*types.VizGame, error), basepath string) func(w http.ResponseWriter, r *http.Request) {

	return func(w http.ResponseWriter, r *http.Request) {

		vars := mux.Vars(r)

		vizgames, err := fetchVizGames()
		if err != nil {
			w.Write([]byte("ERROR: Could not fetch viz games"))
			return
		}

		var vizgame *types.VizGame

		for _, candidate := range vizgames {
			if candidate.GetGame().GetId() == vars["id"] {
				vizgame = candidate
				break
			}
		}

		if vizgame == nil {
			w.Write([]byte("GAME NOT FOUND !"))
			return
		}

		gameDescription := vizgame.GetGame()

		vizhtml, err := ioutil.ReadFile(basepath + "index.html")
		if err != nil {
			w.Write([]byte("ERROR: could not render game"))
			return
		}

		protocol := "ws"

		if os.Getenv("ENV") == "prod" {
			protocol = "wss"
		}

		var vizhtmlTemplate = template.Must(template.New("").Parse(string(vizhtml)))
		vizhtmlTemplate.Execute(w, struct {
			WsURL   string
			Rand    int64
			Tps     int
			Mode    string
			MapSize float64
		}{
			WsURL:   protocol + "://" + r.Host + "/game/" + gameDescription.GetId() + "/ws",
			Rand:    time.Now().Unix(),
			Tps:     gameDescription.GetTps(),
			Mode:    string(gameDescription.GetMode()),
			MapSize: gameDescription.GetMapSize(),
		})
	}
}
