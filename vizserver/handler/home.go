package handler

import (
	"net/http"
	"strconv"

	"github.com/Photon1c/ForagingTheoryv2/vizserver/types"
)

func Home(fetchVizGames func() ([]*types.VizGame, error)) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")

		vizgames, err := fetchVizGames()
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("ERROR: Could not fetch viz games"))
			return
		}

		w.Write([]byte("<h2>Foraging runs</h2>"))

		for _, vizgame := range vizgames {
			gameDescription := vizgame.GetGame()
			w.Write([]byte("<a href='/game/" + gameDescription.GetId() + "'>" + gameDescription.GetName() + " (" + strconv.Itoa(vizgame.GetNumberWatchers()) + " watchers right now)</a><br />"))
		}
	}
}
