package handler

import (
	"fmt"
	"log"
	"net/http"

	notify "github.com/bitly/go-notify"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/Photon1c/ForagingTheoryv2/common/utils"
	"github.com/Photon1c/ForagingTheoryv2/vizserver/types"
)

type wsincomingmessage struct {
	messageType int
	p           []byte
	err         error
}

func Websocket(fetchVizGames func() ([]*types.VizGame, error)) func(w http.ResponseWriter, r *http.Request) {
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

		gameID := vizgame.GetGame().GetId()

		upgrader := websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		}

		c, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Print("upgrade:", err)
			return
		}

		watcher := types.NewWatcher(c)
		vizgame.SetWatcher(watcher)

		defer func(c *websocket.Conn) {
			vizgame.RemoveWatcher(watcher.GetId())
			c.Close()
		}(c)

		clientclosedsocket := make(chan bool)
		c.SetCloseHandler(func(code int, text string) error {
			clientclosedsocket <- true
			return nil
		})

		// Listen to messages incoming from viz; mandatory to notice when websocket is closed client side
		incomingmsg := make(chan wsincomingmessage)
		go func(client *websocket.Conn, ch chan wsincomingmessage) {
			messageType, p, err := client.ReadMessage()
			ch <- wsincomingmessage{messageType, p, err}
		}(c, incomingmsg)

		// Listen to frames coming from the arena server for this game
		vizmsgchan := make(chan interface{})
		notify.Start("viz:message:"+gameID, vizmsgchan)
		defer notify.Stop("viz:message:"+gameID, vizmsgchan)

		for {
			select {
			case <-clientclosedsocket:
				{
					utils.Debug("viz-server", "Watcher "+watcher.GetId()+" closed the socket")
					return
				}
			case <-incomingmsg:
				{
					// no upstream protocol; a read means the socket died
					return
				}
			case vizmsg := <-vizmsgchan:
				{
					vizmsgString, ok := vizmsg.(string)
					utils.Assert(ok, "Failed to cast vizmessage into string")

					err := watcher.WriteMessage(websocket.TextMessage, []byte(fmt.Sprintf("{\"type\":\"framebatch\", \"data\": %s}", vizmsgString)))
					if err != nil {
						return
					}
				}
			}
		}
	}
}
